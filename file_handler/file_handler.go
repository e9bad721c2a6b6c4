package filehandler

import (
	"io"
	"log/slog"
	"time"

	"github.com/goblimey/go-ssr/ssr/l6"
)

// RetryReader wraps a reader that may run dry for a while, such as a
// serial line fed by a GNSS receiver.  An EOF (or an empty read) is not
// necessarily fatal.  It can just mean that there is no data to read just
// now, but there may be some in the future.  If EOFTimeout is zero, Read
// returns EOF straight away.  If it's set, reads are retried every
// RetryIntervalOnEOF until data arrives or the timeout elapses.  Any
// other read error is returned immediately.
type RetryReader struct {
	Reader             io.Reader
	RetryIntervalOnEOF time.Duration // The time to wait between retries on EOF.
	EOFTimeout         time.Duration // Give up retrying after this time has elapsed.

	// timeOfFirstEOF is set when the read has returned EOF one or more
	// times in a row.  If the last read was successful, it's nil.
	timeOfFirstEOF *time.Time
}

// NewRetryReader creates a RetryReader.
func NewRetryReader(reader io.Reader, retryIntervalOnEOF, eofTimeout time.Duration) *RetryReader {
	return &RetryReader{
		Reader:             reader,
		RetryIntervalOnEOF: retryIntervalOnEOF,
		EOFTimeout:         eofTimeout,
	}
}

// Read reads into buf.
func (rr *RetryReader) Read(buf []byte) (int, error) {
	for {
		n, err := rr.Reader.Read(buf)
		if n > 0 {
			// Reset the timeout mechanism.
			rr.timeOfFirstEOF = nil
			if err == io.EOF {
				// Report the EOF on the next call.
				err = nil
			}
			return n, err
		}
		if err != nil && err != io.EOF {
			return 0, err
		}

		// EOF, or a read that timed out with no data.
		if rr.EOFTimeout == 0 {
			return 0, io.EOF
		}
		now := time.Now()
		if rr.timeOfFirstEOF == nil {
			rr.timeOfFirstEOF = &now
		} else if now.Sub(*rr.timeOfFirstEOF) > rr.EOFTimeout {
			return 0, io.EOF
		}
		time.Sleep(rr.RetryIntervalOnEOF)
	}
}

// Handler reads a stream containing QZSS L6 frames, possibly mixed with
// other data, and issues the frames on a channel.
type Handler struct {
	Scanner            *l6.Scanner   // Finds L6 frames ...
	FrameChan          chan l6.Frame // ... and issues them on this channel.
	RetryIntervalOnEOF time.Duration // The time to wait between retries on EOF.
	EOFTimeout         time.Duration // Give up retrying after this time has elapsed.

	logger *slog.Logger
}

// New creates a handler.  If logger is nil the default logger is used.
func New(frameChan chan l6.Frame, retryIntervalOnEOF, eofTimeout time.Duration, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		Scanner:            l6.NewScanner(logger),
		FrameChan:          frameChan,
		RetryIntervalOnEOF: retryIntervalOnEOF,
		EOFTimeout:         eofTimeout,
		logger:             logger,
	}
}

// Handle reads the input and sends it to the L6 scanner, which extracts
// frames and sends them to the frame channel.  When the input runs out the
// frame channel is closed, which tells the caller that the handler has
// stopped.  The read error (typically EOF) is returned.
//
// If the reader is connected to a serial line fed by a live receiver, the
// bytes come in indefinitely, a frame every second.  If the timeout is set
// to a small number of seconds it will only expire if the host loses its
// connection to the device.  The caller should then reopen the connection,
// create a new handler and continue.
func (handler *Handler) Handle(reader io.Reader) error {
	byteChan := make(chan byte, 1024)

	done := make(chan struct{})
	go func() {
		handler.Scanner.HandleFrames(byteChan, handler.FrameChan)
		close(done)
	}()

	rr := NewRetryReader(reader, handler.RetryIntervalOnEOF, handler.EOFTimeout)
	buf := make([]byte, 4096)
	var err error
	for {
		var n int
		n, err = rr.Read(buf)
		for _, b := range buf[:n] {
			byteChan <- b
		}
		if err != nil {
			break
		}
	}

	// Let the scanner drain the channel and close the frame channel.
	close(byteChan)
	<-done
	if err != io.EOF {
		handler.logger.Warn("reading L6 input", "error", err)
	}
	return err
}
