// This is the core of the SSR programs.  It reads from an input file
// (typically either a file or a serial line connected to a receiver),
// decodes the corrections and hands them to the configured sinks.
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/dolmen-go/contextio"

	"github.com/goblimey/go-ssr/config"
	filehandler "github.com/goblimey/go-ssr/file_handler"
	"github.com/goblimey/go-ssr/ssr/correction"
	"github.com/goblimey/go-ssr/ssr/cssr"
	"github.com/goblimey/go-ssr/ssr/has"
	"github.com/goblimey/go-ssr/ssr/l6"
	"github.com/goblimey/go-ssr/ssr/metrics"
	"github.com/goblimey/go-ssr/ssr/reassembler"
	"github.com/goblimey/go-ssr/ssr/rtcm3"
	"github.com/goblimey/go-ssr/ssr/utils"
)

// Publisher sends decoded records somewhere.  *publish.Publisher is one.
type Publisher interface {
	PublishCSSR(source string, m *correction.Message) error
	PublishHAS(source string, m *has.Message) error
}

// Sinks are the places decoded data goes.  Any of them may be nil.
type Sinks struct {
	// RTCM receives each CSSR message framed as RTCM3.
	RTCM *rtcm3.Writer
	// Display receives the readable form of frames and messages.
	Display io.Writer
	// Publisher receives each decoded message.
	Publisher Publisher
	// Metrics counts frames, messages and errors.
	Metrics *metrics.Metrics
}

// AppCore drives the decoders.  It's not safe for concurrent use.
type AppCore struct {
	Conf  *config.Config
	Sinks Sinks

	logger      *slog.Logger
	reassembler *reassembler.Reassembler
	stream      *has.Stream
}

// New creates an AppCore.  If logger is nil the default logger is used.
func New(conf *config.Config, sinks Sinks, logger *slog.Logger) *AppCore {
	if logger == nil {
		logger = slog.Default()
	}
	return &AppCore{
		Conf:        conf,
		Sinks:       sinks,
		logger:      logger,
		reassembler: reassembler.New(cssr.New(logger), logger),
		stream:      has.NewStream(logger, conf.HAS.VerifyCRC),
	}
}

// Reassembler returns the CSSR reassembler.
func (appCore *AppCore) Reassembler() *reassembler.Reassembler {
	return appCore.reassembler
}

// Stream returns the HAS stream.
func (appCore *AppCore) Stream() *has.Stream {
	return appCore.stream
}

// HandleL6 repeatedly searches for and reads the input files given in the
// config and decodes the L6 frames in them.  If the config says to follow
// the input it runs until ctx is cancelled.  Otherwise it stops when the
// first input is exhausted.
func (appCore *AppCore) HandleL6(ctx context.Context) error {
	return appCore.handle(ctx, appCore.HandleL6UntilEOF)
}

// HandleHAS is HandleL6 for Galileo E6B input.
func (appCore *AppCore) HandleHAS(ctx context.Context) error {
	return appCore.handle(ctx, appCore.HandleHASUntilEOF)
}

// handle finds and consumes input files.  When one is exhausted it
// searches for the next one and opens it.
//
// This copes with a receiver that occasionally drops out of service and
// then comes back.  If the device is connected over serial USB, its device
// name may be different each time.  The config should list all of them.
func (appCore *AppCore) handle(ctx context.Context, untilEOF func(io.Reader) error) error {
	for {
		reader, err := appCore.Conf.WaitAndConnectToInput(ctx, appCore.logger)
		if err != nil {
			return err
		}

		// Once ctx is cancelled reads fail.  Closing the reader unblocks a
		// read that is already waiting.
		stop := context.AfterFunc(ctx, func() { reader.Close() })
		err = untilEOF(contextio.NewReader(ctx, reader))
		stop()
		reader.Close()

		if ctx.Err() != nil {
			return ctx.Err()
		}
		if !appCore.Conf.Follow {
			return err
		}
		if err != nil {
			appCore.logger.Warn("input failed, searching again", "error", err)
		}
	}
}

// eofTimes returns the retry interval and the timeout for end of file.
func (appCore *AppCore) eofTimes() (time.Duration, time.Duration) {
	return time.Duration(appCore.Conf.WaitTimeOnEOF) * time.Millisecond,
		time.Duration(appCore.Conf.TimeoutOnEOF) * time.Second
}

// HandleL6UntilEOF reads L6 frames from the reader and processes them
// until the input runs out.  End of file is not an error.
func (appCore *AppCore) HandleL6UntilEOF(reader io.Reader) error {
	frameChan := make(chan l6.Frame)

	// The file handler closes the frame channel when it's finished.
	retryInterval, timeout := appCore.eofTimes()
	fh := filehandler.New(frameChan, retryInterval, timeout, appCore.logger)
	errChan := make(chan error, 1)
	go func() { errChan <- fh.Handle(reader) }()

	for frame := range frameChan {
		appCore.ProcessFrame(&frame)
	}

	err := <-errChan
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// ProcessFrame decodes an L6 frame and returns the CSSR messages that it
// completed.
func (appCore *AppCore) ProcessFrame(frame *l6.Frame) []*correction.Message {
	if appCore.Conf.PRN != 0 && frame.PRN != appCore.Conf.PRN {
		return nil
	}
	if appCore.Sinks.Metrics != nil {
		appCore.Sinks.Metrics.FrameRead(appCore.Conf.Source)
	}
	if appCore.Sinks.Display != nil {
		fmt.Fprintln(appCore.Sinks.Display, frame.String())
	}
	if !frame.IsCSSR() {
		return nil
	}

	data, nbits := frame.DataPart()
	messages, err := appCore.reassembler.Push(data, nbits, frame.SubframeIndicator)
	if err != nil {
		appCore.logger.Debug("CSSR decode failed", "prn", frame.PRN, "error", err)
		if appCore.Sinks.Metrics != nil {
			appCore.Sinks.Metrics.Error(appCore.Conf.Source, "decode")
		}
	}
	for _, m := range messages {
		appCore.emitCSSR(m)
	}
	return messages
}

func (appCore *AppCore) emitCSSR(m *correction.Message) {
	source := appCore.Conf.Source
	if appCore.Sinks.RTCM != nil {
		if err := appCore.Sinks.RTCM.WriteMessage(m); err != nil {
			appCore.logger.Error("writing RTCM", "error", err)
		}
	}
	if appCore.Sinks.Display != nil {
		fmt.Fprintln(appCore.Sinks.Display, m.String())
		if appCore.Conf.Statistics {
			stats := appCore.reassembler.Statistics()
			fmt.Fprintln(appCore.Sinks.Display, stats.String())
		}
	}
	if appCore.Sinks.Publisher != nil {
		if err := appCore.Sinks.Publisher.PublishCSSR(source, m); err != nil {
			appCore.logger.Warn("publishing CSSR message", "error", err)
		}
	}
	if appCore.Sinks.Metrics != nil {
		appCore.Sinks.Metrics.MessageDecoded(source, m.Record.Kind())
		appCore.Sinks.Metrics.ObserveStatistics(source, appCore.reassembler.Statistics())
	}
}

// HandleHASUntilEOF reads E6B data in the configured format and processes
// it until the input runs out.  End of file is not an error.
func (appCore *AppCore) HandleHASUntilEOF(reader io.Reader) error {
	retryInterval, timeout := appCore.eofTimes()
	rr := filehandler.NewRetryReader(reader, retryInterval, timeout)

	switch appCore.Conf.HAS.Format {
	case config.FormatBinary:
		return appCore.readRecords(rr, has.CNAVRecordBytes, func(record []byte) {
			page, err := has.ParseBinaryRecord(record)
			if err != nil {
				appCore.hasError(err)
				return
			}
			appCore.ProcessCNAV(page)
		})
	case config.FormatPage:
		return appCore.readRecords(rr, utils.HASPageBytes, func(record []byte) {
			appCore.ProcessHASPage(record)
		})
	default:
		scanner := bufio.NewScanner(rr)
		for scanner.Scan() {
			page, err := has.ParseCNAV(scanner.Text())
			if errors.Is(err, has.ErrNotCNAV) {
				// Other receiver output.
				continue
			}
			if err != nil {
				appCore.hasError(err)
				continue
			}
			appCore.ProcessCNAV(page)
		}
		return scanner.Err()
	}
}

// readRecords reads fixed-length records.  A partial record at the end of
// the input is dropped.
func (appCore *AppCore) readRecords(reader io.Reader, length int, process func([]byte)) error {
	record := make([]byte, length)
	for {
		_, err := io.ReadFull(reader, record)
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil
		}
		if err != nil {
			return err
		}
		process(record)
	}
}

// ProcessCNAV adds a C/NAV page to the HAS stream and returns the message
// it completed, if any.
func (appCore *AppCore) ProcessCNAV(page *has.CNAVPage) *has.Message {
	msg, err := appCore.stream.AddCNAV(page)
	return appCore.afterPage(msg, err)
}

// ProcessHASPage adds a bare HAS page to the HAS stream and returns the
// message it completed, if any.
func (appCore *AppCore) ProcessHASPage(raw []byte) *has.Message {
	msg, err := appCore.stream.AddPage(raw)
	return appCore.afterPage(msg, err)
}

func (appCore *AppCore) afterPage(msg *has.Message, err error) *has.Message {
	source := appCore.Conf.Source
	if appCore.Sinks.Metrics != nil {
		appCore.Sinks.Metrics.FrameRead(source)
		appCore.Sinks.Metrics.ObserveHAS(source, appCore.stream.Counts())
	}
	if err != nil {
		appCore.hasError(err)
		return nil
	}
	if msg == nil {
		return nil
	}

	if appCore.Sinks.Display != nil {
		fmt.Fprintln(appCore.Sinks.Display, msg.String())
		if appCore.Conf.Statistics {
			stats := appCore.stream.Decoder().Statistics()
			fmt.Fprintln(appCore.Sinks.Display, stats.String())
		}
	}
	if appCore.Sinks.Publisher != nil {
		if err := appCore.Sinks.Publisher.PublishHAS(source, msg); err != nil {
			appCore.logger.Warn("publishing HAS message", "error", err)
		}
	}
	if appCore.Sinks.Metrics != nil {
		appCore.Sinks.Metrics.MessageDecoded(source, msg.Kind())
		appCore.Sinks.Metrics.ObserveStatistics(source, appCore.stream.Decoder().Statistics())
	}
	return msg
}

func (appCore *AppCore) hasError(err error) {
	appCore.logger.Debug("E6B page rejected", "error", err)
	if appCore.Sinks.Metrics != nil {
		appCore.Sinks.Metrics.Error(appCore.Conf.Source, "has")
	}
}
