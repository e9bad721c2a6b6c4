package l6

import (
	"errors"
	"log/slog"

	"github.com/goblimey/go-ssr/ssr/pushback"
	"github.com/goblimey/go-ssr/ssr/utils"
)

// syncWord is the frame preamble as bytes.
var syncWord = [4]byte{0x1a, 0xcf, 0xfc, 0x1d}

// The QZSS satellites use PRNs 193 to 211 on L6.
const (
	MinPRN = 193
	MaxPRN = 211
)

// Scanner finds L6 frames in a byte stream.
type Scanner struct {
	logger *slog.Logger
	// skipped counts the bytes discarded while hunting for a sync word.
	skipped uint64
	// truncated counts the frames cut short by the end of the input.
	truncated uint64
	// falseSyncs counts the sync words that were not the start of a frame.
	falseSyncs uint64
}

// NewScanner creates a Scanner.  If logger is nil the default logger is
// used.
func NewScanner(logger *slog.Logger) *Scanner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scanner{logger: logger}
}

// Skipped returns the number of bytes discarded so far because they were
// not part of a frame.
func (s *Scanner) Skipped() uint64 {
	return s.skipped
}

// Truncated returns the number of frames that were cut short by the end of
// the input.
func (s *Scanner) Truncated() uint64 {
	return s.truncated
}

// FalseSyncs returns the number of sync words found that were not the
// start of a frame.
func (s *Scanner) FalseSyncs() uint64 {
	return s.falseSyncs
}

// NextFrame gets the next frame from the byte channel.  The input may
// contain other data between frames, which is discarded.  When the input
// runs out it returns pushback.ErrDone.  A partial frame at the end of the
// input is discarded.
//
// A sync word can turn up by chance in other data.  If the PRN or the
// vendor of a candidate frame is not one that QZSS broadcasts, the bytes
// after the sync word are pushed back and the hunt goes on from there, so
// a real frame that starts inside the false one is still found.
func (s *Scanner) NextFrame(pc *pushback.ByteChannel) (*Frame, error) {
	for {
		frame, err := s.candidate(pc)
		if err != nil {
			return nil, err
		}
		if plausible(frame) {
			// This can't fail since the length and the sync word are right.
			return Parse(frame)
		}
		s.falseSyncs++
		s.logger.Debug("false L6 sync word", "prn", frame[4], "mtid", frame[5])
		s.skip(len(syncWord))
		pc.PushBack(frame[len(syncWord):]...)
	}
}

// candidate reads up to the next sync word and returns it with the bytes
// that follow it, a frame's worth in all.
func (s *Scanner) candidate(pc *pushback.ByteChannel) ([]byte, error) {
	// Eat bytes until the last four match the sync word.
	var window [4]byte
	n := 0
	for {
		b, err := pc.GetNextByte()
		if err != nil {
			s.skip(n)
			return nil, err
		}
		window[0], window[1], window[2], window[3] = window[1], window[2], window[3], b
		n++
		if n >= len(syncWord) && window == syncWord {
			break
		}
	}
	s.skip(n - len(syncWord))

	// Get the rest of the frame.
	frame := make([]byte, 0, utils.L6FrameLengthBytes)
	frame = append(frame, syncWord[:]...)
	for len(frame) < utils.L6FrameLengthBytes {
		b, err := pc.GetNextByte()
		if err != nil {
			s.truncated++
			s.logger.Debug("L6 frame cut short by end of input", "bytes", len(frame))
			return nil, err
		}
		frame = append(frame, b)
	}
	return frame, nil
}

// plausible returns true if the PRN and the vendor of a candidate frame are
// ones that QZSS broadcasts.
func plausible(frame []byte) bool {
	prn := uint(frame[4])
	if prn < MinPRN || prn > MaxPRN {
		return false
	}
	switch Vendor(frame[5] >> 5) {
	case VendorMADOCA, VendorMADOCAPPP, VendorQZNMA, VendorCLAS:
		return true
	default:
		return false
	}
}

// skip counts discarded bytes.
func (s *Scanner) skip(n int) {
	if n <= 0 {
		return
	}
	s.skipped += uint64(n)
	s.logger.Debug("discarded bytes while hunting for L6 sync", "bytes", n)
}

// HandleFrames reads bytes from ch_in, finds L6 frames and writes them to
// ch_out.  It closes ch_out when ch_in is closed and drained.  The caller is
// responsible for creating both channels and for closing ch_in.
func (s *Scanner) HandleFrames(ch_in chan byte, ch_out chan Frame) {
	pb := pushback.New(ch_in)

	for {
		frame, err := s.NextFrame(pb)
		if err != nil {
			if !errors.Is(err, pushback.ErrDone) {
				s.logger.Error("reading L6 input", "error", err)
			}
			close(ch_out)
			return
		}
		ch_out <- *frame
	}
}
