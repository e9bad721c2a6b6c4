package has

import (
	"errors"
	"log/slog"
)

// Counts are the running totals kept by a Stream.
type Counts struct {
	// Pages counts the pages offered, dummies included.
	Pages uint64
	// DummyPages counts pages that carried no data.
	DummyPages uint64
	// BadPages counts pages with a malformed header or an unsupported
	// message type.
	BadPages uint64
	// CRCErrors counts C/NAV pages that failed the CRC check.
	CRCErrors uint64
	// Recovered counts messages rebuilt from their pages.
	Recovered uint64
	// RecoveryFailures counts messages whose pages couldn't be decoded.
	RecoveryFailures uint64
	// DecodeErrors counts recovered messages that failed to decode.
	DecodeErrors uint64
}

// Stream turns a stream of E6B pages into HAS messages.  It owns a
// PageStore and a Decoder.  Each input stream needs its own Stream.  It's
// not safe for concurrent use.
type Stream struct {
	store     *PageStore
	decoder   *Decoder
	logger    *slog.Logger
	verifyCRC bool
	counts    Counts
}

// NewStream creates a Stream.  If verifyCRC is true the CRC of each C/NAV
// page is checked.  If logger is nil the default logger is used.
func NewStream(logger *slog.Logger, verifyCRC bool) *Stream {
	if logger == nil {
		logger = slog.Default()
	}
	return &Stream{
		store:     NewPageStore(logger),
		decoder:   NewDecoder(logger),
		logger:    logger,
		verifyCRC: verifyCRC,
	}
}

// Counts returns the running totals.
func (s *Stream) Counts() Counts {
	return s.counts
}

// Decoder returns the message decoder.
func (s *Stream) Decoder() *Decoder {
	return s.decoder
}

// Store returns the page store.
func (s *Stream) Store() *PageStore {
	return s.store
}

// AddCNAV adds a C/NAV page.  It returns a message if the page completed
// one, otherwise nil.
func (s *Stream) AddCNAV(p *CNAVPage) (*Message, error) {
	if s.verifyCRC {
		if err := p.CheckCRC(); err != nil {
			s.counts.Pages++
			s.counts.CRCErrors++
			s.logger.Debug("dropping E6B page", "satellite", p.SatelliteID, "error", err)
			return nil, err
		}
	}
	raw, err := p.HASPage()
	if err != nil {
		s.counts.Pages++
		s.counts.BadPages++
		return nil, err
	}
	return s.AddPage(raw)
}

// AddPage adds a 56-byte HAS page.  It returns a message if the page
// completed one, otherwise nil.  Dummy pages are dropped without an error.
func (s *Stream) AddPage(raw []byte) (*Message, error) {
	s.counts.Pages++

	page, err := ParsePage(raw)
	if err != nil {
		if errors.Is(err, ErrDummyPage) {
			s.counts.DummyPages++
			return nil, nil
		}
		s.counts.BadPages++
		return nil, err
	}

	recovered, err := s.store.Add(page)
	if err != nil {
		if errors.Is(err, ErrMatrixNotInvertible) {
			s.counts.RecoveryFailures++
		} else {
			s.counts.BadPages++
		}
		return nil, err
	}
	if recovered == nil {
		return nil, nil
	}
	s.counts.Recovered++

	msg, err := s.decoder.Decode(recovered)
	if err != nil {
		s.counts.DecodeErrors++
		s.logger.Warn("HAS message decode failed", "mid", page.MessageID, "error", err)
		return nil, err
	}
	return msg, nil
}
