package has

import (
	"errors"
	"log/slog"
)

// ErrUnsupportedMessageType is returned by PageStore.Add for a page whose
// message type isn't 1.
var ErrUnsupportedMessageType = errors.New("unsupported HAS message type")

// PageStore collects the pages of one HAS message at a time.
//
// Pages are stored by page ID until there are as many as the message size,
// then the message is recovered and storing stops, so the rest of the pages
// for that message are ignored.  A page with a different message ID starts
// a new message.  It's not safe for concurrent use.
type PageStore struct {
	logger *slog.Logger

	// haveMID is false until the first page arrives.
	haveMID bool
	mid     uint
	storing bool
	pages   map[uint][]byte
}

// NewPageStore creates a PageStore.  If logger is nil the default logger
// is used.
func NewPageStore(logger *slog.Logger) *PageStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &PageStore{logger: logger, storing: true, pages: make(map[uint][]byte)}
}

// MessageID returns the ID of the message being collected.
func (s *PageStore) MessageID() uint {
	return s.mid
}

// Len returns the number of pages stored.
func (s *PageStore) Len() int {
	return len(s.pages)
}

// Storing is true if the store is accepting pages.
func (s *PageStore) Storing() bool {
	return s.storing
}

// clear drops the stored pages.
func (s *PageStore) clear() {
	s.pages = make(map[uint][]byte)
}

// Add adds a page.  When the page completes a message it returns the
// recovered message, otherwise nil.  If the message can't be recovered the
// stored pages are dropped and the error is returned.  No more pages are
// accepted until the message ID changes, whether recovery worked or not.
func (s *PageStore) Add(page *Page) ([]byte, error) {
	if !s.haveMID || page.MessageID != s.mid {
		if s.haveMID {
			s.logger.Debug("new HAS message", "mid", page.MessageID, "previous", s.mid, "pages", len(s.pages))
		}
		s.haveMID = true
		s.mid = page.MessageID
		s.storing = true
		s.clear()
	}

	if page.MessageType != SupportedMessageType {
		return nil, ErrUnsupportedMessageType
	}

	if !s.storing {
		return nil, nil
	}

	if _, ok := s.pages[page.PageID]; !ok && len(s.pages) >= MaxMessageSize {
		s.logger.Warn("too many HAS pages, dropping the store", "mid", s.mid)
		s.clear()
	}
	s.pages[page.PageID] = page.Payload

	if len(s.pages) < int(page.MessageSize) {
		return nil, nil
	}

	s.storing = false
	message, err := Recover(int(page.MessageSize), s.pages)
	if err != nil {
		s.logger.Warn("HAS message recovery failed", "mid", s.mid, "ms", page.MessageSize, "error", err)
		s.clear()
		return nil, err
	}
	s.logger.Debug("HAS message recovered", "mid", s.mid, "ms", page.MessageSize)
	return message, nil
}
