package has

import (
	"errors"
	"fmt"
	"sort"

	"github.com/klauspost/reedsolomon"

	"github.com/goblimey/go-ssr/ssr/utils"
)

// ErrMatrixNotInvertible is returned by Recover when the pages can't be
// decoded, for example because some of them carry no information about the
// message.
var ErrMatrixNotInvertible = errors.New("HAS page matrix is not invertible")

// MaxMessageSize is the largest number of pages in a HAS message.
const MaxMessageSize = 32

// maxPageID is the largest page ID, the number of rows in the generator
// matrix.
const maxPageID = len(generatorMatrix)

// Recover rebuilds a message of ms rows from pages, which maps page IDs to
// page payloads.  At least ms pages are needed.  The result is the ms
// payload-sized rows of the message, concatenated.
//
// The HAS code is systematic: pages 1 to ms are the rows of the message and
// the others are combinations of them given by the generator matrix.  That
// matches the layout of a Reed-Solomon encoder with ms data shards and a
// parity matrix made from the generator rows after the first ms, so the
// reconstruction is done by such an encoder.
func Recover(ms int, pages map[uint][]byte) ([]byte, error) {
	if ms < 1 || ms > MaxMessageSize {
		return nil, fmt.Errorf("%w: message size %d", ErrMatrixNotInvertible, ms)
	}
	if len(pages) < ms {
		return nil, fmt.Errorf("%w: %d pages for message size %d", ErrMatrixNotInvertible, len(pages), ms)
	}

	// Use the lowest ms page IDs so that the result doesn't depend on map
	// order.
	ids := make([]uint, 0, len(pages))
	for id := range pages {
		if id < 1 || int(id) > maxPageID {
			return nil, fmt.Errorf("%w: page ID %d", ErrMalformedHeader, id)
		}
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	ids = ids[:ms]

	parityShards := maxPageID - ms
	matrix := make([][]byte, parityShards)
	for k := range matrix {
		matrix[k] = append([]byte(nil), generatorMatrix[ms+k][:ms]...)
	}

	enc, err := reedsolomon.New(ms, parityShards, reedsolomon.WithCustomMatrix(matrix))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMatrixNotInvertible, err)
	}

	shards := make([][]byte, maxPageID)
	for _, id := range ids {
		payload := pages[id]
		if len(payload) != utils.HASPayloadBytes {
			return nil, fmt.Errorf("%w: page %d payload is %d bytes", ErrMalformedHeader, id, len(payload))
		}
		shards[id-1] = append([]byte(nil), payload...)
	}

	if err := enc.ReconstructData(shards); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMatrixNotInvertible, err)
	}

	message := make([]byte, 0, ms*utils.HASPayloadBytes)
	for i := 0; i < ms; i++ {
		message = append(message, shards[i]...)
	}
	return message, nil
}
