package correction

import (
	"encoding/json"
	"fmt"

	"github.com/goblimey/go-ssr/ssr/bitcursor"
)

// Value is a correction quantity: a raw integer times a scale factor, or
// unavailable if the raw integer was the field's reserved code.  The zero
// Value is unavailable.
type Value struct {
	raw   int64
	value float64
	valid bool
}

// Scaled returns raw * scale, or an unavailable Value if raw matches any of
// the sentinels.
func Scaled(raw int64, scale float64, sentinels ...int64) Value {
	for _, s := range sentinels {
		if raw == s {
			return Value{raw: raw}
		}
	}
	return Value{raw: raw, value: float64(raw) * scale, valid: true}
}

// Unavailable returns a Value marked not available.
func Unavailable() Value {
	return Value{}
}

// Available returns a valid Value holding v, for quantities that are
// computed rather than read.  Its raw value is zero.
func Available(v float64) Value {
	return Value{value: v, valid: true}
}

// Valid is true if the value is available.
func (v Value) Valid() bool {
	return v.valid
}

// Raw returns the raw integer from the message.
func (v Value) Raw() int64 {
	return v.raw
}

// Float returns the physical value and whether it's available.
func (v Value) Float() (float64, bool) {
	if !v.valid {
		return 0, false
	}
	return v.value, true
}

// String returns the value to four decimal places, or "n/a".
func (v Value) String() string {
	f, ok := v.Float()
	if !ok {
		return "n/a"
	}
	return fmt.Sprintf("%.4f", f)
}

// MarshalJSON renders the value as a number, or null if it's unavailable.
func (v Value) MarshalJSON() ([]byte, error) {
	f, ok := v.Float()
	if !ok {
		return []byte("null"), nil
	}
	return json.Marshal(f)
}

// ReadScaled reads a signed field of the given width and scales it.
func ReadScaled(c *bitcursor.Cursor, width uint, scale float64, sentinels ...int64) (Value, error) {
	raw, err := c.ReadInt(width)
	if err != nil {
		return Value{}, err
	}
	return Scaled(raw, scale, sentinels...), nil
}
