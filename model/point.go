package model

import (
	"errors"
	"fmt"
	"math"
	"reflect"
)

// Attribute keys understood by the transforms. Anything else is opaque.
const (
	Offset    = "offset"
	Duration  = "duration"
	Pitch     = "pitch"
	Octave    = "octave"
	Degree    = "degree"
	MidiPitch = "midi_pitch"
	Velocity  = "velocity"
	Lilypond  = "lilypond"
)

var (
	ErrMissingAttribute = errors.New("missing attribute")
	ErrAttributeType    = errors.New("attribute is not an integer")
)

type AttributeError struct {
	Key string
	Err error
}

func (e *AttributeError) Error() string {
	return fmt.Sprintf("%v: %q", e.Err, e.Key)
}

func (e *AttributeError) Unwrap() error {
	return e.Err
}

// Point is one musical event. Offsets and durations are in 64th notes.
type Point map[string]any

func (p Point) Has(key string) bool {
	_, ok := p[key]
	return ok
}

func (p Point) Get(key string, def any) any {
	if v, ok := p[key]; ok {
		return v
	}
	return def
}

// Int reports the value under key as an int. ok is false when the key is
// absent or holds something that isn't a whole number.
func (p Point) Int(key string) (int, bool) {
	v, ok := p[key]
	if !ok {
		return 0, false
	}
	return AsInt(v)
}

func (p Point) IntOr(key string, def int) int {
	if v, ok := p.Int(key); ok {
		return v
	}
	return def
}

func (p Point) RequireInt(key string) (int, error) {
	v, ok := p[key]
	if !ok {
		return 0, &AttributeError{Key: key, Err: ErrMissingAttribute}
	}
	i, ok := AsInt(v)
	if !ok {
		return 0, &AttributeError{Key: key, Err: ErrAttributeType}
	}
	return i, nil
}

func (p Point) Clone() Point {
	res := make(Point, len(p))
	for k, v := range p {
		res[k] = v
	}
	return res
}

func (p Point) Equal(other Point) bool {
	if len(p) != len(other) {
		return false
	}
	for k, v := range p {
		ov, ok := other[k]
		if !ok || !reflect.DeepEqual(v, ov) {
			return false
		}
	}
	return true
}

// Normalize rewrites whole numbers of any numeric type to int, in place.
// Decoders hand back float64, int64 or uint64 depending on the format.
func Normalize(p Point) Point {
	for k, v := range p {
		if i, ok := AsInt(v); ok {
			p[k] = i
		}
	}
	return p
}

// AsInt accepts any numeric type holding a whole number.
func AsInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint:
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case uint64:
		if n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case float32:
		return wholeFloat(float64(n))
	case float64:
		return wholeFloat(n)
	}
	return 0, false
}

func wholeFloat(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}
