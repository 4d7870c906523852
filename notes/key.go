package notes

import (
	"fmt"
	"strings"
)

// Scales are offsets along the line of fifths from the tonic, one per degree.
var (
	Major = []int{0, 2, 4, -1, 1, 3, 5}
	Minor = []int{0, 2, -3, -1, 1, -4, -2}
)

var scales = map[string][]int{
	"major": Major,
	"minor": Minor,
}

type Key struct {
	Tonic int
	Scale []int
}

func NewKey(tonic int, scale []int) Key {
	return Key{Tonic: tonic, Scale: scale}
}

// ParseKey builds a key from a tonic name and a scale name, e.g. "Bb", "major".
func ParseKey(tonic, scale string) (Key, error) {
	t, err := Parse(tonic)
	if err != nil {
		return Key{}, err
	}
	s, ok := scales[strings.ToLower(scale)]
	if !ok {
		return Key{}, fmt.Errorf("%w: %q", ErrUnknownScale, scale)
	}
	return NewKey(t, s), nil
}

func (k Key) DegreeToPitch(degree int) (int, error) {
	pitch, _, err := k.DegreeToPitchAndOctave(degree)
	return pitch, err
}

// DegreeToPitchAndOctave counts degree 1 as the tonic. Degrees past the
// end of the scale wrap and report how many octaves they climbed.
func (k Key) DegreeToPitchAndOctave(degree int) (int, int, error) {
	if len(k.Scale) == 0 {
		return 0, 0, fmt.Errorf("%w: key has no scale", ErrInvalidDegree)
	}
	if degree < 1 {
		return 0, 0, fmt.Errorf("%w: %d", ErrInvalidDegree, degree)
	}
	octave, idx := (degree-1)/len(k.Scale), (degree-1)%len(k.Scale)
	return k.Tonic + k.Scale[idx], octave, nil
}
