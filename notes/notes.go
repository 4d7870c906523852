// Package notes spells pitches and resolves scale degrees.
//
// Pitches are numbered along the line of fifths with D at 0: G is -1,
// A is 1, F# is 4, Bb is -4 and so on. Seven steps along the line is one
// sharp, so the letter repeats every 7 and the accidental count is
// floor((pitch+3)/7).
package notes

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsphweid/sebastian/util"
)

var (
	ErrInvalidDegree = errors.New("invalid scale degree")
	ErrUnknownNote   = errors.New("unknown note name")
	ErrUnknownScale  = errors.New("unknown scale")
)

const letters = "DAEBFCG"

// Fifths is the line-of-fifths spelling described in the package doc.
type Fifths struct{}

func (Fifths) Letter(pitch int) string {
	return string(letters[util.FloorMod(pitch, 7)])
}

func (Fifths) Modifiers(pitch int) int {
	return util.FloorDiv(pitch+3, 7)
}

// Parse reads names like "C", "f#", "Bb" or "Ebb".
func Parse(name string) (int, error) {
	if name == "" {
		return 0, fmt.Errorf("%w: empty", ErrUnknownNote)
	}
	idx := strings.IndexByte(letters, strings.ToUpper(name[:1])[0])
	if idx < 0 {
		return 0, fmt.Errorf("%w: %q", ErrUnknownNote, name)
	}
	// letters wraps D A E B F C G; F..B is the natural range -3..3
	pitch := idx
	if pitch > 3 {
		pitch -= 7
	}
	for _, r := range name[1:] {
		switch r {
		case '#':
			pitch += 7
		case 'b':
			pitch -= 7
		default:
			return 0, fmt.Errorf("%w: %q", ErrUnknownNote, name)
		}
	}
	return pitch, nil
}

func Name(pitch int) string {
	var f Fifths
	m := f.Modifiers(pitch)
	switch {
	case m > 0:
		return f.Letter(pitch) + strings.Repeat("#", m)
	case m < 0:
		return f.Letter(pitch) + strings.Repeat("b", -m)
	}
	return f.Letter(pitch)
}
