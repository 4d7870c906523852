// Package transform holds the sequence transforms.
//
// Most transforms are written against a single point and lifted with Lift.
// Those point functions edit the point they are handed; Reverse and the
// dynamics transforms work on the whole sequence and copy.
package transform

import (
	"github.com/jsphweid/sebastian/model"
	"github.com/jsphweid/sebastian/sequence"
)

type PointFunc func(model.Point) (model.Point, error)

// Lift applies f to every point in order and collects the results into a
// new sequence. It never moves points; f owns offsets.
func Lift(f PointFunc) sequence.Transform {
	return func(s sequence.OSequence) (sequence.OSequence, error) {
		res := make(sequence.OSequence, 0, len(s))
		for _, p := range s {
			np, err := f(p)
			if err != nil {
				return nil, err
			}
			res = append(res, np)
		}
		return res, nil
	}
}

// Key resolves a scale degree to a pitch.
type Key interface {
	DegreeToPitch(degree int) (int, error)
}

type OctaveKey interface {
	DegreeToPitchAndOctave(degree int) (pitch int, octave int, err error)
}

// Spelling names pitches: a letter plus a signed count of sharps.
type Spelling interface {
	Letter(pitch int) string
	Modifiers(pitch int) int
}
