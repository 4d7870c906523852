package transform

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jsphweid/sebastian/model"
	"github.com/jsphweid/sebastian/sequence"
	"github.com/jsphweid/sebastian/util"
)

var ErrUnsupportedDuration = errors.New("duration has no lilypond token")

// semitone above C for each natural letter, indexed by pitch mod 7
var naturalSemitones = [7]int{2, 9, 4, 11, 5, 0, 7}

func MidiPitchPoint(spelling Spelling) PointFunc {
	return func(p model.Point) (model.Point, error) {
		octave, err := p.RequireInt(model.Octave)
		if err != nil {
			return nil, err
		}
		pitch, err := p.RequireInt(model.Pitch)
		if err != nil {
			return nil, err
		}
		midiPitch := naturalSemitones[util.FloorMod(pitch, 7)]
		midiPitch += spelling.Modifiers(pitch)
		midiPitch += 12 * octave
		p[model.MidiPitch] = midiPitch
		return p, nil
	}
}

// MidiPitch computes midi_pitch from pitch and octave.
func MidiPitch(spelling Spelling) sequence.Transform {
	return Lift(MidiPitchPoint(spelling))
}

func LilypondPoint(spelling Spelling) PointFunc {
	return func(p model.Point) (model.Point, error) {
		if p.Has(model.Lilypond) {
			return p, nil
		}
		octave, err := p.RequireInt(model.Octave)
		if err != nil {
			return nil, err
		}
		pitch, err := p.RequireInt(model.Pitch)
		if err != nil {
			return nil, err
		}
		duration, err := p.RequireInt(model.Duration)
		if err != nil {
			return nil, err
		}
		if duration <= 0 || 64%duration != 0 {
			return nil, fmt.Errorf("%w: %d", ErrUnsupportedDuration, duration)
		}

		var octaveString string
		switch {
		case octave > 4:
			octaveString = strings.Repeat("'", octave-4)
		case octave < 4:
			octaveString = strings.Repeat(",", 4-octave)
		}

		var modifierString string
		switch m := spelling.Modifiers(pitch); {
		case m > 0:
			modifierString = strings.Repeat("is", m)
		case m < 0:
			modifierString = strings.Repeat("es", -m)
		}

		p[model.Lilypond] = strings.ToLower(spelling.Letter(pitch)) +
			modifierString + octaveString + strconv.Itoa(64/duration)
		return p, nil
	}
}

// Lilypond renders each point to a note token such as "fis'8". Points that
// already carry a token keep it.
func Lilypond(spelling Spelling) sequence.Transform {
	return Lift(LilypondPoint(spelling))
}
