package transform

import (
	"github.com/jsphweid/sebastian/model"
	"github.com/jsphweid/sebastian/sequence"
)

func AddPoint(properties map[string]any) PointFunc {
	return func(p model.Point) (model.Point, error) {
		for k, v := range properties {
			p[k] = v
		}
		return p, nil
	}
}

// Add sets properties on every point, overwriting what was there.
func Add(properties map[string]any) sequence.Transform {
	return Lift(AddPoint(properties))
}

func DegreeInKeyPoint(key Key) PointFunc {
	return func(p model.Point) (model.Point, error) {
		degree, err := p.RequireInt(model.Degree)
		if err != nil {
			return nil, err
		}
		pitch, err := key.DegreeToPitch(degree)
		if err != nil {
			return nil, err
		}
		p[model.Pitch] = pitch
		return p, nil
	}
}

func DegreeInKey(key Key) sequence.Transform {
	return Lift(DegreeInKeyPoint(key))
}

func DegreeInKeyWithOctavePoint(key OctaveKey, baseOctave int) PointFunc {
	return func(p model.Point) (model.Point, error) {
		degree, err := p.RequireInt(model.Degree)
		if err != nil {
			return nil, err
		}
		pitch, octave, err := key.DegreeToPitchAndOctave(degree)
		if err != nil {
			return nil, err
		}
		p[model.Pitch] = pitch
		p[model.Octave] = octave + baseOctave
		return p, nil
	}
}

func DegreeInKeyWithOctave(key OctaveKey, baseOctave int) sequence.Transform {
	return Lift(DegreeInKeyWithOctavePoint(key, baseOctave))
}

func TransposePoint(semitones int) PointFunc {
	return func(p model.Point) (model.Point, error) {
		if midiPitch, ok := p.Int(model.MidiPitch); ok {
			p[model.MidiPitch] = midiPitch + semitones
		}
		return p, nil
	}
}

// Transpose shifts midi_pitch; points without one are left alone.
func Transpose(semitones int) sequence.Transform {
	return Lift(TransposePoint(semitones))
}

func StretchPoint(multiplier float64) PointFunc {
	return func(p model.Point) (model.Point, error) {
		offset, err := p.RequireInt(model.Offset)
		if err != nil {
			return nil, err
		}
		p[model.Offset] = int(float64(offset) * multiplier)
		if duration, ok := p.Int(model.Duration); ok {
			p[model.Duration] = int(float64(duration) * multiplier)
		}
		return p, nil
	}
}

// Stretch scales offsets and durations, truncating each toward zero.
func Stretch(multiplier float64) sequence.Transform {
	return Lift(StretchPoint(multiplier))
}

func InvertPoint(pivot int) PointFunc {
	return func(p model.Point) (model.Point, error) {
		if midiPitch, ok := p.Int(model.MidiPitch); ok {
			p[model.MidiPitch] = pivot - (midiPitch - pivot)
		}
		return p, nil
	}
}

// Invert mirrors midi_pitch around pivot.
func Invert(pivot int) sequence.Transform {
	return Lift(InvertPoint(pivot))
}
