// Package pipeline reads a document of points plus a list of transform steps
// and runs it. Steps are written as a bare name or a single-entry map:
//
//	key: {tonic: C, scale: major}
//	points:
//	  - {offset: 0, duration: 16, degree: 1}
//	steps:
//	  - degree_in_key_with_octave: 4
//	  - midi_pitch
//	  - dynamics: [p, f]
package pipeline

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/jsphweid/sebastian/model"
	"github.com/jsphweid/sebastian/notes"
	"github.com/jsphweid/sebastian/sequence"
	"github.com/jsphweid/sebastian/transform"
)

var (
	ErrUnknownStep = errors.New("unknown step")
	ErrBadArgument = errors.New("bad step argument")
	ErrNoKey       = errors.New("step needs a key")
)

// Env carries the collaborators steps may need.
type Env struct {
	Key      *notes.Key
	Spelling transform.Spelling
}

type Step struct {
	Name string
	Arg  any
}

func LoadFile(path string) (*model.TransformRequestBody, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read pipeline: %w", err)
	}
	return Parse(data)
}

// Parse accepts YAML or JSON.
func Parse(data []byte) (*model.TransformRequestBody, error) {
	var doc model.TransformRequestBody
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse pipeline: %w", err)
	}
	return &doc, nil
}

func Run(doc *model.TransformRequestBody) (sequence.OSequence, error) {
	env := Env{Spelling: notes.Fifths{}}
	if doc.Key != nil {
		key, err := notes.ParseKey(doc.Key.Tonic, doc.Key.Scale)
		if err != nil {
			return nil, err
		}
		env.Key = &key
	}

	steps, err := ParseSteps(doc.Steps)
	if err != nil {
		return nil, err
	}
	t, err := Compile(steps, env)
	if err != nil {
		return nil, err
	}

	s := make(sequence.OSequence, len(doc.Points))
	for i, p := range doc.Points {
		if p == nil {
			p = model.Point{}
		}
		s[i] = model.Normalize(p)
	}
	return s.Apply(t)
}

func ParseSteps(raw []any) ([]Step, error) {
	res := make([]Step, 0, len(raw))
	for i, r := range raw {
		switch v := r.(type) {
		case string:
			res = append(res, Step{Name: v})
		case map[string]any:
			if len(v) != 1 {
				return nil, fmt.Errorf("%w: step %d has %d entries", ErrBadArgument, i, len(v))
			}
			for name, arg := range v {
				res = append(res, Step{Name: name, Arg: arg})
			}
		default:
			return nil, fmt.Errorf("%w: step %d is a %T", ErrBadArgument, i, r)
		}
	}
	return res, nil
}

func Compile(steps []Step, env Env) (sequence.Transform, error) {
	transforms := make([]sequence.Transform, 0, len(steps))
	for _, step := range steps {
		t, err := compileStep(step, env)
		if err != nil {
			return nil, fmt.Errorf("step %q: %w", step.Name, err)
		}
		transforms = append(transforms, t)
	}
	return sequence.Pipe(transforms...), nil
}

func compileStep(step Step, env Env) (sequence.Transform, error) {
	switch step.Name {
	case "add":
		props, ok := step.Arg.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: want a map, got %T", ErrBadArgument, step.Arg)
		}
		return transform.Add(model.Normalize(props)), nil
	case "degree_in_key":
		if env.Key == nil {
			return nil, ErrNoKey
		}
		return transform.DegreeInKey(*env.Key), nil
	case "degree_in_key_with_octave":
		if env.Key == nil {
			return nil, ErrNoKey
		}
		base, err := intArg(step.Arg)
		if err != nil {
			return nil, err
		}
		return transform.DegreeInKeyWithOctave(*env.Key, base), nil
	case "transpose":
		n, err := intArg(step.Arg)
		if err != nil {
			return nil, err
		}
		return transform.Transpose(n), nil
	case "stretch":
		m, err := floatArg(step.Arg)
		if err != nil {
			return nil, err
		}
		return transform.Stretch(m), nil
	case "invert":
		pivot, err := intArg(step.Arg)
		if err != nil {
			return nil, err
		}
		return transform.Invert(pivot), nil
	case "reverse":
		return transform.Reverse(), nil
	case "midi_pitch":
		return transform.MidiPitch(env.Spelling), nil
	case "lilypond":
		return transform.Lilypond(env.Spelling), nil
	case "dynamics":
		return dynamicsStep(step.Arg)
	}
	return nil, ErrUnknownStep
}

func dynamicsStep(arg any) (sequence.Transform, error) {
	if list, ok := arg.([]any); ok {
		switch len(list) {
		case 1:
			arg = list[0]
		case 2:
			start, err := dynamicArg(list[0])
			if err != nil {
				return nil, err
			}
			end, err := dynamicArg(list[1])
			if err != nil {
				return nil, err
			}
			return transform.Ramp(start, end), nil
		default:
			return nil, fmt.Errorf("%w: dynamics takes 1 or 2 levels, got %d", ErrBadArgument, len(list))
		}
	}
	level, err := dynamicArg(arg)
	if err != nil {
		return nil, err
	}
	return transform.Dynamics(level), nil
}

func dynamicArg(arg any) (transform.Dynamic, error) {
	if s, ok := arg.(string); ok {
		return transform.Marker(s), nil
	}
	if v, ok := model.AsInt(arg); ok {
		return transform.Velocity(v), nil
	}
	return transform.Dynamic{}, fmt.Errorf("%w: want a marker or velocity, got %v", ErrBadArgument, arg)
}

func intArg(arg any) (int, error) {
	v, ok := model.AsInt(arg)
	if !ok {
		return 0, fmt.Errorf("%w: want an integer, got %v", ErrBadArgument, arg)
	}
	return v, nil
}

func floatArg(arg any) (float64, error) {
	switch v := arg.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	}
	if i, ok := model.AsInt(arg); ok {
		return float64(i), nil
	}
	return 0, fmt.Errorf("%w: want a number, got %v", ErrBadArgument, arg)
}
