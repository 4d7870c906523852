package transform

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/jsphweid/sebastian/model"
	"github.com/jsphweid/sebastian/sequence"
	"github.com/jsphweid/sebastian/util"
)

var (
	ErrUnknownDynamic = errors.New("unknown dynamic")
	ErrVelocityRange  = errors.New("velocity out of range")
)

var markerVelocities = map[string]int{
	"pppppp": 10,
	"ppppp":  16,
	"pppp":   20,
	"ppp":    24,
	"pp":     36,
	"p":      48,
	"mp":     64,
	"mf":     74,
	"f":      84,
	"ff":     94,
	"fff":    114,
	"ffff":   127,
}

// Markers lists the dynamic markers from softest to loudest.
func Markers() []string {
	return util.SortedKeys(markerVelocities, func(a, b int) bool { return a < b })
}

type UnknownDynamicError struct {
	Marker string
	Valid  []string
}

func (e *UnknownDynamicError) Error() string {
	return fmt.Sprintf("%v: %q, must be one of %v", ErrUnknownDynamic, e.Marker, e.Valid)
}

func (e *UnknownDynamicError) Is(target error) bool {
	return target == ErrUnknownDynamic
}

// Dynamic is either a marker like "mf" or a literal velocity.
type Dynamic struct {
	marker   string
	velocity int
	literal  bool
}

func Marker(name string) Dynamic {
	return Dynamic{marker: name}
}

func Velocity(v int) Dynamic {
	return Dynamic{velocity: v, literal: true}
}

// ParseDynamic treats integers as velocities and anything else as a marker.
func ParseDynamic(s string) Dynamic {
	if v, err := strconv.Atoi(s); err == nil {
		return Velocity(v)
	}
	return Marker(s)
}

func (d Dynamic) String() string {
	if d.literal {
		return strconv.Itoa(d.velocity)
	}
	return d.marker
}

func (d Dynamic) resolve() (int, error) {
	if d.literal {
		if d.velocity < 0 || d.velocity > 127 {
			return 0, fmt.Errorf("%w: %d", ErrVelocityRange, d.velocity)
		}
		return d.velocity, nil
	}
	v, ok := markerVelocities[d.marker]
	if !ok {
		return 0, &UnknownDynamicError{Marker: d.marker, Valid: Markers()}
	}
	return v, nil
}

// Dynamics gives every point the same velocity.
func Dynamics(level Dynamic) sequence.Transform {
	return Ramp(level, level)
}

// Ramp moves velocity linearly from start on the first point to end on the
// last, flooring in between. A single point is copied without a velocity.
// The input is not modified.
func Ramp(start, end Dynamic) sequence.Transform {
	return func(s sequence.OSequence) (sequence.OSequence, error) {
		startVelocity, err := start.resolve()
		if err != nil {
			return nil, err
		}
		endVelocity, err := end.resolve()
		if err != nil {
			return nil, err
		}

		res := s.Clone()
		n := len(res)
		if n <= 1 {
			return res, nil
		}

		for pos, p := range res {
			scaled := startVelocity*(n-1) + pos*(endVelocity-startVelocity)
			p[model.Velocity] = util.FloorDiv(scaled, n-1)
		}
		return res, nil
	}
}
