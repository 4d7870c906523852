package sequence

import (
	"sort"

	"github.com/jsphweid/sebastian/model"
)

// OSequence is a list of points ordered by offset. Constructors do not
// sort; callers keep the order.
type OSequence []model.Point

// Transform maps a sequence to a new sequence.
type Transform func(OSequence) (OSequence, error)

func New(points ...model.Point) OSequence {
	res := make(OSequence, len(points))
	copy(res, points)
	return res
}

// NextOffset is where material appended after this sequence should start.
func (s OSequence) NextOffset() int {
	var res int
	for _, p := range s {
		offset, ok := p.Int(model.Offset)
		if !ok {
			continue
		}
		if end := offset + p.IntOr(model.Duration, 0); end > res {
			res = end
		}
	}
	return res
}

func (s OSequence) LastPoint() (model.Point, bool) {
	if len(s) == 0 {
		return nil, false
	}
	return s[len(s)-1], true
}

func (s OSequence) Clone() OSequence {
	res := make(OSequence, len(s))
	for i, p := range s {
		res[i] = p.Clone()
	}
	return res
}

func (s OSequence) Equal(other OSequence) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if !s[i].Equal(other[i]) {
			return false
		}
	}
	return true
}

// Concat plays other after s. other's points are copied and shifted by
// s.NextOffset(); points without an offset are copied as they are.
func (s OSequence) Concat(other OSequence) OSequence {
	shift := s.NextOffset()
	res := make(OSequence, 0, len(s)+len(other))
	res = append(res, s.Clone()...)
	for _, p := range other {
		c := p.Clone()
		if offset, ok := c.Int(model.Offset); ok {
			c[model.Offset] = offset + shift
		}
		res = append(res, c)
	}
	return res
}

// Append places p at the end of the sequence, ignoring any offset it had.
func (s OSequence) Append(p model.Point) OSequence {
	c := p.Clone()
	c[model.Offset] = s.NextOffset()
	return append(s.Clone(), c)
}

// Stack plays s and other at the same time.
func (s OSequence) Stack(other OSequence) OSequence {
	res := make(OSequence, 0, len(s)+len(other))
	res = append(res, s.Clone()...)
	res = append(res, other.Clone()...)
	SortByOffset(res)
	return res
}

func (s OSequence) Repeat(n int) OSequence {
	res := OSequence{}
	for i := 0; i < n; i++ {
		res = res.Concat(s)
	}
	return res
}

func (s OSequence) Apply(t Transform) (OSequence, error) {
	return t(s)
}

// Pipe runs the transforms left to right, stopping at the first error.
func Pipe(transforms ...Transform) Transform {
	return func(s OSequence) (OSequence, error) {
		var err error
		for _, t := range transforms {
			s, err = t(s)
			if err != nil {
				return nil, err
			}
		}
		return s, nil
	}
}

// SortByOffset is a stable sort; points without an offset sort as 0.
func SortByOffset(s OSequence) {
	sort.SliceStable(s, func(i, j int) bool {
		return s[i].IntOr(model.Offset, 0) < s[j].IntOr(model.Offset, 0)
	})
}
