package transform

import (
	"github.com/jsphweid/sebastian/model"
	"github.com/jsphweid/sebastian/sequence"
)

var anchor = model.Point{model.Offset: 0}

// Reverse mirrors the sequence in time. Leading silence in the input ends
// up as trailing silence, which is what the zero-length anchor is for.
func Reverse() sequence.Transform {
	return func(s sequence.OSequence) (sequence.OSequence, error) {
		lastOffset := s.NextOffset()

		old := s
		if len(s) > 0 {
			first, err := s[0].RequireInt(model.Offset)
			if err != nil {
				return nil, err
			}
			if first != 0 {
				old = sequence.New(anchor).Concat(s)
			}
		}

		res := make(sequence.OSequence, 0, len(old))
		for _, p := range old {
			offset, err := p.RequireInt(model.Offset)
			if err != nil {
				return nil, err
			}
			np := p.Clone()
			np[model.Offset] = lastOffset - offset - p.IntOr(model.Duration, 0)
			if np.Equal(anchor) {
				continue
			}
			res = append(res, np)
		}
		sequence.SortByOffset(res)
		return res, nil
	}
}
