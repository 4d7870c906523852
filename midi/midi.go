package midi

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/jsphweid/sebastian/constants"
	"github.com/jsphweid/sebastian/model"
	"github.com/jsphweid/sebastian/sequence"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

var ErrTimeFormat = errors.New("only metric time formats are supported")

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	var blank smf.SMF
	var err error

	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(filepath)

	if err != nil {
		errText := fmt.Sprintf("Error reading midi file... %s", err.Error())
		return &blank, errors.New(errText)
	}
	res, err := smf.ReadFrom(bytes.NewReader(dat))

	if err != nil {
		errText := fmt.Sprintf("Error parsing midi file... %s", err.Error())
		return &blank, errors.New(errText)
	}

	return res, nil
}

// 64th notes per quarter
const unitsPerQuarter = 16

type reducedEvent struct {
	ticks     int64
	isNoteOff bool
	channel   uint8
	key       uint8
	velocity  uint8
}

// ToSequence turns the notes of every track into points with offset,
// duration, midi_pitch and velocity. Notes still sounding at the end of a
// track are dropped.
func ToSequence(s *smf.SMF) (sequence.OSequence, error) {
	mt, ok := s.TimeFormat.(smf.MetricTicks)
	if !ok {
		return nil, ErrTimeFormat
	}
	resolution := int64(mt)

	var res sequence.OSequence
	for _, events := range s.Tracks {
		var absTicks int64
		var reduced []reducedEvent
		for _, event := range events {
			absTicks += int64(event.Delta)
			var channel, key, velocity uint8
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity):
				reduced = append(reduced, reducedEvent{
					ticks:     absTicks,
					isNoteOff: velocity == 0,
					channel:   channel,
					key:       key,
					velocity:  velocity,
				})
			case event.Message.GetNoteOff(&channel, &key, &velocity):
				reduced = append(reduced, reducedEvent{
					ticks:     absTicks,
					isNoteOff: true,
					channel:   channel,
					key:       key,
				})
			}
		}

		// key by channel and note so overlapping notes on different channels pair up
		pressed := make(map[uint16]reducedEvent)
		for _, evt := range reduced {
			id := uint16(evt.channel)<<8 | uint16(evt.key)
			start, held := pressed[id]
			if held {
				delete(pressed, id)
				res = append(res, notePoint(start, evt.ticks, resolution))
			}
			if !evt.isNoteOff {
				pressed[id] = evt
			}
		}
	}

	sort.SliceStable(res, func(i, j int) bool {
		oi, oj := res[i].IntOr(model.Offset, 0), res[j].IntOr(model.Offset, 0)
		if oi != oj {
			return oi < oj
		}
		return res[i].IntOr(model.MidiPitch, 0) < res[j].IntOr(model.MidiPitch, 0)
	})
	return res, nil
}

func notePoint(start reducedEvent, endTicks int64, resolution int64) model.Point {
	offset := int(start.ticks * unitsPerQuarter / resolution)
	end := int(endTicks * unitsPerQuarter / resolution)
	p := model.Point{
		model.Offset:    offset,
		model.Duration:  end - offset,
		model.MidiPitch: int(start.key),
		model.Velocity:  int(start.velocity),
	}
	if start.channel != 0 {
		p["channel"] = int(start.channel)
	}
	return p
}

type timedMessage struct {
	ticks     uint32
	isNoteOff bool
	msg       gomidi.Message
}

// FromSequence writes one track. Points without midi_pitch are rests.
func FromSequence(seq sequence.OSequence) (*smf.SMF, error) {
	ticksPerUnit := uint32(constants.TicksPerQuarter / unitsPerQuarter)

	var msgs []timedMessage
	for _, p := range seq {
		key, ok := p.Int(model.MidiPitch)
		if !ok {
			continue
		}
		if key < 0 || key > 127 {
			return nil, fmt.Errorf("midi_pitch %d out of range", key)
		}
		offset, err := p.RequireInt(model.Offset)
		if err != nil {
			return nil, err
		}
		if offset < 0 {
			return nil, fmt.Errorf("negative offset %d", offset)
		}
		duration := p.IntOr(model.Duration, 0)
		if duration <= 0 {
			continue
		}
		velocity := p.IntOr(model.Velocity, constants.DefaultVelocity)
		if velocity < 1 || velocity > 127 {
			return nil, fmt.Errorf("velocity %d out of range", velocity)
		}
		channel := uint8(p.IntOr("channel", 0) & 0x0f)

		start := uint32(offset) * ticksPerUnit
		msgs = append(msgs,
			timedMessage{ticks: start, msg: gomidi.NoteOn(channel, uint8(key), uint8(velocity))},
			timedMessage{ticks: start + uint32(duration)*ticksPerUnit, isNoteOff: true, msg: gomidi.NoteOff(channel, uint8(key))},
		)
	}

	// note offs first so repeated notes retrigger
	sort.SliceStable(msgs, func(i, j int) bool {
		if msgs[i].ticks != msgs[j].ticks {
			return msgs[i].ticks < msgs[j].ticks
		}
		return msgs[i].isNoteOff && !msgs[j].isNoteOff
	})

	var track smf.Track
	track.Add(0, smf.MetaTempo(constants.DefaultTempo))
	var last uint32
	for _, m := range msgs {
		track.Add(m.ticks-last, m.msg)
		last = m.ticks
	}
	track.Close(0)

	res := smf.New()
	res.TimeFormat = smf.MetricTicks(constants.TicksPerQuarter)
	if err := res.Add(track); err != nil {
		return nil, err
	}
	return res, nil
}

func Write(w io.Writer, seq sequence.OSequence) error {
	s, err := FromSequence(seq)
	if err != nil {
		return err
	}
	_, err = s.WriteTo(w)
	return err
}

func WriteFile(path string, seq sequence.OSequence) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create midi file: %w", err)
	}
	defer f.Close()
	return Write(f, seq)
}
