package midi

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/jsphweid/sebastian/constants"
	"github.com/jsphweid/sebastian/model"
	"github.com/jsphweid/sebastian/sequence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/gomidi/midi/v2/smf"
)

func TestWriteAndReadBack(t *testing.T) {
	seq := sequence.New(
		model.Point{model.Offset: 0, model.Duration: 16, model.MidiPitch: 60, model.Velocity: 48},
		model.Point{model.Offset: 0, model.Duration: 32, model.MidiPitch: 64},
		model.Point{model.Offset: 16, model.Duration: 16},
		model.Point{model.Offset: 32, model.Duration: 8, model.MidiPitch: 60, model.Velocity: 100, "channel": 3},
	)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, seq))

	s, err := smf.ReadFrom(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	res, err := ToSequence(s)
	require.NoError(t, err)

	assert.Equal(t, []model.Point{
		{model.Offset: 0, model.Duration: 16, model.MidiPitch: 60, model.Velocity: 48},
		{model.Offset: 0, model.Duration: 32, model.MidiPitch: 64, model.Velocity: constants.DefaultVelocity},
		{model.Offset: 32, model.Duration: 8, model.MidiPitch: 60, model.Velocity: 100, "channel": 3},
	}, []model.Point(res))
}

func TestRepeatedNotesStaySeparate(t *testing.T) {
	seq := sequence.New(
		model.Point{model.Offset: 0, model.Duration: 4, model.MidiPitch: 62},
		model.Point{model.Offset: 4, model.Duration: 4, model.MidiPitch: 62},
	)

	path := filepath.Join(t.TempDir(), "repeat.mid")
	require.NoError(t, WriteFile(path, seq))

	s, err := ReadMidiFile(path)
	require.NoError(t, err)
	res, err := ToSequence(s)
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, 4, res[1][model.Offset])
	assert.Equal(t, 4, res[1][model.Duration])
}

func TestFromSequenceRejectsBadPoints(t *testing.T) {
	_, err := FromSequence(sequence.New(model.Point{model.Offset: 0, model.Duration: 4, model.MidiPitch: 128}))
	assert.Error(t, err)
	_, err = FromSequence(sequence.New(model.Point{model.Duration: 4, model.MidiPitch: 60}))
	assert.ErrorIs(t, err, model.ErrMissingAttribute)
	_, err = FromSequence(sequence.New(model.Point{model.Offset: 0, model.Duration: 4, model.MidiPitch: 60, model.Velocity: 0}))
	assert.Error(t, err)
}

func TestReadMidiFileMissing(t *testing.T) {
	_, err := ReadMidiFile(filepath.Join(t.TempDir(), "nope.mid"))
	assert.Error(t, err)
}
