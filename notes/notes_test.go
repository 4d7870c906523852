package notes

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpelling(t *testing.T) {
	cases := []struct {
		pitch     int
		letter    string
		modifiers int
	}{
		{0, "D", 0},
		{-2, "C", 0},
		{-3, "F", 0},
		{3, "B", 0},
		{4, "F", 1},
		{5, "C", 1},
		{-4, "B", -1},
		{-11, "B", -2},
		{11, "F", 2},
	}
	var f Fifths
	for _, c := range cases {
		t.Run(fmt.Sprintf("pitch %v", c.pitch), func(t *testing.T) {
			assert.Equal(t, c.letter, f.Letter(c.pitch))
			assert.Equal(t, c.modifiers, f.Modifiers(c.pitch))
		})
	}
}

func TestParseAndName(t *testing.T) {
	for _, name := range []string{"C", "D", "F#", "Bb", "Ebb", "G##", "B"} {
		pitch, err := Parse(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, Name(pitch))
	}

	p, err := Parse("bb")
	require.NoError(t, err)
	assert.Equal(t, -4, p)

	_, err = Parse("H")
	assert.ErrorIs(t, err, ErrUnknownNote)
	_, err = Parse("C?")
	assert.ErrorIs(t, err, ErrUnknownNote)
	_, err = Parse("")
	assert.ErrorIs(t, err, ErrUnknownNote)
}

func TestMajorKey(t *testing.T) {
	key, err := ParseKey("C", "major")
	require.NoError(t, err)

	var names []string
	for degree := 1; degree <= 7; degree++ {
		p, err := key.DegreeToPitch(degree)
		require.NoError(t, err)
		names = append(names, Name(p))
	}
	assert.Equal(t, []string{"C", "D", "E", "F", "G", "A", "B"}, names)
}

func TestMinorKeyWithOctave(t *testing.T) {
	key, err := ParseKey("A", "Minor")
	require.NoError(t, err)

	pitch, octave, err := key.DegreeToPitchAndOctave(3)
	require.NoError(t, err)
	assert.Equal(t, "C", Name(pitch))
	assert.Equal(t, 0, octave)

	pitch, octave, err = key.DegreeToPitchAndOctave(15)
	require.NoError(t, err)
	assert.Equal(t, "A", Name(pitch))
	assert.Equal(t, 2, octave)
}

func TestKeyRejectsBadDegrees(t *testing.T) {
	key := NewKey(0, Major)
	_, err := key.DegreeToPitch(0)
	assert.ErrorIs(t, err, ErrInvalidDegree)

	_, _, err = Key{}.DegreeToPitchAndOctave(1)
	assert.ErrorIs(t, err, ErrInvalidDegree)

	_, err = ParseKey("C", "dorian")
	assert.ErrorIs(t, err, ErrUnknownScale)
}
