//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsphweid/sebastian/cmd"
	"github.com/jsphweid/sebastian/midi"
	"github.com/jsphweid/sebastian/model"
	"github.com/jsphweid/sebastian/sequence"
	"github.com/stretchr/testify/assert"
	"gitlab.com/gomidi/midi/v2/smf"
)

func createTransformReqBody(steps ...any) io.Reader {
	tr := model.TransformRequestBody{
		Key: &model.KeySpec{Tonic: "C", Scale: "major"},
		Points: []model.Point{
			{model.Offset: 0, model.Duration: 16, model.Degree: 1},
			{model.Offset: 16, model.Duration: 16, model.Degree: 2},
			{model.Offset: 32, model.Duration: 32, model.Degree: 3},
		},
		Steps: steps,
	}
	data, err := json.Marshal(tr)
	if err != nil {
		panic(err.Error())
	}
	return bytes.NewReader(data)
}

func postTransform(t *testing.T, body io.Reader) model.TransformResponse {
	req := httptest.NewRequest(http.MethodPost, "/transform", body)
	w := httptest.NewRecorder()
	cmd.HandleTransform(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	var res model.TransformResponse
	err := json.Unmarshal(respBody, &res)
	if err != nil {
		panic(err.Error())
	}
	for _, p := range res.Points {
		model.Normalize(p)
	}
	return res
}

func TestScaleToMidiE2E(t *testing.T) {
	res := postTransform(t, createTransformReqBody(
		map[string]any{"degree_in_key_with_octave": 5},
		"midi_pitch",
		"reverse",
		map[string]any{"dynamics": []any{"pp", "ff"}},
	))

	var buf bytes.Buffer
	err := midi.Write(&buf, sequence.New(res.Points...))
	if err != nil {
		panic(err.Error())
	}
	s, err := smf.ReadFrom(bytes.NewReader(buf.Bytes()))
	if err != nil {
		panic(err.Error())
	}
	seq, err := midi.ToSequence(s)
	if err != nil {
		panic(err.Error())
	}

	assert.Equal(t, []model.Point{
		{model.Offset: 0, model.Duration: 32, model.MidiPitch: 64, model.Velocity: 36},
		{model.Offset: 32, model.Duration: 16, model.MidiPitch: 62, model.Velocity: 65},
		{model.Offset: 48, model.Duration: 16, model.MidiPitch: 60, model.Velocity: 94},
	}, []model.Point(seq))
}

func TestScaleToLilypondE2E(t *testing.T) {
	res := postTransform(t, createTransformReqBody(
		map[string]any{"degree_in_key_with_octave": 3},
		map[string]any{"stretch": 0.5},
		"lilypond",
	))

	var tokens []any
	for _, p := range res.Points {
		tokens = append(tokens, p[model.Lilypond])
	}
	assert.Equal(t, []any{"c,8", "d,8", "e,4"}, tokens)
}
