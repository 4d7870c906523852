package cmd

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jsphweid/sebastian/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleTransform(t *testing.T) {
	body := strings.NewReader(`{
		"points": [{"offset": 0, "duration": 4}, {"offset": 4, "duration": 2}],
		"steps": ["reverse", {"dynamics": ["p", "f"]}]
	}`)
	req := httptest.NewRequest(http.MethodPost, "/transform", body)
	w := httptest.NewRecorder()
	HandleTransform(w, req)

	resp := w.Result()
	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	var res model.TransformResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	require.Len(t, res.Points, 2)
	assert.Equal(float64(0), res.Points[0][model.Offset])
	assert.Equal(float64(2), res.Points[0][model.Duration])
	assert.Equal(float64(48), res.Points[0][model.Velocity])
	assert.Equal(float64(84), res.Points[1][model.Velocity])
}

func TestHandleTransformErrors(t *testing.T) {
	cases := []string{
		`not json`,
		`{"points": [{"offset": 0}], "steps": [{"dynamics": "xx"}]}`,
		`{"points": [], "steps": ["shuffle"]}`,
	}
	for _, c := range cases {
		req := httptest.NewRequest(http.MethodPost, "/transform", strings.NewReader(c))
		w := httptest.NewRecorder()
		HandleTransform(w, req)

		resp := w.Result()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, c)
		var res model.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
		assert.NotEmpty(t, res.Error)
	}
}

func TestRouterServesLilypond(t *testing.T) {
	server := httptest.NewServer(NewRouter())
	defer server.Close()

	body := strings.NewReader(`{
		"key": {"tonic": "F", "scale": "major"},
		"points": [{"offset": 0, "duration": 16, "degree": 4, "octave": 5}],
		"steps": ["degree_in_key"]
	}`)
	resp, err := http.Post(server.URL+"/lilypond", "application/json", body)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "bes'4\n", string(data))

	resp, err = http.Get(server.URL + "/transform")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}
