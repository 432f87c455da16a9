package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/d4j3y2k/keyboy/cmd"
	"github.com/d4j3y2k/keyboy/model"
	"github.com/stretchr/testify/assert"
)

func createAnalyzeReqBody(notes model.Notes) io.Reader {
	ar := model.AnalyzeRequestBody{Notes: notes}
	data, err := json.Marshal(ar)
	if err != nil {
		panic(err.Error())
	}
	return bytes.NewReader(data)
}

func postAnalyze(notes model.Notes) *http.Response {
	req := httptest.NewRequest(http.MethodPost, "/analyze", createAnalyzeReqBody(notes))
	w := httptest.NewRecorder()
	cmd.HandleAnalyze(w, req)
	return w.Result()
}

func TestBasicCChordE2E(t *testing.T) {
	resp := postAnalyze([]uint8{60, 64, 67})
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(resp.StatusCode, 200)

	var analysis model.ChordAnalysis
	err := json.Unmarshal(respBody, &analysis)
	if err != nil {
		panic(err.Error())
	}

	assert.Equal("C", analysis.Root)
	assert.Equal("", analysis.Quality)
	assert.Equal("C", analysis.Display)
	assert.Equal([]int{0, 4, 7}, analysis.Intervals)
}

func TestInversionE2E(t *testing.T) {
	resp := postAnalyze([]uint8{64, 67, 71, 72})
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(resp.StatusCode, 200)

	var analysis model.ChordAnalysis
	err := json.Unmarshal(respBody, &analysis)
	if err != nil {
		panic(err.Error())
	}

	assert.Equal("C", analysis.Root)
	assert.Equal("Maj7", analysis.Quality)
	assert.Equal("E", analysis.Bass)
	assert.True(strings.HasSuffix(analysis.Display, "/E"))
}

func TestEmptyNotesE2E(t *testing.T) {
	resp := postAnalyze(nil)

	assert := assert.New(t)
	assert.Equal(resp.StatusCode, 400)
}

func TestMalformedBodyE2E(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader("{not json"))
	w := httptest.NewRecorder()
	cmd.HandleAnalyze(w, req)

	assert.Equal(t, w.Result().StatusCode, 400)
}
