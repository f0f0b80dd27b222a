package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-ranker/internal/embedding"
	"github.com/jonathan/resume-ranker/internal/ranking"
	"github.com/jonathan/resume-ranker/internal/skills"
	"github.com/jonathan/resume-ranker/internal/types"
)

// stubEmbedder returns uniform vectors, or fails every call.
type stubEmbedder struct {
	err error
}

func (s *stubEmbedder) Encode(_ context.Context, texts []string) ([][]float64, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([][]float64, len(texts))
	for i := range texts {
		out[i] = []float64{1, 0}
	}
	return out, nil
}

func newTestServer(t *testing.T, emb embedding.Embedder) *Server {
	t.Helper()
	index := skills.Build([]string{"Python", "SQL"}, nil)
	engine := ranking.NewEngine(index, emb)

	srv, err := New(Config{Port: 0}, index, engine)
	require.NoError(t, err)
	return srv
}

func doJSON(t *testing.T, srv *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(t, &stubEmbedder{})

	rec := doJSON(t, srv, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHandleRank_JSON(t *testing.T) {
	srv := newTestServer(t, &stubEmbedder{})

	rec := doJSON(t, srv, http.MethodPost, "/rank", types.RankRequest{
		JobDescription: "Looking for Python and SQL",
		CandidateIDs:   []string{"strong.txt", "weak.txt"},
		ResumeTexts:    []string{"Python and SQL developer", "No relevant skills"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp RankResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, []string{"Python", "SQL"}, resp.RequiredSkills)
	require.Len(t, resp.Results, 2)
	assert.Equal(t, "strong.txt", resp.Results[0].CandidateID)
	assert.Len(t, resp.Explanations, 2)
	assert.Contains(t, resp.Explanations[0], "Similarity to Job Description:")
	// No database configured, so no run is recorded.
	assert.Empty(t, resp.RunID)
}

func TestHandleRank_Multipart(t *testing.T) {
	srv := newTestServer(t, &stubEmbedder{})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("job_description", "Python engineer"))
	fw, err := mw.CreateFormFile("resumes", "jane.txt")
	require.NoError(t, err)
	_, err = fw.Write([]byte("Python developer with SQL"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/rank", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp RankResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "jane.txt", resp.Results[0].CandidateID)
	assert.Equal(t, []string{"Python", "SQL"}, resp.Results[0].SkillsFound)
}

func TestHandleRank_MissingJobDescription(t *testing.T) {
	srv := newTestServer(t, &stubEmbedder{})

	rec := doJSON(t, srv, http.MethodPost, "/rank", types.RankRequest{
		CandidateIDs: []string{"a.txt"},
		ResumeTexts:  []string{"text"},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "job_description")
}

func TestHandleRank_MissingResumes(t *testing.T) {
	srv := newTestServer(t, &stubEmbedder{})

	rec := doJSON(t, srv, http.MethodPost, "/rank", types.RankRequest{
		JobDescription: "Python engineer",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "resumes")
}

func TestHandleRank_InvalidBody(t *testing.T) {
	srv := newTestServer(t, &stubEmbedder{})

	req := httptest.NewRequest(http.MethodPost, "/rank", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleRank_EmbedderFailure(t *testing.T) {
	srv := newTestServer(t, &stubEmbedder{
		err: &embedding.EncodeError{Backend: "stub", Cause: errors.New("quota exceeded")},
	})

	rec := doJSON(t, srv, http.MethodPost, "/rank", types.RankRequest{
		JobDescription: "Python engineer",
		CandidateIDs:   []string{"a.txt"},
		ResumeTexts:    []string{"Python developer"},
	})
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestRuns_NotImplementedWithoutDatabase(t *testing.T) {
	srv := newTestServer(t, &stubEmbedder{})

	rec := doJSON(t, srv, http.MethodGet, "/runs", nil)
	assert.Equal(t, http.StatusNotImplemented, rec.Code)

	rec = doJSON(t, srv, http.MethodGet, "/runs/3f2a8a70-1111-4c7e-9f4e-000000000000", nil)
	assert.Equal(t, http.StatusNotImplemented, rec.Code)
}
