package server

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/resume-ranker/internal/db"
	"github.com/jonathan/resume-ranker/internal/profile"
	"github.com/jonathan/resume-ranker/internal/ranking"
	"github.com/jonathan/resume-ranker/internal/types"
)

// maxUploadBytes bounds a multipart rank request (job description plus all
// resume files).
const maxUploadBytes = 32 << 20

// RankResponse is the response body for POST /rank.
type RankResponse struct {
	RunID          string                `json:"run_id,omitempty"`
	RequiredSkills []string              `json:"required_skills"`
	Results        []types.RankingResult `json:"results"`
	Explanations   []string              `json:"explanations"`
}

// RunsResponse is the response body for GET /runs.
type RunsResponse struct {
	Runs []db.ScoringRun `json:"runs"`
}

// handleRank executes one full scoring run. The request is either a JSON
// RankRequest or a multipart form with a "job_description" field and one or
// more "resumes" files.
func (s *Server) handleRank(w http.ResponseWriter, r *http.Request) {
	req, err := decodeRankRequest(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	profiles, err := profile.ExtractAll(r.Context(), req.CandidateIDs, req.ResumeTexts, s.index)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "profile extraction failed: "+err.Error())
		return
	}

	ranked, err := s.engine.Rank(r.Context(), profiles, req.JobDescription)
	if err != nil {
		var missing *types.ErrMissingInput
		if errors.As(err, &missing) {
			s.errorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		// Embedding backend failure: the run is aborted, no partial ranking.
		s.errorResponse(w, http.StatusBadGateway, err.Error())
		return
	}

	resp := RankResponse{
		RequiredSkills: ranked.RequiredSkills,
		Results:        ranked.Results,
		Explanations:   make([]string, len(ranked.Results)),
	}
	for i := range ranked.Results {
		resp.Explanations[i] = ranking.Explain(&ranked.Results[i])
	}

	if s.database != nil {
		runID, err := s.database.CreateRun(r.Context(), req.JobDescription, len(profiles))
		if err != nil {
			log.Printf("Warning: failed to create database run: %v", err)
		} else {
			resp.RunID = runID.String()
			if err := s.database.SaveResults(r.Context(), runID, ranked); err != nil {
				log.Printf("Warning: failed to save results: %v", err)
				_ = s.database.CompleteRun(r.Context(), runID, db.StatusFailed)
			} else {
				_ = s.database.CompleteRun(r.Context(), runID, db.StatusCompleted)
			}
		}
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// decodeRankRequest reads either encoding of a scoring run request.
func decodeRankRequest(r *http.Request) (*types.RankRequest, error) {
	contentType := r.Header.Get("Content-Type")

	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			return nil, errors.New("invalid multipart form: " + err.Error())
		}
		req := &types.RankRequest{
			JobDescription: r.FormValue("job_description"),
		}
		files := r.MultipartForm.File["resumes"]
		for _, fh := range files {
			f, err := fh.Open()
			if err != nil {
				// Unreadable upload degrades to an empty resume, not an error.
				req.CandidateIDs = append(req.CandidateIDs, fh.Filename)
				req.ResumeTexts = append(req.ResumeTexts, "")
				continue
			}
			data, err := io.ReadAll(f)
			_ = f.Close()
			if err != nil {
				data = nil
			}
			req.CandidateIDs = append(req.CandidateIDs, fh.Filename)
			req.ResumeTexts = append(req.ResumeTexts, string(data))
		}
		return req, nil
	}

	var req types.RankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, errors.New("invalid request body: " + err.Error())
	}
	return &req, nil
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleListRuns returns stored scoring runs, newest first.
func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	if s.database == nil {
		s.errorResponse(w, http.StatusNotImplemented, "persistence is not configured")
		return
	}

	runs, err := s.database.ListRuns(r.Context(), 50)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, RunsResponse{Runs: runs})
}

// handleGetRun returns the stored ranked table for one run.
func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	if s.database == nil {
		s.errorResponse(w, http.StatusNotImplemented, "persistence is not configured")
		return
	}

	runID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid run id")
		return
	}

	ranked, err := s.database.GetRunResults(r.Context(), runID)
	if err != nil {
		s.errorResponse(w, http.StatusNotFound, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, ranked)
}
