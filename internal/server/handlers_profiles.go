package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/staffsync/internal/types"
)

// extractRequest is the body for resume extraction. Text may be empty; a
// placeholder derived from the filename is used instead so sparse uploads
// still extract.
type extractRequest struct {
	Filename string `json:"filename"`
	Text     string `json:"text"`
}

// handleListProfiles lists candidates, optionally filtered by category.
func (s *Server) handleListProfiles(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("category")
	if raw == "" {
		s.jsonResponse(w, http.StatusOK, s.profiles.List())
		return
	}

	category, err := types.ParseCategory(raw)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, s.profiles.FilterByCategory(category))
}

// handleExtractProfile extracts a candidate from uploaded resume text and
// inserts it at the front of the store. Failed extractions insert nothing.
func (s *Server) handleExtractProfile(w http.ResponseWriter, r *http.Request) {
	var req extractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Filename == "" {
		s.errorResponse(w, http.StatusBadRequest, "filename is required")
		return
	}

	profile, err := s.extractor.Extract(r.Context(), req.Text, req.Filename)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.profiles.Insert(*profile)
	s.jsonResponse(w, http.StatusCreated, profile)
}

// handleDeleteProfile removes a candidate.
func (s *Server) handleDeleteProfile(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !s.profiles.Delete(id) {
		err := &ErrNotFound{Resource: "profile", ID: id}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleToggleVerification flips a candidate's verified flag.
func (s *Server) handleToggleVerification(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !s.profiles.ToggleVerified(id) {
		err := &ErrNotFound{Resource: "profile", ID: id}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	profile, _ := s.profiles.Get(id)
	s.jsonResponse(w, http.StatusOK, profile)
}
