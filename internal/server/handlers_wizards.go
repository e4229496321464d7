package server

import (
	"encoding/json"
	"net/http"
)

// startWizardRequest is the body for starting a documentation wizard.
type startWizardRequest struct {
	CandidateID string `json:"candidate_id"`
}

// advanceWizardRequest carries the optional typed signature. It is only
// meaningful on the signature step and is accepted empty.
type advanceWizardRequest struct {
	Signature string `json:"signature"`
}

// handleStartWizard begins the documentation flow for a verified candidate.
func (s *Server) handleStartWizard(w http.ResponseWriter, r *http.Request) {
	var req startWizardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.CandidateID == "" {
		s.errorResponse(w, http.StatusBadRequest, "candidate_id is required")
		return
	}

	wiz, err := s.wizards.Start(req.CandidateID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, wiz.Snapshot())
}

// handleGetWizard returns the wizard state.
func (s *Server) handleGetWizard(w http.ResponseWriter, r *http.Request) {
	wiz, err := s.wizards.Get(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, wiz.Snapshot())
}

// handleAdvanceWizard completes the current step.
func (s *Server) handleAdvanceWizard(w http.ResponseWriter, r *http.Request) {
	wiz, err := s.wizards.Get(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var req advanceWizardRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	state, err := wiz.Advance(r.Context(), req.Signature)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, state)
}

// handleCancelWizard aborts the flow. Nothing is persisted for a cancelled
// wizard.
func (s *Server) handleCancelWizard(w http.ResponseWriter, r *http.Request) {
	if err := s.wizards.Cancel(r.PathValue("id")); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
