package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/staffsync/internal/session"
	"github.com/jonathan/staffsync/internal/types"
)

// sendMessageRequest is the body for message endpoints.
type sendMessageRequest struct {
	Message string `json:"message"`
}

// sendMessageResponse carries the two messages appended by a successful turn.
type sendMessageResponse struct {
	Appended []types.ChatMessage `json:"appended"`
	State    session.State       `json:"state"`
}

// handleCreateSession starts a fresh intake session.
func (s *Server) handleCreateSession(w http.ResponseWriter, _ *http.Request) {
	created := s.sessions.Create()
	s.jsonResponse(w, http.StatusCreated, created.Snapshot())
}

// handleGetSession returns the session state.
func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.Get(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, sess.Snapshot())
}

// handleSendMessage processes one chat turn.
func (s *Server) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.Get(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var req sendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	appended, err := sess.Send(r.Context(), req.Message)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, sendMessageResponse{
		Appended: appended,
		State:    sess.Snapshot(),
	})
}

// handleSendMessageStream processes one chat turn, streaming the appended
// messages as SSE events.
func (s *Server) handleSendMessageStream(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.Get(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var req sendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	appended, err := sess.Send(r.Context(), req.Message)
	if err != nil {
		sse.WriteError(err.Error())
		return
	}

	for _, msg := range appended {
		if err := sse.WriteEvent("message", msg); err != nil {
			return
		}
	}
	sse.WriteComplete(sess.ID(), string(sess.Snapshot().Mode))
}

// handleResetSession starts a new search in an existing session.
func (s *Server) handleResetSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.Get(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if err := sess.Reset(); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, sess.Snapshot())
}

// handleDeleteSession discards a session.
func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if _, err := s.sessions.Get(r.PathValue("id")); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.sessions.Delete(r.PathValue("id"))
	w.WriteHeader(http.StatusNoContent)
}
