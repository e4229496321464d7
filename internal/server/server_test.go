package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/staffsync/internal/extraction"
	"github.com/jonathan/staffsync/internal/intake"
	"github.com/jonathan/staffsync/internal/session"
	"github.com/jonathan/staffsync/internal/store"
	"github.com/jonathan/staffsync/internal/types"
	"github.com/jonathan/staffsync/internal/wizard"
)

type stubClassifier struct {
	analysis *intake.Analysis
	err      error
}

func (s *stubClassifier) Analyze(context.Context, []types.ChatMessage) (*intake.Analysis, error) {
	return s.analysis, s.err
}

type stubResponder struct {
	reply string
	err   error
}

func (s *stubResponder) Respond(context.Context, []types.ChatMessage, []types.CandidateProfile, string) (string, error) {
	return s.reply, s.err
}

type stubExtractor struct {
	profile *types.CandidateProfile
	err     error
}

func (s *stubExtractor) Extract(context.Context, string, string) (*types.CandidateProfile, error) {
	return s.profile, s.err
}

type fixture struct {
	server   *Server
	handler  http.Handler
	profiles *store.ProfileStore
}

func newFixture(t *testing.T, classifier session.Classifier, responder session.Responder, extractor Extractor) *fixture {
	t.Helper()

	profiles := store.NewProfileStore(store.SeedProfiles())
	if classifier == nil {
		classifier = &stubClassifier{analysis: &intake.Analysis{
			IsReady:      false,
			Summary:      "Requirements gathering...",
			NextQuestion: "Which role?",
		}}
	}
	if responder == nil {
		responder = &stubResponder{reply: "ok"}
	}
	if extractor == nil {
		extractor = &stubExtractor{profile: &types.CandidateProfile{
			ID:       "x1",
			Name:     "New Candidate",
			Category: types.CategoryDriver,
			Rating:   extraction.DefaultRating,
		}}
	}

	srv := New(Config{Port: 0}, Deps{
		Profiles:  profiles,
		Leads:     store.NewLeadStore(store.SeedLeads()),
		Sessions:  session.NewManager(profiles, classifier, responder),
		Wizards:   wizard.NewManager(profiles).WithDelay(0),
		Extractor: extractor,
	})

	return &fixture{server: srv, handler: srv.Handler(), profiles: profiles}
}

func (f *fixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHealth(t *testing.T) {
	f := newFixture(t, nil, nil, nil)
	rec := f.do(t, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]string{"status": "ok"}, decode[map[string]string](t, rec))
}

func TestSessionLifecycle(t *testing.T) {
	f := newFixture(t, nil, nil, nil)

	rec := f.do(t, http.MethodPost, "/sessions", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	state := decode[session.State](t, rec)
	require.NotEmpty(t, state.ID)
	assert.Equal(t, session.ModeGatheringRequirements, state.Mode)
	require.Len(t, state.Transcript, 1)
	assert.Equal(t, session.GreetingMessage, state.Transcript[0].Text)

	rec = f.do(t, http.MethodGet, "/sessions/"+state.ID, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodPost, "/sessions/"+state.ID+"/messages", sendMessageRequest{Message: "I need help"})
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[sendMessageResponse](t, rec)
	require.Len(t, resp.Appended, 2)
	assert.Equal(t, "Which role?", resp.Appended[1].Text)
	assert.Len(t, resp.State.Transcript, 3)

	rec = f.do(t, http.MethodPost, "/sessions/"+state.ID+"/reset", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, session.ResetMessage, decode[session.State](t, rec).Transcript[0].Text)

	rec = f.do(t, http.MethodDelete, "/sessions/"+state.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = f.do(t, http.MethodGet, "/sessions/"+state.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSendMessage_EmptyInputIsBadRequest(t *testing.T) {
	f := newFixture(t, nil, nil, nil)

	created := decode[session.State](t, f.do(t, http.MethodPost, "/sessions", nil))
	rec := f.do(t, http.MethodPost, "/sessions/"+created.ID+"/messages", sendMessageRequest{Message: "   "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSendMessage_UnknownSession(t *testing.T) {
	f := newFixture(t, nil, nil, nil)
	rec := f.do(t, http.MethodPost, "/sessions/missing/messages", sendMessageRequest{Message: "hi"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSendMessageStream(t *testing.T) {
	f := newFixture(t, nil, nil, nil)

	created := decode[session.State](t, f.do(t, http.MethodPost, "/sessions", nil))
	rec := f.do(t, http.MethodPost, "/sessions/"+created.ID+"/messages/stream", sendMessageRequest{Message: "I need help"})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.Contains(t, body, "event: message")
	assert.Contains(t, body, "Which role?")
	assert.Contains(t, body, "event: complete")
}

func TestListProfiles(t *testing.T) {
	f := newFixture(t, nil, nil, nil)

	rec := f.do(t, http.MethodGet, "/profiles", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]types.CandidateProfile](t, rec), 5)

	rec = f.do(t, http.MethodGet, "/profiles?category=Cook", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	cooks := decode[[]types.CandidateProfile](t, rec)
	require.Len(t, cooks, 2)
	assert.Equal(t, "Priya Patel", cooks[0].Name)

	rec = f.do(t, http.MethodGet, "/profiles?category=Astronaut", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExtractProfile(t *testing.T) {
	f := newFixture(t, nil, nil, nil)

	rec := f.do(t, http.MethodPost, "/profiles/extract", extractRequest{Filename: "resume.pdf", Text: "some resume"})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode[types.CandidateProfile](t, rec)
	assert.Equal(t, "New Candidate", created.Name)

	// The new profile is prepended.
	listed := decode[[]types.CandidateProfile](t, f.do(t, http.MethodGet, "/profiles", nil))
	require.Len(t, listed, 6)
	assert.Equal(t, "New Candidate", listed[0].Name)
}

func TestExtractProfile_FailureInsertsNothing(t *testing.T) {
	extractor := &stubExtractor{err: &extraction.ExtractionError{Message: "extraction failed"}}
	f := newFixture(t, nil, nil, extractor)

	rec := f.do(t, http.MethodPost, "/profiles/extract", extractRequest{Filename: "resume.pdf", Text: "x"})
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, 5, f.profiles.Len())
}

func TestExtractProfile_MissingFilename(t *testing.T) {
	f := newFixture(t, nil, nil, nil)
	rec := f.do(t, http.MethodPost, "/profiles/extract", extractRequest{Text: "x"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteProfile(t *testing.T) {
	f := newFixture(t, nil, nil, nil)

	rec := f.do(t, http.MethodDelete, "/profiles/1", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = f.do(t, http.MethodDelete, "/profiles/1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestToggleVerification(t *testing.T) {
	f := newFixture(t, nil, nil, nil)

	rec := f.do(t, http.MethodPost, "/profiles/1/verification", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, decode[types.CandidateProfile](t, rec).Verified)

	rec = f.do(t, http.MethodPost, "/profiles/1/verification", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[types.CandidateProfile](t, rec).Verified)

	rec = f.do(t, http.MethodPost, "/profiles/missing/verification", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLeads(t *testing.T) {
	f := newFixture(t, nil, nil, nil)

	rec := f.do(t, http.MethodGet, "/leads", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	leads := decode[[]leadResponse](t, rec)
	require.Len(t, leads, 3)
	assert.Equal(t, "WhatsApp Group Created", leads[0].Stage)

	rec = f.do(t, http.MethodGet, "/leads/L3", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	lead := decode[leadResponse](t, rec)
	assert.Equal(t, types.PaymentPaid, lead.DerivedPaymentStatus)

	rec = f.do(t, http.MethodGet, "/leads/missing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWizardLifecycle(t *testing.T) {
	f := newFixture(t, nil, nil, nil)

	rec := f.do(t, http.MethodPost, "/wizards", startWizardRequest{CandidateID: "1"})
	require.Equal(t, http.StatusCreated, rec.Code)
	state := decode[wizard.State](t, rec)
	assert.Equal(t, 0, state.Step)
	assert.Equal(t, "Identity Verification", state.StepLabel)

	for i := 1; i <= 3; i++ {
		rec = f.do(t, http.MethodPost, "/wizards/"+state.ID+"/advance", advanceWizardRequest{})
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec = f.do(t, http.MethodPost, "/wizards/"+state.ID+"/advance", advanceWizardRequest{Signature: "Jane"})
	require.Equal(t, http.StatusOK, rec.Code)
	final := decode[wizard.State](t, rec)
	assert.True(t, final.Completed)

	rec = f.do(t, http.MethodPost, "/wizards/"+state.ID+"/advance", advanceWizardRequest{})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestStartWizard_Preconditions(t *testing.T) {
	f := newFixture(t, nil, nil, nil)

	rec := f.do(t, http.MethodPost, "/wizards", startWizardRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(t, http.MethodPost, "/wizards", startWizardRequest{CandidateID: "missing"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Unverify a seed candidate, then try to start documentation.
	require.True(t, f.profiles.ToggleVerified("2"))
	rec = f.do(t, http.MethodPost, "/wizards", startWizardRequest{CandidateID: "2"})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCancelWizard(t *testing.T) {
	f := newFixture(t, nil, nil, nil)

	state := decode[wizard.State](t, f.do(t, http.MethodPost, "/wizards", startWizardRequest{CandidateID: "1"}))

	rec := f.do(t, http.MethodDelete, "/wizards/"+state.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = f.do(t, http.MethodGet, "/wizards/"+state.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHTTPStatusMapping(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{&ErrNotFound{Resource: "profile", ID: "x"}, http.StatusNotFound},
		{&ErrValidation{Field: "message", Message: "empty"}, http.StatusBadRequest},
		{session.ErrEmptyMessage, http.StatusBadRequest},
		{session.ErrBusy, http.StatusConflict},
		{session.ErrNotFound, http.StatusNotFound},
		{wizard.ErrBusy, http.StatusConflict},
		{wizard.ErrCompleted, http.StatusConflict},
		{wizard.ErrNotVerified, http.StatusConflict},
		{wizard.ErrCancelled, http.StatusGone},
		{wizard.ErrNotFound, http.StatusNotFound},
		{wizard.ErrNoCandidate, http.StatusNotFound},
		{&extraction.ExtractionError{Message: "boom"}, http.StatusBadGateway},
		{errors.New("anything else"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, HTTPStatus(tt.err), tt.err.Error())
	}
}
