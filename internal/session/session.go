// Package session implements the employer intake state machine. A session
// gathers requirements over a chat transcript until the intake classifier
// declares it ready, then serves browsing questions against the candidate
// subset snapshotted at classification time.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/jonathan/staffsync/internal/intake"
	"github.com/jonathan/staffsync/internal/store"
	"github.com/jonathan/staffsync/internal/types"
)

// Mode is the session's position in the intake flow.
type Mode string

// Session modes. The only way back from browsing is an explicit reset.
const (
	ModeGatheringRequirements Mode = "GATHERING_REQUIREMENTS"
	ModeBrowsing              Mode = "BROWSING"
)

// Canned assistant messages. Collaborator failures always degrade to one of
// these so the transcript stays coherent; the user re-sends instead of the
// system retrying.
const (
	GreetingMessage = "Hello! I'm your StaffSync hiring assistant. To get started, please tell me what kind of staff you are looking for today (e.g., Nanny, Cook, Driver) and any specific requirements you have."

	ResetMessage = "Let's start a new search. What are you looking for?"

	IntakeFailureMessage = "I'm having a bit of trouble connecting. Could you please repeat that?"

	BrowsingFailureMessage = "I'm having trouble connecting right now. Please try again."
)

// Sentinel errors returned by Send and Reset.
var (
	// ErrEmptyMessage rejects empty or whitespace-only input before any
	// transcript mutation or collaborator call.
	ErrEmptyMessage = errors.New("message is empty")
	// ErrBusy rejects a send while a collaborator call is in flight.
	ErrBusy = errors.New("a collaborator call is already in flight")
)

// Classifier is the intake collaborator seam.
type Classifier interface {
	Analyze(ctx context.Context, transcript []types.ChatMessage) (*intake.Analysis, error)
}

// Responder is the browsing Q&A collaborator seam.
type Responder interface {
	Respond(ctx context.Context, transcript []types.ChatMessage, candidates []types.CandidateProfile, message string) (string, error)
}

// Session is one employer's intake conversation. All mutation goes through
// Send and Reset; at most one collaborator call is in flight at a time.
type Session struct {
	id         string
	profiles   *store.ProfileStore
	classifier Classifier
	responder  Responder

	mu         sync.Mutex
	mode       Mode
	transcript []types.ChatMessage
	category   *types.Category
	summary    string
	matches    []types.CandidateProfile
	busy       bool
}

// State is a point-in-time snapshot of a session for rendering.
type State struct {
	ID         string                   `json:"id"`
	Mode       Mode                     `json:"mode"`
	Transcript []types.ChatMessage      `json:"transcript"`
	Category   *types.Category          `json:"category,omitempty"`
	Summary    string                   `json:"summary,omitempty"`
	Matches    []types.CandidateProfile `json:"matches,omitempty"`
}

// New creates a session in requirement-gathering mode with the greeting
// already on the transcript.
func New(profiles *store.ProfileStore, classifier Classifier, responder Responder) *Session {
	return &Session{
		id:         uuid.New().String(),
		profiles:   profiles,
		classifier: classifier,
		responder:  responder,
		mode:       ModeGatheringRequirements,
		transcript: []types.ChatMessage{types.NewAssistantMessage(GreetingMessage)},
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Snapshot returns the current session state. Transcript and matches are
// copies; mutating them does not affect the session.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	transcript := make([]types.ChatMessage, len(s.transcript))
	copy(transcript, s.transcript)

	var matches []types.CandidateProfile
	if s.matches != nil {
		matches = make([]types.CandidateProfile, len(s.matches))
		copy(matches, s.matches)
	}

	var category *types.Category
	if s.category != nil {
		c := *s.category
		category = &c
	}

	return State{
		ID:         s.id,
		Mode:       s.mode,
		Transcript: transcript,
		Category:   category,
		Summary:    s.summary,
		Matches:    matches,
	}
}

// Send processes one user utterance. On success the transcript grows by
// exactly two messages: the user's and the assistant's reply (which is a
// canned message when the collaborator call fails). Empty input is rejected
// before any mutation, and a second send while a call is outstanding
// returns ErrBusy.
func (s *Session) Send(ctx context.Context, text string) ([]types.ChatMessage, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, ErrEmptyMessage
	}

	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return nil, ErrBusy
	}
	s.busy = true

	userMsg := types.NewUserMessage(trimmed)
	s.transcript = append(s.transcript, userMsg)

	transcript := make([]types.ChatMessage, len(s.transcript))
	copy(transcript, s.transcript)
	mode := s.mode
	matches := s.matches
	s.mu.Unlock()

	// The busy flag must clear on every exit path.
	defer func() {
		s.mu.Lock()
		s.busy = false
		s.mu.Unlock()
	}()

	var reply types.ChatMessage
	switch mode {
	case ModeBrowsing:
		reply = s.browse(ctx, transcript, matches, trimmed)
	default:
		reply = s.gather(ctx, transcript)
	}

	s.mu.Lock()
	s.transcript = append(s.transcript, reply)
	s.mu.Unlock()

	return []types.ChatMessage{userMsg, reply}, nil
}

// gather runs one requirement-gathering turn: classify the transcript and
// either ask the follow-up or transition to browsing with a snapshot of the
// matching candidates.
func (s *Session) gather(ctx context.Context, transcript []types.ChatMessage) types.ChatMessage {
	analysis, err := s.classifier.Analyze(ctx, transcript)
	if err != nil {
		return types.NewAssistantMessage(IntakeFailureMessage)
	}

	if !analysis.Ready() {
		return types.NewAssistantMessage(analysis.NextQuestion)
	}

	category := *analysis.Category
	matches := s.profiles.FilterByCategory(category)

	s.mu.Lock()
	s.mode = ModeBrowsing
	s.category = &category
	s.summary = analysis.Summary
	s.matches = matches
	s.mu.Unlock()

	return types.NewAssistantMessage(fmt.Sprintf(
		"Great! I've found %d %s candidates matching your criteria: \"%s\". Here they are.",
		len(matches), category, analysis.Summary,
	))
}

// browse answers a question against the snapshotted candidate subset.
// Refinement is advisory text only; the subset is never recomputed here.
func (s *Session) browse(ctx context.Context, transcript []types.ChatMessage, matches []types.CandidateProfile, message string) types.ChatMessage {
	// The responder sees history up to but not including the latest user
	// message, which travels separately as the message to answer.
	history := transcript[:len(transcript)-1]

	reply, err := s.responder.Respond(ctx, history, matches, message)
	if err != nil {
		return types.NewAssistantMessage(BrowsingFailureMessage)
	}
	return types.NewAssistantMessage(reply)
}

// Reset returns the session to requirement gathering with a fresh
// transcript. Resetting while a collaborator call is in flight returns
// ErrBusy.
func (s *Session) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy {
		return ErrBusy
	}

	s.mode = ModeGatheringRequirements
	s.transcript = []types.ChatMessage{types.NewAssistantMessage(ResetMessage)}
	s.category = nil
	s.summary = ""
	s.matches = nil
	return nil
}
