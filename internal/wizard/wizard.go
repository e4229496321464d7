// Package wizard implements the post-selection documentation flow: a fixed
// linear sequence of hiring paperwork steps for one chosen candidate.
package wizard

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Step is one entry in the fixed documentation sequence.
type Step struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Steps is the fixed ordered step sequence. The step index is always within
// [0, len(Steps)-1]; there is no backward navigation.
var Steps = []Step{
	{Title: "Identity Verification", Description: "Confirming ID proof and background check status."},
	{Title: "Contract Generation", Description: "Generating standard employment agreement."},
	{Title: "Digital Signature", Description: "Awaiting employer digital signature."},
	{Title: "Payment Setup", Description: "Setting up escrow for first month salary."},
}

// DefaultProcessingDelay simulates per-step paperwork processing. No real
// I/O happens during the wait.
const DefaultProcessingDelay = 1500 * time.Millisecond

// signatureStep is the index whose advance carries the typed signature.
const signatureStep = 2

// Sentinel errors returned by Advance.
var (
	// ErrBusy rejects an advance while a previous one is still processing.
	ErrBusy = errors.New("wizard step is already processing")
	// ErrCompleted rejects advances after the flow finished.
	ErrCompleted = errors.New("wizard already completed")
	// ErrCancelled rejects advances after the flow was cancelled.
	ErrCancelled = errors.New("wizard was cancelled")
)

// Wizard walks one candidate through the documentation steps. Advancing past
// the last step fires the completion callback exactly once instead of
// incrementing further.
type Wizard struct {
	id          string
	candidateID string
	delay       time.Duration
	onComplete  func(candidateID string)

	mu         sync.Mutex
	step       int
	signature  string
	completed  bool
	cancelled  bool
	processing bool
}

// State is a point-in-time snapshot of a wizard for rendering.
type State struct {
	ID              string `json:"id"`
	CandidateID     string `json:"candidateId"`
	Step            int    `json:"step"`
	StepLabel       string `json:"stepLabel"`
	StepDescription string `json:"stepDescription"`
	Signature       string `json:"signature,omitempty"`
	Completed       bool   `json:"completed"`
}

// New creates a wizard at the first step. onComplete may be nil.
func New(candidateID string, delay time.Duration, onComplete func(candidateID string)) *Wizard {
	return &Wizard{
		id:          uuid.New().String(),
		candidateID: candidateID,
		delay:       delay,
		onComplete:  onComplete,
	}
}

// ID returns the wizard identifier.
func (w *Wizard) ID() string { return w.id }

// CandidateID returns the candidate this wizard documents.
func (w *Wizard) CandidateID() string { return w.candidateID }

// Snapshot returns the current wizard state.
func (w *Wizard) Snapshot() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return State{
		ID:              w.id,
		CandidateID:     w.candidateID,
		Step:            w.step,
		StepLabel:       Steps[w.step].Title,
		StepDescription: Steps[w.step].Description,
		Signature:       w.signature,
		Completed:       w.completed,
	}
}

// Advance completes the current step after the simulated processing delay
// and moves to the next one. The signature argument is recorded when
// completing the signature step and ignored otherwise; an empty signature is
// accepted. The fourth successful advance completes the flow and fires the
// completion callback exactly once.
func (w *Wizard) Advance(ctx context.Context, signature string) (State, error) {
	w.mu.Lock()
	switch {
	case w.cancelled:
		w.mu.Unlock()
		return State{}, ErrCancelled
	case w.completed:
		w.mu.Unlock()
		return State{}, ErrCompleted
	case w.processing:
		w.mu.Unlock()
		return State{}, ErrBusy
	}
	w.processing = true
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.processing = false
		w.mu.Unlock()
	}()

	if err := w.wait(ctx); err != nil {
		return State{}, err
	}

	w.mu.Lock()
	if w.cancelled {
		w.mu.Unlock()
		return State{}, ErrCancelled
	}
	if w.step == signatureStep {
		w.signature = signature
	}
	var complete func(string)
	if w.step == len(Steps)-1 {
		w.completed = true
		complete = w.onComplete
	} else {
		w.step++
	}
	candidateID := w.candidateID
	w.mu.Unlock()

	if complete != nil {
		complete(candidateID)
	}
	return w.Snapshot(), nil
}

// Cancel aborts the flow at whatever step it is on. Nothing done so far is
// persisted anywhere, so there is no partial state to undo.
func (w *Wizard) Cancel() {
	w.mu.Lock()
	w.cancelled = true
	w.mu.Unlock()
}

func (w *Wizard) wait(ctx context.Context) error {
	if w.delay <= 0 {
		return nil
	}
	timer := time.NewTimer(w.delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
