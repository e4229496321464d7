// Package assistant answers employer questions about an already-filtered
// candidate subset. The collaborator only ever sees the reduced candidate
// context for that subset, so it cannot recommend outside the identified
// category and never sees contact or payment data.
package assistant

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jonathan/staffsync/internal/llm"
	"github.com/jonathan/staffsync/internal/prompts"
	"github.com/jonathan/staffsync/internal/types"
)

// DefaultReply is used when the collaborator returns an empty reply.
const DefaultReply = "I'm sorry, I didn't catch that."

// Responder calls the chat collaborator.
type Responder struct {
	client llm.Client
}

// New creates a Responder backed by the given LLM client.
func New(client llm.Client) *Responder {
	return &Responder{client: client}
}

// Respond answers the latest user message given the transcript so far and
// the candidates in scope. The full transcript is resent on every call; the
// collaborator holds no state between calls.
func (r *Responder) Respond(ctx context.Context, transcript []types.ChatMessage, candidates []types.CandidateProfile, message string) (string, error) {
	contexts := BuildContext(candidates)
	serialized, err := json.Marshal(contexts)
	if err != nil {
		return "", fmt.Errorf("failed to serialize candidate context: %w", err)
	}

	system := prompts.Format(prompts.MustGet("assistant.json", "system-instruction"), map[string]string{
		"Candidates": string(serialized),
	})

	reply, err := r.client.Chat(ctx, system, transcript, message, llm.TierStandard)
	if err != nil {
		return "", fmt.Errorf("assistant chat failed: %w", err)
	}
	if reply == "" {
		return DefaultReply, nil
	}
	return reply, nil
}

// BuildContext reduces candidates to the collaborator-visible view.
func BuildContext(candidates []types.CandidateProfile) []types.CandidateContext {
	contexts := make([]types.CandidateContext, len(candidates))
	for i, c := range candidates {
		contexts[i] = c.Context()
	}
	return contexts
}
