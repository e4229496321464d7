package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/staffsync/internal/llm"
	"github.com/jonathan/staffsync/internal/types"
)

type stubClient struct {
	reply      string
	err        error
	lastSystem string
}

func (s *stubClient) GenerateStructured(context.Context, string, []types.ChatMessage, *genai.Schema, llm.ModelTier) (string, error) {
	return s.reply, s.err
}

func (s *stubClient) Chat(_ context.Context, system string, _ []types.ChatMessage, _ string, _ llm.ModelTier) (string, error) {
	s.lastSystem = system
	return s.reply, s.err
}

func (s *stubClient) GetModel(llm.ModelTier) string { return "stub" }
func (s *stubClient) Close() error                  { return nil }

func TestRespond_ReturnsReply(t *testing.T) {
	responder := New(&stubClient{reply: "Priya has 10 years of experience."})

	reply, err := responder.Respond(context.Background(), nil, nil, "Who has the most experience?")
	require.NoError(t, err)
	assert.Equal(t, "Priya has 10 years of experience.", reply)
}

func TestRespond_EmptyReplyGetsDefault(t *testing.T) {
	responder := New(&stubClient{reply: ""})

	reply, err := responder.Respond(context.Background(), nil, nil, "Hello?")
	require.NoError(t, err)
	assert.Equal(t, DefaultReply, reply)
}

func TestRespond_PropagatesError(t *testing.T) {
	responder := New(&stubClient{err: errors.New("timeout")})

	_, err := responder.Respond(context.Background(), nil, nil, "Hello?")
	assert.Error(t, err)
}

func TestRespond_CandidateContextBoundary(t *testing.T) {
	client := &stubClient{reply: "ok"}
	responder := New(client)

	candidates := []types.CandidateProfile{{
		ID:              "c1",
		Name:            "Priya Patel",
		Category:        types.CategoryCook,
		ExperienceYears: 10,
		Age:             38,
		MaritalStatus:   "Married",
		Skills:          []string{"Indian Cuisine"},
		Bio:             "Experienced cook.",
		Availability:    "Full-time",
		Rating:          5.0,
		Verified:        true,
		ResumeURL:       "https://internal/resumes/c1.pdf",
	}}

	_, err := responder.Respond(context.Background(), nil, candidates, "Tell me about Priya")
	require.NoError(t, err)

	assert.Contains(t, client.lastSystem, `"Priya Patel"`)
	assert.Contains(t, client.lastSystem, `"Indian Cuisine"`)
	// Nothing beyond the reduced view may reach the collaborator.
	assert.NotContains(t, client.lastSystem, "Married")
	assert.NotContains(t, client.lastSystem, "resumes/c1.pdf")
	assert.NotContains(t, client.lastSystem, "rating")
	assert.NotContains(t, client.lastSystem, "verified")
}

func TestBuildContext_FieldSet(t *testing.T) {
	contexts := BuildContext([]types.CandidateProfile{{
		ID:              "c1",
		Name:            "Ana",
		Category:        types.CategoryDriver,
		ExperienceYears: 3,
		Skills:          []string{"Defensive Driving"},
		Bio:             "Careful driver.",
	}})

	serialized, err := json.Marshal(contexts)
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(serialized, &decoded))
	require.Len(t, decoded, 1)

	for key := range decoded[0] {
		assert.Contains(t, []string{"id", "name", "role", "skills", "exp", "bio"}, key)
	}
}
