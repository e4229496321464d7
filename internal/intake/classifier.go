// Package intake classifies employer requirement conversations: given the
// transcript so far, the collaborator either asks a clarifying follow-up or
// declares the session ready with a category and summary.
package intake

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/generative-ai-go/genai"

	"github.com/jonathan/staffsync/internal/llm"
	"github.com/jonathan/staffsync/internal/prompts"
	"github.com/jonathan/staffsync/internal/schemas"
	"github.com/jonathan/staffsync/internal/types"
)

// Defaults applied when the collaborator leaves optional fields empty.
const (
	DefaultSummary      = "Requirements gathering..."
	DefaultNextQuestion = "Could you tell me more about what you are looking for?"
)

// Analysis is the classifier verdict for a transcript. The two shapes are
// disjoint in meaning: not ready carries a follow-up question, ready carries
// a category and summary.
type Analysis struct {
	Category     *types.Category `json:"category,omitempty"`
	IsReady      bool            `json:"isReady"`
	Summary      string          `json:"summary"`
	NextQuestion string          `json:"nextQuestion"`
}

// Ready reports whether the analysis carries a terminal classification.
// IsReady without a usable category is treated as not ready.
func (a *Analysis) Ready() bool {
	return a.IsReady && a.Category != nil
}

// Classifier calls the intake collaborator.
type Classifier struct {
	client llm.Client
}

// New creates a Classifier backed by the given LLM client.
func New(client llm.Client) *Classifier {
	return &Classifier{client: client}
}

// Analyze inspects the full transcript (ending with the user's latest
// message) and returns the collaborator's verdict. The call is never
// retried here: retrying could reframe the conversation, so recovery is the
// caller appending a canned reply and the user re-sending.
func (c *Classifier) Analyze(ctx context.Context, transcript []types.ChatMessage) (*Analysis, error) {
	prompt := prompts.Format(prompts.MustGet("intake.json", "analyze-requirements"), map[string]string{
		"Categories": strings.Join(types.CategoryNames(), ", "),
	})

	raw, err := c.client.GenerateStructured(ctx, prompt, transcript, responseSchema(), llm.TierLite)
	if err != nil {
		return nil, &APICallError{Message: "requirement analysis failed", Cause: err}
	}

	return decodeAnalysis([]byte(raw))
}

// wireAnalysis mirrors the collaborator JSON before defaulting.
type wireAnalysis struct {
	Category     string `json:"category"`
	IsReady      bool   `json:"isReady"`
	Summary      string `json:"summary"`
	NextQuestion string `json:"nextQuestion"`
}

// decodeAnalysis validates, unmarshals and defaults the collaborator reply.
func decodeAnalysis(raw []byte) (*Analysis, error) {
	if err := schemas.ValidateBytes(schemas.RequirementAnalysis, raw); err != nil {
		return nil, &ParseError{Message: "response failed schema validation", Cause: err}
	}

	var wire wireAnalysis
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, &ParseError{Message: "malformed JSON response", Cause: err}
	}

	analysis := &Analysis{
		IsReady:      wire.IsReady,
		Summary:      wire.Summary,
		NextQuestion: wire.NextQuestion,
	}
	if cat, err := types.ParseCategory(wire.Category); err == nil {
		analysis.Category = &cat
	}
	if analysis.Summary == "" {
		analysis.Summary = DefaultSummary
	}
	if analysis.NextQuestion == "" {
		analysis.NextQuestion = DefaultNextQuestion
	}

	return analysis, nil
}

// responseSchema constrains the collaborator output to the analysis shape.
func responseSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"category":     {Type: genai.TypeString, Enum: types.CategoryNames()},
			"isReady":      {Type: genai.TypeBoolean},
			"summary":      {Type: genai.TypeString},
			"nextQuestion": {Type: genai.TypeString},
		},
		Required: []string{"isReady", "summary", "nextQuestion"},
	}
}
