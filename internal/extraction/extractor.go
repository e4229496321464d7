// Package extraction turns raw resume text into structured candidate
// profiles via the Gemini extraction collaborator.
package extraction

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"

	"github.com/jonathan/staffsync/internal/llm"
	"github.com/jonathan/staffsync/internal/prompts"
	"github.com/jonathan/staffsync/internal/schemas"
	"github.com/jonathan/staffsync/internal/types"
)

// DefaultRating is assigned to every freshly extracted profile. The
// collaborator's own rating and verified suggestions are always discarded:
// new uploads start unverified so the manual verification workflow gates
// them out of hiring.
const DefaultRating = 4.5

// Extractor calls the extraction collaborator and builds candidate profiles.
type Extractor struct {
	client   llm.Client
	validate *validator.Validate
}

// New creates an Extractor backed by the given LLM client.
func New(client llm.Client) *Extractor {
	return &Extractor{
		client:   client,
		validate: validator.New(),
	}
}

// payload is the JSON shape the collaborator returns. rating/verified are
// intentionally absent: they are set locally.
type payload struct {
	Name            string   `json:"name" validate:"required"`
	Category        string   `json:"category" validate:"required"`
	ExperienceYears int      `json:"experienceYears" validate:"gte=0"`
	Age             int      `json:"age" validate:"omitempty,gte=1"`
	MaritalStatus   string   `json:"maritalStatus"`
	Skills          []string `json:"skills" validate:"required"`
	Bio             string   `json:"bio" validate:"required"`
	Availability    string   `json:"availability"`
}

// PlaceholderText returns the synthetic stand-in used when real document
// parsing is unavailable and only a filename is known.
func PlaceholderText(filename string) string {
	return fmt.Sprintf("This is a resume for a %s", filename)
}

// Extract turns resume text plus a filename hint into a complete candidate
// profile. The collaborator is instructed to infer plausible values when the
// source text is sparse rather than fail. Every failure surfaces as an
// *ExtractionError and no partial profile is ever returned.
func (e *Extractor) Extract(ctx context.Context, text, filename string) (*types.CandidateProfile, error) {
	if strings.TrimSpace(text) == "" {
		text = PlaceholderText(filename)
	}

	prompt := prompts.Format(prompts.MustGet("extraction.json", "extract-profile"), map[string]string{
		"Filename":   filename,
		"Text":       text,
		"Categories": strings.Join(types.CategoryNames(), ", "),
	})

	raw, err := e.client.GenerateStructured(ctx, prompt, nil, responseSchema(), llm.TierStandard)
	if err != nil {
		return nil, &ExtractionError{Message: "collaborator call failed", Cause: err}
	}

	p, err := e.decodePayload([]byte(raw))
	if err != nil {
		return nil, err
	}

	profile := buildProfile(*p)
	return &profile, nil
}

// decodePayload validates and unmarshals the collaborator's JSON reply.
func (e *Extractor) decodePayload(raw []byte) (*payload, error) {
	if err := schemas.ValidateBytes(schemas.ProfileExtraction, raw); err != nil {
		return nil, &ExtractionError{Message: "response failed schema validation", Cause: err}
	}

	var p payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, &ExtractionError{Message: "malformed JSON response", Cause: err}
	}

	if err := e.validate.Struct(&p); err != nil {
		return nil, &ExtractionError{Message: "missing required field", Cause: err}
	}

	if _, err := types.ParseCategory(p.Category); err != nil {
		return nil, &ExtractionError{Message: "invalid category", Cause: err}
	}

	return &p, nil
}

// buildProfile assembles the stored profile, applying the local overrides
// for rating and verified.
func buildProfile(p payload) types.CandidateProfile {
	return types.CandidateProfile{
		ID:              uuid.New().String(),
		Name:            p.Name,
		Category:        types.Category(p.Category),
		ExperienceYears: p.ExperienceYears,
		Age:             p.Age,
		MaritalStatus:   p.MaritalStatus,
		Skills:          p.Skills,
		Bio:             p.Bio,
		Availability:    p.Availability,
		Rating:          DefaultRating,
		Verified:        false,
	}
}

// responseSchema constrains the collaborator output to the payload shape.
func responseSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"name":            {Type: genai.TypeString},
			"category":        {Type: genai.TypeString, Enum: types.CategoryNames()},
			"experienceYears": {Type: genai.TypeNumber},
			"age":             {Type: genai.TypeNumber},
			"maritalStatus":   {Type: genai.TypeString},
			"skills":          {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
			"bio":             {Type: genai.TypeString},
			"availability":    {Type: genai.TypeString},
		},
		Required: []string{"name", "category", "experienceYears", "skills", "bio"},
	}
}
