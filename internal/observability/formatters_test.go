package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/staffsync/internal/store"
	"github.com/jonathan/staffsync/internal/types"
)

func TestPrintProfile(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintProfile(&types.CandidateProfile{
		Name:            "Priya Patel",
		Category:        types.CategoryCook,
		ExperienceYears: 10,
		Skills:          []string{"Indian Cuisine", "Meal Prep"},
		Bio:             "Experienced cook.",
	})

	out := buf.String()
	assert.Contains(t, out, "EXTRACTED CANDIDATE")
	assert.Contains(t, out, "Priya Patel")
	assert.Contains(t, out, "Cook")
	assert.Contains(t, out, "Indian Cuisine")
}

func TestPrintProfile_NilIsNoOp(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintProfile(nil)
	assert.Empty(t, buf.String())
}

func TestPrintLeads(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintLeads(store.SeedLeads())

	out := buf.String()
	assert.Contains(t, out, "EMPLOYER LEADS")
	assert.Contains(t, out, "Alice Anderson")
	assert.Contains(t, out, "WhatsApp Group Created")
}
