package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateBytes_ProfileExtraction(t *testing.T) {
	tests := []struct {
		name     string
		document string
		wantErr  bool
		field    string
	}{
		{
			name: "Complete payload",
			document: `{
				"name": "Priya Patel",
				"category": "Cook",
				"experienceYears": 10,
				"age": 38,
				"maritalStatus": "Married",
				"skills": ["Indian Cuisine"],
				"bio": "Experienced cook.",
				"availability": "Full-time"
			}`,
		},
		{
			name: "Minimum required fields only",
			document: `{
				"name": "Ana",
				"category": "Driver",
				"experienceYears": 2,
				"skills": [],
				"bio": "Careful driver."
			}`,
		},
		{
			name:     "Missing name",
			document: `{"category": "Cook", "experienceYears": 1, "skills": [], "bio": "x"}`,
			wantErr:  true,
			field:    "(root)",
		},
		{
			name:     "Category outside closed set",
			document: `{"name": "Ana", "category": "Plumber", "experienceYears": 1, "skills": [], "bio": "x"}`,
			wantErr:  true,
			field:    "category",
		},
		{
			name:     "Negative experience",
			document: `{"name": "Ana", "category": "Cook", "experienceYears": -1, "skills": [], "bio": "x"}`,
			wantErr:  true,
			field:    "experienceYears",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBytes(ProfileExtraction, []byte(tt.document))
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			require.NotEmpty(t, ve.Errors)
			assert.Equal(t, tt.field, ve.Errors[0].Field)
		})
	}
}

func TestValidateBytes_RequirementAnalysis(t *testing.T) {
	valid := `{"category": "Nanny", "isReady": true, "summary": "Full-time nanny", "nextQuestion": ""}`
	assert.NoError(t, ValidateBytes(RequirementAnalysis, []byte(valid)))

	// category is optional; isReady/summary/nextQuestion are not.
	noCategory := `{"isReady": false, "summary": "", "nextQuestion": "What role?"}`
	assert.NoError(t, ValidateBytes(RequirementAnalysis, []byte(noCategory)))

	missing := `{"isReady": true}`
	assert.Error(t, ValidateBytes(RequirementAnalysis, []byte(missing)))
}

func TestValidateBytes_UnknownSchema(t *testing.T) {
	err := ValidateBytes("missing.schema.json", []byte(`{}`))
	require.Error(t, err)
	var le *SchemaLoadError
	assert.ErrorAs(t, err, &le)
}
