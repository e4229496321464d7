//nolint:revive // types is a standard Go package name pattern
package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStageLabel(t *testing.T) {
	tests := []struct {
		name string
		step int
		want string
	}{
		{"First stage", 0, "Requirements Captured"},
		{"Middle stage", 4, "WhatsApp Group Created"},
		{"Last stage", 6, "Confirmation"},
		{"Negative clamps to first", -3, "Requirements Captured"},
		{"Past end clamps to last", 99, "Confirmation"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StageLabel(tt.step))
		})
	}
}

func TestEmployerLead_Stage(t *testing.T) {
	lead := EmployerLead{ProcessStep: 1}
	assert.Equal(t, "Package Selection", lead.Stage())
}

func TestProcessSteps_Count(t *testing.T) {
	assert.Len(t, ProcessSteps, 7)
}
