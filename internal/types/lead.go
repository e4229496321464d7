//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// ProcessSteps lists the pipeline stages of an employer lead, in order.
// A lead's ProcessStep is an index into this slice.
var ProcessSteps = []string{
	"Requirements Captured",
	"Package Selection",
	"Lead Created / Branch Info",
	"Interview Timings Set",
	"WhatsApp Group Created",
	"Shortlisting & Interviews",
	"Confirmation",
}

// StageLabel returns the pipeline stage name for a step index. Out-of-range
// indices are clamped to the first or last stage.
func StageLabel(step int) string {
	if step < 0 {
		step = 0
	}
	if step > len(ProcessSteps)-1 {
		step = len(ProcessSteps) - 1
	}
	return ProcessSteps[step]
}

// EmployerLead is one employer engagement record. Leads are read-only in the
// current system: creating a lead when an intake session reaches
// classification, and advancing ProcessStep, are not implemented yet.
type EmployerLead struct {
	ID                 string        `json:"id"`
	EmployerName       string        `json:"employerName"`
	ContactNumber      string        `json:"contactNumber"`
	RequirementSummary string        `json:"requirementSummary"`
	Category           Category      `json:"category"`
	ProcessStep        int           `json:"processStep"` // index into ProcessSteps
	PaymentDetails     PaymentRecord `json:"paymentDetails"`
	CreatedAt          time.Time     `json:"createdAt"`
}

// Stage returns the lead's current pipeline stage label.
func (l EmployerLead) Stage() string {
	return StageLabel(l.ProcessStep)
}
