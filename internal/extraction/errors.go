package extraction

import "fmt"

// ExtractionError is the single error surfaced for any extraction failure:
// collaborator call errors, malformed JSON, and missing required fields all
// collapse into it. Callers show a status message and never insert a
// partial profile.
type ExtractionError struct {
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to extract profile data: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to extract profile data: %s", e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
