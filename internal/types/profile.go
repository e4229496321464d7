//nolint:revive // types is a standard Go package name pattern
package types

// CandidateProfile represents one helper in the candidate database.
// Profiles are created either from seed data at process start or by the
// extraction collaborator on resume upload.
type CandidateProfile struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Category        Category `json:"category"`
	ExperienceYears int      `json:"experienceYears"`
	Age             int      `json:"age"`
	MaritalStatus   string   `json:"maritalStatus"`
	Skills          []string `json:"skills"`
	Bio             string   `json:"bio"`
	Availability    string   `json:"availability"`
	Rating          float64  `json:"rating"` // 0-5
	AvatarURL       string   `json:"avatarUrl,omitempty"`
	ResumeURL       string   `json:"resumeUrl,omitempty"` // empty means no document on file
	Verified        bool     `json:"verified"`
}

// CandidateContext is the reduced candidate view sent to the chat
// collaborator. Contact and payment data never leave the process, so the
// field set here is the hard boundary on what the model can see.
type CandidateContext struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Role   Category `json:"role"`
	Skills []string `json:"skills"`
	Exp    int      `json:"exp"`
	Bio    string   `json:"bio"`
}

// Context returns the reduced view of p for collaborator calls.
func (p CandidateProfile) Context() CandidateContext {
	return CandidateContext{
		ID:     p.ID,
		Name:   p.Name,
		Role:   p.Category,
		Skills: p.Skills,
		Exp:    p.ExperienceYears,
		Bio:    p.Bio,
	}
}
