package document

import "resumebuilder/internal/model"

// Completeness weights. They are fixed policy and sum to 100.
const (
	weightName       = 20
	weightEmail      = 20
	weightSummary    = 10
	weightExperience = 25
	weightEducation  = 25
)

// Completeness scores how many canonical sections of d are filled in, 0 to 100.
// The editor and the dashboard both use this function.
func Completeness(d model.ResumeDocument) int {
	score := 0
	if d.PersonalInfo.Name != "" {
		score += weightName
	}
	if d.PersonalInfo.Email != "" {
		score += weightEmail
	}
	if d.PersonalInfo.Summary != "" {
		score += weightSummary
	}
	if len(d.Experience) > 0 {
		score += weightExperience
	}
	if len(d.Education) > 0 {
		score += weightEducation
	}
	return score
}

// HasContent reports whether d has enough content to be worth exporting:
// a name, or at least one experience or education entry.
func HasContent(d model.ResumeDocument) bool {
	return d.PersonalInfo.Name != "" || len(d.Experience) > 0 || len(d.Education) > 0
}
