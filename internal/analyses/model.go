package analyses

// AnalysisResult is the structured output mapping a resume's skills to
// suggested jobs, missing skills, and course recommendations. It is built
// per-request from the model's reply and discarded with the response.
type AnalysisResult struct {
	UserSkills     []string        `json:"userSkills"`
	JobSuggestions []JobSuggestion `json:"jobSuggestions"`
}

// JobSuggestion is one suggested job title with its skill gap.
type JobSuggestion struct {
	Title          string         `json:"title"`
	RequiredSkills []string       `json:"requiredSkills"`
	MissingSkills  []MissingSkill `json:"missingSkills"`
}

// MissingSkill pairs a missing skill with a course recommendation.
type MissingSkill struct {
	Skill          string         `json:"skill"`
	Recommendation Recommendation `json:"recommendation"`
}

// Recommendation names one course that covers the missing skill.
type Recommendation struct {
	Course string `json:"course"`
	URL    string `json:"url"`
}
