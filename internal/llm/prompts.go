package llm

import (
	_ "embed"
	"strings"
)

//go:embed prompts/analyze_v1.txt
var analysisPromptV1 string

const resumePlaceholder = "{{RESUME_TEXT}}"

// BuildAnalysisPrompt interpolates the resume text into the fixed analysis
// prompt template.
func BuildAnalysisPrompt(resumeText string) string {
	return strings.ReplaceAll(analysisPromptV1, resumePlaceholder, resumeText)
}
