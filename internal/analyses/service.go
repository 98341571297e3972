package analyses

import (
	"context"
	"encoding/json"
	"errors"

	"resume-insight/internal/llm"
	"resume-insight/internal/shared/telemetry"
)

// ErrAnalysis is the uniform failure for a model call that errored or a
// reply that could not be recovered to JSON. Provider error details are
// logged but deliberately not surfaced.
var ErrAnalysis = errors.New("resume analysis failed")

// Service runs the analysis pipeline: prompt, model call, JSON recovery.
// Each call is independent and stateless.
type Service struct {
	LLM llm.Client
}

// Analyze sends the resume text to the model and decodes its reply.
func (s *Service) Analyze(ctx context.Context, resumeText string) (*AnalysisResult, error) {
	prompt := llm.BuildAnalysisPrompt(resumeText)

	reply, err := s.LLM.Generate(ctx, prompt)
	if err != nil {
		telemetry.Error("analysis.generate.failed", map[string]any{
			"err": err.Error(),
		})
		return nil, ErrAnalysis
	}

	raw, ok := llm.RecoverJSON(reply)
	if !ok {
		telemetry.Error("analysis.recover.failed", map[string]any{
			"reply_len": len(reply),
		})
		return nil, ErrAnalysis
	}

	var result AnalysisResult
	if err := json.Unmarshal(raw, &result); err != nil {
		telemetry.Error("analysis.decode.failed", map[string]any{
			"err": err.Error(),
		})
		return nil, ErrAnalysis
	}

	return &result, nil
}
