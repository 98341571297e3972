package analyses

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type stubClient struct {
	reply     string
	err       error
	gotPrompt string
}

func (s *stubClient) Generate(ctx context.Context, prompt string) (string, error) {
	s.gotPrompt = prompt
	return s.reply, s.err
}

const fencedReply = "```json\n" + `{
  "userSkills": ["Python", "SQL"],
  "jobSuggestions": [
    {
      "title": "Data Analyst",
      "requiredSkills": ["Python", "SQL", "Tableau"],
      "missingSkills": [
        {
          "skill": "Tableau",
          "recommendation": {
            "course": "Tableau Fundamentals",
            "url": "https://example.com/tableau"
          }
        }
      ]
    }
  ]
}` + "\n```"

func TestAnalyzeSuccess(t *testing.T) {
	client := &stubClient{reply: fencedReply}
	svc := &Service{LLM: client}

	result, err := svc.Analyze(context.Background(), "Experienced in Python and SQL")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if !strings.Contains(client.gotPrompt, "Experienced in Python and SQL") {
		t.Fatalf("expected resume text in prompt")
	}
	if len(result.UserSkills) != 2 || result.UserSkills[0] != "Python" {
		t.Fatalf("unexpected userSkills: %v", result.UserSkills)
	}
	if len(result.JobSuggestions) != 1 {
		t.Fatalf("expected 1 job suggestion, got %d", len(result.JobSuggestions))
	}
	job := result.JobSuggestions[0]
	if job.Title != "Data Analyst" || len(job.RequiredSkills) != 3 {
		t.Fatalf("unexpected job suggestion: %+v", job)
	}
	if len(job.MissingSkills) != 1 || job.MissingSkills[0].Recommendation.URL != "https://example.com/tableau" {
		t.Fatalf("unexpected missing skills: %+v", job.MissingSkills)
	}
}

func TestAnalyzeUnfencedReply(t *testing.T) {
	client := &stubClient{reply: `{"userSkills":["Go"],"jobSuggestions":[]}`}
	svc := &Service{LLM: client}

	result, err := svc.Analyze(context.Background(), "Go developer")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if len(result.UserSkills) != 1 || result.UserSkills[0] != "Go" {
		t.Fatalf("unexpected userSkills: %v", result.UserSkills)
	}
}

func TestAnalyzeModelFailure(t *testing.T) {
	svc := &Service{LLM: &stubClient{err: errors.New("quota exceeded")}}

	_, err := svc.Analyze(context.Background(), "some resume")
	if !errors.Is(err, ErrAnalysis) {
		t.Fatalf("expected ErrAnalysis, got %v", err)
	}
}

func TestAnalyzeUnrecoverableReply(t *testing.T) {
	svc := &Service{LLM: &stubClient{reply: "I cannot help with that."}}

	_, err := svc.Analyze(context.Background(), "some resume")
	if !errors.Is(err, ErrAnalysis) {
		t.Fatalf("expected ErrAnalysis, got %v", err)
	}
}

func TestAnalyzeReplyWrongShape(t *testing.T) {
	svc := &Service{LLM: &stubClient{reply: `["not", "an", "object"]`}}

	_, err := svc.Analyze(context.Background(), "some resume")
	if !errors.Is(err, ErrAnalysis) {
		t.Fatalf("expected ErrAnalysis, got %v", err)
	}
}
