package services

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/careerconnect/careerconnect/internal/dtos"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

// LLMService holds the shared Gemini client. Every AI feature is a thin
// prompt around one completion call; the model does all the text
// understanding.
type LLMService struct {
	Client llms.Model
}

func NewLLMService(ctx context.Context, apiKey, model string) (*LLMService, error) {
	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &LLMService{Client: llm}, nil
}

func (s *LLMService) complete(ctx context.Context, prompt string) (string, error) {
	resp, err := llms.GenerateFromSinglePrompt(ctx, s.Client, prompt)
	if err != nil {
		return "", fmt.Errorf("llm request failed: %w", err)
	}
	return resp, nil
}

func orDefault(v string) string {
	if v == "" {
		return "not specified"
	}
	return v
}

func (s *LLMService) GenerateJobDescription(ctx context.Context, req *dtos.GenerateJobDescRequest) (string, error) {
	prompt := fmt.Sprintf(`Create a detailed job description for a %s role.
Required skills: %s.
Experience: %s.
Benefits: %s.`,
		req.Role, orDefault(req.Skills), orDefault(req.Experience), orDefault(req.Perks))
	return s.complete(ctx, prompt)
}

func (s *LLMService) SummarizeJobDescription(ctx context.Context, jobDescription string) (string, error) {
	prompt := "Summarize the following job description in 3-4 bullet points: " + jobDescription
	return s.complete(ctx, prompt)
}

func (s *LLMService) InterviewQuestions(ctx context.Context, jobDescription string) (string, error) {
	prompt := "Based on this job description, generate 5 common interview questions for this role: " + jobDescription
	return s.complete(ctx, prompt)
}

func (s *LLMService) SalaryGuidance(ctx context.Context, req *dtos.SalaryGuidanceRequest) (string, error) {
	prompt := fmt.Sprintf(`You are an HR AI assistant.
Provide a realistic salary estimate for:
Role: %s
Experience: %s
Company Type: %s
City: %s

Give the salary in INR with a reasonable range and a short note explaining why.`,
		req.Role, req.Experience, req.CompanyType, req.City)
	return s.complete(ctx, prompt)
}

const resumeMatchPrompt = `You are a professional career AI assistant.

Job Description:
%s

Candidate Resume:
%s

Task:
1. List matched skills.
2. List missing skills.
3. Suggest 5 improvements.
4. Give a skill match percentage.
Output as strict JSON:
{
  "matchedSkills": [],
  "missingSkills": [],
  "suggestions": [],
  "percentageMatch": number
}`

// MatchResume scores a resume against a job description. When the model does
// not return parseable JSON, the raw reply is preserved as a suggestion with
// a zero match rather than failing the request.
func (s *LLMService) MatchResume(ctx context.Context, jobDescription, resumeText string) (*dtos.ResumeMatchResult, error) {
	resp, err := s.complete(ctx, fmt.Sprintf(resumeMatchPrompt, jobDescription, resumeText))
	if err != nil {
		return nil, err
	}

	result := ExtractJSON[dtos.ResumeMatchResult](resp)
	if result == nil {
		result = &dtos.ResumeMatchResult{
			MatchedSkills:   []string{},
			MissingSkills:   []string{},
			Suggestions:     []string{resp},
			PercentageMatch: 0,
		}
	}
	return result, nil
}

var jsonBlockRe = regexp.MustCompile(`\{[\s\S]*\}`)

// ExtractJSON pulls the first {...} block out of an LLM reply and decodes it.
// Returns nil when no valid JSON object is found.
func ExtractJSON[T any](text string) *T {
	text = strings.TrimSpace(text)
	match := jsonBlockRe.FindString(text)
	if match == "" {
		return nil
	}
	var out T
	if err := json.Unmarshal([]byte(match), &out); err != nil {
		return nil
	}
	return &out
}
