// Package reasoning implements the LLM-backed judge: the last-resort
// matcher that asks a small instruction-following model whether a
// contestant's answer means the same thing as the canonical answer.
package reasoning

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"github.com/quizbee/adjudicator/internal/answer"
	"github.com/quizbee/adjudicator/internal/llm"
)

// Config holds configuration for the judge.
type Config struct {
	MaxTokens int
	// Temperature stays near zero so repeated judgments of the same
	// answer agree with each other.
	Temperature float64
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   200,
		Temperature: 0.0,
	}
}

// Judge evaluates answers with an LLM provider.
type Judge struct {
	provider llm.Provider
	cfg      Config
}

// NewJudge creates an LLM-backed judge.
func NewJudge(provider llm.Provider, cfg Config) *Judge {
	return &Judge{provider: provider, cfg: cfg}
}

// Verdict is the judge's parsed decision.
type Verdict struct {
	Correct     bool
	Confidence  float64
	Explanation string
}

// verdictOutput is the raw LLM response.
type verdictOutput struct {
	Verdict    string  `json:"verdict"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

// Evaluate asks the model to judge the contestant's answer. Any error
// (provider unavailable, inference failure, malformed output) is returned
// for the orchestrator to contain; it never reaches the validation caller.
func (j *Judge) Evaluate(ctx context.Context, req *answer.Request) (*Verdict, error) {
	ctx = llm.WithPurpose(ctx, "answer-judgment")

	userMsg, err := buildJudgeMessage(req)
	if err != nil {
		return nil, fmt.Errorf("build judge prompt: %w", err)
	}

	resp, err := j.provider.Generate(ctx, llm.Request{
		System: judgeSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      VerdictSchema,
		MaxTokens:   j.cfg.MaxTokens,
		Temperature: j.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM judgment failed: %w", err)
	}

	var raw verdictOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("parse judge response: %w", err)
	}

	switch strings.ToUpper(strings.TrimSpace(raw.Verdict)) {
	case "CORRECT":
		return &Verdict{
			Correct:     true,
			Confidence:  clamp01(raw.Confidence),
			Explanation: raw.Reasoning,
		}, nil
	case "INCORRECT":
		return &Verdict{
			Correct:     false,
			Confidence:  clamp01(raw.Confidence),
			Explanation: raw.Reasoning,
		}, nil
	}
	return nil, fmt.Errorf("unrecognized verdict %q", raw.Verdict)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

const judgeSystemPrompt = `You are an academic-competition answer judge. Decide whether a contestant's spoken answer means the same thing as the official answer.

Instructions:
- Accept equivalent phrasings, well-known abbreviations, and answers that add correct detail.
- Reject answers that name a different entity, are too vague, or contradict the official answer.
- The contestant's text comes from speech transcription; ignore transcription artifacts that do not change meaning.
- Provide a confidence score (0.0–1.0) for your verdict.
- Keep reasoning to one sentence.`

var judgeUserTemplate = template.Must(template.New("judge").Parse(`Question: {{.QuestionText}}
Official answer: {{.Canonical.Primary}}
{{- if .Canonical.Acceptable}}
Also acceptable:
{{- range .Canonical.Acceptable}}
- {{.}}
{{- end}}
{{- end}}
Contestant's answer: {{.Response}}`))

func buildJudgeMessage(req *answer.Request) (string, error) {
	var buf bytes.Buffer
	if err := judgeUserTemplate.Execute(&buf, req); err != nil {
		return "", err
	}
	return buf.String(), nil
}
