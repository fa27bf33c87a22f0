package reasoning

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/quizbee/adjudicator/internal/answer"
	"github.com/quizbee/adjudicator/internal/llm"
)

func judgeRequest(t *testing.T, response string) *answer.Request {
	t.Helper()
	req, err := answer.NewRequest(response, &answer.CanonicalAnswer{
		Primary:    "Jupiter",
		Acceptable: []string{"the planet Jupiter"},
	}, answer.PolicyLenient)
	if err != nil {
		t.Fatal(err)
	}
	req.QuestionText = "What is the largest planet in the solar system?"
	return req
}

func TestJudge_CorrectVerdict(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"verdict":"CORRECT","confidence":0.93,"reasoning":"Same planet, different phrasing."}`),
	})
	j := NewJudge(mock, DefaultConfig())

	v, err := j.Evaluate(context.Background(), judgeRequest(t, "the gas giant Jupiter"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !v.Correct {
		t.Error("expected a correct verdict")
	}
	if v.Confidence != 0.93 {
		t.Errorf("confidence = %v, want 0.93", v.Confidence)
	}
	if v.Explanation == "" {
		t.Error("expected an explanation")
	}
}

func TestJudge_IncorrectVerdict(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"verdict":"INCORRECT","confidence":0.88,"reasoning":"Saturn is a different planet."}`),
	})
	j := NewJudge(mock, DefaultConfig())

	v, err := j.Evaluate(context.Background(), judgeRequest(t, "Saturn"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Correct {
		t.Error("expected an incorrect verdict")
	}
}

func TestJudge_MalformedVerdictIsError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"verdict":"MAYBE","confidence":0.5,"reasoning":"unsure"}`),
	})
	j := NewJudge(mock, DefaultConfig())

	if _, err := j.Evaluate(context.Background(), judgeRequest(t, "Jupiter")); err == nil {
		t.Fatal("expected error for unrecognized verdict")
	}
}

func TestJudge_ProviderErrorPropagates(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("model not loaded")},
	})
	j := NewJudge(mock, DefaultConfig())

	if _, err := j.Evaluate(context.Background(), judgeRequest(t, "Jupiter")); err == nil {
		t.Fatal("expected error when provider is unavailable")
	}
}

func TestJudge_ConfidenceClamped(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"verdict":"CORRECT","confidence":1.7,"reasoning":"over-eager model"}`),
	})
	j := NewJudge(mock, DefaultConfig())

	v, err := j.Evaluate(context.Background(), judgeRequest(t, "Jupiter"))
	if err != nil {
		t.Fatal(err)
	}
	if v.Confidence != 1.0 {
		t.Errorf("confidence = %v, want clamped to 1.0", v.Confidence)
	}
}

func TestJudge_PromptIncludesQuestionAndAlternates(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"verdict":"CORRECT","confidence":0.9,"reasoning":"ok"}`),
	})
	j := NewJudge(mock, DefaultConfig())

	if _, err := j.Evaluate(context.Background(), judgeRequest(t, "Jove")); err != nil {
		t.Fatal(err)
	}
	if len(mock.Calls) != 1 {
		t.Fatalf("expected one LLM call, got %d", len(mock.Calls))
	}
	prompt := mock.Calls[0].Messages[0].Content
	for _, want := range []string{"largest planet", "Jupiter", "the planet Jupiter", "Jove"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
	if mock.Calls[0].Temperature != 0.0 {
		t.Errorf("temperature = %v, want 0 for deterministic judging", mock.Calls[0].Temperature)
	}
}
