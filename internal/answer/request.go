package answer

import (
	"fmt"

	"github.com/google/uuid"
)

// Request carries one candidate response to be validated against a
// canonical answer. Requests are created per call and discarded after the
// verdict is returned.
type Request struct {
	// ID correlates the request with its verdict across async dispatch.
	ID string

	// Response is the raw contestant text, typically a speech transcript.
	Response string

	// Canonical is the answer record the response is checked against.
	Canonical *CanonicalAnswer

	// Policy is the region-derived strictness policy for this session.
	Policy StrictnessPolicy

	// QuestionText is the originating question. Only the reasoning tier
	// reads it; it may be empty when that tier is unavailable.
	QuestionText string
}

// NewRequest builds a Request with a fresh ID.
// It is the only caller-visible configuration error surface: a nil
// canonical answer or an unknown policy fails here, never inside Validate.
func NewRequest(response string, canonical *CanonicalAnswer, policy StrictnessPolicy) (*Request, error) {
	if canonical == nil {
		return nil, fmt.Errorf("canonical answer is required")
	}
	if canonical.Primary == "" {
		return nil, fmt.Errorf("canonical answer has no primary text")
	}
	if _, err := ParsePolicy(string(policy)); err != nil {
		return nil, err
	}
	return &Request{
		ID:        uuid.NewString(),
		Response:  response,
		Canonical: canonical,
		Policy:    policy,
	}, nil
}
