package guidance

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Service turns a feeling string into an enriched guidance response.
type Service struct {
	completer Completer
}

// NewService builds a Service on top of a Completer.
func NewService(c Completer) *Service {
	return &Service{completer: c}
}

// Guide asks the model for guidance on the feeling, parses the JSON reply
// best-effort, and enriches the Qur'an quotes with audio URLs. Upstream and
// parse failures are returned for the caller to map to an HTTP status;
// enrichment itself cannot fail.
func (s *Service) Guide(ctx context.Context, feeling string) (*Response, error) {
	raw, err := s.completer.Complete(ctx, feeling)
	if err != nil {
		return nil, err
	}

	var resp Response
	if err := json.Unmarshal([]byte(stripFences(raw)), &resp); err != nil {
		return nil, fmt.Errorf("parse model reply: %w", err)
	}

	Enrich(&resp)
	return &resp, nil
}

// stripFences removes a surrounding markdown code fence from a model reply.
// Models occasionally wrap JSON in ```json fences despite instructions.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
