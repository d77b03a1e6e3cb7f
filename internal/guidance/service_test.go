package guidance

import (
	"context"
	"errors"
	"testing"
)

// stubCompleter returns a canned reply or error.
type stubCompleter struct {
	reply string
	err   error
}

func (s *stubCompleter) Complete(ctx context.Context, feeling string) (string, error) {
	return s.reply, s.err
}

const sampleReply = `{
	"mapped": {
		"feeling": "anxiety",
		"quran": {"en": "So, surely with hardship comes ease.", "ref": "Q 94:5-6"},
		"hadith": {"en": "How wonderful is the affair of the believer.", "ref": "Muslim 2999"},
		"counsel": {"by": "Ibn al-Qayyim", "text": "Entrust outcomes to Allah."},
		"dua": "Hasbunallahu wa ni'mal wakeel."
	},
	"peptalk": "Breathe. This will pass."
}`

func TestServiceGuide(t *testing.T) {
	svc := NewService(&stubCompleter{reply: sampleReply})

	resp, err := svc.Guide(context.Background(), "anxious")
	if err != nil {
		t.Fatalf("Guide: %v", err)
	}

	if resp.Mapped.Feeling != "anxiety" {
		t.Errorf("Feeling = %q", resp.Mapped.Feeling)
	}
	if len(resp.Mapped.Quran.Audio) != 2 {
		t.Errorf("Quran.Audio = %v, want 2 URLs", resp.Mapped.Quran.Audio)
	}
	if resp.Mapped.Hadith.Audio != nil {
		t.Errorf("Hadith.Audio = %v, want nil", resp.Mapped.Hadith.Audio)
	}
}

func TestServiceGuideFencedReply(t *testing.T) {
	svc := NewService(&stubCompleter{reply: "```json\n" + sampleReply + "\n```"})

	resp, err := svc.Guide(context.Background(), "anxious")
	if err != nil {
		t.Fatalf("Guide with fenced reply: %v", err)
	}
	if resp.Mapped.Quran.Ref != "Q 94:5-6" {
		t.Errorf("Ref = %q", resp.Mapped.Quran.Ref)
	}
}

func TestServiceGuideUpstreamError(t *testing.T) {
	upstreamErr := errors.New("upstream down")
	svc := NewService(&stubCompleter{err: upstreamErr})

	if _, err := svc.Guide(context.Background(), "anxious"); !errors.Is(err, upstreamErr) {
		t.Errorf("Guide error = %v, want wrapped %v", err, upstreamErr)
	}
}

func TestServiceGuideBadJSON(t *testing.T) {
	svc := NewService(&stubCompleter{reply: "I cannot answer in JSON today."})

	if _, err := svc.Guide(context.Background(), "anxious"); err == nil {
		t.Error("Guide with non-JSON reply should fail")
	}
}

func TestStripFences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare json", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"plain fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding whitespace", "  {\"a\":1}\n", `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripFences(tt.input); got != tt.want {
				t.Errorf("stripFences(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
