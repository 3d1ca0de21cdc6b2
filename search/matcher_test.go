package search

import (
	"testing"

	"github.com/kakkky/codesearch/errs"
)

func TestMatcher(t *testing.T) {
	tests := []struct {
		name          string
		key           string
		useRegex      bool
		line          string
		wantMatch     bool
		wantHighlight string
	}{
		{
			name:          "plain substring",
			key:           "Age",
			line:          "void updateAge(struct Person *p, int newAge) {",
			wantMatch:     true,
			wantHighlight: "Age",
		},
		{
			name:          "plain is not a regex",
			key:           "update.*",
			line:          "updateAge",
			wantMatch:     false,
			wantHighlight: "update.*",
		},
		{
			name:          "regex highlights the last match",
			key:           `[a-z]+Age`,
			useRegex:      true,
			line:          "updateAge(p, newAge)",
			wantMatch:     true,
			wantHighlight: "newAge",
		},
		{
			name:          "regex without match falls back to key",
			key:           `^circle`,
			useRegex:      true,
			line:          "class Circle",
			wantMatch:     false,
			wantHighlight: `^circle`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMatcher(tt.key, tt.useRegex)
			if err != nil {
				t.Fatalf("NewMatcher() error = %v", err)
			}
			if got := m.Match(tt.line); got != tt.wantMatch {
				t.Errorf("Match() = %v, want %v", got, tt.wantMatch)
			}
			if got := m.Highlight(tt.line); got != tt.wantHighlight {
				t.Errorf("Highlight() = %q, want %q", got, tt.wantHighlight)
			}
		})
	}
}

func TestNewMatcherInvalidRegex(t *testing.T) {
	_, err := NewMatcher("(unclosed", true)
	if err == nil {
		t.Fatal("NewMatcher() error = nil, want error")
	}
	if got := errs.ClassifyError(err); got != errs.BAD_INPUT_ERROR {
		t.Errorf("ClassifyError() = %s, want %s", got, errs.BAD_INPUT_ERROR)
	}
}
