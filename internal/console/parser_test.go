package console

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		tokens     []string
		positional []string
		flags      map[string]string
	}{
		{
			name:       "long flag with equals",
			tokens:     []string{"report", "--format=wide"},
			positional: []string{"report"},
			flags:      map[string]string{"format": "wide"},
		},
		{
			name:       "long flag consumes next token",
			tokens:     []string{"--date", "2026-01-02", "standup"},
			positional: []string{"standup"},
			flags:      map[string]string{"date": "2026-01-02"},
		},
		{
			name:       "long flag at end of input gets empty value",
			tokens:     []string{"standup", "--date"},
			positional: []string{"standup"},
			flags:      map[string]string{"date": ""},
		},
		{
			name:       "consumed value is removed even when flag-like",
			tokens:     []string{"--date", "--tomorrow", "standup"},
			positional: []string{"standup"},
			flags:      map[string]string{"date": "--tomorrow"},
		},
		{
			name:       "short flag resolves through alias table",
			tokens:     []string{"Ship", "release", "-p", "high"},
			positional: []string{"Ship", "release"},
			flags:      map[string]string{"priority": "high"},
		},
		{
			name:       "short flag consumes flag-like value",
			tokens:     []string{"-d", "-p", "review"},
			positional: []string{"review"},
			flags:      map[string]string{"date": "-p"},
		},
		{
			name:       "unknown short flag is dropped without consuming",
			tokens:     []string{"-z", "keep", "this"},
			positional: []string{"keep", "this"},
			flags:      map[string]string{},
		},
		{
			name:       "every alias maps to its long name",
			tokens:     []string{"-p", "1", "-d", "2", "-t", "3", "-h", "4", "-f", "5"},
			positional: []string{},
			flags: map[string]string{
				"priority": "1", "date": "2", "tags": "3", "help": "4", "format": "5",
			},
		},
		{
			name:       "dash word stays positional",
			tokens:     []string{"-green"},
			positional: []string{"-green"},
			flags:      map[string]string{},
		},
		{
			name:       "bare dash stays positional",
			tokens:     []string{"-"},
			positional: []string{"-"},
			flags:      map[string]string{},
		},
		{
			name:       "no tokens",
			tokens:     nil,
			positional: []string{},
			flags:      map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			positional, flags := Parse(tt.tokens)
			if diff := cmp.Diff(tt.positional, positional); diff != "" {
				t.Errorf("positional mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.flags, flags); diff != "" {
				t.Errorf("flags mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTokenizeSplitsOnWhitespace(t *testing.T) {
	got := Tokenize("  todo.add   \"Ship release\"\t-p high ")
	want := []string{"todo.add", `"Ship`, `release"`, "-p", "high"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Tokenize mismatch (-want +got):\n%s", diff)
	}
}
