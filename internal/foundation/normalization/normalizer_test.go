package normalization

import (
	"strings"
	"testing"
)

type level string

const (
	levelInfo level = "info"
	levelWarn level = "warn"
)

func newLevelNormalizer() *Normalizer[level] {
	return NewNormalizer(map[string]level{
		"info":    levelInfo,
		"warn":    levelWarn,
		"warning": levelWarn,
	}, levelInfo)
}

func TestNormalizer_Normalize(t *testing.T) {
	n := newLevelNormalizer()

	tests := []struct {
		name     string
		input    string
		expected level
	}{
		{"exact match", "warn", levelWarn},
		{"case insensitive", "WARN", levelWarn},
		{"alias", " Warning ", levelWarn},
		{"empty uses default", "", levelInfo},
		{"unknown uses default", "verbose", levelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := n.Normalize(tt.input); got != tt.expected {
				t.Errorf("Normalize(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalizer_NormalizeWithError(t *testing.T) {
	n := newLevelNormalizer()

	if v, err := n.NormalizeWithError("level", ""); err != nil || v != levelInfo {
		t.Errorf("expected default for empty input, got %v, %v", v, err)
	}
	if v, err := n.NormalizeWithError("level", "WARNING"); err != nil || v != levelWarn {
		t.Errorf("expected warn, got %v, %v", v, err)
	}
	_, err := n.NormalizeWithError("level", "loud")
	if err == nil {
		t.Fatal("expected error for unknown value")
	}
	if !strings.Contains(err.Error(), "info, warn, warning") {
		t.Errorf("expected sorted valid keys in error, got %q", err)
	}
}
