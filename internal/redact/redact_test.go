package redact_test

import (
	"errors"
	"testing"

	"github.com/jmallory/roster-api/internal/redact"
	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains string
		excludes string
	}{
		{
			name:     "email address",
			input:    "duplicate email john.smith@example.com",
			contains: redact.RedactedEmailPlaceholder,
			excludes: "john.smith@example.com",
		},
		{
			name:     "unix path",
			input:    "open /etc/roster/config.yaml: permission denied",
			contains: redact.RedactedPathPlaceholder,
			excludes: "/etc/roster/config.yaml",
		},
		{
			name:     "credential fragment",
			input:    "config error: api_key=abc123def456 rejected",
			contains: redact.RedactionPlaceholder,
			excludes: "abc123def456",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := redact.String(tc.input)
			assert.Contains(t, got, tc.contains)
			assert.NotContains(t, got, tc.excludes)
		})
	}
}

func TestStringLeavesPlainTextAlone(t *testing.T) {
	assert.Equal(t, "record not found", redact.String("record not found"))
	assert.Equal(t, "", redact.String(""))
}

func TestError(t *testing.T) {
	assert.Equal(t, "", redact.Error(nil))

	err := errors.New("conflict on jane@x.com")
	got := redact.Error(err)
	assert.NotContains(t, got, "jane@x.com")
}
