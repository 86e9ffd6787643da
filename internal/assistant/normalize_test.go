package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"  Hello  ", "hello"},
		{"Create\tA   NEW\n\ninvoice", "create a new invoice"},
		{" Tax Jar ", "tax jar"},
		{"already normal", "already normal"},
	}
	for _, tt := range tests {
		got := Normalize(tt.in)
		assert.Equal(t, tt.want, got)
		assert.Equal(t, got, Normalize(got), "not idempotent for %q", tt.in)
	}
}
