package domain

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncateText(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{name: "fits", in: "short", limit: 10, want: "short"},
		{name: "exact", in: "short", limit: 5, want: "short"},
		{name: "ascii cut", in: "hello world", limit: 5, want: "hello"},
		{name: "zero limit", in: "hello", limit: 0, want: "hello"},
		{name: "empty", in: "", limit: 5, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TruncateText(tt.in, tt.limit))
		})
	}
}

func TestTruncateText_RuneBoundary(t *testing.T) {
	// é is two bytes, a limit landing mid-rune must back off
	s := strings.Repeat("é", 10)
	got := TruncateText(s, 5)
	assert.Equal(t, "éé", got)
	assert.True(t, utf8.ValidString(got))

	// never splits a 4-byte emoji either
	for limit := 1; limit < 12; limit++ {
		assert.True(t, utf8.ValidString(TruncateText("a🚀b🚀c", limit)), "limit %d", limit)
	}
}
