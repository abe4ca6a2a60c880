package chat

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Alice", "Alice"},
		{"symbols stripped", "Al_ice!", "Alice"},
		{"html metacharacters stripped", `<b onclick="x()">Bob</b>`, "b onclickxBobb"},
		{"trimmed", "  Alice  ", "Alice"},
		{"spaces collapsed", "Alice   in    Chains", "Alice in Chains"},
		{"digits kept", "room42", "room42"},
		{"empty", "", ""},
		{"only symbols", "!@#$%^&*", ""},
		{"multi byte stripped", "héllo wörld", "hllo wrld"},
		{"at the limit", strings.Repeat("a", 32), strings.Repeat("a", 32)},
		{"over the limit", strings.Repeat("a", 33), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clean(tt.in))
		})
	}
}

func TestCleanIdempotent(t *testing.T) {
	inputs := []string{
		"Alice", "Al_ice!", "  spaced   out  ", "<script>alert(1)</script>",
		"", "!!!", strings.Repeat("x", 33), "héllo", "a b  c   d",
	}
	for _, in := range inputs {
		once := Clean(in)
		assert.Equal(t, once, Clean(once), "Clean(Clean(%q))", in)
	}
}

func TestCleanCharacterSet(t *testing.T) {
	allowed := regexp.MustCompile(`^[A-Za-z0-9 ]*$`)
	inputs := []string{
		"Alice", "<i>x</i>", "a&b\"c'd", "tab\there", "new\nline", "日本語テスト",
	}
	for _, in := range inputs {
		out := Clean(in)
		assert.True(t, allowed.MatchString(out), "Clean(%q) = %q", in, out)
		assert.LessOrEqual(t, len(out), MaxNameLength)
	}
}
