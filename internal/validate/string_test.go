package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckLength_WithinBounds(t *testing.T) {
	tests := []struct {
		name  string
		value string
		min   int
		max   int
	}{
		{"exact minimum", "abc", 3, 10},
		{"exact maximum", "abcdefghij", 3, 10},
		{"between bounds", "hello", 3, 10},
		{"empty allowed", "", 0, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := CheckLength(tt.value, tt.min, tt.max)
			assert.True(t, outcome.OK)
			assert.Empty(t, outcome.Message)
		})
	}
}

func TestCheckLength_BelowMinimum(t *testing.T) {
	outcome := CheckLength("ab", 3, 10)

	require.False(t, outcome.OK)
	assert.Contains(t, outcome.Message, "below minimum")
}

func TestCheckLength_AboveMaximum(t *testing.T) {
	outcome := CheckLength("abcdefghijk", 3, 10)

	require.False(t, outcome.OK)
	assert.Contains(t, outcome.Message, "exceeds maximum")
}

func TestCheckLength_CountsCharactersNotBytes(t *testing.T) {
	// five characters, six bytes
	outcome := CheckLength("héllo", 1, 5)
	assert.True(t, outcome.OK)

	outcome = CheckLength("ééé", 4, 10)
	require.False(t, outcome.OK)
	assert.Contains(t, outcome.Message, "length 3")
}

func TestCheckLength_DefaultMaximum(t *testing.T) {
	// maxLength <= 0 falls back to MaxStringLength
	ok := CheckLength(strings.Repeat("x", MaxStringLength), 0, 0)
	assert.True(t, ok.OK)

	tooLong := CheckLength(strings.Repeat("x", MaxStringLength+1), 0, 0)
	require.False(t, tooLong.OK)
	assert.Contains(t, tooLong.Message, "exceeds maximum")
}

func TestCheckFormat_CleanStrings(t *testing.T) {
	tests := []string{
		"valid-item-name",
		"Hello, World!",
		"user_42",
		"a plain sentence with punctuation.",
		"semicolon; without sql keywords",
	}

	for _, value := range tests {
		t.Run(value, func(t *testing.T) {
			assert.True(t, CheckFormat(value).OK)
		})
	}
}

func TestCheckFormat_DeniedPatterns(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		pattern string
	}{
		{"script tag", "<script>alert(1)</script>", "<script"},
		{"javascript url", "javascript:alert(1)", "javascript:"},
		{"onerror attribute", `<img src=x onerror=alert(1)>`, "onerror="},
		{"sql line comment", "test--comment", "--"},
		{"sql block comment", "test/*comment*/", "/*"},
		{"single quote semicolon", "'; DROP TABLE users", "';"},
		{"union select", "1 UNION SELECT password FROM users", "union select"},
		{"drop table", "x drop table y", "drop table"},
		{"delete from", "x DELETE FROM y", "delete from"},
		{"extended procedure", "exec xp_cmdshell", "xp_"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := CheckFormat(tt.value)
			require.False(t, outcome.OK)
			assert.Contains(t, outcome.Message, tt.pattern)
		})
	}
}

func TestCheckFormat_FirstMatchWins(t *testing.T) {
	// both "<script" and "--" are present; the denylist is ordered so the
	// script pattern is the one reported
	outcome := CheckFormat("<script>-- nasty")

	require.False(t, outcome.OK)
	assert.Contains(t, outcome.Message, "<script")
}

func TestCheckFormat_SemicolonWithSQLKeyword(t *testing.T) {
	tests := []string{
		"test;drop something",
		"a; DELETE b",
		"x;insert y",
	}

	for _, value := range tests {
		t.Run(value, func(t *testing.T) {
			outcome := CheckFormat(value)
			require.False(t, outcome.OK)
			assert.Contains(t, outcome.Message, "semicolon with SQL keywords")
		})
	}
}

func TestCheckFormat_CaseInsensitive(t *testing.T) {
	outcome := CheckFormat("<SCRIPT>alert(1)</SCRIPT>")
	assert.False(t, outcome.OK)
}
