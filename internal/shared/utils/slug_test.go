package utils_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"deadparty-backend/internal/shared/utils"
)

func TestGenerateSlug(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"Hardcore Summer: 2025 Recap!": "hardcore-summer-2025-recap",
		"  Leading and trailing  ":     "leading-and-trailing",
		"Multiple   spaces":            "multiple-spaces",
		"UPPER case":                   "upper-case",
		"emoji 🤘 gone":                 "emoji-gone",
		"---":                          "",
	}
	for input, want := range cases {
		require.Equal(t, want, utils.GenerateSlug(input), "input %q", input)
	}
}

func TestTruncateRunes(t *testing.T) {
	t.Parallel()

	require.Equal(t, "abc", utils.TruncateRunes("abc", 10))
	require.Equal(t, "ab", utils.TruncateRunes("abc", 2))
	require.Equal(t, strings.Repeat("x", 100), utils.TruncateRunes(strings.Repeat("x", 150), 100))

	// Multi-byte safe.
	require.Equal(t, "héll", utils.TruncateRunes("héllo", 4))
}
