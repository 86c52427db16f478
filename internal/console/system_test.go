package console_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/gt4500/internal/console"
	"github.com/cory-johannsen/gt4500/internal/ship"
)

var (
	commentRe    = regexp.MustCompile(`#.*`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// normalize strips comments, collapses whitespace runs to single spaces, and
// trims, so script expectations survive incidental formatting differences.
func normalize(s string) string {
	s = commentRe.ReplaceAllString(s, "")
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// TestScripts drives the console with each canned command script under
// testdata/scripts and diffs the normalized output against the sibling
// expectation file. Scripts without an expectation file are skipped.
func TestScripts(t *testing.T) {
	inputs, err := filepath.Glob(filepath.Join("testdata", "scripts", "input*"))
	require.NoError(t, err)
	require.NotEmpty(t, inputs, "no command scripts found")

	for _, input := range inputs {
		input := input
		t.Run(filepath.Base(input), func(t *testing.T) {
			script, err := os.ReadFile(input)
			require.NoError(t, err)

			c, _ := newTestConsole(ship.NewCryptoSource())
			var out bytes.Buffer
			err = c.RunReader(context.Background(), bytes.NewReader(script), &out, console.NewOptionalSink(nil))
			require.NoError(t, err)

			expectedPath := strings.Replace(input, "input", "output", 1)
			expected, err := os.ReadFile(expectedPath)
			if os.IsNotExist(err) {
				t.Skipf("no expectation file %s", expectedPath)
			}
			require.NoError(t, err)

			assert.Equal(t, normalize(string(expected)), normalize(out.String()), expectedPath)
		})
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "SUCCESS FAIL", normalize("SUCCESS # first shot\n\nFAIL\n"))
	assert.Equal(t, "", normalize("# only comments\n#\n"))
}
