package output

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestSplogWriterIsPlainText(t *testing.T) {
	var out bytes.Buffer
	splog := NewSplogWriter(&out)

	splog.Output("✅", "Created Pull Request: %s", "https://github.com/acme/widgets/pull/1")
	splog.Error("something went wrong")

	text := out.String()
	assert.Contains(t, text, "✅ Created Pull Request: https://github.com/acme/widgets/pull/1\n")
	assert.Contains(t, text, "❌ something went wrong\n")
	assert.NotContains(t, text, "\x1b[")
}

func TestCommitTitleIsStyledWhenColorized(t *testing.T) {
	// Pin the color profile so the assertion holds off a terminal.
	restore := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.ANSI)
	defer lipgloss.SetColorProfile(restore)

	var out bytes.Buffer
	splog := &Splog{writer: &out, colorize: true, debug: OpenDebugLog()}

	splog.CommitTitle("Add widget cache")

	assert.Contains(t, out.String(), "Add widget cache")
	assert.Contains(t, out.String(), "\x1b[")
}

func TestCommitTitleFallbackForUntitledCommit(t *testing.T) {
	var out bytes.Buffer
	splog := NewSplogWriter(&out)

	splog.CommitTitle("")

	assert.Contains(t, out.String(), "(untitled commit)")
}
