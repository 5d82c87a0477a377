// Package output writes the per-commit status lines the user watches during
// a run, and an optional debug log file.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	commitTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	warnStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	dimStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Splog provides structured status output.
type Splog struct {
	writer   io.Writer
	colorize bool
	debug    *DebugLog
}

// NewSplog creates a splog writing to stdout, with color when stdout is a
// terminal.
func NewSplog() *Splog {
	return &Splog{
		writer:   os.Stdout,
		colorize: isatty.IsTerminal(os.Stdout.Fd()),
		debug:    OpenDebugLog(),
	}
}

// NewSplogWriter creates a splog writing to w without color. Used in tests.
func NewSplogWriter(w io.Writer) *Splog {
	return &Splog{writer: w, debug: OpenDebugLog()}
}

// Output writes a status line with a leading emoji, mirroring the per-commit
// progress lines printed before remote interaction begins.
func (s *Splog) Output(emoji, format string, args ...interface{}) {
	fmt.Fprintf(s.writer, emoji+" "+format+"\n", args...)
}

// CommitTitle writes the highlighted title line announcing which commit is
// being processed.
func (s *Splog) CommitTitle(title string) {
	if title == "" {
		title = "(untitled commit)"
	}
	s.Newline()
	fmt.Fprintln(s.writer, s.style(commitTitleStyle, title))
}

// Info writes a plain info message.
func (s *Splog) Info(format string, args ...interface{}) {
	fmt.Fprintf(s.writer, format+"\n", args...)
}

// Warn writes a warning message.
func (s *Splog) Warn(format string, args ...interface{}) {
	fmt.Fprintln(s.writer, s.style(warnStyle, "⚠️  "+fmt.Sprintf(format, args...)))
}

// Error writes an error message.
func (s *Splog) Error(format string, args ...interface{}) {
	fmt.Fprintln(s.writer, s.style(errorStyle, "❌ "+fmt.Sprintf(format, args...)))
}

// Dim writes secondary detail.
func (s *Splog) Dim(format string, args ...interface{}) {
	fmt.Fprintln(s.writer, s.style(dimStyle, fmt.Sprintf(format, args...)))
}

// Newline writes a blank line.
func (s *Splog) Newline() {
	fmt.Fprintln(s.writer)
}

// Debug writes to the debug log file; a no-op unless JJ_SPR_LOG is set.
func (s *Splog) Debug(format string, args ...interface{}) {
	s.debug.Printf(format, args...)
}

func (s *Splog) style(style lipgloss.Style, text string) string {
	if !s.colorize {
		return text
	}
	return style.Render(text)
}
