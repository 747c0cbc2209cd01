package ui

import (
	"encoding/json"
	"io"
)

// Severity classifies the visual weight of a piece of inline text, mirroring
// the output methods on UI. The print layer maps each value to the
// corresponding terminal style; data consumers (JSON, tests) see plain text.
type Severity uint8

const (
	SeverityInfo     Severity = iota // plain — no colour emphasis
	SeveritySuccess                  // green  — known / positive
	SeverityWarn                     // yellow — uncertain / needs attention
	SeverityError                    // red    — unknown / negative
	SeverityCritical                 // bold   — must-review before action
)

// StyledText pairs a plain string with a Severity annotation.
//
// JSON serialization: the struct marshals as just the plain Text string so
// consumers receive clean output with no ANSI codes and no extra structure.
type StyledText struct {
	Text     string
	Severity Severity
}

// MarshalJSON serializes StyledText as a plain JSON string (just Text).
func (s StyledText) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Text)
}

// UI provides all terminal interaction for starkctl commands.
//
// It abstracts output and user prompts so that:
//   - Production code uses TerminalUI (writes to os.Stdout, reads from os.Stdin)
//   - Tests use RecordingUI (captures all output, serves scripted inputs)
//
// Use [UI.Indent] to get a child UI at one deeper indent level for nested
// flows (e.g. per-step output while fetching an account). The child shares
// the same underlying writer and reader, so input sequencing is preserved
// across scopes.
type UI interface {
	// --- Output ---

	// Style returns the text from t coloured according to its Severity.
	// When colours are disabled (e.g. piped output, RecordingUI) the plain
	// text is returned unchanged.
	Style(t StyledText) string

	// Info writes a neutral status line (no prefix, no color).
	Info(format string, args ...any)

	// Success writes a positive outcome in green.
	Success(format string, args ...any)

	// Warn writes a non-fatal warning in yellow. Warnings are a side channel:
	// they never influence control flow.
	Warn(format string, args ...any)

	// Error writes a failure in red.
	// This does NOT exit or return an error — callers decide what to do next.
	Error(format string, args ...any)

	// Critical writes data the user must review before taking an irreversible
	// action — a hash they are about to sign, or the address an account will
	// be deployed to. Rendered bold so it stands out from plain Info output.
	Critical(format string, args ...any)

	// Section writes a visual separator centred around a title.
	// Example: "===== Account config ====="
	Section(title string)

	// KeyValue renders an aligned 2-column block — label on the left,
	// value on the right — with all values left-aligned to the same column.
	KeyValue(rows [][2]string)

	// Table renders a full bordered table with a header row followed by data
	// rows. When headers is empty no header row is rendered.
	Table(headers []string, rows [][]string)

	// Spinner starts an animated spinner with the given message and returns a
	// stop function. Call the stop function (or defer it) to clear the spinner
	// once the work is done. In RecordingUI and non-terminal contexts the stop
	// function is a no-op.
	Spinner(msg string) func()

	// --- Input ---

	// Ask displays a "> " prompt at the current indent level and reads a line.
	// It loops until validate returns nil. Pass nil to accept any input.
	// The caller is responsible for printing a label line before calling Ask.
	Ask(validate func(string) error) string

	// AskSecret reads a line without echoing it to the terminal. Used for
	// keystore passwords and pasted private keys so secrets never land in
	// scrollback. The prompt is printed first on its own.
	AskSecret(prompt string) (string, error)

	// Confirm asks a yes/no question and returns the boolean answer.
	// It prints the prompt text followed by [Y/n] or [y/N], then a "> " cursor.
	Confirm(prompt string, defaultYes bool) bool

	// --- Nesting ---

	// Indent returns a child UI with indent level increased by one,
	// sharing the same underlying writer and reader as the parent.
	Indent() UI

	// Writer returns an io.Writer that prepends the current indentation
	// to every line. Use this when calling functions that take io.Writer
	// directly (e.g. streaming a JSON document into the output).
	Writer() io.Writer
}
