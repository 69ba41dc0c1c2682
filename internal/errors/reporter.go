package errors

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"monkey/internal/token"
)

// ErrorLevel represents the severity of an error
type ErrorLevel string

const (
	Error   ErrorLevel = "error"
	Warning ErrorLevel = "warning"
	Note    ErrorLevel = "note"
	Help    ErrorLevel = "help"
)

// CompilerError is a diagnostic ready to be rendered against its source.
type CompilerError struct {
	Level       ErrorLevel
	Code        string         // Error code like E0101
	Message     string         // Primary error message
	Position    token.Position // Location in source
	Length      int            // Length of the problematic region in bytes
	Suggestions []Suggestion
	Notes       []string
	HelpText    string
}

type Suggestion struct {
	Message     string
	Replacement string // optional
}

// ErrorReporter renders diagnostics for a single source file.
type ErrorReporter struct {
	filename string
	source   string
	lines    []string
}

func NewErrorReporter(filename, source string) *ErrorReporter {
	return &ErrorReporter{
		filename: filename,
		source:   source,
		lines:    strings.Split(source, "\n"),
	}
}

// SetColor forces coloured output on or off for every reporter.
func SetColor(enabled bool) {
	color.NoColor = !enabled
}

// palette holds the colour functions used while rendering one diagnostic.
type palette struct {
	level      func(...any) string
	bold       func(...any) string
	dim        func(...any) string
	suggestion func(...any) string
	note       func(...any) string
	help       func(...any) string
}

func newPalette(level ErrorLevel) palette {
	return palette{
		level:      levelColor(level),
		bold:       color.New(color.Bold).SprintFunc(),
		dim:        color.New(color.Faint).SprintFunc(),
		suggestion: color.New(color.FgCyan).SprintFunc(),
		note:       color.New(color.FgBlue).SprintFunc(),
		help:       color.New(color.FgGreen).SprintFunc(),
	}
}

// FormatError renders err as a header, a location line and the source
// lines around it with the offending region underlined, followed by any
// suggestions, notes and help.
func (er *ErrorReporter) FormatError(err CompilerError) string {
	var b strings.Builder

	p := newPalette(err.Level)
	width := er.getLineNumberWidth(err.Position.Line)
	blank := strings.Repeat(" ", width)
	bar := p.dim("│")

	// error[E0101]: message
	header := string(err.Level)
	if err.Code != "" {
		header += "[" + err.Code + "]"
	}
	fmt.Fprintf(&b, "%s: %s\n", p.level(header), err.Message)
	fmt.Fprintf(&b, "%s %s %s:%s\n", blank, p.dim("-->"), er.filename, err.Position)
	fmt.Fprintf(&b, "%s %s\n", blank, bar)

	line := err.Position.Line
	for n := line - 1; n <= line+1; n++ {
		text, ok := er.line(n)
		if !ok {
			continue
		}

		number := fmt.Sprintf("%*d", width, n)
		switch {
		case n == line:
			fmt.Fprintf(&b, "%s %s %s\n", p.bold(number), bar, text)
			fmt.Fprintf(&b, "%s %s %s\n", blank, bar,
				er.createMarker(err.Position.Column, er.clampLength(err, text), err.Level))
		case n > line && text == "":
			// a blank line after the error adds no context
		default:
			fmt.Fprintf(&b, "%s %s %s\n", p.dim(number), bar, text)
		}
	}

	if len(err.Suggestions) > 0 {
		fmt.Fprintf(&b, "%s %s\n", blank, bar)
	}
	for i, suggestion := range err.Suggestions {
		if i == 0 {
			fmt.Fprintf(&b, "%s %s %s: %s\n", blank, p.suggestion("help"), p.suggestion("try"), suggestion.Message)
		} else {
			fmt.Fprintf(&b, "%s %s %s\n", blank, p.suggestion("    "), suggestion.Message)
		}

		if suggestion.Replacement == "" {
			continue
		}
		fmt.Fprintf(&b, "%s %s\n", blank, bar)
		for _, replacement := range strings.Split(suggestion.Replacement, "\n") {
			fmt.Fprintf(&b, "%s %s %s\n", blank, p.suggestion("│"), p.suggestion(replacement))
		}
	}

	for _, note := range err.Notes {
		fmt.Fprintf(&b, "%s %s %s %s\n", blank, bar, p.note("note:"), note)
	}
	if err.HelpText != "" {
		fmt.Fprintf(&b, "%s %s %s %s\n", blank, bar, p.help("help:"), err.HelpText)
	}

	b.WriteString("\n")
	return b.String()
}

// FormatErrors renders every diagnostic followed by a summary line.
func (er *ErrorReporter) FormatErrors(errs []CompilerError) string {
	if len(errs) == 0 {
		return ""
	}

	var b strings.Builder
	for _, err := range errs {
		b.WriteString(er.FormatError(err))
	}

	noun := "error"
	if len(errs) > 1 {
		noun = "errors"
	}
	fmt.Fprintf(&b, "%s: could not parse %s due to %d previous %s\n",
		levelColor(Error)(string(Error)), er.filename, len(errs), noun)

	return b.String()
}

// line returns the 1-based source line n.
func (er *ErrorReporter) line(n int) (string, bool) {
	if n < 1 || n > len(er.lines) {
		return "", false
	}
	return er.lines[n-1], true
}

var levelAttributes = map[ErrorLevel]color.Attribute{
	Error:   color.FgRed,
	Warning: color.FgYellow,
	Note:    color.FgBlue,
	Help:    color.FgGreen,
}

func levelColor(level ErrorLevel) func(...any) string {
	attr, ok := levelAttributes[level]
	if !ok {
		attr = color.FgRed
	}
	return color.New(attr, color.Bold).SprintFunc()
}

// clampLength keeps the underline on the reported line. Errors at the end
// of input have no text to underline and get a single caret.
func (er *ErrorReporter) clampLength(err CompilerError, line string) int {
	length := err.Length
	if rest := len(line) - (err.Position.Column - 1); length > rest {
		length = rest
	}
	return max(length, 1)
}

// createMarker draws the caret underline; warnings are yellow, everything
// else red.
func (er *ErrorReporter) createMarker(column, length int, level ErrorLevel) string {
	markerLevel := Error
	if level == Warning {
		markerLevel = Warning
	}
	return strings.Repeat(" ", max(0, column-1)) + levelColor(markerLevel)(strings.Repeat("^", max(length, 1)))
}

func (er *ErrorReporter) getLineNumberWidth(line int) int {
	return max(len(strconv.Itoa(line)), 3) // minimum width for visual alignment
}
