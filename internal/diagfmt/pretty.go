package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"notal/internal/diag"
	"notal/internal/source"
)

var (
	infoColor    = color.New(color.FgCyan)
	warningColor = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
	fatalColor   = color.New(color.FgRed, color.Bold)
)

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevInfo:
		return infoColor
	case diag.SevWarning:
		return warningColor
	case diag.SevFatal:
		return fatalColor
	default:
		return errorColor
	}
}

func paint(enabled bool, c *color.Color, s string) string {
	if !enabled {
		return s
	}
	return c.Sprint(s)
}

func formatPath(file *source.File, mode PathMode) string {
	if file == nil {
		return "<input>"
	}
	switch mode {
	case PathModeAbsolute:
		return file.FormatPath("absolute", "")
	case PathModeRelative:
		return file.FormatPath("relative", "")
	case PathModeBasename:
		return file.FormatPath("basename", "")
	default:
		return file.FormatPath("auto", "")
	}
}

// FormatDiagnostic renders one diagnostic: a header line
// "path:line:col: SEVERITY CODE: message", the source context block, then
// any notes and suggestions on their own prefixed lines. Rendering never
// mutates the diagnostic or the engine.
func FormatDiagnostic(w io.Writer, d diag.Diagnostic, file *source.File, opts PrettyOpts) {
	c := severityColor(d.Severity)

	pos := source.LineCol{}
	if file != nil {
		pos = file.Position(d.Primary.Start)
	}
	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		formatPath(file, opts.PathMode), pos.Line, pos.Col,
		paint(opts.Color, c, d.Severity.String()),
		paint(opts.Color, c, d.Code.ID()),
		d.Message)

	if !opts.NoContext {
		writeSourceContext(w, file, d.Primary, d.Severity, d.Message, opts.Color)
	}

	if opts.ShowNotes {
		for _, n := range d.Notes {
			npos := source.LineCol{}
			if file != nil {
				npos = file.Position(n.Span.Start)
			}
			fmt.Fprintf(w, "  note: %s (%s:%d:%d)\n",
				n.Msg, formatPath(file, opts.PathMode), npos.Line, npos.Col)
		}
	}
	if opts.ShowSuggestions {
		for _, s := range d.Suggestions {
			fmt.Fprintf(w, "  suggestion: %s\n", s)
		}
	}
}

// Pretty renders a list of diagnostics in order.
func Pretty(w io.Writer, items []diag.Diagnostic, file *source.File, opts PrettyOpts) {
	for _, d := range items {
		FormatDiagnostic(w, d, file, opts)
	}
}

// Report renders every diagnostic held by the engine followed by a one-line
// summary when the run produced anything. Calling it twice without an
// intervening report yields identical text.
func Report(eng *diag.Engine, opts PrettyOpts) string {
	var sb strings.Builder
	Pretty(&sb, eng.Items(), eng.File(), opts)
	if eng.ErrorCount() > 0 || eng.WarningCount() > 0 {
		fmt.Fprintf(&sb, "%d error(s), %d warning(s)\n",
			eng.ErrorCount(), eng.WarningCount())
	}
	return sb.String()
}
