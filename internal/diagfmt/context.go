package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"notal/internal/diag"
	"notal/internal/source"
)

// writeSourceContext renders the snippet under a diagnostic: the line
// before the error line (when there is one) and the error line itself,
// each with a line-number gutter, then a caret run under the offending
// range followed by the message. A positionless span (empty at offset 0)
// produces no context at all.
func writeSourceContext(w io.Writer, file *source.File, sp source.Span, sev diag.Severity, msg string, colorOn bool) {
	if file == nil || (sp.Empty() && sp.Start == 0) {
		return
	}
	pos := file.Position(sp.Start)
	lineText := file.GetLine(pos.Line)

	gutter := len(fmt.Sprintf("%d", pos.Line))
	if pos.Line > 1 {
		fmt.Fprintf(w, " %*d | %s\n", gutter, pos.Line-1, file.GetLine(pos.Line-1))
	}
	fmt.Fprintf(w, " %*d | %s\n", gutter, pos.Line, lineText)

	// pad to the error column using display width so carets line up even
	// under tabs and wide runes
	prefix := lineText
	if int(pos.Col-1) <= len(lineText) {
		prefix = lineText[:pos.Col-1]
	}
	pad := runewidth.StringWidth(strings.ReplaceAll(prefix, "\t", " "))

	carets := caretRun(file, sp, lineText, pos)
	c := severityColor(sev)
	fmt.Fprintf(w, " %*s | %s%s %s\n",
		gutter, "",
		strings.Repeat(" ", pad),
		paint(colorOn, c, strings.Repeat("^", carets)),
		paint(colorOn, c, msg))
}

// caretRun computes how many carets to draw: the display width of the
// spanned text, clipped to the error line, never less than one.
func caretRun(file *source.File, sp source.Span, lineText string, pos source.LineCol) int {
	start := sp.Start
	end := sp.End
	lineEnd := start - (pos.Col - 1) + uint32(len(lineText))
	if end > lineEnd {
		end = lineEnd
	}
	if end <= start || int(end) > len(file.Content) {
		return 1
	}
	width := runewidth.StringWidth(string(file.Content[start:end]))
	if width < 1 {
		return 1
	}
	return width
}
