package diagfmt

import (
	"encoding/json"
	"io"

	"notal/internal/diag"
	"notal/internal/source"
)

// LocationJSON is a span rendered for machine consumption.
type LocationJSON struct {
	File      string `json:"file"`
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
	Line      uint32 `json:"line,omitempty"`
	Col       uint32 `json:"col,omitempty"`
}

type NoteJSON struct {
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
}

type DiagnosticJSON struct {
	Severity    string       `json:"severity"`
	Category    string       `json:"category"`
	Code        string       `json:"code"`
	Message     string       `json:"message"`
	Location    LocationJSON `json:"location"`
	Notes       []NoteJSON   `json:"notes,omitempty"`
	Suggestions []string     `json:"suggestions,omitempty"`
}

// DiagnosticsOutput is the root of the JSON report.
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Errors      int              `json:"errors"`
	Warnings    int              `json:"warnings"`
}

func makeLocation(sp source.Span, file *source.File, opts JSONOpts) LocationJSON {
	loc := LocationJSON{
		File:      formatPath(file, opts.PathMode),
		StartByte: sp.Start,
		EndByte:   sp.End,
	}
	if opts.IncludePositions && file != nil {
		pos := file.Position(sp.Start)
		loc.Line = pos.Line
		loc.Col = pos.Col
	}
	return loc
}

// WriteJSON emits the engine's diagnostics as one JSON document.
func WriteJSON(w io.Writer, eng *diag.Engine, opts JSONOpts) error {
	items := eng.Items()
	if opts.Max > 0 && len(items) > opts.Max {
		items = items[:opts.Max]
	}

	out := DiagnosticsOutput{
		Diagnostics: make([]DiagnosticJSON, 0, len(items)),
		Errors:      eng.ErrorCount(),
		Warnings:    eng.WarningCount(),
	}
	for _, d := range items {
		dj := DiagnosticJSON{
			Severity:    d.Severity.String(),
			Category:    d.Category.String(),
			Code:        d.Code.ID(),
			Message:     d.Message,
			Location:    makeLocation(d.Primary, eng.File(), opts),
			Suggestions: d.Suggestions,
		}
		for _, n := range d.Notes {
			dj.Notes = append(dj.Notes, NoteJSON{
				Message:  n.Msg,
				Location: makeLocation(n.Span, eng.File(), opts),
			})
		}
		out.Diagnostics = append(out.Diagnostics, dj)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
