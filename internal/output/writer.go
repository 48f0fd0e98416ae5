// Package output writes snapshot verification reports as text or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// Report is the verification result for one snapshot file.
type Report struct {
	Source string

	// Game is the restored game; nil when Err is set.
	Game *engine.Game

	// Outcome is the terminal state evaluated for the side to move.
	Outcome chess.Outcome

	// DuplicateOf names an earlier source with the same position.
	DuplicateOf string

	Err error
}

// OK reports whether the snapshot loaded.
func (r *Report) OK() bool {
	return r.Err == nil
}

// ReportWriter is the interface for writing reports to output.
// Different implementations handle different output formats (text, JSON).
type ReportWriter interface {
	// WriteReport writes a single report to the output.
	WriteReport(r *Report) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// TextWriter writes one line per report.
type TextWriter struct {
	w io.Writer
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// WriteReport writes a report line, e.g.
//
//	ok      games/a.json: Black to move after 12 plies
//	FAILED  games/b.json: failed to load game state: ...
func (tw *TextWriter) WriteReport(r *Report) error {
	if !r.OK() {
		_, err := fmt.Fprintf(tw.w, "FAILED  %s: %v\n", r.Source, r.Err)
		return err
	}

	g := r.Game
	line := fmt.Sprintf("ok      %s: %s to move after %d plies", r.Source, g.ToMove(), g.PlyCount())
	if g.InCheck(g.ToMove()) && r.Outcome != chess.Checkmate {
		line += ", in check"
	}
	if pos, ok := g.PendingPromotion(); ok {
		line += fmt.Sprintf(", promotion pending on %s", pos)
	}
	if r.Outcome != chess.None {
		line += ", " + r.Outcome.String()
	}
	if r.DuplicateOf != "" {
		line += ", same position as " + r.DuplicateOf
	}
	_, err := fmt.Fprintln(tw.w, line)
	return err
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes reports in JSON format.
// It buffers reports and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w       io.Writer
	reports []*Report
	single  bool // If true, write each report immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches reports and writes them as an array on Close().
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:       w,
		reports: make([]*Report, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each report immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:      w,
		single: true,
	}
}

// WriteReport buffers a report for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteReport(r *Report) error {
	if jw.single {
		enc := json.NewEncoder(jw.w)
		enc.SetIndent("", "  ")
		return enc.Encode(ReportToJSON(r))
	}

	jw.reports = append(jw.reports, r)
	return nil
}

// Flush writes all buffered reports as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.reports) == 0 {
		return nil
	}

	out := &JSONOutput{
		Games: make([]*JSONReport, 0, len(jw.reports)),
	}
	for _, r := range jw.reports {
		out.Games = append(out.Games, ReportToJSON(r))
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(out)

	jw.reports = jw.reports[:0]
	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
