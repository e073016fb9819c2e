package diag

import (
	"fmt"
	"strings"
)

// Diagnostic is a single reported problem, anchored to a span of source.
type Diagnostic struct {
	Span    Span
	Message string
}

// Render formats the diagnostic against the source it was raised from:
// "line:col - message" followed by the offending source line and a run of
// '~' characters under the span.
func (d Diagnostic) Render(source string) string {
	lines := strings.Split(source, "\n")
	var b strings.Builder
	fmt.Fprintf(&b, "%s - %s\n", d.Span.Start, d.Message)
	if d.Span.Start.Line-1 >= 0 && d.Span.Start.Line-1 < len(lines) {
		line := lines[d.Span.Start.Line-1]
		b.WriteString(line)
		b.WriteByte('\n')
		width := d.Span.End.Offset - d.Span.Start.Offset
		if width < 1 {
			width = 1
		}
		if d.Span.Start.Col-1 > 0 {
			b.WriteString(strings.Repeat(" ", d.Span.Start.Col-1))
		}
		b.WriteString(strings.Repeat("~", width))
	}
	return b.String()
}

// Diagnostics is the shared per-run buffer every pipeline stage appends to.
// The driver halts the pipeline as soon as it is non-empty after a stage.
type Diagnostics struct {
	items []Diagnostic
}

// Add records a new diagnostic at span.
func (d *Diagnostics) Add(span Span, format string, args ...any) {
	d.items = append(d.items, Diagnostic{Span: span, Message: fmt.Sprintf(format, args...)})
}

// AddDiagnostic records an already-built diagnostic.
func (d *Diagnostics) AddDiagnostic(diagnostic Diagnostic) {
	d.items = append(d.items, diagnostic)
}

// Merge appends another buffer's items onto this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.items = append(d.items, other.items...)
}

// HasErrors reports whether any diagnostic has been recorded. Hawk has no
// warning severity, so any recorded diagnostic halts the pipeline.
func (d Diagnostics) HasErrors() bool {
	return len(d.items) > 0
}

// All returns the recorded diagnostics in report order.
func (d Diagnostics) All() []Diagnostic {
	return d.items
}
