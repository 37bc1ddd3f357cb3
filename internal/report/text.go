package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/beichenglangzi/Diagnostics/internal/model"
)

// defaultRuleWidth is the width of the separator lines in text output.
const defaultRuleWidth = 70

// TextWriter outputs a document as plain text for terminal display.
type TextWriter struct {
	baseWriter

	// ruleWidth is the width of separator lines.
	ruleWidth int

	// skipEmpty hides chapters without content.
	skipEmpty bool
}

// TextWriterOption configures a TextWriter.
type TextWriterOption func(*TextWriter)

// WithRuleWidth sets the width of separator lines.
func WithRuleWidth(width int) TextWriterOption {
	return func(w *TextWriter) {
		if width > 0 {
			w.ruleWidth = width
		}
	}
}

// WithSkipEmpty hides chapters that have no content.
func WithSkipEmpty(skip bool) TextWriterOption {
	return func(w *TextWriter) {
		w.skipEmpty = skip
	}
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer, opts ...TextWriterOption) *TextWriter {
	w := &TextWriter{
		baseWriter: newBaseWriter(output),
		ruleWidth:  defaultRuleWidth,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the document in human-readable format.
func (w *TextWriter) Write(doc *Document) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, doc)
	for _, c := range doc.Chapters {
		if w.skipEmpty && c.IsEmpty() {
			continue
		}
		w.writeChapter(&sb, c)
	}
	sb.WriteString(strings.Repeat("=", w.ruleWidth))
	sb.WriteString("\n")

	return io.WriteString(w.output, sb.String())
}

// writeHeader writes the document title and generation time.
func (w *TextWriter) writeHeader(sb *strings.Builder, doc *Document) {
	sb.WriteString(strings.Repeat("=", w.ruleWidth))
	sb.WriteString("\n")
	sb.WriteString(strings.ToUpper(doc.Title()))
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", w.ruleWidth))
	sb.WriteString("\n\n")
	fmt.Fprintf(sb, "Generated: %s\n\n", doc.GeneratedAt.Format(time.RFC3339))
}

// writeChapter writes one chapter with an underlined title.
func (w *TextWriter) writeChapter(sb *strings.Builder, c model.Chapter) {
	sb.WriteString(strings.Repeat("-", w.ruleWidth))
	sb.WriteString("\n")
	sb.WriteString(strings.ToUpper(c.Title))
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("-", w.ruleWidth))
	sb.WriteString("\n\n")

	switch body := c.Body.(type) {
	case nil:
		sb.WriteString("  (empty)\n")
	case model.Text:
		for _, line := range strings.Split(string(body), "\n") {
			sb.WriteString("  ")
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	case model.Table:
		if len(body) == 0 {
			sb.WriteString("  (empty)\n")
			break
		}
		width := 0
		for _, row := range body {
			width = max(width, len(row.Key))
		}
		for _, row := range body {
			fmt.Fprintf(sb, "  %-*s  %s\n", width+1, row.Key+":", row.Value)
		}
	case model.Code:
		for _, line := range body {
			sb.WriteString("  ")
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	default:
		sb.WriteString(body.HTML())
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
}
