package report

import (
	"io"
	"strings"
	"time"

	"github.com/nao1215/markdown"

	"github.com/beichenglangzi/Diagnostics/internal/model"
)

// MarkdownWriter outputs a document in Markdown, suitable for pasting into
// an issue tracker. It uses nao1215/markdown for tables and code blocks.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the document in Markdown format.
func (w *MarkdownWriter) Write(doc *Document) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1(doc.Title())
	md.PlainText("")
	md.PlainTextf("*Generated %s*", doc.GeneratedAt.Format(time.RFC3339))
	md.PlainText("")

	for _, c := range doc.Chapters {
		w.writeChapter(md, c)
	}

	return len(md.String()), md.Build()
}

// writeChapter writes one chapter as a second level section.
func (w *MarkdownWriter) writeChapter(md *markdown.Markdown, c model.Chapter) {
	md.H2(c.Title)
	md.PlainText("")

	switch body := c.Body.(type) {
	case nil:
		md.PlainText("_No content._")
	case model.Text:
		md.PlainText(string(body))
	case model.Table:
		if len(body) == 0 {
			md.PlainText("_No entries._")
			break
		}
		rows := make([][]string, len(body))
		for i, row := range body {
			rows[i] = []string{escapeCell(row.Key), escapeCell(row.Value)}
		}
		md.Table(markdown.TableSet{
			Header: []string{"Key", "Value"},
			Rows:   rows,
		})
	case model.Code:
		md.CodeBlocks(markdown.SyntaxHighlightText, strings.Join(body, "\n"))
	case model.HTML:
		md.CodeBlocks(markdown.SyntaxHighlightHTML, string(body))
	default:
		md.CodeBlocks(markdown.SyntaxHighlightHTML, body.HTML())
	}
	md.PlainText("")
}

// escapeCell keeps table cells on one line and away from column separators.
func escapeCell(s string) string {
	if s == "" {
		return "-"
	}
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.Join(strings.Fields(s), " ")
}
