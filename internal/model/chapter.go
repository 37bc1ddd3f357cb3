package model

import (
	"strings"

	"golang.org/x/net/html"
)

// Fragment is the body of a chapter. HTML returns the rendered markup for the
// body only; the surrounding chapter structure is added by the renderer.
//
// Every fragment type except HTML escapes the text it carries, so reporters
// can put arbitrary application data into a chapter without breaking the
// document.
type Fragment interface {
	HTML() string
}

// Chapter is one titled section of the diagnostics document.
// Chapters are plain values: once a reporter returns one, nothing mutates it.
type Chapter struct {
	// Title is shown as the chapter heading and used to derive its anchor.
	Title string

	// Body is the chapter content. A nil body renders as an empty section.
	Body Fragment
}

// NewChapter returns a chapter with the given title and body.
func NewChapter(title string, body Fragment) Chapter {
	return Chapter{Title: title, Body: body}
}

// Placeholder returns a chapter whose body is a single explanatory line.
// Reporters use it when their data source is empty or unreachable.
func Placeholder(title, message string) Chapter {
	return Chapter{Title: title, Body: Text(message)}
}

// IsEmpty reports whether the chapter carries no body content.
func (c Chapter) IsEmpty() bool {
	if c.Body == nil {
		return true
	}
	switch b := c.Body.(type) {
	case Text:
		return strings.TrimSpace(string(b)) == ""
	case Table:
		return len(b) == 0
	case Code:
		return len(b) == 0
	case HTML:
		return strings.TrimSpace(string(b)) == ""
	default:
		return b.HTML() == ""
	}
}

// Text is a paragraph of plain text. Line breaks are preserved.
type Text string

// HTML renders the text as an escaped paragraph.
func (t Text) HTML() string {
	if t == "" {
		return ""
	}
	escaped := html.EscapeString(string(t))
	return "<p>" + strings.ReplaceAll(escaped, "\n", "<br>") + "</p>"
}

// Row is a single key/value pair of a Table.
type Row struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Table is an ordered list of key/value rows.
type Table []Row

// Add returns the table with one more row appended.
func (t Table) Add(key, value string) Table {
	return append(t, Row{Key: key, Value: value})
}

// HTML renders the table with one header cell and one data cell per row.
func (t Table) HTML() string {
	var sb strings.Builder
	sb.WriteString("<table>")
	for _, row := range t {
		sb.WriteString("<tr><th>")
		sb.WriteString(html.EscapeString(row.Key))
		sb.WriteString("</th><td>")
		sb.WriteString(html.EscapeString(row.Value))
		sb.WriteString("</td></tr>")
	}
	sb.WriteString("</table>")
	return sb.String()
}

// Code is preformatted text, one element per line. Logs use it.
type Code []string

// HTML renders the lines inside an escaped <pre> block.
func (c Code) HTML() string {
	lines := make([]string, len(c))
	for i, line := range c {
		lines[i] = html.EscapeString(line)
	}
	return "<pre>" + strings.Join(lines, "\n") + "</pre>"
}

// HTML is trusted, pre-rendered markup that is embedded without escaping.
// Only use it for markup the caller produced itself.
type HTML string

// HTML returns the markup unchanged.
func (h HTML) HTML() string {
	return string(h)
}
