package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/beichenglangzi/Diagnostics/internal/model"
)

// JSONWriter outputs a document as JSON for tool integration.
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	indent bool

	// indentPrefix is the prefix for each line in indented output.
	indentPrefix string

	// indentString is the indentation string (typically "  " or "\t").
	indentString string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
// The prefix is prepended to each line, and indent is used for each level.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint enables pretty-printed JSON with two space indentation.
func WithPrettyPrint() JSONWriterOption {
	return WithIndent("", "  ")
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// JSONDocument is the JSON representation of a Document.
type JSONDocument struct {
	Title       string        `json:"title"`
	AppName     string        `json:"app_name"`
	GeneratedAt time.Time     `json:"generated_at"`
	Chapters    []JSONChapter `json:"chapters"`
}

// JSONChapter is the JSON representation of a chapter.
// Kind tells which of the content fields is set.
type JSONChapter struct {
	Title string      `json:"title"`
	Kind  string      `json:"kind"`
	Text  string      `json:"text,omitempty"`
	Rows  []model.Row `json:"rows,omitempty"`
	Lines []string    `json:"lines,omitempty"`
	HTML  string      `json:"html,omitempty"`
}

// Chapter kinds used in JSONChapter.Kind.
const (
	KindEmpty = "empty"
	KindText  = "text"
	KindTable = "table"
	KindCode  = "code"
	KindHTML  = "html"
)

// NewJSONDocument converts doc into its JSON representation.
func NewJSONDocument(doc *Document) *JSONDocument {
	out := &JSONDocument{
		Title:       doc.Title(),
		AppName:     doc.AppName,
		GeneratedAt: doc.GeneratedAt,
		Chapters:    make([]JSONChapter, len(doc.Chapters)),
	}
	for i, c := range doc.Chapters {
		out.Chapters[i] = newJSONChapter(c)
	}
	return out
}

// newJSONChapter converts a single chapter.
func newJSONChapter(c model.Chapter) JSONChapter {
	jc := JSONChapter{Title: c.Title}
	switch body := c.Body.(type) {
	case nil:
		jc.Kind = KindEmpty
	case model.Text:
		jc.Kind = KindText
		jc.Text = string(body)
	case model.Table:
		jc.Kind = KindTable
		jc.Rows = body
	case model.Code:
		jc.Kind = KindCode
		jc.Lines = body
	default:
		jc.Kind = KindHTML
		jc.HTML = body.HTML()
	}
	return jc
}

// Write outputs the document in JSON format.
func (w *JSONWriter) Write(doc *Document) (int, error) {
	return w.writeJSON(NewJSONDocument(doc))
}

// writeJSON marshals the given value to JSON and writes it to the output.
func (w *JSONWriter) writeJSON(v any) (int, error) {
	var data []byte
	var err error

	if w.indent {
		data, err = json.MarshalIndent(v, w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(v)
	}

	if err != nil {
		return 0, err
	}

	// Add trailing newline for better terminal output
	data = append(data, '\n')

	return w.output.Write(data)
}
