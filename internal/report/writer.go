package report

import (
	"io"
	"time"

	"github.com/beichenglangzi/Diagnostics/internal/model"
)

// Document is the collected content of a report before it is rendered.
// Writers render it in formats other than the HTML artifact.
type Document struct {
	// AppName is the application the report describes.
	AppName string

	// GeneratedAt is the time the chapters were collected.
	GeneratedAt time.Time

	// Chapters are in registry order.
	Chapters []model.Chapter
}

// Title returns the same title the HTML document uses.
func (d *Document) Title() string {
	return DocumentTitle(d.AppName)
}

// Writer renders a Document to some destination.
type Writer interface {
	// Write outputs the document.
	// Returns the number of bytes written and any error encountered.
	Write(doc *Document) (int, error)
}

// MultiWriter writes a document to several Writers in turn.
// It stops at the first error.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write outputs the document to all configured Writers.
// Returns the total bytes written across all writers.
func (m *MultiWriter) Write(doc *Document) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(doc)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides common functionality for document writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
