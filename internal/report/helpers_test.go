package report

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"strings"
	"testing"

	"golang.org/x/net/html"
)

// discardLogger returns a logger that drops everything.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// failingFS is an fs.FS whose Open always fails with err.
type failingFS struct {
	err error
}

// Open implements fs.FS.
func (f failingFS) Open(name string) (fs.File, error) {
	return nil, &fs.PathError{Op: "open", Path: name, Err: f.err}
}

var errPermission = errors.New("permission denied")

// outline is the structure of a generated document as seen by an HTML tokenizer.
type outline struct {
	// title is the text of the <title> element.
	title string

	// style is the text of the <style> element.
	style string

	// chapterTitles are the <h3> texts of every chapter, in document order.
	chapterTitles []string

	// chapters is the number of <div class="chapter"> elements.
	chapters int

	// balanced is true when every start tag has a matching end tag.
	balanced bool

	// openedHTML is true when the document has an <html> element.
	openedHTML bool
}

// voidElements never have an end tag.
var voidElements = map[string]bool{
	"meta": true,
	"br":   true,
	"link": true,
	"img":  true,
	"hr":   true,
}

// parseOutline tokenizes doc and records its structure.
func parseOutline(t *testing.T, doc string) outline {
	t.Helper()

	var o outline
	var stack []string
	mismatch := false

	z := html.NewTokenizer(strings.NewReader(doc))
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if !errors.Is(z.Err(), io.EOF) {
				t.Fatalf("tokenizer error: %v", z.Err())
			}
			o.balanced = !mismatch && len(stack) == 0
			return o

		case html.StartTagToken:
			tok := z.Token()
			if voidElements[tok.Data] {
				continue
			}
			stack = append(stack, tok.Data)
			if tok.Data == "html" {
				o.openedHTML = true
			}
			if tok.Data == "div" && classOf(tok) == "chapter" {
				o.chapters++
			}
			if tok.Data == "h3" {
				o.chapterTitles = append(o.chapterTitles, "")
			}

		case html.EndTagToken:
			tok := z.Token()
			if len(stack) == 0 || stack[len(stack)-1] != tok.Data {
				mismatch = true
				continue
			}
			stack = stack[:len(stack)-1]

		case html.TextToken:
			if len(stack) == 0 {
				continue
			}
			text := z.Token().Data
			switch stack[len(stack)-1] {
			case "title":
				o.title += text
			case "style":
				o.style += text
			case "h3":
				o.chapterTitles[len(o.chapterTitles)-1] += text
			}
		}
	}
}

// classOf returns the class attribute of tok.
func classOf(tok html.Token) string {
	for _, a := range tok.Attr {
		if a.Key == "class" {
			return a.Val
		}
	}
	return ""
}
