package report

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/beichenglangzi/Diagnostics/internal/model"
)

// createTestDocument creates a document with one chapter per fragment type.
func createTestDocument() *Document {
	return &Document{
		AppName:     "TestApp",
		GeneratedAt: time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC),
		Chapters: []model.Chapter{
			model.NewChapter("Information", model.Text("Thanks for sending a report.")),
			model.NewChapter("App System Metadata", model.Table{}.
				Add("App name", "TestApp").
				Add("Pipe", "a|b")),
			model.NewChapter("Logs", model.Code{"first line", "second line"}),
			model.NewChapter("Custom", model.HTML("<ul><li>raw</li></ul>")),
			{Title: "Nothing"},
		},
	}
}

// TestMarkdownWriter tests the Markdown writer.
func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	n, err := NewMarkdownWriter(&buf).Write(createTestDocument())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n == 0 {
		t.Error("expected bytes written")
	}

	output := buf.String()
	wants := []string{
		"# TestApp - Diagnostics Report",
		"## Information",
		"Thanks for sending a report.",
		"## App System Metadata",
		"| App name | TestApp |",
		`a\|b`,
		"```text",
		"first line\nsecond line",
		"```html",
		"_No content._",
		"2026-10-19T12:00:00Z",
	}
	for _, want := range wants {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, output)
		}
	}

	if strings.Index(output, "## Information") > strings.Index(output, "## Logs") {
		t.Error("expected chapters in document order")
	}
}

// TestMarkdownWriterEmptyTable tests placeholder for empty tables.
func TestMarkdownWriterEmptyTable(t *testing.T) {
	t.Parallel()

	doc := &Document{
		AppName:  "TestApp",
		Chapters: []model.Chapter{model.NewChapter("Settings", model.Table{})},
	}

	var buf bytes.Buffer
	if _, err := NewMarkdownWriter(&buf).Write(doc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "_No entries._") {
		t.Errorf("expected empty table placeholder, got:\n%s", buf.String())
	}
}

// TestJSONWriter tests the JSON writer.
func TestJSONWriter(t *testing.T) {
	t.Parallel()

	t.Run("outputs valid JSON with chapter kinds", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf).Write(createTestDocument()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var parsed JSONDocument
		if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
			t.Fatalf("output is not valid JSON: %v", err)
		}

		if parsed.Title != "TestApp - Diagnostics Report" {
			t.Errorf("unexpected title %q", parsed.Title)
		}
		wantKinds := []string{KindText, KindTable, KindCode, KindHTML, KindEmpty}
		if len(parsed.Chapters) != len(wantKinds) {
			t.Fatalf("expected %d chapters, got %d", len(wantKinds), len(parsed.Chapters))
		}
		for i, kind := range wantKinds {
			if parsed.Chapters[i].Kind != kind {
				t.Errorf("chapter %d: expected kind %q, got %q", i, kind, parsed.Chapters[i].Kind)
			}
		}
		if parsed.Chapters[1].Rows[0].Key != "App name" {
			t.Errorf("unexpected first row %+v", parsed.Chapters[1].Rows[0])
		}
		if len(parsed.Chapters[2].Lines) != 2 {
			t.Errorf("expected 2 log lines, got %d", len(parsed.Chapters[2].Lines))
		}
	})

	t.Run("compact output by default", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf).Write(createTestDocument()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		if len(lines) > 1 {
			t.Errorf("expected compact output (1 line), got %d lines", len(lines))
		}
	})

	t.Run("pretty print with indent", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf, WithPrettyPrint()).Write(createTestDocument()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		if len(lines) < 5 {
			t.Errorf("expected multi-line output, got %d lines", len(lines))
		}
	})
}

// TestTextWriter tests the plain text writer.
func TestTextWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes all chapters", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewTextWriter(&buf).Write(createTestDocument()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		wants := []string{
			"TESTAPP - DIAGNOSTICS REPORT",
			"INFORMATION",
			"App name:",
			"second line",
			"NOTHING",
			"(empty)",
		}
		for _, want := range wants {
			if !strings.Contains(output, want) {
				t.Errorf("expected output to contain %q, got:\n%s", want, output)
			}
		}
	})

	t.Run("skips empty chapters when requested", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewTextWriter(&buf, WithSkipEmpty(true)).Write(createTestDocument()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if strings.Contains(buf.String(), "NOTHING") {
			t.Error("expected empty chapter to be skipped")
		}
	})

	t.Run("uses custom rule width", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewTextWriter(&buf, WithRuleWidth(10)).Write(createTestDocument()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		firstLine := strings.SplitN(buf.String(), "\n", 2)[0]
		if firstLine != strings.Repeat("=", 10) {
			t.Errorf("expected 10 character rule, got %q", firstLine)
		}
	})
}

// errWriter always fails.
type errWriter struct{}

var errWrite = errors.New("write failed")

// Write implements Writer.
func (errWriter) Write(*Document) (int, error) {
	return 0, errWrite
}

// TestMultiWriter tests writing to multiple outputs.
func TestMultiWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes to all writers", func(t *testing.T) {
		t.Parallel()

		var buf1, buf2 bytes.Buffer
		multi := NewMultiWriter(NewTextWriter(&buf1), NewJSONWriter(&buf2))

		if _, err := multi.Write(createTestDocument()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if buf1.Len() == 0 {
			t.Error("expected buf1 to have content")
		}
		if !json.Valid(buf2.Bytes()) {
			t.Error("expected buf2 to contain JSON")
		}
	})

	t.Run("stops on first error", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		multi := NewMultiWriter(errWriter{}, NewTextWriter(&buf))

		_, err := multi.Write(createTestDocument())
		if !errors.Is(err, errWrite) {
			t.Errorf("expected errWrite, got %v", err)
		}
		if buf.Len() != 0 {
			t.Error("expected later writers to be skipped")
		}
	})
}

// TestGeneratorDocument tests chapter collection for writers.
func TestGeneratorDocument(t *testing.T) {
	t.Parallel()

	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	g := newTestGenerator(withClock(func() time.Time { return fixed }))

	doc, err := g.Document(context.Background(), staticReporters(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.AppName != "TestApp" {
		t.Errorf("expected app name TestApp, got %q", doc.AppName)
	}
	if !doc.GeneratedAt.Equal(fixed) {
		t.Errorf("expected generation time %v, got %v", fixed, doc.GeneratedAt)
	}
	if len(doc.Chapters) != 3 || doc.Chapters[2].Title != "Chapter 3" {
		t.Errorf("unexpected chapters %+v", doc.Chapters)
	}
}
