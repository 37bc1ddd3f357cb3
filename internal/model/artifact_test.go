package model

import (
	"testing"
	"unicode/utf8"
)

// TestNewReport tests artifact construction.
func TestNewReport(t *testing.T) {
	t.Parallel()

	t.Run("uses the fixed filename", func(t *testing.T) {
		t.Parallel()

		r := NewReport("<html></html>")
		if r.Filename != ReportFilename {
			t.Errorf("expected filename %q, got %q", ReportFilename, r.Filename)
		}
		if r.Filename != "DiagnosticsReport.html" {
			t.Errorf("unexpected filename constant %q", r.Filename)
		}
	})

	t.Run("keeps valid UTF-8 unchanged", func(t *testing.T) {
		t.Parallel()

		doc := "<p>héllo wörld ✓</p>"
		r := NewReport(doc)
		if r.String() != doc {
			t.Errorf("expected %q, got %q", doc, r.String())
		}
	})

	t.Run("replaces invalid sequences", func(t *testing.T) {
		t.Parallel()

		r := NewReport("bad\xffbyte")
		if !utf8.Valid(r.Data) {
			t.Error("expected data to be valid UTF-8")
		}
		if r.String() != "bad�byte" {
			t.Errorf("unexpected replacement result %q", r.String())
		}
	})
}
