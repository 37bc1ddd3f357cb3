package report

import (
	"strings"
	"testing"

	"github.com/beichenglangzi/Diagnostics/internal/model"
)

// TestAnchor tests chapter anchor derivation.
func TestAnchor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		title string
		want  string
	}{
		{title: "Logs", want: "logs"},
		{title: "App System Metadata", want: "app-system-metadata"},
		{title: "  Spaced   Out  ", want: "spaced-out"},
		{title: "Crash <Reports> & More!", want: "crash-reports-more"},
		{title: "Ünïcode Títle", want: "ünïcode-títle"},
		{title: "", want: "chapter"},
		{title: "!!!", want: "chapter"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			t.Parallel()

			if got := Anchor(tt.title); got != tt.want {
				t.Errorf("Anchor(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

// TestRenderChapter tests the markup of a single chapter.
func TestRenderChapter(t *testing.T) {
	t.Parallel()

	t.Run("wraps body in chapter structure", func(t *testing.T) {
		t.Parallel()

		got := RenderChapter(model.NewChapter("Logs", model.Text("empty")))
		want := `<div class="chapter"><span class="anchor" id="logs"></span><h3>Logs</h3>` +
			`<div class="chapter-content"><p>empty</p></div></div>`
		if got != want {
			t.Errorf("RenderChapter() =\n%s\nwant\n%s", got, want)
		}
	})

	t.Run("escapes the title", func(t *testing.T) {
		t.Parallel()

		got := RenderChapter(model.NewChapter("<b>bold</b>", nil))
		if strings.Contains(got, "<b>") {
			t.Errorf("expected title to be escaped, got %s", got)
		}
		if !strings.Contains(got, "&lt;b&gt;bold&lt;/b&gt;") {
			t.Errorf("expected escaped title, got %s", got)
		}
	})

	t.Run("nil body renders empty content", func(t *testing.T) {
		t.Parallel()

		got := RenderChapter(model.Chapter{Title: "Empty"})
		if !strings.Contains(got, `<div class="chapter-content"></div>`) {
			t.Errorf("expected empty content div, got %s", got)
		}
	})

	t.Run("chapter is balanced on its own", func(t *testing.T) {
		t.Parallel()

		fragment := RenderChapter(model.NewChapter("T", model.Table{}.Add("k", "v")))
		o := parseOutline(t, fragment)
		if !o.balanced {
			t.Errorf("expected balanced fragment, got %s", fragment)
		}
		if o.chapters != 1 {
			t.Errorf("expected 1 chapter, got %d", o.chapters)
		}
	})
}

// TestDocumentTitle tests title construction.
func TestDocumentTitle(t *testing.T) {
	t.Parallel()

	if got := DocumentTitle("Acme"); got != "Acme - Diagnostics Report" {
		t.Errorf("DocumentTitle() = %q", got)
	}
}
