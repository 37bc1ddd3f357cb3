package report

import (
	"strings"
	"unicode"

	"golang.org/x/net/html"

	"github.com/beichenglangzi/Diagnostics/internal/model"
)

// TitleSuffix is appended to the application name to form the document title.
const TitleSuffix = " - Diagnostics Report"

// DocumentTitle returns the title used in the document header.
// The application name is used verbatim.
func DocumentTitle(appName string) string {
	return appName + TitleSuffix
}

// RenderChapter renders a single chapter as a self-contained <div> block.
// The title is escaped; the body renders itself through model.Fragment.
func RenderChapter(c model.Chapter) string {
	var sb strings.Builder
	sb.WriteString(`<div class="chapter">`)
	sb.WriteString(`<span class="anchor" id="`)
	sb.WriteString(Anchor(c.Title))
	sb.WriteString(`"></span>`)
	sb.WriteString("<h3>")
	sb.WriteString(html.EscapeString(c.Title))
	sb.WriteString("</h3>")
	sb.WriteString(`<div class="chapter-content">`)
	if c.Body != nil {
		sb.WriteString(c.Body.HTML())
	}
	sb.WriteString("</div></div>")
	return sb.String()
}

// Anchor turns a chapter title into an id usable as a link target:
// lower case letters and digits, with every other run of characters replaced
// by a single hyphen.
func Anchor(title string) string {
	var sb strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingHyphen && sb.Len() > 0 {
				sb.WriteByte('-')
			}
			pendingHyphen = false
			sb.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}
	if sb.Len() == 0 {
		return "chapter"
	}
	return sb.String()
}

// renderDocument wraps the rendered chapters in the document shell.
func renderDocument(appName, style string, chapters []model.Chapter) string {
	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>")
	sb.WriteString("<html>")
	writeHead(&sb, appName, style)
	sb.WriteString("<body>")
	for _, c := range chapters {
		sb.WriteString(RenderChapter(c))
	}
	sb.WriteString("</body>")
	sb.WriteString("</html>")
	return sb.String()
}

// writeHead writes the <head> element with title and inline style sheet.
func writeHead(sb *strings.Builder, appName, style string) {
	sb.WriteString("<head>")
	sb.WriteString(`<meta charset="utf-8">`)
	sb.WriteString("<title>")
	sb.WriteString(DocumentTitle(appName))
	sb.WriteString("</title>")
	sb.WriteString("<style>")
	sb.WriteString(style)
	sb.WriteString("</style>")
	sb.WriteString("</head>")
}
