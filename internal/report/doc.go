// Package report composes diagnostics chapters into a single document.
//
// The package defines the Reporter contract, the Generator that turns an
// ordered list of reporters into a self-contained HTML document, and a small
// set of Writers that render the same chapters in other formats:
//   - Generator: HTML artifact with bundled, minified style sheet
//   - MarkdownWriter: Markdown for pasting into issue trackers
//   - JSONWriter: structured output for tool integration
//   - TextWriter: plain text for terminal display
//
// Chapters always appear in the order the reporters were supplied, whether
// they are collected sequentially (the default) or concurrently.
package report
