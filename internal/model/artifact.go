package model

import "strings"

// ReportFilename is the suggested file name of every generated report.
const ReportFilename = "DiagnosticsReport.html"

// Report is the final diagnostics artifact handed to the caller.
// The caller owns it; nothing inside the generator keeps a reference.
type Report struct {
	// Filename is always ReportFilename.
	Filename string

	// Data is the complete HTML document encoded as UTF-8.
	Data []byte
}

// NewReport encodes document as UTF-8 and wraps it in a Report.
// Invalid byte sequences are replaced with U+FFFD so Data is always valid UTF-8.
func NewReport(document string) *Report {
	return &Report{
		Filename: ReportFilename,
		Data:     []byte(strings.ToValidUTF8(document, "\uFFFD")),
	}
}

// String returns the document text.
func (r *Report) String() string {
	return string(r.Data)
}
