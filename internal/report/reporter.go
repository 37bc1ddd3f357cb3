package report

import (
	"fmt"

	"github.com/beichenglangzi/Diagnostics/internal/model"
)

// Reporter produces one chapter of the diagnostics document.
//
// Report reads whatever application or system state it describes at call time
// and must return promptly. It has no error result: a reporter that cannot
// reach its data source returns a chapter with a placeholder body instead, so
// a single missing source never aborts the whole report. Reporters must not
// mutate application state.
type Reporter interface {
	Report() model.Chapter
}

// Named is implemented by reporters that know their chapter title before
// running. The generator uses it for log output and to title the placeholder
// chapter of a reporter that timed out.
type Named interface {
	Name() string
}

// ReporterFunc adapts an ordinary function to the Reporter interface.
type ReporterFunc func() model.Chapter

// Report calls f.
func (f ReporterFunc) Report() model.Chapter {
	return f()
}

// namedFunc is a ReporterFunc with a fixed name.
type namedFunc struct {
	name string
	fn   func() model.Chapter
}

// Func returns a Reporter named name that calls fn.
func Func(name string, fn func() model.Chapter) Reporter {
	return namedFunc{name: name, fn: fn}
}

// Report calls the wrapped function.
func (n namedFunc) Report() model.Chapter {
	return n.fn()
}

// Name returns the reporter name.
func (n namedFunc) Name() string {
	return n.name
}

// Static returns a Reporter that always produces the given chapter.
func Static(chapter model.Chapter) Reporter {
	return Func(chapter.Title, func() model.Chapter { return chapter })
}

// reporterName returns the name used for r in logs and placeholders.
func reporterName(r Reporter, index int) string {
	if n, ok := r.(Named); ok && n.Name() != "" {
		return n.Name()
	}
	return fmt.Sprintf("Reporter %d", index+1)
}
