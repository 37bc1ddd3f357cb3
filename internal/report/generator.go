package report

import (
	"context"
	"io/fs"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/beichenglangzi/Diagnostics/internal/model"
)

// Generator turns an ordered list of reporters into a diagnostics report.
//
// A Generator holds configuration only. It keeps no state between calls
// except the minified style sheet when WithStyleCache is set, and it is safe
// for concurrent use.
type Generator struct {
	// appName is substituted into the document title.
	appName string

	// styleFS and styleName locate the style sheet.
	styleFS   fs.FS
	styleName string

	// concurrency is the maximum number of reporters run at once.
	// Values below 2 collect chapters strictly one after another.
	concurrency int

	// timeout bounds a single reporter. Zero means no bound.
	timeout time.Duration

	// cacheStyle keeps the minified style sheet after the first load.
	cacheStyle bool

	// logger is used for structured logging while collecting chapters.
	logger *slog.Logger

	// now returns the generation time recorded in Document.
	now func() time.Time

	mu          sync.Mutex
	cachedStyle string
	styleLoaded bool
}

// Option configures a Generator.
type Option func(*Generator)

// WithAppName sets the application name used in the document title.
func WithAppName(name string) Option {
	return func(g *Generator) {
		g.appName = name
	}
}

// WithStyle loads the style sheet called name from fsys instead of the
// bundled one. A nil fsys makes every Generate call fail with ErrNoStyleSource.
func WithStyle(fsys fs.FS, name string) Option {
	return func(g *Generator) {
		g.styleFS = fsys
		g.styleName = name
	}
}

// WithConcurrency runs up to n reporters at the same time.
// Chapters are still assembled in registry order.
func WithConcurrency(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.concurrency = n
		}
	}
}

// WithReporterTimeout bounds every reporter to d. A reporter that does not
// return in time is abandoned and replaced by a placeholder chapter.
func WithReporterTimeout(d time.Duration) Option {
	return func(g *Generator) {
		if d > 0 {
			g.timeout = d
		}
	}
}

// WithStyleCache keeps the minified style sheet in memory after the first
// successful load. The bundled style sheet never changes while the process
// runs, so this only saves work.
func WithStyleCache() Option {
	return func(g *Generator) {
		g.cacheStyle = true
	}
}

// WithLogger sets a custom logger for the generator.
// If not set, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// withClock replaces the generation time source. Used in tests.
func withClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// NewGenerator creates a Generator with the given options.
// By default it uses DefaultAppName, the bundled style sheet and sequential
// collection without timeouts.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		styleFS:     BundledStyle(),
		styleName:   StyleName,
		concurrency: 1,
		now:         time.Now,
	}

	for _, opt := range opts {
		opt(g)
	}

	if g.appName == "" {
		g.appName = DefaultAppName()
	}
	if g.logger == nil {
		g.logger = slog.Default()
	}

	return g
}

// AppName returns the application name used in the document title.
func (g *Generator) AppName() string {
	return g.appName
}

// Style returns the minified style sheet.
// It fails with ErrNoStyleSource, ErrStyleNotFound or ErrStyleUnreadable.
func (g *Generator) Style() (string, error) {
	if !g.cacheStyle {
		return loadStyle(g.styleFS, g.styleName)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.styleLoaded {
		return g.cachedStyle, nil
	}

	style, err := loadStyle(g.styleFS, g.styleName)
	if err != nil {
		return "", err
	}
	g.cachedStyle = style
	g.styleLoaded = true
	return style, nil
}

// Generate builds the HTML report from reporters.
//
// The style sheet is loaded first; if that fails no reporter runs and the
// error is returned with a nil report. Each reporter is then invoked exactly
// once and its chapter is placed at the reporter's position in the list.
// An empty list yields a document with header and style only.
//
// Generate only returns other errors when ctx is cancelled by the caller.
func (g *Generator) Generate(ctx context.Context, reporters []Reporter) (*model.Report, error) {
	style, err := g.Style()
	if err != nil {
		g.logger.Error("cannot load report style sheet",
			"style", g.styleName,
			"error", err,
		)
		return nil, err
	}

	chapters, err := g.Collect(ctx, reporters)
	if err != nil {
		return nil, err
	}

	report := model.NewReport(renderDocument(g.appName, style, chapters))

	g.logger.Info("diagnostics report generated",
		"chapters", len(chapters),
		"bytes", len(report.Data),
	)

	return report, nil
}

// Document collects the chapters of reporters into a Document for the
// alternative Writers. It does not need the style sheet.
func (g *Generator) Document(ctx context.Context, reporters []Reporter) (*Document, error) {
	chapters, err := g.Collect(ctx, reporters)
	if err != nil {
		return nil, err
	}
	return &Document{
		AppName:     g.appName,
		GeneratedAt: g.now(),
		Chapters:    chapters,
	}, nil
}

// Collect invokes every reporter once and returns the chapters in the same
// order as reporters.
func (g *Generator) Collect(ctx context.Context, reporters []Reporter) ([]model.Chapter, error) {
	chapters := make([]model.Chapter, len(reporters))

	if g.concurrency <= 1 || len(reporters) <= 1 {
		for i, r := range reporters {
			if err := ctx.Err(); err != nil {
				g.logger.Warn("report generation cancelled",
					"reporter", reporterName(r, i),
					"reason", err,
				)
				return nil, err
			}
			chapters[i] = g.collect(ctx, i, r)
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return chapters, nil
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(g.concurrency)

	for i, r := range reporters {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			// Each goroutine owns exactly one slot of chapters.
			chapters[i] = g.collect(egCtx, i, r)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		g.logger.Warn("report generation cancelled", "reason", err)
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return chapters, nil
}

// collect runs a single reporter, applying the per-reporter timeout.
func (g *Generator) collect(ctx context.Context, index int, r Reporter) model.Chapter {
	name := reporterName(r, index)
	start := time.Now()

	g.logger.Debug("collecting chapter",
		"reporter", name,
		"position", index,
	)

	if g.timeout <= 0 {
		chapter := r.Report()
		g.logger.Debug("chapter collected",
			"reporter", name,
			"duration", time.Since(start),
		)
		return chapter
	}

	// The channel is buffered so an abandoned reporter can still finish
	// without blocking forever.
	done := make(chan model.Chapter, 1)
	go func() {
		done <- r.Report()
	}()

	timer := time.NewTimer(g.timeout)
	defer timer.Stop()

	select {
	case chapter := <-done:
		g.logger.Debug("chapter collected",
			"reporter", name,
			"duration", time.Since(start),
		)
		return chapter
	case <-timer.C:
		g.logger.Warn("reporter timed out, using placeholder chapter",
			"reporter", name,
			"timeout", g.timeout,
		)
		return model.Placeholder(name, "This section could not be collected in time.")
	case <-ctx.Done():
		return model.Placeholder(name, "Report generation was cancelled.")
	}
}

// Create builds a report from reporters with a Generator configured by opts.
func Create(ctx context.Context, reporters []Reporter, opts ...Option) (*model.Report, error) {
	return NewGenerator(opts...).Generate(ctx, reporters)
}
