package reporters

import (
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/beichenglangzi/Diagnostics/internal/model"
)

// AppSystemMetadataTitle is the title of the metadata chapter.
const AppSystemMetadataTitle = "App System Metadata"

// unknownValue is shown for values that could not be determined.
const unknownValue = "Unknown"

// processStart approximates the time the process started.
var processStart = time.Now()

// localeVariables are checked in order for the system language.
var localeVariables = []string{"LC_ALL", "LC_MESSAGES", "LANG"}

// osNames maps GOOS values that title casing would get wrong.
var osNames = map[string]string{
	"darwin":  "macOS",
	"ios":     "iOS",
	"freebsd": "FreeBSD",
	"netbsd":  "NetBSD",
	"openbsd": "OpenBSD",
	"js":      "JavaScript",
	"wasip1":  "WASI",
}

// appSystemMetadata reports application, runtime, host and locale details.
type appSystemMetadata struct {
	appName    string
	appVersion string
	dataDir    string
	now        func() time.Time

	getenv   func(string) string
	hostname func() (string, error)
	diskFree func(path string) (uint64, error)
}

func newAppSystemMetadata(deps Dependencies) *appSystemMetadata {
	return &appSystemMetadata{
		appName:    deps.AppName,
		appVersion: deps.AppVersion,
		dataDir:    deps.DataDir,
		now:        deps.Now,
		getenv:     os.Getenv,
		hostname:   os.Hostname,
		diskFree:   freeDiskSpace,
	}
}

// Name implements report.Named.
func (r *appSystemMetadata) Name() string {
	return AppSystemMetadataTitle
}

// Report implements report.Reporter.
func (r *appSystemMetadata) Report() model.Chapter {
	body := model.Table{}.
		Add("App name", r.appName).
		Add("App version", r.appVersion).
		Add("Go version", runtime.Version()).
		Add("Operating system", osDisplayName(runtime.GOOS)).
		Add("Architecture", runtime.GOARCH).
		Add("CPUs", strconv.Itoa(runtime.NumCPU())).
		Add("Hostname", r.hostnameValue()).
		Add("Process ID", strconv.Itoa(os.Getpid())).
		Add("Uptime", r.now().Sub(processStart).Round(time.Second).String()).
		Add("Free disk space", r.freeSpaceValue()).
		Add("System language", r.languageValue())

	return model.NewChapter(AppSystemMetadataTitle, body)
}

func (r *appSystemMetadata) hostnameValue() string {
	name, err := r.hostname()
	if err != nil || name == "" {
		return unknownValue
	}
	return name
}

func (r *appSystemMetadata) freeSpaceValue() string {
	dir := r.dataDir
	if dir == "" {
		dir = os.TempDir()
	}
	free, err := r.diskFree(dir)
	if err != nil {
		return unknownValue
	}
	return humanize.IBytes(free)
}

func (r *appSystemMetadata) languageValue() string {
	for _, name := range localeVariables {
		if tag, ok := parseLocale(r.getenv(name)); ok {
			return tag.String() + " (" + display.English.Tags().Name(tag) + ")"
		}
	}
	return unknownValue
}

// osDisplayName returns a human readable operating system name for goos.
func osDisplayName(goos string) string {
	if name, ok := osNames[goos]; ok {
		return name
	}
	return cases.Title(language.English).String(goos)
}

// parseLocale converts a POSIX locale such as "en_US.UTF-8@euro" into a
// BCP 47 tag. The "C" and "POSIX" locales carry no language.
func parseLocale(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if i := strings.IndexAny(value, ".@"); i >= 0 {
		value = value[:i]
	}
	if value == "" || value == "C" || value == "POSIX" {
		return language.Und, false
	}

	tag, err := language.Parse(strings.ReplaceAll(value, "_", "-"))
	if err != nil || tag == language.Und {
		return language.Und, false
	}
	return tag, true
}
