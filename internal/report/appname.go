package report

import (
	"os"
	"path"
	"path/filepath"
	"runtime/debug"
	"strings"
)

// fallbackAppName is used when neither the executable nor the build
// information yields a usable name.
const fallbackAppName = "Application"

// DefaultAppName returns the display name of the running program.
// Priority: executable file name > main module path > "Application".
func DefaultAppName() string {
	if exe, err := os.Executable(); err == nil {
		name := strings.TrimSuffix(filepath.Base(exe), filepath.Ext(exe))
		if name != "" && name != "." {
			return name
		}
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Path != "" {
		return path.Base(info.Main.Path)
	}
	return fallbackAppName
}
