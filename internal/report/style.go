package report

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

// StyleName is the file name of the bundled style sheet.
const StyleName = "style.css"

//go:embed assets/style.css
var bundledAssets embed.FS

// BundledStyle returns the file system holding the bundled style sheet under
// StyleName.
func BundledStyle() fs.FS {
	sub, err := fs.Sub(bundledAssets, "assets")
	if err != nil {
		// fs.Sub only fails for invalid directory names.
		panic(err)
	}
	return sub
}

// MinifyCSS collapses every run of whitespace, line breaks included, into a
// single space and trims both ends. Tokens keep their content and order, and
// minifying already minified text returns it unchanged.
func MinifyCSS(css string) string {
	return strings.Join(strings.Fields(css), " ")
}

// loadStyle reads the style sheet name from fsys and minifies it.
func loadStyle(fsys fs.FS, name string) (string, error) {
	if fsys == nil {
		return "", ErrNoStyleSource
	}

	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrStyleNotFound, name)
		}
		return "", fmt.Errorf("%w: %s: %w", ErrStyleUnreadable, name, err)
	}

	return MinifyCSS(string(data)), nil
}
