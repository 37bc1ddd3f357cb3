package reporters

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind is returned by ParseKind for names that are not a Kind.
var ErrUnknownKind = errors.New("unknown reporter")

// Kind identifies a built-in reporter.
type Kind int

const (
	// GeneralInfo reports who generated the report and when.
	GeneralInfo Kind = iota
	// AppSystemMetadata reports application, runtime and host details.
	AppSystemMetadata
	// Logs reports the most recent log records.
	Logs
	// Settings reports the persisted key/value settings.
	Settings
)

// kindNames are the configuration names of each Kind, in Kind order.
var kindNames = []string{
	GeneralInfo:       "general-info",
	AppSystemMetadata: "app-system-metadata",
	Logs:              "logs",
	Settings:          "settings",
}

// String returns the configuration name of k.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// AllKinds returns every built-in Kind in default registry order.
func AllKinds() []Kind {
	return []Kind{GeneralInfo, AppSystemMetadata, Logs, Settings}
}

// ParseKind returns the Kind whose configuration name is name.
// Matching ignores case and surrounding spaces and accepts underscores.
func ParseKind(name string) (Kind, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for i, n := range kindNames {
		if n == normalized {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// ParseKinds parses every name, stopping at the first unknown one.
func ParseKinds(names []string) ([]Kind, error) {
	kinds := make([]Kind, 0, len(names))
	for _, name := range names {
		k, err := ParseKind(name)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

// KindNames returns the configuration names of all built-in reporters.
func KindNames() []string {
	return append([]string(nil), kindNames...)
}
