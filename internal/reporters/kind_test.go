package reporters

import (
	"errors"
	"testing"
)

// TestKindString tests configuration names.
func TestKindString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind Kind
		want string
	}{
		{GeneralInfo, "general-info"},
		{AppSystemMetadata, "app-system-metadata"},
		{Logs, "logs"},
		{Settings, "settings"},
		{Kind(42), "Kind(42)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()

			if got := tt.kind.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestParseKind tests parsing configuration names.
func TestParseKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    Kind
		wantErr bool
	}{
		{name: "exact name", input: "logs", want: Logs},
		{name: "upper case with spaces", input: "  SETTINGS ", want: Settings},
		{name: "underscores", input: "app_system_metadata", want: AppSystemMetadata},
		{name: "general info", input: "general-info", want: GeneralInfo},
		{name: "unknown", input: "crash-logs", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseKind(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownKind) {
					t.Errorf("expected ErrUnknownKind, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseKind(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestParseKinds tests parsing an ordered override list.
func TestParseKinds(t *testing.T) {
	t.Parallel()

	kinds, err := ParseKinds([]string{"settings", "logs", "settings"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Kind{Settings, Logs, Settings}
	if len(kinds) != len(want) {
		t.Fatalf("expected %d kinds, got %d", len(want), len(kinds))
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("kind %d: expected %v, got %v", i, want[i], kinds[i])
		}
	}

	if _, err := ParseKinds([]string{"logs", "nope"}); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("expected ErrUnknownKind, got %v", err)
	}
}

// TestAllKinds tests the fixed default order.
func TestAllKinds(t *testing.T) {
	t.Parallel()

	got := AllKinds()
	want := []Kind{GeneralInfo, AppSystemMetadata, Logs, Settings}
	if len(got) != len(want) {
		t.Fatalf("expected %d kinds, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %v, got %v", i, want[i], got[i])
		}
	}

	names := KindNames()
	names[0] = "changed"
	if GeneralInfo.String() != "general-info" {
		t.Error("KindNames must return a copy")
	}
}
