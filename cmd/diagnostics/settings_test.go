package main

import (
	"fmt"
	"strings"
	"testing"
)

// TestParseSettingValue tests typed setting values.
func TestParseSettingValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		wantType string
		want     string
	}{
		{input: "dark", wantType: "string", want: "dark"},
		{input: "true", wantType: "bool", want: "true"},
		{input: "42", wantType: "int", want: "42"},
		{input: "1.5", wantType: "float64", want: "1.5"},
		{input: "[a, b]", wantType: "[]interface {}", want: "[a b]"},
		{input: "key: value", wantType: "string", want: "key: value"},
		{input: "~", wantType: "string", want: "~"},
		{input: "[unclosed", wantType: "string", want: "[unclosed"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got := parseSettingValue(tt.input)
			if gotType := fmt.Sprintf("%T", got); gotType != tt.wantType {
				t.Errorf("parseSettingValue(%q) type = %s, want %s", tt.input, gotType, tt.wantType)
			}
			if s := fmt.Sprintf("%v", got); s != tt.want {
				t.Errorf("parseSettingValue(%q) = %s, want %s", tt.input, s, tt.want)
			}
		})
	}
}

// TestSettingsCmd tests storing, reading, listing and deleting settings.
func TestSettingsCmd(t *testing.T) {
	t.Parallel()

	dataDir := t.TempDir()
	run := func(args ...string) string {
		t.Helper()
		out, err := executeCommand(t, dataDir, append([]string{"settings"}, args...)...)
		if err != nil {
			t.Fatalf("%v: unexpected error: %v", args, err)
		}
		return out
	}

	run("set", "theme", "dark")
	run("set", "launch.count", "7")
	run("set", "--string", "build", "0042")
	run("set", "account.password", "hunter2")

	if out := run("get", "launch.count"); out != "7\n" {
		t.Errorf("unexpected get output %q", out)
	}
	if out := run("get", "build"); out != "0042\n" {
		t.Errorf("expected string value to keep leading zeros, got %q", out)
	}

	out := run("list")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	want := []string{
		"account.password = ***REDACTED***",
		"build = 0042",
		"launch.count = 7",
		"theme = dark",
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %q", len(want), out)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}

	if out := run("delete", "theme"); !strings.Contains(out, "Deleted theme") {
		t.Errorf("unexpected delete output %q", out)
	}

	if _, err := executeCommand(t, dataDir, "settings", "get", "theme"); err == nil ||
		!strings.Contains(err.Error(), "does not exist") {
		t.Errorf("expected missing setting error, got %v", err)
	}
	if _, err := executeCommand(t, dataDir, "settings", "rm", "theme"); err == nil {
		t.Error("expected error deleting a missing setting")
	}
}

// TestSettingsCmdEmpty tests listing an empty store.
func TestSettingsCmdEmpty(t *testing.T) {
	t.Parallel()

	out, err := executeCommand(t, t.TempDir(), "settings", "list")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "No settings have been stored.") {
		t.Errorf("unexpected output %q", out)
	}
}
