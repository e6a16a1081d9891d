package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	origOut, origNoColor := Out, color.NoColor
	Out = &buf
	color.NoColor = true
	t.Cleanup(func() {
		Out = origOut
		color.NoColor = origNoColor
	})
	return &buf
}

func TestMessages(t *testing.T) {
	tests := []struct {
		name  string
		print func()
		want  string
	}{
		{"error", func() { Error("not inside a tmux session") }, "error: not inside a tmux session\n"},
		{"info", func() { Info("Detected %s project", "go") }, "  → Detected go project\n"},
		{"success", func() { Success("Wrote %s", "orbit.sh") }, "  ✔ Wrote orbit.sh\n"},
		{"warn", func() { Warn("careful") }, "  ○ careful\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := capture(t)
			tt.print()
			if got := buf.String(); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAskYesNo(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		defaultYes bool
		want       bool
	}{
		{"yes", "y\n", false, true},
		{"full yes", "YES\n", false, true},
		{"no", "n\n", true, false},
		{"empty uses default yes", "\n", true, true},
		{"empty uses default no", "\n", false, false},
		{"closed input uses default", "", true, true},
		{"garbage is no", "maybe\n", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := capture(t)
			origIn := In
			In = strings.NewReader(tt.input)
			t.Cleanup(func() { In = origIn })

			if got := AskYesNo("Overwrite?", tt.defaultYes); got != tt.want {
				t.Errorf("AskYesNo() = %v, want %v", got, tt.want)
			}
			if !strings.Contains(buf.String(), "Overwrite?") {
				t.Errorf("prompt not written: %q", buf.String())
			}
		})
	}
}
