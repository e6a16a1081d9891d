package session

import (
	"testing"
)

func TestName(t *testing.T) {
	tests := []struct {
		dir  string
		want string
	}{
		{"/home/u/my project!", "my-project-"},
		{"/home/u/api", "api"},
		{"/home/u/my.api", "my-api"},
		{"/home/u/a:b", "a-b"},
		{"/home/u/snake_case", "snake-case"},
		{"/home/u/already-clean", "already-clean"},
		{"/home/u/trailing/", "trailing"},
		{"/home/u/café", "café"},
		{"/home/u/日本語", "日本語"},
		{"relative/dir", "dir"},
	}

	for _, tt := range tests {
		t.Run(tt.dir, func(t *testing.T) {
			got := Name(tt.dir)
			if got != tt.want {
				t.Errorf("Name(%q) = %q, want %q", tt.dir, got, tt.want)
			}
			if again := Name(got); again != got {
				t.Errorf("Name not idempotent: Name(%q) = %q", got, again)
			}
		})
	}
}

func TestName_PreservesRuneCount(t *testing.T) {
	dir := "/src/a b.c-d_e"
	got := Name(dir)
	if len([]rune(got)) != len([]rune("a b.c-d_e")) {
		t.Errorf("Name(%q) = %q changed length", dir, got)
	}
}

func TestName_PanicsOnParentReference(t *testing.T) {
	for _, dir := range []string{"..", "/src/..", "/", "", "."} {
		t.Run(dir, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("Name(%q) did not panic", dir)
				}
			}()
			Name(dir)
		})
	}
}
