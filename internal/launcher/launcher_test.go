package launcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/nicdgonzalez/orbit/internal/project"
	"github.com/nicdgonzalez/orbit/internal/session"
)

// substringPicker selects the first candidate containing the query.
type substringPicker struct {
	seen  []string
	calls int
	err   error
}

func (p *substringPicker) Select(ctx context.Context, candidates []string, query string) (string, bool, error) {
	p.calls++
	p.seen = append([]string(nil), candidates...)
	if p.err != nil {
		return "", false, p.err
	}
	for _, c := range candidates {
		if strings.Contains(c, query) {
			return c, true, nil
		}
	}
	return "", false, nil
}

// memoryTmux is a minimal session.Backend.
type memoryTmux struct {
	sessions  map[string]string
	creates   int
	sent      []string
	connected []string
}

func newMemoryTmux() *memoryTmux {
	return &memoryTmux{sessions: make(map[string]string)}
}

func (m *memoryTmux) HasSession(ctx context.Context, name string) (bool, error) {
	_, ok := m.sessions[name]
	return ok, nil
}

func (m *memoryTmux) NewSession(ctx context.Context, name, dir string) (bool, error) {
	if _, ok := m.sessions[name]; ok {
		return false, nil
	}
	m.sessions[name] = dir
	m.creates++
	return true, nil
}

func (m *memoryTmux) SessionPath(ctx context.Context, name string) (string, error) {
	return m.sessions[name], nil
}

func (m *memoryTmux) SendCommand(ctx context.Context, name, command string) error {
	m.sent = append(m.sent, command)
	return nil
}

func (m *memoryTmux) Attach(ctx context.Context, name string) error {
	m.connected = append(m.connected, name)
	return nil
}

func (m *memoryTmux) SwitchClient(ctx context.Context, name string) error {
	m.connected = append(m.connected, name)
	return nil
}

func (m *memoryTmux) DetachClient(ctx context.Context) error { return nil }

type staticScript string

func (s staticScript) Resolve(string) (string, error) { return string(s), nil }

func mkdirs(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.MkdirAll(filepath.Join(root, name), 0755); err != nil {
			t.Fatal(err)
		}
	}
}

func newTestLauncher(roots []string) (*Launcher, *substringPicker, *memoryTmux) {
	backend := newMemoryTmux()
	manager := session.NewManager(backend, staticScript("/cfg/orbit/orbit.sh"), "bash")
	manager.InsideTmux = func() bool { return false }
	picker := &substringPicker{}
	return New(roots, picker, manager), picker, backend
}

func TestLaunch_CreatesOnceAcrossLaunches(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "api", "web")
	l, _, backend := newTestLauncher([]string{root})
	ctx := context.Background()

	first, err := l.Launch(ctx, "api")
	if err != nil {
		t.Fatalf("Launch() error = %v", err)
	}
	if first == nil || first.Name != "api" || !first.Created {
		t.Fatalf("first Launch() = %+v", first)
	}

	second, err := l.Launch(ctx, "api")
	if err != nil {
		t.Fatalf("second Launch() error = %v", err)
	}
	if second == nil || second.Created {
		t.Errorf("second Launch() = %+v", second)
	}

	if backend.creates != 1 {
		t.Errorf("creates = %d, want 1", backend.creates)
	}
	if len(backend.sent) != 1 {
		t.Errorf("bootstrap commands = %v, want exactly one", backend.sent)
	}
	if !reflect.DeepEqual(backend.connected, []string{"api", "api"}) {
		t.Errorf("connected = %v", backend.connected)
	}
}

func TestLaunch_CandidateOrder(t *testing.T) {
	a, b := t.TempDir(), t.TempDir()
	mkdirs(t, a, "proj1")
	mkdirs(t, b, "proj2")
	l, picker, _ := newTestLauncher([]string{a, b})

	if _, err := l.Launch(context.Background(), "proj2"); err != nil {
		t.Fatalf("Launch() error = %v", err)
	}
	want := []string{filepath.Join(a, "proj1"), filepath.Join(b, "proj2")}
	if !reflect.DeepEqual(picker.seen, want) {
		t.Errorf("candidates = %v, want %v", picker.seen, want)
	}
}

func TestLaunch_NothingSelected(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "api")
	l, _, backend := newTestLauncher([]string{root})

	sess, err := l.Launch(context.Background(), "nomatch")
	if err != nil {
		t.Fatalf("Launch() error = %v", err)
	}
	if sess != nil {
		t.Errorf("Launch() = %+v, want nil", sess)
	}
	if backend.creates != 0 || len(backend.connected) != 0 {
		t.Error("aborted launch touched tmux")
	}
}

func TestLaunch_NoCandidates(t *testing.T) {
	tests := []struct {
		name  string
		roots func(t *testing.T) []string
	}{
		{"empty search path", func(t *testing.T) []string { return nil }},
		{"empty root", func(t *testing.T) []string { return []string{t.TempDir()} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, picker, backend := newTestLauncher(tt.roots(t))

			sess, err := l.Launch(context.Background(), "")
			if err != nil {
				t.Fatalf("Launch() error = %v", err)
			}
			if sess != nil || backend.creates != 0 {
				t.Errorf("Launch() = %+v, creates = %d", sess, backend.creates)
			}
			if picker.calls != 0 {
				t.Error("picker ran with no candidates")
			}
		})
	}
}

func TestLaunch_Errors(t *testing.T) {
	t.Run("invalid root", func(t *testing.T) {
		l, _, _ := newTestLauncher([]string{filepath.Join(t.TempDir(), "missing")})
		_, err := l.Launch(context.Background(), "")
		if !errors.Is(err, project.ErrInvalidPath) {
			t.Errorf("Launch() error = %v, want ErrInvalidPath", err)
		}
	})

	t.Run("picker fails", func(t *testing.T) {
		root := t.TempDir()
		mkdirs(t, root, "api")
		l, picker, backend := newTestLauncher([]string{root})
		picker.err = errors.New("fzf exploded")

		if _, err := l.Launch(context.Background(), "api"); err == nil {
			t.Error("Launch() expected error from picker")
		}
		if backend.creates != 0 {
			t.Error("session created after picker failure")
		}
	})
}
