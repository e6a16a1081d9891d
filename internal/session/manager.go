package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"github.com/nicdgonzalez/orbit/internal/bootstrap"
	"github.com/nicdgonzalez/orbit/internal/config"
	"github.com/nicdgonzalez/orbit/internal/exec"
	"github.com/nicdgonzalez/orbit/internal/logger"
	"github.com/nicdgonzalez/orbit/pkg/hash"
)

var (
	// ErrCreateSession is returned when the multiplexer fails to create a
	// session.
	ErrCreateSession = errors.New("failed to create session")

	// ErrBootstrap is returned when the bootstrap script cannot be resolved
	// or sent to a new session.
	ErrBootstrap = errors.New("failed to run configuration script")

	// ErrNotInsideSession is returned by Detach outside a tmux client.
	ErrNotInsideSession = errors.New("not inside a tmux session")
)

// Backend is the subset of tmux orbit needs.
type Backend interface {
	HasSession(ctx context.Context, name string) (bool, error)
	// NewSession creates a detached session rooted at dir. It returns
	// false without error when the session already exists.
	NewSession(ctx context.Context, name, dir string) (bool, error)
	SessionPath(ctx context.Context, name string) (string, error)
	SendCommand(ctx context.Context, name, command string) error
	Attach(ctx context.Context, name string) error
	SwitchClient(ctx context.Context, name string) error
	DetachClient(ctx context.Context) error
}

// ScriptResolver returns the bootstrap script for a project directory.
type ScriptResolver interface {
	Resolve(projectDir string) (string, error)
}

// Session is an opened tmux session.
type Session struct {
	Name string
	Dir  string
	// Created is true when this Open created the session and ran its
	// bootstrap script.
	Created bool
}

// lockRetryDelay is how often Open retries a held session lock.
const lockRetryDelay = 50 * time.Millisecond

// Manager opens, connects to and detaches from sessions.
type Manager struct {
	backend Backend
	scripts ScriptResolver
	shell   string

	// InsideTmux reports whether the process runs inside a tmux client.
	InsideTmux func() bool

	// LockDir holds per-session lock files that serialize concurrent Opens
	// of the same project. Empty disables locking.
	LockDir string
}

// NewManager creates a Manager. shell runs bootstrap scripts inside new
// sessions.
func NewManager(backend Backend, scripts ScriptResolver, shell string) *Manager {
	return &Manager{
		backend:    backend,
		scripts:    scripts,
		shell:      shell,
		InsideTmux: config.InsideTmux,
	}
}

// Open returns the session for dir, creating and bootstrapping it if it
// does not exist yet.
func (m *Manager) Open(ctx context.Context, dir string) (*Session, error) {
	unlock, err := m.lock(ctx, Name(dir))
	if err != nil {
		return nil, err
	}
	defer unlock()

	name, exists, err := m.resolveName(ctx, dir)
	if err != nil {
		return nil, err
	}

	log := logger.WithSession(name)
	sess := &Session{Name: name, Dir: dir}
	if exists {
		log.Debug("session exists", "dir", dir)
		return sess, nil
	}

	created, err := m.backend.NewSession(ctx, name, dir)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrCreateSession, name, err)
	}
	if !created {
		// Another orbit created it between the query and now; that one
		// owns the bootstrap.
		log.Info("session created concurrently, skipping bootstrap", "dir", dir)
		return sess, nil
	}
	log.Info("session created", "dir", dir)

	if err := m.bootstrap(ctx, name, dir); err != nil {
		return nil, err
	}
	sess.Created = true
	return sess, nil
}

// lock takes the exclusive lock for name, waiting until ctx is done.
// Caller must call the returned unlock.
func (m *Manager) lock(ctx context.Context, name string) (func(), error) {
	if m.LockDir == "" {
		return func() {}, nil
	}
	if err := os.MkdirAll(m.LockDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create lock directory: %w", err)
	}

	fl := flock.New(filepath.Join(m.LockDir, name+".lock"))
	locked, err := fl.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return nil, fmt.Errorf("failed to lock session %s: %w", name, err)
	}
	if !locked {
		return nil, fmt.Errorf("failed to lock session %s", name)
	}
	return func() { _ = fl.Unlock() }, nil
}

// resolveName picks the session name for dir and reports whether that
// session already exists. When the plain name belongs to a session rooted
// elsewhere, a path-hash suffix keeps the two apart. A directory that
// already has a suffixed session keeps it even after the plain name frees
// up.
func (m *Manager) resolveName(ctx context.Context, dir string) (string, bool, error) {
	name := Name(dir)
	alt := hash.Suffixed(name, dir)

	exists, err := m.backend.HasSession(ctx, alt)
	if err != nil {
		return "", false, err
	}
	if exists {
		return alt, true, nil
	}

	exists, err = m.backend.HasSession(ctx, name)
	if err != nil {
		return "", false, err
	}
	if !exists {
		return name, false, nil
	}

	path, err := m.backend.SessionPath(ctx, name)
	if err != nil {
		logger.WithSession(name).Warn("cannot read session path, assuming same directory", "error", err)
		return name, true, nil
	}
	if path == "" || samePath(path, dir) {
		return name, true, nil
	}

	logger.WithSession(name).Debug("name taken by another directory", "owner", path, "dir", dir, "alternative", alt)

	exists, err = m.backend.HasSession(ctx, alt)
	if err != nil {
		return "", false, err
	}
	return alt, exists, nil
}

func (m *Manager) bootstrap(ctx context.Context, name, dir string) error {
	script, err := m.scripts.Resolve(dir)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBootstrap, err)
	}

	logger.WithSession(name).Info("running bootstrap script", "script", script)
	if err := m.backend.SendCommand(ctx, name, bootstrap.Command(script, m.shell)); err != nil {
		return fmt.Errorf("%w: %w", ErrBootstrap, err)
	}
	return nil
}

// Connect switches the current tmux client to the session, or attaches a
// new client when not inside tmux. It blocks until the client returns. A
// non-zero exit from tmux, or one caused by ctx ending, is logged and not
// returned; failing to start tmux is.
func (m *Manager) Connect(ctx context.Context, name string) error {
	log := logger.WithSession(name)

	var err error
	if m.InsideTmux() {
		log.Debug("switching client")
		err = m.backend.SwitchClient(ctx, name)
	} else {
		log.Debug("attaching client")
		err = m.backend.Attach(ctx, name)
	}

	if err == nil {
		return nil
	}
	if ctx.Err() != nil {
		log.Info("tmux client stopped", "error", err, "reason", ctx.Err())
		return nil
	}
	if exec.ExitCode(err) < 0 {
		return fmt.Errorf("failed to connect to session %s: %w", name, err)
	}
	log.Info("tmux client exited", "error", err)
	return nil
}

// Detach detaches the current tmux client.
func (m *Manager) Detach(ctx context.Context) error {
	if !m.InsideTmux() {
		return ErrNotInsideSession
	}
	return m.backend.DetachClient(ctx)
}

func samePath(a, b string) bool {
	if filepath.Clean(a) == filepath.Clean(b) {
		return true
	}
	ra, errA := filepath.EvalSymlinks(a)
	rb, errB := filepath.EvalSymlinks(b)
	return errA == nil && errB == nil && ra == rb
}
