// Package launcher ties project discovery, selection and session handling
// into the attach flow.
package launcher

import (
	"context"

	"github.com/nicdgonzalez/orbit/internal/finder"
	"github.com/nicdgonzalez/orbit/internal/logger"
	"github.com/nicdgonzalez/orbit/internal/project"
	"github.com/nicdgonzalez/orbit/internal/session"
)

// Sessions opens and connects to sessions. *session.Manager implements it.
type Sessions interface {
	Open(ctx context.Context, dir string) (*session.Session, error)
	Connect(ctx context.Context, name string) error
}

// Launcher runs the attach flow for a fixed set of search roots.
type Launcher struct {
	Roots    []string
	Picker   finder.Picker
	Sessions Sessions

	// Candidates lists the projects under roots. Defaults to project.Resolve.
	Candidates func(roots []string) ([]string, error)
}

// New creates a Launcher.
func New(roots []string, picker finder.Picker, sessions Sessions) *Launcher {
	return &Launcher{
		Roots:      roots,
		Picker:     picker,
		Sessions:   sessions,
		Candidates: project.Resolve,
	}
}

// Launch lets the user pick a project matching query and connects to its
// session. Picking nothing is not an error: Launch returns nil and no
// session is touched. The returned Session is nil in that case.
func (l *Launcher) Launch(ctx context.Context, query string) (*session.Session, error) {
	log := logger.Get()

	candidates, err := l.Candidates(l.Roots)
	if err != nil {
		return nil, err
	}
	log.Debug("resolved candidates", "roots", l.Roots, "count", len(candidates))

	for name, paths := range project.Collisions(candidates) {
		log.Debug("projects share a name", "name", name, "paths", paths)
	}

	if len(candidates) == 0 {
		log.Info("no projects found", "roots", l.Roots)
		return nil, nil
	}

	dir, ok, err := l.Picker.Select(ctx, candidates, query)
	if err != nil {
		return nil, err
	}
	if !ok {
		log.Debug("nothing selected", "query", query)
		return nil, nil
	}

	sess, err := l.Sessions.Open(ctx, dir)
	if err != nil {
		return nil, err
	}

	if err := l.Sessions.Connect(ctx, sess.Name); err != nil {
		return nil, err
	}
	return sess, nil
}
