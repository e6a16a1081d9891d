package strategy

// PythonStrategy implements the Strategy interface for Python projects.
type PythonStrategy struct {
	BaseStrategy
}

// NewPythonStrategy creates a new Python strategy.
func NewPythonStrategy() *PythonStrategy {
	return &PythonStrategy{
		BaseStrategy: BaseStrategy{name: "python"},
	}
}

var pythonMarkers = []struct {
	file       string
	confidence int
}{
	{"pyproject.toml", 85},
	{"requirements.txt", 70},
	{"setup.py", 70},
	{"Pipfile", 70},
}

// Detect looks for the usual Python packaging files.
func (s *PythonStrategy) Detect(projectPath string) (int, string, error) {
	for _, m := range pythonMarkers {
		if fileExists(projectPath, m.file) {
			return m.confidence, m.file, nil
		}
	}
	return 0, "", nil
}

// Snippet creates a virtualenv and installs requirements when present.
func (s *PythonStrategy) Snippet(projectPath string) string {
	snippet := "[ -d .venv ] || python3 -m venv .venv"
	if fileExists(projectPath, "requirements.txt") {
		snippet += "\n.venv/bin/pip install -r requirements.txt"
	}
	return snippet
}
