package strategy

// NodeStrategy implements the Strategy interface for Node.js/TypeScript projects.
type NodeStrategy struct {
	BaseStrategy
}

// NewNodeStrategy creates a new Node strategy.
func NewNodeStrategy() *NodeStrategy {
	return &NodeStrategy{
		BaseStrategy: BaseStrategy{name: "node"},
	}
}

// Detect looks for package.json; a lockfile raises confidence.
func (s *NodeStrategy) Detect(projectPath string) (int, string, error) {
	if !fileExists(projectPath, "package.json") {
		return 0, "", nil
	}
	if lock := lockfile(projectPath); lock != "" {
		return 90, "package.json, " + lock, nil
	}
	return 80, "package.json", nil
}

// Snippet installs dependencies with the package manager the lockfile
// belongs to.
func (s *NodeStrategy) Snippet(projectPath string) string {
	switch lockfile(projectPath) {
	case "pnpm-lock.yaml":
		return "pnpm install"
	case "yarn.lock":
		return "yarn install"
	case "bun.lockb":
		return "bun install"
	default:
		return "npm install"
	}
}

func lockfile(projectPath string) string {
	for _, name := range []string{"pnpm-lock.yaml", "yarn.lock", "bun.lockb", "package-lock.json"} {
		if fileExists(projectPath, name) {
			return name
		}
	}
	return ""
}
