package strategy

// RustStrategy implements the Strategy interface for Rust projects.
type RustStrategy struct {
	BaseStrategy
}

// NewRustStrategy creates a new Rust strategy.
func NewRustStrategy() *RustStrategy {
	return &RustStrategy{
		BaseStrategy: BaseStrategy{name: "rust"},
	}
}

// Detect looks for Cargo.toml.
func (s *RustStrategy) Detect(projectPath string) (int, string, error) {
	if fileExists(projectPath, "Cargo.toml") {
		return 95, "Cargo.toml", nil
	}
	return 0, "", nil
}

// Snippet prefetches crates.
func (s *RustStrategy) Snippet(projectPath string) string {
	return "cargo fetch"
}
