package strategy

// GenericStrategy matches any directory with minimal confidence.
type GenericStrategy struct {
	BaseStrategy
}

// NewGenericStrategy creates a new generic strategy.
func NewGenericStrategy() *GenericStrategy {
	return &GenericStrategy{
		BaseStrategy: BaseStrategy{name: "generic"},
	}
}

// Detect always matches.
func (s *GenericStrategy) Detect(projectPath string) (int, string, error) {
	return 10, "fallback", nil
}

// Snippet is empty: nothing is known about the project.
func (s *GenericStrategy) Snippet(projectPath string) string {
	return ""
}
