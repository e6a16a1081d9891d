package strategy

import (
	"fmt"
	"os"
	"sort"
)

// Detector orchestrates strategy detection across all available strategies.
type Detector struct {
	strategies map[string]Strategy
}

// NewDetector creates a new strategy detector.
func NewDetector() *Detector {
	d := &Detector{
		strategies: make(map[string]Strategy),
	}

	d.registerStrategies()
	return d
}

// registerStrategies initializes all available strategies.
func (d *Detector) registerStrategies() {
	d.strategies["rails"] = NewRailsStrategy()
	d.strategies["node"] = NewNodeStrategy()
	d.strategies["python"] = NewPythonStrategy()
	d.strategies["go"] = NewGoStrategy()
	d.strategies["rust"] = NewRustStrategy()
	d.strategies["generic"] = NewGenericStrategy()
}

// ListStrategies returns a list of all available strategy names.
func (d *Detector) ListStrategies() []string {
	var names []string
	for name := range d.strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetStrategy returns a strategy by name.
func (d *Detector) GetStrategy(name string) (Strategy, error) {
	strategy, ok := d.strategies[name]
	if !ok {
		return nil, fmt.Errorf("unknown strategy: %s", name)
	}
	return strategy, nil
}

// RunDetection runs detection for all strategies and returns results sorted
// by confidence, highest first. Equal confidences sort by name.
func (d *Detector) RunDetection(projectPath string) ([]DetectionResult, error) {
	info, err := os.Stat(projectPath)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", projectPath)
	}

	var results []DetectionResult
	for name, strategy := range d.strategies {
		confidence, evidence, err := strategy.Detect(projectPath)
		if err != nil {
			// Skip strategies that fail detection
			continue
		}

		if confidence > 0 {
			results = append(results, DetectionResult{
				Strategy:   name,
				Confidence: confidence,
				Evidence:   evidence,
			})
		}
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Confidence != results[j].Confidence {
			return results[i].Confidence > results[j].Confidence
		}
		return results[i].Strategy < results[j].Strategy
	})

	return results, nil
}

// DetectBest returns the highest-confidence strategy for projectPath.
// The generic strategy always matches, so a readable directory always
// yields a result.
func (d *Detector) DetectBest(projectPath string) (Strategy, DetectionResult, error) {
	results, err := d.RunDetection(projectPath)
	if err != nil {
		return nil, DetectionResult{}, err
	}
	if len(results) == 0 {
		return nil, DetectionResult{}, fmt.Errorf("no strategy detected for %s", projectPath)
	}

	top := results[0]
	return d.strategies[top.Strategy], top, nil
}
