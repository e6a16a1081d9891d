package exec

import (
	"context"
	"io"
	"sync"
)

// MockResponse defines the response for a mocked command.
type MockResponse struct {
	Stdout []byte
	Stderr []byte
	Err    error
}

// CommandMatcher is a function that determines if a command matches.
type CommandMatcher func(name string, args []string) bool

// MockRule defines a matching rule and its response.
type MockRule struct {
	Match    CommandMatcher
	Response MockResponse
}

// MockCall records a command invocation for verification.
type MockCall struct {
	Dir   string
	Name  string
	Args  []string
	Stdin string
	// Interactive is set for calls made through Interactive.
	Interactive bool
}

// MockExecutor returns pre-recorded responses for commands.
// Commands are matched in order of rule registration; unmatched commands
// succeed with empty output.
type MockExecutor struct {
	mu    sync.RWMutex
	rules []MockRule
	calls []MockCall
}

// NewMockExecutor creates a new MockExecutor.
func NewMockExecutor() *MockExecutor {
	return &MockExecutor{}
}

// AddRule adds a matching rule with its response.
func (e *MockExecutor) AddRule(match CommandMatcher, response MockResponse) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rules = append(e.rules, MockRule{Match: match, Response: response})
}

// AddExactMatch adds a rule that matches a specific command exactly.
func (e *MockExecutor) AddExactMatch(name string, args []string, response MockResponse) {
	e.AddRule(func(n string, a []string) bool {
		if n != name || len(a) != len(args) {
			return false
		}
		for i, arg := range args {
			if a[i] != arg {
				return false
			}
		}
		return true
	}, response)
}

// AddPrefixMatch adds a rule that matches commands starting with specific args.
func (e *MockExecutor) AddPrefixMatch(name string, prefixArgs []string, response MockResponse) {
	e.AddRule(func(n string, a []string) bool {
		if n != name || len(a) < len(prefixArgs) {
			return false
		}
		for i, arg := range prefixArgs {
			if a[i] != arg {
				return false
			}
		}
		return true
	}, response)
}

// Calls returns a copy of all recorded invocations.
func (e *MockExecutor) Calls() []MockCall {
	e.mu.RLock()
	defer e.mu.RUnlock()
	calls := make([]MockCall, len(e.calls))
	copy(calls, e.calls)
	return calls
}

func (e *MockExecutor) record(call MockCall) MockResponse {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.calls = append(e.calls, call)
	for _, rule := range e.rules {
		if rule.Match(call.Name, call.Args) {
			return rule.Response
		}
	}
	return MockResponse{}
}

// Run records the call and returns the matching response.
func (e *MockExecutor) Run(ctx context.Context, dir string, name string, args ...string) (stdout, stderr []byte, err error) {
	resp := e.record(MockCall{Dir: dir, Name: name, Args: args})
	return resp.Stdout, resp.Stderr, resp.Err
}

// RunWithInput records the call, including everything read from stdin.
func (e *MockExecutor) RunWithInput(ctx context.Context, stdin io.Reader, name string, args ...string) ([]byte, error) {
	var input []byte
	if stdin != nil {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, err
		}
		input = data
	}
	resp := e.record(MockCall{Name: name, Args: args, Stdin: string(input)})
	return resp.Stdout, resp.Err
}

// Interactive records the call and returns the matching response error.
func (e *MockExecutor) Interactive(ctx context.Context, name string, args ...string) error {
	resp := e.record(MockCall{Name: name, Args: args, Interactive: true})
	return resp.Err
}
