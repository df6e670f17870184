package harness

import "fmt"

// Result is the outcome of running one scenario.
type Result struct {
	Pass bool `json:"pass"`

	// Params are the rendered Solr parameters, nil when rendering failed.
	Params map[string]string `json:"params,omitempty"`
	Error  string            `json:"error,omitempty"`

	// Errors lists every expectation the rendered request missed.
	Errors []string `json:"errors,omitempty"`
}

// NewResult returns a passing result with no parameters yet.
func NewResult() *Result {
	return &Result{Pass: true, Params: map[string]string{}}
}

// Failf records a missed expectation.
func (r *Result) Failf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
	r.Pass = false
}
