package testutil

// FixedTraceIDGenerator generates the same trace id every time.
//
// This keeps JSON command output byte-identical across runs.
//
// Thread-safety: FixedTraceIDGenerator is stateless and safe for concurrent use.
type FixedTraceIDGenerator struct {
	id string
}

// NewFixedTraceIDGenerator creates a fixed trace id generator.
// If id is empty, Generate() returns "test-trace-default".
func NewFixedTraceIDGenerator(id string) *FixedTraceIDGenerator {
	if id == "" {
		id = "test-trace-default"
	}
	return &FixedTraceIDGenerator{id: id}
}

// Generate returns the fixed trace id.
func (g *FixedTraceIDGenerator) Generate() string {
	return g.id
}
