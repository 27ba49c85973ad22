package attrail

import (
	"sync"

	"github.com/google/uuid"
)

// TokenGenerator produces instance identity tokens. A token names one
// instrumented instance in snapshots and observer events.
type TokenGenerator interface {
	Generate() string
}

// UUIDv7Generator generates time-sortable UUIDv7 tokens. This is the
// default: UUIDv7 embeds a timestamp in the most significant bits, so
// tokens sort by instance creation time, which helps when auditing many
// instances at once.
//
// Thread-safety: stateless, safe for concurrent use.
type UUIDv7Generator struct{}

// Generate creates a new UUIDv7 as a hyphenated string.
// Panics if UUID generation fails (should never happen in practice).
func (UUIDv7Generator) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}

// FixedGenerator returns predetermined tokens in order. It exists for
// deterministic tests and golden snapshot comparison: instrument with a
// known token sequence and the output is byte-stable across runs.
//
// Thread-safety: safe for concurrent use via internal mutex.
type FixedGenerator struct {
	mu     sync.Mutex
	tokens []string
	idx    int
}

// NewFixedGenerator creates a generator that returns tokens in order.
//
//	gen := attrail.NewFixedGenerator("obj-1", "obj-2")
//	gen.Generate() // "obj-1"
//	gen.Generate() // "obj-2"
//	gen.Generate() // panic: all tokens exhausted
func NewFixedGenerator(tokens ...string) *FixedGenerator {
	return &FixedGenerator{tokens: tokens}
}

// Generate returns the next predetermined token. Panics when all tokens
// have been consumed — fail-fast for test misconfiguration (more instances
// instrumented than the test expected).
func (g *FixedGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.idx >= len(g.tokens) {
		panic("FixedGenerator: all tokens exhausted")
	}
	token := g.tokens[g.idx]
	g.idx++
	return token
}
