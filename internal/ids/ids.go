// Package ids provides the ID generator injected into everything that
// creates entries. Keeping generation behind an interface avoids hidden
// process-wide state and lets tests use deterministic IDs.
package ids

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Generator produces unique entry IDs.
type Generator interface {
	NewID() string
}

// UUID generates random UUIDv4 identifiers. This is the production
// generator.
type UUID struct{}

// NewID implements Generator.
func (UUID) NewID() string {
	return uuid.NewString()
}

// Sequence generates "prefix-1", "prefix-2", ... deterministically.
// Intended for tests and fixtures.
type Sequence struct {
	mu     sync.Mutex
	prefix string
	next   int
}

// NewSequence creates a sequence generator with the given prefix.
func NewSequence(prefix string) *Sequence {
	return &Sequence{prefix: prefix}
}

// NewID implements Generator.
func (s *Sequence) NewID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	return fmt.Sprintf("%s-%d", s.prefix, s.next)
}
