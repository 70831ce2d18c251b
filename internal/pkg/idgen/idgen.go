// Package idgen assigns identifiers to newly created records.
//
// Identifiers are produced by an injected Generator instead of being derived
// from the current time, so rapid successive creates never collide.
package idgen

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Generator returns a fresh identifier on every call.
type Generator interface {
	NewID() string
}

// UUID generates random RFC 4122 identifiers.
type UUID struct{}

// NewUUID creates a UUID generator.
func NewUUID() Generator {
	return UUID{}
}

// NewID returns a new random UUID string.
func (UUID) NewID() string {
	return uuid.New().String()
}

// Sequence generates prefixed, zero-padded, monotonically increasing
// identifiers such as PROG0001.
type Sequence struct {
	mu     sync.Mutex
	prefix string
	next   int
}

// NewSequence creates a Sequence whose first identifier is prefix + 0001.
func NewSequence(prefix string) *Sequence {
	return &Sequence{prefix: prefix, next: 1}
}

// NewSequenceFrom creates a Sequence starting at n. Used when seeded records
// already occupy the low numbers.
func NewSequenceFrom(prefix string, n int) *Sequence {
	if n < 1 {
		n = 1
	}
	return &Sequence{prefix: prefix, next: n}
}

// NewID returns the next identifier in the sequence.
func (s *Sequence) NewID() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := fmt.Sprintf("%s%04d", s.prefix, s.next)
	s.next++
	return id
}

// Strategy names a generator family in configuration.
type Strategy string

const (
	StrategyUUID     Strategy = "uuid"
	StrategySequence Strategy = "sequence"
)

// ForStrategy builds the generator for the given strategy and record prefix.
// The prefix only applies to sequence generators.
func ForStrategy(strategy Strategy, prefix string) (Generator, error) {
	switch strategy {
	case StrategyUUID, "":
		return NewUUID(), nil
	case StrategySequence:
		return NewSequence(prefix), nil
	default:
		return nil, fmt.Errorf("unknown id strategy %q", strategy)
	}
}
