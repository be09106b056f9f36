// Package random provides the process-wide random source and id generator
// the game rules are wired with outside of tests.
package random

import (
	"math/rand/v2"

	"github.com/google/uuid"
)

type Source interface {
	IntN(n int) int
	Float64() float64
}

type global struct{}

func (global) IntN(n int) int { return rand.IntN(n) }

func (global) Float64() float64 { return rand.Float64() }

// Global is safe for concurrent use.
func Global() Source {
	return global{}
}

// NewID returns a random UUID string.
func NewID() string {
	return uuid.NewString()
}
