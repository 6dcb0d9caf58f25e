// Package generator draws random vector pairs for practice problems.
package generator

import (
	"math/rand/v2"
	"time"

	"github.com/bendazz/vector-practice/geometry"
	"github.com/bendazz/vector-practice/logger"
)

// DefaultMaxAttempts bounds the redraw loop in Generate.
const DefaultMaxAttempts = 1000

// Generator produces VectorPairs whose A, B and A+B are all non-zero.
type Generator struct {
	rng         *rand.Rand
	maxAttempts int
	logger      logger.Logger
}

// New creates a generator from a seeded source. maxAttempts <= 0 selects
// DefaultMaxAttempts.
func New(seed uint64, maxAttempts int, log logger.Logger) *Generator {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	if log == nil {
		log = logger.Discard()
	}
	return &Generator{
		rng:         rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		maxAttempts: maxAttempts,
		logger:      log,
	}
}

// Generate draws four independent integers in [min(lo, hi), max(lo, hi)] and
// redraws the whole quadruple while the pair is degenerate. After
// maxAttempts draws it gives up and returns Fallback(lo, hi).
func (g *Generator) Generate(lo, hi int) geometry.VectorPair {
	safeMin, safeMax := min(lo, hi), max(lo, hi)

	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		pair := geometry.VectorPair{
			AX: g.intIn(safeMin, safeMax),
			AY: g.intIn(safeMin, safeMax),
			BX: g.intIn(safeMin, safeMax),
			BY: g.intIn(safeMin, safeMax),
		}
		if !pair.Degenerate() {
			g.logger.Debug("vectors generated", "pair", pair.String(), "attempts", attempt)
			return pair
		}
	}

	pair := Fallback(safeMin, safeMax)
	g.logger.Warn("no non-degenerate pair drawn, using fallback",
		"min", safeMin,
		"max", safeMax,
		"attempts", g.maxAttempts,
		"pair", pair.String(),
	)
	return pair
}

// intIn returns a uniform integer in [lo, hi].
func (g *Generator) intIn(lo, hi int) int {
	span := uint64(int64(hi) - int64(lo))
	if span == ^uint64(0) {
		return int(int64(g.rng.Uint64()))
	}
	return int(int64(lo) + int64(g.rng.Uint64N(span+1)))
}

// Fallback returns a fixed non-degenerate pair. When [lo, hi] holds a
// non-zero value v the pair is A=B=(v,v), which lies inside the range. The
// range {0} has no non-degenerate pair at all; it gets A=B=(1,1).
func Fallback(lo, hi int) geometry.VectorPair {
	safeMin, safeMax := min(lo, hi), max(lo, hi)

	v := 1
	switch {
	case safeMax != 0:
		v = safeMax
	case safeMin != 0:
		v = safeMin
	}
	return geometry.VectorPair{AX: v, AY: v, BX: v, BY: v}
}

var defaultGenerator = New(uint64(time.Now().UnixNano()), DefaultMaxAttempts, nil)

// GenerateVectors draws a pair from a time-seeded generator.
func GenerateVectors(lo, hi int) geometry.VectorPair {
	return defaultGenerator.Generate(lo, hi)
}
