package generator

import (
	"math"
	"testing"

	"github.com/bendazz/vector-practice/geometry"
)

func inRange(p geometry.VectorPair, lo, hi int) bool {
	for _, c := range []int{p.AX, p.AY, p.BX, p.BY} {
		if c < lo || c > hi {
			return false
		}
	}
	return true
}

func TestGenerate(t *testing.T) {
	tests := []struct {
		name     string
		min, max int
	}{
		{"symmetric", -5, 5},
		{"reversed bounds", 5, -5},
		{"non-negative", 0, 1},
		{"positive only", 3, 9},
		{"single non-zero value", 2, 2},
		{"negative only", -3, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(42, 0, nil)
			lo, hi := min(tt.min, tt.max), max(tt.min, tt.max)
			for i := 0; i < 500; i++ {
				p := g.Generate(tt.min, tt.max)
				if p.Degenerate() {
					t.Fatalf("Generate(%d, %d) = %v; degenerate", tt.min, tt.max, p)
				}
				if !inRange(p, lo, hi) {
					t.Fatalf("Generate(%d, %d) = %v; outside [%d, %d]", tt.min, tt.max, p, lo, hi)
				}
			}
		})
	}
}

func TestGenerateCoversRange(t *testing.T) {
	g := New(7, 0, nil)
	seen := map[int]bool{}
	for i := 0; i < 2000; i++ {
		p := g.Generate(-2, 2)
		seen[p.AX], seen[p.AY], seen[p.BX], seen[p.BY] = true, true, true, true
	}
	for v := -2; v <= 2; v++ {
		if !seen[v] {
			t.Errorf("value %d never drawn", v)
		}
	}
}

func TestGenerateIsDeterministicForSeed(t *testing.T) {
	a, b := New(99, 0, nil), New(99, 0, nil)
	for i := 0; i < 20; i++ {
		if pa, pb := a.Generate(-9, 9), b.Generate(-9, 9); pa != pb {
			t.Fatalf("draw %d: %v != %v", i, pa, pb)
		}
	}
}

func TestGenerateZeroRangeTerminates(t *testing.T) {
	g := New(1, 50, nil)
	p := g.Generate(0, 0)
	if p.Degenerate() {
		t.Errorf("Generate(0, 0) = %v; degenerate", p)
	}
	if p != Fallback(0, 0) {
		t.Errorf("Generate(0, 0) = %v; want fallback %v", p, Fallback(0, 0))
	}
}

func TestGenerateExtremeRange(t *testing.T) {
	g := New(3, 0, nil)
	for i := 0; i < 100; i++ {
		p := g.Generate(math.MinInt, math.MaxInt)
		if p.AX == 0 && p.AY == 0 {
			t.Fatalf("Generate(MinInt, MaxInt) = %v", p)
		}
	}
}

func TestFallback(t *testing.T) {
	tests := []struct {
		min, max int
		want     geometry.VectorPair
	}{
		{-5, 5, geometry.NewVectorPair(5, 5, 5, 5)},
		{-5, 0, geometry.NewVectorPair(-5, -5, -5, -5)},
		{7, 3, geometry.NewVectorPair(7, 7, 7, 7)},
		{0, 0, geometry.NewVectorPair(1, 1, 1, 1)},
	}

	for _, tt := range tests {
		got := Fallback(tt.min, tt.max)
		if got != tt.want {
			t.Errorf("Fallback(%d, %d) = %v; want %v", tt.min, tt.max, got, tt.want)
		}
		if got.Degenerate() {
			t.Errorf("Fallback(%d, %d) = %v; degenerate", tt.min, tt.max, got)
		}
	}
}
