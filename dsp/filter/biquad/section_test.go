package biquad

import (
	"math"
	"testing"
)

func TestIdentitySection(t *testing.T) {
	s := NewSection(Coefficients{B0: 1})

	for _, x := range []float64{1, -2, 0.5, 0} {
		if got := s.ProcessSample(x); got != x {
			t.Fatalf("identity: got %v want %v", got, x)
		}
	}
}

func TestDelaySection(t *testing.T) {
	// B1=1 alone delays the input by one sample.
	s := NewSection(Coefficients{B1: 1})

	in := []float64{1, 2, 3, 4}
	want := []float64{0, 1, 2, 3}
	for i, x := range in {
		if got := s.ProcessSample(x); got != want[i] {
			t.Fatalf("sample %d: got %v want %v", i, got, want[i])
		}
	}
}

func TestProcessBlockMatchesProcessSample(t *testing.T) {
	c := Coefficients{B0: 0.2, B1: 0.3, B2: 0.1, A1: -0.4, A2: 0.05}

	a := NewSection(c)
	b := NewSection(c)

	in := make([]float64, 64)
	for i := range in {
		in[i] = math.Sin(float64(i) / 3)
	}

	blk := make([]float64, len(in))
	copy(blk, in)
	b.ProcessBlock(blk)

	for i, x := range in {
		want := a.ProcessSample(x)
		if math.Abs(blk[i]-want) > 1e-15 {
			t.Fatalf("sample %d: block %v, sample %v", i, blk[i], want)
		}
	}
}

func TestSectionReset(t *testing.T) {
	c := Coefficients{B0: 0.5, B1: 0.5, A1: -0.2}
	s := NewSection(c)

	s.ProcessSample(1)
	s.ProcessSample(-1)
	s.Reset()

	fresh := NewSection(c)
	for _, x := range []float64{1, 2, 3} {
		if got, want := s.ProcessSample(x), fresh.ProcessSample(x); got != want {
			t.Fatalf("after Reset: got %v want %v", got, want)
		}
	}
}

func TestChainCascadesInOrder(t *testing.T) {
	// Two one-sample delays cascade to a two-sample delay.
	c := NewChain([]Coefficients{{B1: 1}, {B1: 1}})

	in := []float64{1, 2, 3, 4, 5}
	want := []float64{0, 0, 1, 2, 3}
	for i, x := range in {
		if got := c.ProcessSample(x); got != want[i] {
			t.Fatalf("sample %d: got %v want %v", i, got, want[i])
		}
	}

	if c.Len() != 2 {
		t.Fatalf("Len: got %d want 2", c.Len())
	}
}

func TestChainBlockMatchesSample(t *testing.T) {
	coeffs := []Coefficients{
		{B0: 0.3, B1: 0.2, A1: -0.1},
		{B0: 0.8, B2: 0.1, A2: 0.05},
	}

	a := NewChain(coeffs)
	b := NewChain(coeffs)

	in := make([]float64, 32)
	for i := range in {
		in[i] = float64(i%7) - 3
	}

	blk := make([]float64, len(in))
	copy(blk, in)
	b.ProcessBlock(blk)

	for i, x := range in {
		want := a.ProcessSample(x)
		if math.Abs(blk[i]-want) > 1e-15 {
			t.Fatalf("sample %d: block %v, sample %v", i, blk[i], want)
		}
	}
}

func TestChainReset(t *testing.T) {
	c := NewChain([]Coefficients{{B0: 0.5, B1: 0.5, A1: -0.3}})
	c.ProcessSample(10)
	c.Reset()

	if got := c.ProcessSample(0); got != 0 {
		t.Fatalf("state survived Reset: got %v want 0", got)
	}
}
