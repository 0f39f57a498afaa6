package signal

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-acquire/dsp/core"
)

func TestSineValidation(t *testing.T) {
	g := NewGenerator(nil)
	if _, err := g.Sine(10, 1, 0); err == nil {
		t.Fatal("expected error for samples=0")
	}
	if _, err := g.Sine(10, 1, -5); err == nil {
		t.Fatal("expected error for negative samples")
	}
}

func TestSinePeriodicity(t *testing.T) {
	g := NewGenerator([]core.ProcessorOption{core.WithSampleRate(100)})
	s, err := g.Sine(10, 1, 100)
	if err != nil {
		t.Fatal(err)
	}

	// 10 Hz at 100 Hz sample rate: period of 10 samples.
	for i := 0; i+10 < len(s); i++ {
		if math.Abs(s[i]-s[i+10]) > 1e-9 {
			t.Fatalf("sample %d not periodic: %v vs %v", i, s[i], s[i+10])
		}
	}
}

func TestWhiteNoiseDeterministic(t *testing.T) {
	g1 := NewGenerator(nil, WithSeed(7))
	g2 := NewGenerator(nil, WithSeed(7))

	a, err := g1.WhiteNoise(1, 64)
	if err != nil {
		t.Fatal(err)
	}
	b, err := g2.WhiteNoise(1, 64)
	if err != nil {
		t.Fatal(err)
	}

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample %d differs across equal seeds", i)
		}
		if a[i] < -1 || a[i] > 1 {
			t.Fatalf("sample %d out of range: %v", i, a[i])
		}
	}
}

func TestPPGValidation(t *testing.T) {
	g := NewGenerator(nil)
	if _, err := g.PPG(72, 0); err == nil {
		t.Fatal("expected error for samples=0")
	}
	if _, err := g.PPG(0, 100); err == nil {
		t.Fatal("expected error for zero heart rate")
	}
}

func TestPPGCleanFundamental(t *testing.T) {
	// Without noise or wander the first sample is 0 and the signal is
	// periodic at the heart rate.
	g := NewGenerator(
		[]core.ProcessorOption{core.WithSampleRate(120)},
		WithNoiseLevel(0), WithBaselineWander(0),
	)

	// 60 BPM = 1 Hz, period of 120 samples.
	s, err := g.PPG(60, 360)
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(s[0]) > 1e-12 {
		t.Fatalf("s[0] = %v, want 0", s[0])
	}
	for i := 0; i+120 < len(s); i++ {
		if math.Abs(s[i]-s[i+120]) > 1e-9 {
			t.Fatalf("sample %d not periodic at heart rate", i)
		}
	}
}

func TestPPGDeterministicAcrossSeeds(t *testing.T) {
	g1 := NewGenerator(nil, WithSeed(3))
	g2 := NewGenerator(nil, WithSeed(3))
	g3 := NewGenerator(nil, WithSeed(4))

	a, _ := g1.PPG(72, 128)
	b, _ := g2.PPG(72, 128)
	c, _ := g3.PPG(72, 128)

	same := true
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample %d differs across equal seeds", i)
		}
		if a[i] != c[i] {
			same = false
		}
	}
	if same {
		t.Fatal("different seeds produced identical noise")
	}
}

func TestECGValidation(t *testing.T) {
	g := NewGenerator(nil)
	if _, err := g.ECG(72, 0); err == nil {
		t.Fatal("expected error for samples=0")
	}
	if _, err := g.ECG(0, 100); err == nil {
		t.Fatal("expected error for zero heart rate")
	}
	if _, err := g.ECG(-60, 100); err == nil {
		t.Fatal("expected error for negative heart rate")
	}
}

func TestECGCleanMorphology(t *testing.T) {
	g := NewGenerator(
		[]core.ProcessorOption{core.WithSampleRate(500)},
		WithNoiseLevel(0), WithPowerline(0, 50),
	)

	// 60 BPM at 500 Hz: one cycle per 500 samples.
	s, err := g.ECG(60, 1500)
	if err != nil {
		t.Fatal(err)
	}

	// Isoelectric baseline outside the P, QRS, and T segments.
	if s[0] != 0 {
		t.Fatalf("s[0] = %v, want 0", s[0])
	}
	if s[150] != 0 {
		t.Fatalf("PR segment sample = %v, want 0", s[150])
	}

	// The R peak sits at phase 0.4 with unit amplitude.
	if math.Abs(s[200]-1.0) > 1e-9 {
		t.Fatalf("R peak = %v, want 1.0", s[200])
	}
	for i, v := range s[:500] {
		if v > s[200]+1e-9 {
			t.Fatalf("sample %d = %v exceeds the R peak", i, v)
		}
	}

	// Periodic at the heart rate.
	for i := 0; i+500 < len(s); i++ {
		if math.Abs(s[i]-s[i+500]) > 1e-9 {
			t.Fatalf("sample %d not periodic at heart rate", i)
		}
	}
}

func TestECGPowerlineInterference(t *testing.T) {
	clean := NewGenerator(
		[]core.ProcessorOption{core.WithSampleRate(500)},
		WithNoiseLevel(0), WithPowerline(0, 50),
	)
	hum := NewGenerator(
		[]core.ProcessorOption{core.WithSampleRate(500)},
		WithNoiseLevel(0), WithPowerline(0.05, 50),
	)

	a, err := clean.ECG(72, 1000)
	if err != nil {
		t.Fatal(err)
	}
	b, err := hum.ECG(72, 1000)
	if err != nil {
		t.Fatal(err)
	}

	for i := range a {
		t0 := float64(i) / 500
		want := 0.05 * math.Sin(2*math.Pi*50*t0)
		if math.Abs((b[i]-a[i])-want) > 1e-12 {
			t.Fatalf("sample %d interference = %v, want %v", i, b[i]-a[i], want)
		}
	}
}

func TestECGDeterministicAcrossSeeds(t *testing.T) {
	g1 := NewGenerator(nil, WithSeed(3))
	g2 := NewGenerator(nil, WithSeed(3))

	a, _ := g1.ECG(72, 128)
	b, _ := g2.ECG(72, 128)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample %d differs across equal seeds", i)
		}
	}
}

func TestRespirationBounded(t *testing.T) {
	g := NewGenerator(
		[]core.ProcessorOption{core.WithSampleRate(50)},
		WithNoiseLevel(0),
	)
	s, err := g.Respiration(15, 500)
	if err != nil {
		t.Fatal(err)
	}

	for i, v := range s {
		if v < -1.0001 || v > 1.0001 {
			t.Fatalf("sample %d out of range: %v", i, v)
		}
	}
}
