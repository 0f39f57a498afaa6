package movavg

import "testing"

func TestNewValidation(t *testing.T) {
	for _, window := range []int{-4, 0, 3, 12, 1000} {
		if _, err := New(window); err == nil {
			t.Fatalf("expected error for window=%d", window)
		}
	}

	for _, window := range []int{1, 2, 8, 64, 4096} {
		f, err := New(window)
		if err != nil {
			t.Fatalf("window=%d: %v", window, err)
		}
		if f.Window() != window {
			t.Fatalf("Window: got %d want %d", f.Window(), window)
		}
	}
}

func TestStartupRunningAverage(t *testing.T) {
	f, err := New(4)
	if err != nil {
		t.Fatal(err)
	}

	// 4/1, 12/2, 24/3, 40/4.
	in := []int64{4, 8, 12, 16}
	want := []int64{4, 6, 8, 10}
	for i, s := range in {
		got := f.Filter(s)
		if got != want[i] {
			t.Fatalf("sample %d: got %d want %d", i, got, want[i])
		}
	}

	// 5th sample evicts the 4: sum = 8+12+16+0 = 36, 36/4 = 9.
	if got := f.Filter(0); got != 9 {
		t.Fatalf("5th sample: got %d want 9", got)
	}
}

func TestStartupTruncatesTowardZero(t *testing.T) {
	f, err := New(8)
	if err != nil {
		t.Fatal(err)
	}

	// sum = -7 after three samples; -7/3 truncates to -2, not -3.
	f.Filter(-3)
	f.Filter(-3)
	if got := f.Filter(-1); got != -2 {
		t.Fatalf("got %d want -2", got)
	}
}

func TestSteadyStateConstant(t *testing.T) {
	f, err := New(8)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 8; i++ {
		f.Filter(500)
	}
	for i := 0; i < 20; i++ {
		if got := f.Filter(500); got != 500 {
			t.Fatalf("steady state call %d: got %d want 500", i, got)
		}
	}
}

func TestStepResponseSettlesInWindow(t *testing.T) {
	f, err := New(4)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 4; i++ {
		f.Filter(0)
	}

	// Step to 1000: 250, 500, 750, 1000.
	want := []int64{250, 500, 750, 1000}
	for i, w := range want {
		if got := f.Filter(1000); got != w {
			t.Fatalf("step call %d: got %d want %d", i, got, w)
		}
	}
}

func TestAverageWithoutIngest(t *testing.T) {
	f, err := New(4)
	if err != nil {
		t.Fatal(err)
	}

	if got := f.Average(); got != 0 {
		t.Fatalf("Average of empty filter: got %d want 0", got)
	}

	f.Filter(10)
	f.Filter(20)
	if got := f.Average(); got != 15 {
		t.Fatalf("Average: got %d want 15", got)
	}
	if f.Count() != 2 {
		t.Fatalf("Count: got %d want 2", f.Count())
	}

	// Average must not advance state.
	if got := f.Average(); got != 15 {
		t.Fatalf("repeated Average: got %d want 15", got)
	}

	f.Filter(30)
	f.Filter(40)
	if got := f.Average(); got != 25 {
		t.Fatalf("full-window Average: got %d want 25", got)
	}
}

func TestResetEqualsReconstruction(t *testing.T) {
	f, err := New(4)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 10; i++ {
		f.Filter(int64(i * 100))
	}
	f.Reset()

	if f.Count() != 0 {
		t.Fatalf("Count after Reset: got %d want 0", f.Count())
	}
	if got := f.Average(); got != 0 {
		t.Fatalf("Average after Reset: got %d want 0", got)
	}

	// Startup behavior must match a fresh filter: the previously written
	// slots must have been zeroed.
	if got := f.Filter(8); got != 8 {
		t.Fatalf("first sample after Reset: got %d want 8", got)
	}
	if got := f.Filter(4); got != 6 {
		t.Fatalf("second sample after Reset: got %d want 6", got)
	}
}

func TestFilterBlock(t *testing.T) {
	f, err := New(4)
	if err != nil {
		t.Fatal(err)
	}

	buf := []int64{4, 8, 12, 16}
	f.FilterBlock(buf)

	want := []int64{4, 6, 8, 10}
	for i, w := range want {
		if buf[i] != w {
			t.Fatalf("buf[%d]: got %d want %d", i, buf[i], w)
		}
	}
}

func TestWindowOne(t *testing.T) {
	f, err := New(1)
	if err != nil {
		t.Fatal(err)
	}

	for _, s := range []int64{5, -9, 123} {
		if got := f.Filter(s); got != s {
			t.Fatalf("window-1 filter: got %d want %d", got, s)
		}
	}
}
