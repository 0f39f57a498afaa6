package heartrate_test

import (
	"fmt"

	"github.com/cwbudde/algo-acquire/measure/heartrate"
)

func ExampleFromIntervals() {
	// Peaks every 417 samples at 500 Hz, about 72 BPM.
	peaks := []int{100, 517, 934, 1351, 1768}

	est, _ := heartrate.FromIntervals(peaks, 500)
	fmt.Printf("%.1f BPM\n", est.BPM)

	// Output:
	// 71.9 BPM
}
