//go:build linux

package cmd

import (
	"fmt"

	perf "github.com/hodgesds/perf-utils"
)

// perfReport runs f under a hardware instruction counter when the kernel
// allows it and prints the count. PerfEventOpen needs a permissive
// perf_event_paranoid setting; without it the run proceeds uncounted.
func perfReport(f func()) {
	pv, err := perf.CPUInstructions(func() error {
		f()
		return nil
	})
	if err != nil {
		f()
		return
	}
	fmt.Printf("retired instructions = %v\n", pv.Value)
}
