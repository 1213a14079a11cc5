//go:build !linux

package cmd

// perfReport runs f directly; hardware counters are Linux only.
func perfReport(f func()) {
	f()
}
