// benchmark.go
// Measures execution time and memory usage of one motif_mark command

package benchmark

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"time"
)

// Usage is what one benchmarked run consumed.
type Usage struct {
	Elapsed        time.Duration
	AllocatedBytes uint64
	GCCycles       uint32
}

// Run calls f and reports its runtime and memory usage to w. The report is
// written even when f fails; f's error is returned unchanged.
func Run(label string, w io.Writer, f func() error) (Usage, error) {
	fmt.Fprintf(w, "[Benchmark] Running: %s\n", label)

	// Snapshot environment info
	fmt.Fprintln(w, "[Benchmark] Timestamp:", time.Now().Format(time.RFC1123))
	if host, err := os.Hostname(); err == nil {
		fmt.Fprintln(w, "[Benchmark] Hostname:", host)
	}
	fmt.Fprintln(w, "[Benchmark] Go Version:", runtime.Version())
	fmt.Fprintf(w, "[Benchmark] OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)

	runtime.GC()
	var memStart, memEnd runtime.MemStats
	runtime.ReadMemStats(&memStart)
	start := time.Now()

	err := f()

	usage := Usage{Elapsed: time.Since(start)}
	runtime.ReadMemStats(&memEnd)
	usage.AllocatedBytes = memEnd.TotalAlloc - memStart.TotalAlloc
	usage.GCCycles = memEnd.NumGC - memStart.NumGC

	fmt.Fprintf(w, "[Benchmark] Time Elapsed: %v\n", usage.Elapsed)
	fmt.Fprintf(w, "[Benchmark] Total Allocated: %.2f MB\n", float64(usage.AllocatedBytes)/1024.0/1024.0)
	fmt.Fprintf(w, "[Benchmark] Peak Heap: %.2f MB\n", float64(memEnd.HeapAlloc)/1024.0/1024.0)
	fmt.Fprintf(w, "[Benchmark] GC Cycles: %d\n", usage.GCCycles)
	if err != nil {
		fmt.Fprintf(w, "[Benchmark] Failed: %v\n", err)
	}
	fmt.Fprintln(w, "[Benchmark] ----------------------------------------")
	return usage, err
}
