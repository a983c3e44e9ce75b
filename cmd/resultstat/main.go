// resultstat prints a quick text summary of the experiment result tables
// without rendering any graphs. Handy for sanity-checking fresh CSVs.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/RohithReddyvaka2004/AOA-PROJECT2/src/dataset"
	"github.com/RohithReddyvaka2004/AOA-PROJECT2/src/metrics"
	"github.com/RohithReddyvaka2004/AOA-PROJECT2/src/report"
)

func main() {
	var dataDir string
	flag.StringVar(&dataDir, "data", "data", "Directory containing the experiment result CSVs")
	flag.Parse()

	ok := true
	if err := wildlifeStats(dataDir); err != nil {
		fmt.Fprintf(os.Stderr, "wildlife: %v\n", err)
		ok = false
	}
	if err := dnaStats(dataDir); err != nil {
		fmt.Fprintf(os.Stderr, "dna assembly: %v\n", err)
		ok = false
	}
	if !ok {
		os.Exit(1)
	}
}

func wildlifeStats(dataDir string) error {
	tab, err := dataset.LoadCSV(filepath.Join(dataDir, report.WildlifeCSV),
		"n_habitats", "time_ms", "max_flow", "corridors")
	if err != nil {
		return err
	}
	if err := tab.SortBy("n_habitats"); err != nil {
		return err
	}
	n, _ := tab.Column("n_habitats")
	timeMs, _ := tab.Column("time_ms")
	fmt.Printf("Wildlife corridor: %d trials, n_habitats %g..%g\n", tab.Len(), n[0], n[len(n)-1])
	if fit, err := metrics.PolyFit(n, timeMs, 2); err == nil {
		fmt.Printf("  quadratic time fit: %.4g + %.4g*n + %.4g*n^2 (r2=%.4f)\n",
			fit.Coeffs[0], fit.Coeffs[1], fit.Coeffs[2], fit.R2(n, timeMs))
	}
	return nil
}

func dnaStats(dataDir string) error {
	tab, err := dataset.LoadCSV(filepath.Join(dataDir, report.DNACSV),
		"n_fragments", "greedy_overlap", "nn_overlap", "savings_overlap")
	if err != nil {
		return err
	}
	fmt.Printf("DNA assembly: %d trials\n", tab.Len())
	for _, h := range []struct{ label, col string }{
		{"Greedy", "greedy_overlap"},
		{"Nearest Neighbor", "nn_overlap"},
		{"Savings", "savings_overlap"},
	} {
		vals, err := tab.Column(h.col)
		if err != nil {
			return err
		}
		s := metrics.Summarize(vals)
		fmt.Printf("  %-17s overlap: min=%g q1=%g median=%g q3=%g max=%g mean=%.2f\n",
			h.label, s.Min, s.Q1, s.Median, s.Q3, s.Max, s.Mean)
	}
	return nil
}
