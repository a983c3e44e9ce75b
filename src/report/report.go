// Package report renders the experiment result figures: it loads the
// pre-computed CSV tables, derives fit and complexity series, and writes one
// multi-panel PNG per report. The three reports are independent; a failure
// in one never blocks the others.
package report

import (
	"fmt"
	"os"
	"path/filepath"
)

// Output file names under the graphs directory.
const (
	WildlifeGraphFile   = "wildlife_corridor_analysis.png"
	DNAGraphFile        = "dna_assembly_analysis.png"
	ComparisonGraphFile = "algorithm_comparison.png"
)

// Result is the outcome of one report routine.
type Result struct {
	Name string
	Path string
	Err  error
}

// GenerateAll runs the three report routines in fixed order, each isolated:
// an error (or panic inside a rendering library) is captured in that
// report's Result and the remaining reports still run.
func GenerateAll(dataDir, outDir string) []Result {
	steps := []struct {
		name string
		file string
		fn   func(string, string) error
	}{
		{"wildlife corridor analysis", WildlifeGraphFile, WildlifeCorridor},
		{"dna assembly analysis", DNAGraphFile, DNAAssembly},
		{"algorithm comparison", ComparisonGraphFile, AlgorithmComparison},
	}
	results := make([]Result, 0, len(steps))

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		err = fmt.Errorf("create output dir %s: %w", outDir, err)
		Errorf("%v", err)
		for _, s := range steps {
			results = append(results, Result{Name: s.name, Path: filepath.Join(outDir, s.file), Err: err})
		}
		return results
	}

	for _, s := range steps {
		outPath := filepath.Join(outDir, s.file)
		err := runIsolated(s.name, s.fn, dataDir, outPath)
		if err != nil {
			Errorf("%s: %v", s.name, err)
		} else {
			Infof("saved: %s", outPath)
		}
		results = append(results, Result{Name: s.name, Path: outPath, Err: err})
	}
	return results
}

func runIsolated(name string, fn func(string, string) error, dataDir, outPath string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s: panic: %v", name, r)
		}
	}()
	return fn(dataDir, outPath)
}
