package report

import (
	"image"
	"path/filepath"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/RohithReddyvaka2004/AOA-PROJECT2/src/dataset"
)

// DNACSV is the expected input file name under the data directory.
const DNACSV = "dna_assembly_results.csv"

// dnaColumns are the columns every DNA assembly report needs.
var dnaColumns = []string{
	"n_fragments",
	"greedy_time_ms", "nn_time_ms", "savings_time_ms",
	"greedy_overlap", "nn_overlap", "savings_overlap",
	"edges",
}

// loadDNA loads and sorts the DNA assembly result table.
func loadDNA(dataDir string) (*dataset.Table, error) {
	tab, err := dataset.LoadCSV(filepath.Join(dataDir, DNACSV), dnaColumns...)
	if err != nil {
		return nil, err
	}
	if err := tab.SortBy("n_fragments"); err != nil {
		return nil, err
	}
	return tab, nil
}

// DNAAssembly renders the four-panel heuristic comparison figure: running
// times, overlap quality, overlap-graph density, and log-scale time with an
// O(n²) reference.
func DNAAssembly(dataDir, outPath string) error {
	defer TimeTrack(time.Now(), "dna assembly report")
	tab, err := loadDNA(dataDir)
	if err != nil {
		return err
	}
	n, _ := tab.Column("n_fragments")
	greedyT, _ := tab.Column("greedy_time_ms")
	nnT, _ := tab.Column("nn_time_ms")
	savingsT, _ := tab.Column("savings_time_ms")
	greedyO, _ := tab.Column("greedy_overlap")
	nnO, _ := tab.Column("nn_overlap")
	savingsO, _ := tab.Column("savings_overlap")
	edges, _ := tab.Column("edges")

	p1, err := renderLinePanel("DNA Assembly: Running Time Comparison",
		"Number of DNA Fragments", "Time (ms)",
		[]series{
			{name: "Greedy", xs: n, ys: greedyT, style: lineStyle(chart.ColorBlue)},
			{name: "Nearest Neighbor", xs: n, ys: nnT, style: lineStyle(chart.ColorRed)},
			{name: "Savings", xs: n, ys: savingsT, style: lineStyle(chart.ColorGreen)},
		}, true)
	if err != nil {
		return err
	}

	p2, err := renderLinePanel("Assembly Quality Comparison",
		"Number of DNA Fragments", "Total Overlap (base pairs)",
		[]series{
			{name: "Greedy", xs: n, ys: greedyO, style: lineStyle(chart.ColorBlue)},
			{name: "Nearest Neighbor", xs: n, ys: nnO, style: lineStyle(chart.ColorRed)},
			{name: "Savings", xs: n, ys: savingsO, style: lineStyle(chart.ColorGreen)},
		}, true)
	if err != nil {
		return err
	}

	p3, err := renderLinePanel("Overlap Graph Density",
		"Number of DNA Fragments", "Number of Overlap Edges",
		[]series{{name: "Edges", xs: n, ys: edges, style: pointStyle(chart.ColorAlternateGray)}}, false)
	if err != nil {
		return err
	}

	// go-chart has no log axis, so the last panel plots log10(time) with an
	// O(n²)/1000 reference on the same transform.
	ref := make([]float64, len(n))
	for i, v := range n {
		ref[i] = v * v / 1000.0
	}
	p4, err := renderLinePanel("Complexity Analysis (Log Scale)",
		"Number of DNA Fragments", "log10 Time (ms)",
		[]series{
			{name: "Greedy", xs: n, ys: log10Series(greedyT), style: lineStyle(chart.ColorBlue)},
			{name: "Nearest Neighbor", xs: n, ys: log10Series(nnT), style: lineStyle(chart.ColorRed)},
			{name: "Savings", xs: n, ys: log10Series(savingsT), style: lineStyle(chart.ColorGreen)},
			{name: "O(n²)", xs: n, ys: log10Series(ref), style: dashedStyle(chart.ColorBlack)},
		}, true)
	if err != nil {
		return err
	}

	grid, err := compositeGrid([]image.Image{p1, p2, p3, p4}, 2)
	if err != nil {
		return err
	}
	drawCaption(grid, "log-scale panel plots log10 of measured time; O(n²) reference scaled by 1e-3")
	return writePNG(outPath, grid)
}
