package report

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

const wildlifeSample = `n_habitats,time_ms,max_flow,corridors
5,2,10,4
10,8,25,9
15,20,40,15
`

const dnaSample = `n_fragments,greedy_time_ms,nn_time_ms,savings_time_ms,greedy_overlap,nn_overlap,savings_overlap,edges
10,1,2,3,120,100,140,45
20,5,9,14,260,210,300,190
30,12,22,35,400,330,470,435
40,25,44,70,560,450,640,780
`

func writeDataDir(t *testing.T, wildlife, dna bool) string {
	t.Helper()
	dir := t.TempDir()
	if wildlife {
		if err := os.WriteFile(filepath.Join(dir, WildlifeCSV), []byte(wildlifeSample), 0o644); err != nil {
			t.Fatalf("write wildlife csv: %v", err)
		}
	}
	if dna {
		if err := os.WriteFile(filepath.Join(dir, DNACSV), []byte(dnaSample), 0o644); err != nil {
			t.Fatalf("write dna csv: %v", err)
		}
	}
	return dir
}

func checkPNG(t *testing.T, path string, wantW, wantH int) {
	t.Helper()
	fi, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat %s: %v", path, err)
	}
	if fi.Size() == 0 {
		t.Fatalf("%s is empty", path)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	if cfg.Width != wantW || cfg.Height != wantH {
		t.Fatalf("%s: got %dx%d want %dx%d", path, cfg.Width, cfg.Height, wantW, wantH)
	}
}

func TestGenerateAll(t *testing.T) {
	dataDir := writeDataDir(t, true, true)
	outDir := filepath.Join(t.TempDir(), "graphs")
	results := GenerateAll(dataDir, outDir)
	if len(results) != 3 {
		t.Fatalf("expected 3 results got %d", len(results))
	}
	for _, r := range results {
		if r.Err != nil {
			t.Fatalf("%s failed: %v", r.Name, r.Err)
		}
	}
	checkPNG(t, filepath.Join(outDir, WildlifeGraphFile), 2*panelWidth, 2*panelHeight)
	checkPNG(t, filepath.Join(outDir, DNAGraphFile), 2*panelWidth, 2*panelHeight)
	checkPNG(t, filepath.Join(outDir, ComparisonGraphFile), 2*panelWidth, panelHeight)
}

func TestGenerateAllMissingWildlifeCSV(t *testing.T) {
	dataDir := writeDataDir(t, false, true)
	outDir := filepath.Join(t.TempDir(), "graphs")
	results := GenerateAll(dataDir, outDir)
	if len(results) != 3 {
		t.Fatalf("expected 3 results got %d", len(results))
	}
	if results[0].Err == nil {
		t.Fatal("expected wildlife report to fail without its CSV")
	}
	if results[1].Err != nil || results[2].Err != nil {
		t.Fatalf("sibling reports should still succeed: %v / %v", results[1].Err, results[2].Err)
	}
	if _, err := os.Stat(results[0].Path); !os.IsNotExist(err) {
		t.Fatalf("failed report should not leave an image, stat err=%v", err)
	}
	checkPNG(t, results[1].Path, 2*panelWidth, 2*panelHeight)
	checkPNG(t, results[2].Path, 2*panelWidth, panelHeight)
}

func TestGenerateAllMissingColumn(t *testing.T) {
	dataDir := t.TempDir()
	// wildlife table lacks the corridors column
	bad := "n_habitats,time_ms,max_flow\n5,2,10\n10,8,25\n"
	if err := os.WriteFile(filepath.Join(dataDir, WildlifeCSV), []byte(bad), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dataDir, DNACSV), []byte(dnaSample), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	results := GenerateAll(dataDir, filepath.Join(t.TempDir(), "graphs"))
	if results[0].Err == nil {
		t.Fatal("expected wildlife report to fail on a missing column")
	}
	if results[1].Err != nil {
		t.Fatalf("dna report should succeed: %v", results[1].Err)
	}
}

func TestGenerateAllOverwrites(t *testing.T) {
	dataDir := writeDataDir(t, true, true)
	outDir := filepath.Join(t.TempDir(), "graphs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	stale := filepath.Join(outDir, WildlifeGraphFile)
	if err := os.WriteFile(stale, []byte("stale"), 0o644); err != nil {
		t.Fatalf("write stale: %v", err)
	}
	results := GenerateAll(dataDir, outDir)
	if results[0].Err != nil {
		t.Fatalf("wildlife: %v", results[0].Err)
	}
	checkPNG(t, stale, 2*panelWidth, 2*panelHeight)
}

func TestWildlifeSinglePointStillRenders(t *testing.T) {
	// One trial row: the quadratic fit is skipped but the figure must still
	// be produced.
	dataDir := t.TempDir()
	one := "n_habitats,time_ms,max_flow,corridors\n5,2,10,4\n"
	if err := os.WriteFile(filepath.Join(dataDir, WildlifeCSV), []byte(one), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	out := filepath.Join(t.TempDir(), WildlifeGraphFile)
	if err := WildlifeCorridor(dataDir, out); err != nil {
		t.Fatalf("wildlife: %v", err)
	}
	checkPNG(t, out, 2*panelWidth, 2*panelHeight)
}
