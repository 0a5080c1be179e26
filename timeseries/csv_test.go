package timeseries

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp CSV: %v", err)
	}
	return path
}

func TestLoadCSV(t *testing.T) {
	path := writeTempCSV(t, "spikes,lfp\n1,0.5\n0,0.25\n1,-0.75\n")

	table, err := LoadCSV(path)
	if err != nil {
		t.Fatalf("LoadCSV returned error: %v", err)
	}

	if len(table.Names) != 2 || table.Names[0] != "spikes" || table.Names[1] != "lfp" {
		t.Fatalf("column names = %v; want [spikes lfp]", table.Names)
	}

	spikes, err := table.Series("spikes")
	if err != nil {
		t.Fatalf("Series(spikes) returned error: %v", err)
	}
	wantSpikes := []float64{1, 0, 1}
	for i, v := range wantSpikes {
		if spikes.Values[i] != v {
			t.Errorf("spikes[%d] = %v; want %v", i, spikes.Values[i], v)
		}
	}

	lfp, err := table.Series("lfp")
	if err != nil {
		t.Fatalf("Series(lfp) returned error: %v", err)
	}
	wantLFP := []float64{0.5, 0.25, -0.75}
	for i, v := range wantLFP {
		if lfp.Values[i] != v {
			t.Errorf("lfp[%d] = %v; want %v", i, lfp.Values[i], v)
		}
	}
}

func TestLoadCSVMissingColumn(t *testing.T) {
	path := writeTempCSV(t, "a,b\n1,2\n")

	table, err := LoadCSV(path)
	if err != nil {
		t.Fatalf("LoadCSV returned error: %v", err)
	}
	if _, err := table.Series("c"); err == nil {
		t.Error("Series for a missing column did not return an error")
	}
}

func TestLoadCSVBadValue(t *testing.T) {
	path := writeTempCSV(t, "a,b\n1,not-a-number\n")
	if _, err := LoadCSV(path); err == nil {
		t.Error("LoadCSV with a non-numeric field did not return an error")
	}
}

func TestLoadCSVEmpty(t *testing.T) {
	path := writeTempCSV(t, "a,b\n")
	if _, err := LoadCSV(path); err == nil {
		t.Error("LoadCSV with no data rows did not return an error")
	}
}
