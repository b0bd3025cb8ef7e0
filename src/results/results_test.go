package results

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// writeResult creates an empty file with the given name and mtime.
func writeResult(t *testing.T, dir, name string, mtime time.Time) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte("x"), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	if err := os.Chtimes(p, mtime, mtime); err != nil {
		t.Fatalf("chtimes %s: %v", name, err)
	}
	return p
}

func TestLocateSelectsNewest(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()
	writeResult(t, dir, "ldpc_ber_N512_wc3_wr6_iter20_data.csv", now.Add(-2*time.Hour))
	want := writeResult(t, dir, "ldpc_ber_N1024_wc3_wr6_iter50_data.csv", now.Add(-time.Minute))
	writeResult(t, dir, "ldpc_ber_N2048_wc4_wr8_iter10_data.csv", now.Add(-time.Hour))

	rf, err := Locate(dir)
	if err != nil {
		t.Fatalf("Locate: %v", err)
	}
	if rf.Path != want {
		t.Fatalf("selected %s, want %s", rf.Path, want)
	}
	if rf.N != 1024 || rf.Wc != 3 || rf.Wr != 6 || rf.Iterations != 50 {
		t.Fatalf("parsed tuple (%d,%d,%d,%d), want (1024,3,6,50)", rf.N, rf.Wc, rf.Wr, rf.Iterations)
	}
}

func TestLocateIgnoresNonMatching(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()
	// near-misses: wrong suffix, trailing garbage, signed field, missing field
	writeResult(t, dir, "ldpc_ber_N1024_wc3_wr6_iter50_data.csv.bak", now)
	writeResult(t, dir, "ldpc_ber_N1024_wc3_wr6_iter50_data.csv.old.csv", now)
	writeResult(t, dir, "ldpc_ber_N-1024_wc3_wr6_iter50_data.csv", now)
	writeResult(t, dir, "ldpc_ber_N1024_wc3_wr6_data.csv", now)
	writeResult(t, dir, "notes.txt", now)
	// a directory whose name matches must not count
	if err := os.Mkdir(filepath.Join(dir, "ldpc_ber_N64_wc2_wr4_iter5_data.csv"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	_, err := Locate(dir)
	if !errors.Is(err, ErrNoMatchingFile) {
		t.Fatalf("err = %v, want ErrNoMatchingFile", err)
	}
}

func TestLocateMissingDirectory(t *testing.T) {
	_, err := Locate(filepath.Join(t.TempDir(), "absent"))
	if !errors.Is(err, ErrDirectoryNotFound) {
		t.Fatalf("err = %v, want ErrDirectoryNotFound", err)
	}
}

func TestLocateEmptyDirectory(t *testing.T) {
	_, err := Locate(t.TempDir())
	if !errors.Is(err, ErrNoMatchingFile) {
		t.Fatalf("err = %v, want ErrNoMatchingFile", err)
	}
}

func TestFilenameRoundTrip(t *testing.T) {
	cases := []ResultFile{
		{N: 1024, Wc: 3, Wr: 6, Iterations: 50},
		{N: 96, Wc: 3, Wr: 4, Iterations: 1},
		{N: 65536, Wc: 5, Wr: 10, Iterations: 200},
	}
	for _, want := range cases {
		dir := t.TempDir()
		writeResult(t, dir, want.Filename(), time.Now())
		got, err := Locate(dir)
		if err != nil {
			t.Fatalf("Locate %s: %v", want.Filename(), err)
		}
		if got.N != want.N || got.Wc != want.Wc || got.Wr != want.Wr || got.Iterations != want.Iterations {
			t.Errorf("%s parsed to (%d,%d,%d,%d)", want.Filename(), got.N, got.Wc, got.Wr, got.Iterations)
		}
	}
}

func TestOutputStem(t *testing.T) {
	rf := ResultFile{N: 1024, Wc: 3, Wr: 6, Iterations: 50}
	if got, want := rf.OutputStem(), "ldpc_ber_N1024_wc3_wr6_iter50"; got != want {
		t.Fatalf("OutputStem = %q, want %q", got, want)
	}
}

func TestRate(t *testing.T) {
	cases := []struct {
		n, wc, wr int
		want      float64
	}{
		{1024, 3, 6, 0.5},
		{2048, 3, 6, 0.5}, // independent of N
		{96, 3, 4, 0.25},
		{504, 3, 7, 1 - 3.0/7.0},
	}
	for _, c := range cases {
		rf := ResultFile{N: c.n, Wc: c.wc, Wr: c.wr}
		got, err := rf.Rate()
		if err != nil {
			t.Fatalf("Rate(%d,%d,%d): %v", c.n, c.wc, c.wr, err)
		}
		if math.Abs(got-c.want) > 1e-12 {
			t.Errorf("Rate(%d,%d,%d) = %v, want %v", c.n, c.wc, c.wr, got, c.want)
		}
	}
}

func TestRateZeroRowWeight(t *testing.T) {
	rf := ResultFile{N: 1024, Wc: 3, Wr: 0, Iterations: 50}
	if _, err := rf.Rate(); !errors.Is(err, ErrZeroRowWeight) {
		t.Fatalf("err = %v, want ErrZeroRowWeight", err)
	}
}

// Degenerate weight tuples (wc >= wr) are accepted; the resulting
// non-positive rate flows through to display.
func TestRatePermissiveWeights(t *testing.T) {
	rf := ResultFile{N: 1024, Wc: 6, Wr: 3}
	got, err := rf.Rate()
	if err != nil {
		t.Fatalf("Rate: %v", err)
	}
	if got != -1 {
		t.Fatalf("Rate = %v, want -1", got)
	}
}
