// Package results locates LDPC simulator output files and exposes the code
// parameters encoded in their names.
//
// The simulator (an external process) writes one CSV per run into a results
// directory, named ldpc_ber_N{N}_wc{wc}_wr{wr}_iter{iter}_data.csv. That
// naming convention is the whole contract between the simulator and this
// tool: parameters are extracted from the file name, never from the file
// content.
package results

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"time"

	"github.com/dimss1979/fec-ldpc-codec/src/logx"
)

var (
	// ErrDirectoryNotFound indicates the results directory does not exist.
	ErrDirectoryNotFound = errors.New("results directory not found")
	// ErrNoMatchingFile indicates the directory holds no simulator output.
	ErrNoMatchingFile = errors.New("no matching result file")
	// ErrZeroRowWeight indicates wr parsed to zero, leaving the rate undefined.
	ErrZeroRowWeight = errors.New("row weight is zero")
)

// namePattern is anchored on both ends: trailing garbage after _data.csv is
// not a match. All four fields are unsigned decimal integers.
var namePattern = regexp.MustCompile(`^ldpc_ber_N(\d+)_wc(\d+)_wr(\d+)_iter(\d+)_data\.csv$`)

// ResultFile identifies one simulator output file together with the code
// parameters from its name. It is constructed once at the filesystem
// boundary; later pipeline stages never touch raw file names again.
type ResultFile struct {
	Path       string
	N          int // block length
	Wc         int // parity-check column weight
	Wr         int // parity-check row weight
	Iterations int // SPA decoder iterations
}

// newResultFile converts the four captured digit strings in order
// (N, wc, wr, iterations). The pattern restricts captures to digit runs, so
// parsing can only fail on overflow; that failure still propagates.
func newResultFile(path string, captures []string) (ResultFile, error) {
	vals := make([]int, len(captures))
	for i, c := range captures {
		v, err := strconv.Atoi(c)
		if err != nil {
			return ResultFile{}, fmt.Errorf("parse %q in %s: %w", c, filepath.Base(path), err)
		}
		vals[i] = v
	}
	return ResultFile{Path: path, N: vals[0], Wc: vals[1], Wr: vals[2], Iterations: vals[3]}, nil
}

// Locate scans dir for simulator output files and returns the most recently
// modified match. Ties on modification time go to the entry examined last;
// beyond that the choice is explicitly unordered.
func Locate(dir string) (ResultFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return ResultFile{}, fmt.Errorf("%w: %s", ErrDirectoryNotFound, dir)
		}
		return ResultFile{}, fmt.Errorf("read results directory %s: %w", dir, err)
	}

	var (
		best    ResultFile
		bestMod time.Time
		found   bool
	)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		m := namePattern.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		info, err := e.Info()
		if err != nil {
			// Entry vanished between listing and stat; not a candidate.
			logx.Debugf("skip %s: %v", e.Name(), err)
			continue
		}
		if found && info.ModTime().Before(bestMod) {
			continue
		}
		rf, err := newResultFile(filepath.Join(dir, e.Name()), m[1:])
		if err != nil {
			return ResultFile{}, err
		}
		best, bestMod, found = rf, info.ModTime(), true
	}
	if !found {
		return ResultFile{}, fmt.Errorf("%w in %s (want ldpc_ber_N*_wc*_wr*_iter*_data.csv)", ErrNoMatchingFile, dir)
	}
	logx.Debugf("selected %s (mtime %s)", best.Path, bestMod.Format(time.RFC3339))
	return best, nil
}

// Filename re-derives the canonical data file name for this parameter tuple.
func (rf ResultFile) Filename() string {
	return rf.OutputStem() + "_data.csv"
}

// OutputStem is the shared base name for the chart artifacts of this run.
func (rf ResultFile) OutputStem() string {
	return fmt.Sprintf("ldpc_ber_N%d_wc%d_wr%d_iter%d", rf.N, rf.Wc, rf.Wr, rf.Iterations)
}

// Rate computes the code rate R = (N - N*wc/wr) / N, where N*wc/wr
// approximates the parity-check count of a regular code. The division is
// real-valued, not truncating. The only guarded precondition is wr != 0;
// degenerate tuples (wc >= wr) flow through and yield R <= 0.
func (rf ResultFile) Rate() (float64, error) {
	if rf.Wr == 0 {
		return 0, fmt.Errorf("%w: %s", ErrZeroRowWeight, rf.Filename())
	}
	n := float64(rf.N)
	m := n * float64(rf.Wc) / float64(rf.Wr)
	return (n - m) / n, nil
}
