// Package dataset reads a BER measurement CSV into aligned numeric columns.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ErrMissingColumn indicates the file lacks one or more required columns.
var ErrMissingColumn = errors.New("missing required column")

// requiredColumns in the order the loader extracts them.
var requiredColumns = []string{"EbN0_dB", "BER_info", "BER_bpsk"}

// BER holds the three aligned measurement columns of one simulator run.
// Row i of each slice belongs to the same Eb/N0 operating point; rows keep
// file order, which the renderer interprets as the plotting order.
type BER struct {
	EbN0dB  []float64 // Eb/N0 operating points [dB]
	BERInfo []float64 // measured post-decoding bit error rate
	BERBPSK []float64 // theoretical uncoded BPSK reference
}

// Len returns the shared row count.
func (d *BER) Len() int { return len(d.EbN0dB) }

// Load parses path as a header-delimited CSV and extracts the columns
// EbN0_dB, BER_info and BER_bpsk. Extra columns are ignored. Values are
// consumed as-is: no sorting, no range or monotonicity checks.
func Load(path string) (*BER, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s (empty file)", ErrMissingColumn, strings.Join(requiredColumns, ", "))
	}

	index := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		index[strings.TrimSpace(name)] = i
	}
	var missing []string
	for _, name := range requiredColumns {
		if _, ok := index[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}

	rows := records[1:]
	d := &BER{
		EbN0dB:  make([]float64, 0, len(rows)),
		BERInfo: make([]float64, 0, len(rows)),
		BERBPSK: make([]float64, 0, len(rows)),
	}
	for rn, rec := range rows {
		var vals [3]float64
		for ci, name := range requiredColumns {
			col := index[name]
			if col >= len(rec) {
				return nil, fmt.Errorf("row %d: no cell for column %s", rn+2, name)
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(rec[col]), 64)
			if err != nil {
				return nil, fmt.Errorf("row %d column %s: %w", rn+2, name, err)
			}
			vals[ci] = v
		}
		d.EbN0dB = append(d.EbN0dB, vals[0])
		d.BERInfo = append(d.BERInfo, vals[1])
		d.BERBPSK = append(d.BERBPSK, vals[2])
	}
	return d, nil
}
