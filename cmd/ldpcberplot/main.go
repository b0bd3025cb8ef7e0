// ldpcberplot renders the BER comparison chart for the most recent LDPC
// simulation result.
//
// The tool takes no arguments and reads no environment: it scans ./results
// for the newest ldpc_ber_N*_wc*_wr*_iter*_data.csv, derives the code
// parameters from the file name, and writes images/<stem>.png plus
// images/<stem>.svg. Any failure aborts before either image is written.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dimss1979/fec-ldpc-codec/src/berplot"
	"github.com/dimss1979/fec-ldpc-codec/src/dataset"
	"github.com/dimss1979/fec-ldpc-codec/src/logx"
	"github.com/dimss1979/fec-ldpc-codec/src/results"
)

const (
	resultsDir = "results"
	imagesDir  = "images"
)

func main() {
	if err := run(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run executes the pipeline once: locate, derive, load, render. Each stage's
// error is wrapped with the stage name and aborts the whole run.
func run(out io.Writer) error {
	rf, err := results.Locate(resultsDir)
	if err != nil {
		return fmt.Errorf("locate result file: %w", err)
	}
	rate, err := rf.Rate()
	if err != nil {
		return fmt.Errorf("compute code rate: %w", err)
	}
	fmt.Fprintf(out, "Loaded file: %s\n", rf.Path)
	fmt.Fprintf(out, "N=%d, wc=%d, wr=%d, iter=%d, R=%.4f\n", rf.N, rf.Wc, rf.Wr, rf.Iterations, rate)

	ds, err := dataset.Load(rf.Path)
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}
	logx.Debugf("dataset: %d rows", ds.Len())

	renderer := berplot.NewRenderer(berplot.Academic())
	pngPath, svgPath, err := renderer.RenderToFiles(ds, rf, rate, imagesDir)
	if err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	fmt.Fprintf(out, "Saved PNG: %s\n", pngPath)
	fmt.Fprintf(out, "Saved SVG: %s\n", svgPath)
	return nil
}
