// Package berplot builds the semi-logarithmic BER comparison figure and
// writes it as matching PNG and SVG artifacts.
package berplot

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
	"gonum.org/v1/gonum/floats"

	"github.com/dimss1979/fec-ldpc-codec/src/dataset"
	"github.com/dimss1979/fec-ldpc-codec/src/logx"
	"github.com/dimss1979/fec-ldpc-codec/src/results"
)

// The y-axis display range is fixed regardless of data extrema. Points
// below the floor (including BER = 0, which a log axis cannot place) are
// clipped from view, not an error.
const (
	berFloor = 1e-5
	berCeil  = 1.0
)

// Curve names as they appear in the legend.
const (
	measuredCurveName = "LDPC SPA BPSK"
	theoryCurveName   = "Uncoded BPSK (theory)"
)

// Renderer builds and exports one figure per call. It holds no state across
// invocations beyond the immutable style it was constructed with.
type Renderer struct {
	style Style
}

// NewRenderer returns a renderer using the given style configuration.
func NewRenderer(st Style) *Renderer {
	return &Renderer{style: st}
}

// RenderToFiles renders the BER chart for ds and rf and writes
// <outDir>/<stem>.png and <outDir>/<stem>.svg. The directory is created if
// absent (idempotent); both images are rendered fully in memory before
// either file is written, so a failed run leaves no partial artifact.
// Re-running with identical metadata overwrites the previous pair.
func (r *Renderer) RenderToFiles(ds *dataset.BER, rf results.ResultFile, rate float64, outDir string) (string, string, error) {
	defer logx.TimeTrack(time.Now(), "render chart")

	ch := r.build(ds, rf, rate)

	var pngBuf, svgBuf bytes.Buffer
	if err := ch.Render(chart.PNG, &pngBuf); err != nil {
		return "", "", fmt.Errorf("render png: %w", err)
	}
	if err := ch.Render(chart.SVG, &svgBuf); err != nil {
		return "", "", fmt.Errorf("render svg: %w", err)
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", "", fmt.Errorf("create output dir: %w", err)
	}
	pngPath := filepath.Join(outDir, rf.OutputStem()+".png")
	svgPath := filepath.Join(outDir, rf.OutputStem()+".svg")
	if err := os.WriteFile(pngPath, pngBuf.Bytes(), 0o644); err != nil {
		return "", "", fmt.Errorf("write %s: %w", pngPath, err)
	}
	if err := os.WriteFile(svgPath, svgBuf.Bytes(), 0o644); err != nil {
		// keep the pair atomic: a lone PNG must not survive
		os.Remove(pngPath)
		return "", "", fmt.Errorf("write %s: %w", svgPath, err)
	}
	return pngPath, svgPath, nil
}

// build assembles the figure: log y-axis fixed to [1e-5, 1], linear x-axis
// fit to the Eb/N0 extent, measured curve with open markers, theory curve as
// a plain line, dual grid, upper-right legend and the parameter box.
// Clipping is view-only: a curve may lose every point to the floor, and the
// dataset may be empty, yet the figure still renders with both legend
// entries over the fixed axes.
func (r *Renderer) build(ds *dataset.BER, rf results.ResultFile, rate float64) *chart.Chart {
	st := r.style

	xr := &chart.ContinuousRange{Min: 0, Max: 1}
	if ds.Len() > 0 {
		xr.Min, xr.Max = floats.Min(ds.EbN0dB), floats.Max(ds.EbN0dB)
		if xr.Max <= xr.Min {
			// single operating point; pad so the range keeps a non-zero delta
			xr.Max = xr.Min + 1
		}
	}
	// The log scale is realized by plotting log10(BER) on a linear range
	// with decade ticks; the explicit-range-plus-ticks pattern keeps the
	// axis pixel mapping exact.
	yr := &chart.ContinuousRange{Min: math.Log10(berFloor), Max: math.Log10(berCeil)}

	mx, my := clipToFloor(ds.EbN0dB, ds.BERInfo, berFloor)
	tx, ty := clipToFloor(ds.EbN0dB, ds.BERBPSK, berFloor)
	series := []chart.Series{
		chart.ContinuousSeries{
			Name:    measuredCurveName,
			XValues: mx,
			YValues: log10All(my),
			Style:   chart.Style{StrokeColor: st.MeasuredColor, StrokeWidth: st.px(st.LineWidthPt)},
		},
		chart.ContinuousSeries{
			Name:    theoryCurveName,
			XValues: tx,
			YValues: log10All(ty),
			Style:   chart.Style{StrokeColor: st.TheoryColor, StrokeWidth: st.px(st.LineWidthPt)},
		},
	}

	grid := chart.Style{
		StrokeColor:     st.GridColor,
		StrokeWidth:     st.px(0.6),
		StrokeDashArray: []float64{st.px(4), st.px(3)},
	}
	ch := &chart.Chart{
		Width:  st.widthPx(),
		Height: st.heightPx(),
		DPI:    st.DPI,
		Font:   st.Font,
		Background: chart.Style{
			Padding: chart.Box{Top: st.pxi(8), Left: st.pxi(8), Right: st.pxi(10), Bottom: st.pxi(8)},
		},
		XAxis: chart.XAxis{
			Name:           "Eb/N0 [dB]",
			NameStyle:      chart.Style{FontSize: st.AxisLabelFontSize},
			Style:          chart.Style{FontSize: st.BaseFontSize},
			Range:          xr,
			GridMajorStyle: grid,
			GridMinorStyle: grid,
		},
		YAxis: chart.YAxis{
			Name:           "Bit Error Rate (BER)",
			NameStyle:      chart.Style{FontSize: st.AxisLabelFontSize},
			Style:          chart.Style{FontSize: st.BaseFontSize},
			Range:          yr,
			Ticks:          logTicks(),
			GridMajorStyle: grid,
			GridMinorStyle: grid,
		},
		Series: series,
	}
	ch.Elements = append(ch.Elements,
		openMarkers(mx, log10All(my), xr, yr, st),
		legendUpperRight([]legendEntry{
			{measuredCurveName, st.MeasuredColor},
			{theoryCurveName, st.TheoryColor},
		}, st),
		paramBox(rf, rate, st),
	)
	return ch
}

// logTicks returns labeled major ticks at every decade of the fixed
// [1e-5, 1] range plus unlabeled minor ticks at 2..9 within each decade, so
// the grid lands on both major and minor positions of the log axis. Tick
// values are in the plotted log10 space.
func logTicks() []chart.Tick {
	var ticks []chart.Tick
	for exp := -5; exp <= 0; exp++ {
		ticks = append(ticks, chart.Tick{Value: float64(exp), Label: fmt.Sprintf("1e%+03d", exp)})
		if exp == 0 {
			break
		}
		for m := 2; m <= 9; m++ {
			ticks = append(ticks, chart.Tick{Value: float64(exp) + math.Log10(float64(m))})
		}
	}
	return ticks
}

// log10All maps every value through log10. Callers clip sub-floor values
// first, so inputs are strictly positive.
func log10All(ys []float64) []float64 {
	out := make([]float64, len(ys))
	for i, y := range ys {
		out[i] = math.Log10(y)
	}
	return out
}

// clipToFloor drops points whose y value is below floor, preserving order.
func clipToFloor(xs, ys []float64, floor float64) ([]float64, []float64) {
	outX := make([]float64, 0, len(xs))
	outY := make([]float64, 0, len(ys))
	for i := range xs {
		if ys[i] < floor {
			continue
		}
		outX = append(outX, xs[i])
		outY = append(outY, ys[i])
	}
	return outX, outY
}
