package berplot

import (
	"fmt"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/dimss1979/fec-ldpc-codec/src/results"
)

// openMarkers draws circular open markers over the measured curve. Series
// dots in the chart library are filled discs, so the open look is produced
// by stroking unfilled circles in a post-series element pass; the element
// receives the same canvas box and the ranges already carry their pixel
// domains by the time elements render.
func openMarkers(xs, ys []float64, xr, yr chart.Range, st Style) chart.Renderable {
	return func(r chart.Renderer, cb chart.Box, _ chart.Style) {
		r.SetStrokeColor(st.MeasuredColor)
		r.SetStrokeWidth(st.px(st.MarkerStrokeWidthPt))
		radius := st.px(st.MarkerRadiusPt)
		for i := range xs {
			x := cb.Left + xr.Translate(xs[i])
			y := cb.Bottom - yr.Translate(ys[i])
			r.Circle(radius, x, y)
			r.Stroke()
		}
	}
}

// legendEntry pairs a curve name with its stroke color for the legend.
type legendEntry struct {
	label string
	color drawing.Color
}

// legendUpperRight renders a framed legend anchored to the upper-right
// interior of the plot area. The library's stock legend anchors upper-left,
// so this follows its structure with a right-side anchor instead. Entries
// are the fixed curve set rather than the chart's series, so a curve whose
// points were all clipped from view keeps its legend line.
func legendUpperRight(entries []legendEntry, st Style) chart.Renderable {
	return func(r chart.Renderer, cb chart.Box, chartDefaults chart.Style) {
		if len(entries) == 0 {
			return
		}

		legendStyle := chart.Style{
			FillColor:   drawing.ColorWhite,
			FontColor:   chart.DefaultTextColor,
			FontSize:    st.LegendFontSize,
			StrokeColor: drawing.ColorBlack,
			StrokeWidth: st.px(0.8),
		}.InheritFrom(chartDefaults)
		legendStyle.WriteTextOptionsToRenderer(r)

		boxPad := st.pxi(6)
		linePad := st.pxi(4)
		swatch := st.pxi(18)
		gap := st.pxi(5)

		var maxTextW, totalH int
		lineHeights := make([]int, len(entries))
		for i, e := range entries {
			tb := r.MeasureText(e.label)
			if tb.Width() > maxTextW {
				maxTextW = tb.Width()
			}
			lineHeights[i] = tb.Height()
			totalH += tb.Height()
		}

		box := chart.Box{
			Top:   cb.Top + boxPad,
			Right: cb.Right - boxPad,
		}
		box.Left = box.Right - (swatch + gap + maxTextW + 2*boxPad)
		box.Bottom = box.Top + totalH + linePad*(len(entries)-1) + 2*boxPad
		chart.Draw.Box(r, box, legendStyle)

		y := box.Top + boxPad
		for i, e := range entries {
			th := lineHeights[i]
			r.SetStrokeColor(e.color)
			r.SetStrokeWidth(st.px(st.LineWidthPt))
			r.MoveTo(box.Left+boxPad, y+th/2)
			r.LineTo(box.Left+boxPad+swatch, y+th/2)
			r.Stroke()
			chart.Draw.Text(r, e.label, box.Left+boxPad+swatch+gap, y+th, legendStyle)
			y += th + linePad
		}
	}
}

// paramBox renders the run-parameter caption anchored near the lower-left
// interior of the plot area. The text block is verbatim from the producing
// simulation's convention and must stay self-contained: block length, the
// (wc, wr) pair, the rate to four decimals and the iteration count.
func paramBox(rf results.ResultFile, rate float64, st Style) chart.Renderable {
	lines := []string{
		"LDPC Parameters:",
		fmt.Sprintf("N = %d", rf.N),
		fmt.Sprintf("wc = %d, wr = %d", rf.Wc, rf.Wr),
		fmt.Sprintf("Rate R ≈ %.4f", rate),
		fmt.Sprintf("SPA iterations = %d", rf.Iterations),
	}
	return func(r chart.Renderer, cb chart.Box, chartDefaults chart.Style) {
		boxStyle := chart.Style{
			FillColor:   drawing.ColorWhite.WithAlpha(178),
			FontColor:   chart.DefaultTextColor,
			FontSize:    st.AnnotationFontSize,
			StrokeColor: drawing.ColorBlack,
			StrokeWidth: st.px(0.8),
		}.InheritFrom(chartDefaults)
		boxStyle.WriteTextOptionsToRenderer(r)

		boxPad := st.pxi(6)
		linePad := st.pxi(4)

		var maxTextW, totalH int
		lineHeights := make([]int, len(lines))
		for i, line := range lines {
			tb := r.MeasureText(line)
			if tb.Width() > maxTextW {
				maxTextW = tb.Width()
			}
			lineHeights[i] = tb.Height()
			totalH += tb.Height()
		}

		// 3% inset from the plot corner, matching the original figure.
		insetX := int(0.03 * float64(cb.Width()))
		insetY := int(0.03 * float64(cb.Height()))
		box := chart.Box{
			Left:   cb.Left + insetX,
			Bottom: cb.Bottom - insetY,
		}
		box.Right = box.Left + maxTextW + 2*boxPad
		box.Top = box.Bottom - (totalH + linePad*(len(lines)-1) + 2*boxPad)
		chart.Draw.Box(r, box, boxStyle)

		y := box.Top + boxPad
		for i, line := range lines {
			chart.Draw.Text(r, line, box.Left+boxPad, y+lineHeights[i], boxStyle)
			y += lineHeights[i] + linePad
		}
	}
}
