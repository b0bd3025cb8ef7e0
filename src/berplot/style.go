package berplot

import (
	"os"

	"github.com/golang/freetype/truetype"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/dimss1979/fec-ldpc-codec/src/logx"
)

// Style carries the complete visual configuration for one figure. It is
// passed to NewRenderer explicitly; nothing in this package mutates
// process-wide state, so two renderers with different styles can coexist in
// one process.
//
// Sizes suffixed Pt are in typographic points and are scaled by DPI at
// render time, mirroring how the underlying chart library scales font sizes.
type Style struct {
	Font *truetype.Font

	BaseFontSize       float64 // tick labels
	AxisLabelFontSize  float64 // axis names
	LegendFontSize     float64
	AnnotationFontSize float64

	LineWidthPt         float64 // curve stroke width
	MarkerRadiusPt      float64 // open-circle marker radius
	MarkerStrokeWidthPt float64 // open-circle edge width

	WidthIn  float64 // figure width, inches
	HeightIn float64 // figure height, inches
	DPI      float64

	MeasuredColor drawing.Color
	TheoryColor   drawing.Color
	GridColor     drawing.Color
}

// Academic is the fixed publication preset: serif typeface with a STIX-like
// glyph set, base size 14, axis labels 18, legend/annotation 13-14, a
// 7.5x6 in figure rasterized at 300 DPI, green measured curve over a red
// theory curve on a dashed low-emphasis grid.
func Academic() Style {
	return Style{
		Font:                loadSerifFont(),
		BaseFontSize:        14,
		AxisLabelFontSize:   18,
		LegendFontSize:      14,
		AnnotationFontSize:  13,
		LineWidthPt:         2.5,
		MarkerRadiusPt:      4,
		MarkerStrokeWidthPt: 1.8,
		WidthIn:             7.5,
		HeightIn:            6,
		DPI:                 300,
		MeasuredColor:       drawing.Color{G: 0x80, A: 0xFF},
		TheoryColor:         drawing.Color{R: 0xFF, A: 0xFF},
		GridColor:           drawing.Color{R: 0x80, G: 0x80, B: 0x80, A: 0x99},
	}
}

// px converts a point size to pixels at this style's DPI.
func (st Style) px(pt float64) float64 { return pt * st.DPI / 72.0 }

// pxi is px rounded down for integer pixel geometry.
func (st Style) pxi(pt float64) int { return int(st.px(pt)) }

// widthPx and heightPx give the raster canvas geometry.
func (st Style) widthPx() int  { return int(st.WidthIn * st.DPI) }
func (st Style) heightPx() int { return int(st.HeightIn * st.DPI) }

// serifFontPaths are probed in order for a TrueType serif face. STIX Two is
// preferred; Times/Liberation/DejaVu carry the same math-capable glyphs.
var serifFontPaths = []string{
	"/usr/share/fonts/truetype/stix/STIXTwoText-Regular.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSerif-Regular.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSerif.ttf",
	"/usr/share/fonts/TTF/DejaVuSerif.ttf",
	"/Library/Fonts/Times New Roman.ttf",
	`C:\Windows\Fonts\times.ttf`,
}

// loadSerifFont returns the first parseable serif face, falling back to the
// chart library's default face so the preset always has a usable font.
func loadSerifFont() *truetype.Font {
	for _, p := range serifFontPaths {
		b, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		f, err := truetype.Parse(b)
		if err != nil {
			logx.Warnf("parse font %s: %v", p, err)
			continue
		}
		logx.Debugf("serif font: %s", p)
		return f
	}
	f, err := chart.GetDefaultFont()
	if err != nil {
		logx.Errorf("load default font: %v", err)
		return nil
	}
	logx.Warnf("no serif font found; falling back to the library default face")
	return f
}
