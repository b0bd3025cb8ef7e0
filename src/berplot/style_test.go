package berplot

import "testing"

func TestAcademicPreset(t *testing.T) {
	st := Academic()
	if st.Font == nil {
		t.Fatal("preset has no font; fallback face expected at minimum")
	}
	if st.BaseFontSize != 14 || st.AxisLabelFontSize != 18 {
		t.Errorf("font sizes = (%v, %v), want (14, 18)", st.BaseFontSize, st.AxisLabelFontSize)
	}
	if st.LegendFontSize < 13 || st.LegendFontSize > 14 {
		t.Errorf("legend font size = %v, want within 13..14", st.LegendFontSize)
	}
	if st.AnnotationFontSize < 13 || st.AnnotationFontSize > 14 {
		t.Errorf("annotation font size = %v, want within 13..14", st.AnnotationFontSize)
	}
	if st.DPI < 300 {
		t.Errorf("DPI = %v, want >= 300", st.DPI)
	}
	if st.widthPx() != 2250 || st.heightPx() != 1800 {
		t.Errorf("canvas = %dx%d, want 2250x1800", st.widthPx(), st.heightPx())
	}
}

func TestStylePxScalesWithDPI(t *testing.T) {
	st := Academic()
	st.DPI = 72
	if got := st.px(2.5); got != 2.5 {
		t.Errorf("px(2.5) at 72 DPI = %v, want 2.5", got)
	}
	st.DPI = 144
	if got := st.px(2.5); got != 5 {
		t.Errorf("px(2.5) at 144 DPI = %v, want 5", got)
	}
}

// Two renderers with different styles must not interfere: the style is a
// value, not process state.
func TestStyleIsolation(t *testing.T) {
	a := Academic()
	b := Academic()
	b.DPI = 150
	ra := NewRenderer(a)
	rb := NewRenderer(b)
	if ra.style.DPI == rb.style.DPI {
		t.Fatal("renderer styles aliased")
	}
	if a.DPI != 300 {
		t.Fatalf("mutating one preset copy changed another: %v", a.DPI)
	}
}
