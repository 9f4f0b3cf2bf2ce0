package measure

import "strings"

// Element is a rendering target: something text is drawn into. It carries
// declared font properties, which may be empty to inherit from Parent, and the
// width the host last laid it out at.
type Element struct {
	Parent *Element

	// Declared properties. Empty means inherit.
	FontStyle  string
	FontWeight string
	FontSize   string
	FontFamily string

	width    float64
	attached bool
}

// NewElement returns a detached element under parent. A nil parent makes a root.
func NewElement(parent *Element) *Element {
	return &Element{Parent: parent}
}

// Attach marks the element as laid out and able to report a width.
func (e *Element) Attach() { e.attached = true }

// Detach marks the element as no longer part of the layout.
func (e *Element) Detach() { e.attached = false }

// Attached reports whether the element is currently laid out.
func (e *Element) Attached() bool { return e != nil && e.attached }

// SetWidth records the element's current laid out width. Negative and NaN
// widths are stored as 0.
func (e *Element) SetWidth(w float64) {
	if !(w >= 0) {
		w = 0
	}
	e.width = w
}

// Width returns the element's current laid out width.
func (e *Element) Width() float64 {
	if e == nil {
		return 0
	}
	return e.width
}

// ComputedFont resolves the font actually applied to e, walking ancestors for
// anything e leaves undeclared. Invalid declarations are ignored as if absent.
func ComputedFont(e *Element) FontDescriptor {
	if e == nil {
		return DefaultFontDescriptor()
	}
	d := ComputedFont(e.Parent)

	if style := strings.ToLower(strings.TrimSpace(e.FontStyle)); style != "" {
		switch style {
		case StyleNormal, StyleItalic, StyleOblique:
			d.Style = style
		}
	}
	if weight := strings.ToLower(strings.TrimSpace(e.FontWeight)); weight != "" {
		if w, ok := resolveWeight(weight, d.Weight); ok {
			d.Weight = w
		}
	}
	if size := strings.TrimSpace(e.FontSize); size != "" {
		if px, ok := resolveSize(size, d.SizePx); ok {
			d.SizePx = px
		}
	}
	if family := strings.Trim(strings.TrimSpace(e.FontFamily), `"'`); family != "" {
		d.Family = family
	}
	return d
}

// ComputeEffectiveFont returns the computed font of e as a descriptor string.
func ComputeEffectiveFont(e *Element) string {
	return ComputedFont(e).String()
}

// ApplyDescriptor declares every property of d on e.
func (e *Element) ApplyDescriptor(d FontDescriptor) {
	e.FontStyle = d.Style
	e.FontWeight = formatNumber(float64(d.Weight))
	e.FontSize = formatNumber(d.SizePx) + "px"
	e.FontFamily = d.Family
}
