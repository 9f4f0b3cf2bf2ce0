package measure

import (
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"recipfit/internal/constants"
	rferrors "recipfit/internal/errors"
	"recipfit/internal/logger"
)

// Measurement units selectable through configuration.
const (
	UnitCells  = "cells"
	UnitPixels = "px"
	UnitFixed  = "fixed"
)

// Service measures rendered text. MeasureWidth returns 0 when the text cannot
// be measured; it never panics for the built in implementations.
type Service interface {
	MeasureWidth(text, font string) float64
	EffectiveFont(e *Element) string
}

// New returns the Service for unit. Unknown units fall back to cells.
func New(unit string) Service {
	switch unit {
	case UnitPixels:
		return NewFaceMeasurer()
	case UnitFixed:
		return FixedMeasurer{}
	default:
		return CellMeasurer{}
	}
}

// ColumnsWidth converts a span of terminal columns into unit. Pixel units
// assume the fixed per-rune advance.
func ColumnsWidth(unit string, columns int) float64 {
	switch unit {
	case UnitPixels, UnitFixed:
		return float64(columns * constants.FixedAdvancePx)
	default:
		return float64(columns)
	}
}

// computed supplies EffectiveFont to every built in measurer.
type computed struct{}

func (computed) EffectiveFont(e *Element) string { return ComputeEffectiveFont(e) }

// CellMeasurer measures in terminal columns. The font is irrelevant: every
// glyph occupies whole cells regardless of weight or style.
type CellMeasurer struct{ computed }

func (CellMeasurer) MeasureWidth(text, _ string) (w float64) {
	defer func() {
		if r := recover(); r != nil {
			logger.Warn("cell measurement failed", "error", r)
			w = 0
		}
	}()
	return float64(ansi.StringWidth(text))
}

// FixedMeasurer approximates pixel widths with a constant advance per rune,
// scaled from basicfont's 7x13 cell to the requested size. It ignores kerning,
// proportional glyphs and wide runes, so it over-estimates narrow text like
// "il" and under-estimates CJK text.
type FixedMeasurer struct{ computed }

func (FixedMeasurer) MeasureWidth(text, desc string) float64 {
	d, err := ParseFontDescriptor(desc)
	if err != nil {
		logger.Debug("fixed measurement using default font", "font", desc, "error", err)
		d = DefaultFontDescriptor()
	}
	face := basicfont.Face7x13
	advance := float64(face.Advance) * d.SizePx / float64(face.Height)
	return float64(utf8.RuneCountInString(text)) * advance
}

// FaceMeasurer measures pixel advances with the embedded Go outline fonts.
// Faces are built lazily and cached per descriptor.
type FaceMeasurer struct {
	computed

	mu    *sync.Mutex
	fonts map[string]*opentype.Font
	faces map[string]font.Face
}

// NewFaceMeasurer returns a FaceMeasurer with empty caches.
func NewFaceMeasurer() *FaceMeasurer {
	return &FaceMeasurer{
		mu:    &sync.Mutex{},
		fonts: make(map[string]*opentype.Font),
		faces: make(map[string]font.Face),
	}
}

func (m *FaceMeasurer) MeasureWidth(text, desc string) (w float64) {
	defer func() {
		if r := recover(); r != nil {
			logger.Warn("face measurement failed", "font", desc, "error", r)
			w = 0
		}
	}()

	m.mu.Lock()
	defer m.mu.Unlock()

	face, err := m.face(desc)
	if err != nil {
		logger.Warn("face unavailable", "font", desc, "error", err)
		return 0
	}
	return fixedToFloat(font.MeasureString(face, text))
}

// Close releases every cached face.
func (m *FaceMeasurer) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var firstErr error
	for key, face := range m.faces {
		if err := face.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(m.faces, key)
	}
	return firstErr
}

func (m *FaceMeasurer) face(desc string) (font.Face, error) {
	if face, ok := m.faces[desc]; ok {
		return face, nil
	}

	d, err := ParseFontDescriptor(desc)
	if err != nil {
		return nil, err
	}

	name, ttf := goFontFor(d)
	f, ok := m.fonts[name]
	if !ok {
		f, err = opentype.Parse(ttf)
		if err != nil {
			return nil, rferrors.MeasureError{Op: "parse " + name, Err: err}
		}
		m.fonts[name] = f
	}

	// At 72 DPI one point is one pixel, so SizePx can be passed straight through.
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    d.SizePx,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, rferrors.MeasureError{Op: fmt.Sprintf("face %s", desc), Err: err}
	}
	m.faces[desc] = face
	return face, nil
}

// goFontFor picks the embedded Go font closest to d. Families other than the
// monospaced ones fall back to the proportional Go family.
func goFontFor(d FontDescriptor) (string, []byte) {
	mono := strings.Contains(strings.ToLower(d.Family), "mono")
	switch {
	case mono && d.Bold() && d.Slanted():
		return "gomonobolditalic", gomonobolditalic.TTF
	case mono && d.Bold():
		return "gomonobold", gomonobold.TTF
	case mono && d.Slanted():
		return "gomonoitalic", gomonoitalic.TTF
	case mono:
		return "gomono", gomono.TTF
	case d.Bold() && d.Slanted():
		return "gobolditalic", gobolditalic.TTF
	case d.Bold():
		return "gobold", gobold.TTF
	case d.Slanted():
		return "goitalic", goitalic.TTF
	default:
		return "goregular", goregular.TTF
	}
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
