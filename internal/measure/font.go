package measure

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"recipfit/internal/constants"
	rferrors "recipfit/internal/errors"
)

// Font styles understood by the descriptor grammar.
const (
	StyleNormal  = "normal"
	StyleItalic  = "italic"
	StyleOblique = "oblique"
)

// Font weights with keyword aliases.
const (
	WeightNormal = 400
	WeightBold   = 700
)

// FontDescriptor is a fully resolved font: every field is absolute.
type FontDescriptor struct {
	Style  string
	Weight int
	SizePx float64
	Family string
}

// DefaultFontDescriptor is what a root element with nothing declared computes to.
func DefaultFontDescriptor() FontDescriptor {
	return FontDescriptor{
		Style:  StyleNormal,
		Weight: WeightNormal,
		SizePx: constants.DefaultFontSizePx,
		Family: "Go",
	}
}

// String formats the descriptor in shorthand order: style weight size family.
func (d FontDescriptor) String() string {
	return fmt.Sprintf("%s %d %spx %s", d.Style, d.Weight, formatNumber(d.SizePx), d.Family)
}

// Bold reports whether the weight renders with a bold face.
func (d FontDescriptor) Bold() bool { return d.Weight >= 600 }

// Slanted reports whether the style renders with an italic face.
func (d FontDescriptor) Slanted() bool { return d.Style == StyleItalic || d.Style == StyleOblique }

// ParseFontDescriptor parses "[style] [weight] <size> <family...>". Size must be
// absolute (px or pt) because there is no parent to resolve against.
func ParseFontDescriptor(s string) (FontDescriptor, error) {
	d := DefaultFontDescriptor()
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return d, rferrors.FontError{Descriptor: s, Err: fmt.Errorf("empty descriptor")}
	}

	i := 0
	for ; i < len(fields); i++ {
		tok := strings.ToLower(fields[i])
		if style, ok := parseStyle(tok); ok {
			d.Style = style
			continue
		}
		if weight, ok := parseAbsoluteWeight(tok); ok {
			d.Weight = weight
			continue
		}
		break
	}
	if i >= len(fields) {
		return d, rferrors.FontError{Descriptor: s, Err: fmt.Errorf("missing size")}
	}

	size, ok := parseAbsoluteSize(fields[i])
	if !ok {
		return d, rferrors.FontError{Descriptor: s, Err: fmt.Errorf("invalid size %q", fields[i])}
	}
	d.SizePx = size
	i++

	if i >= len(fields) {
		return d, rferrors.FontError{Descriptor: s, Err: fmt.Errorf("missing family")}
	}
	d.Family = strings.Trim(strings.Join(fields[i:], " "), `"'`)
	return d, nil
}

func parseStyle(tok string) (string, bool) {
	switch tok {
	case StyleItalic, StyleOblique:
		return tok, true
	}
	return "", false
}

func parseAbsoluteWeight(tok string) (int, bool) {
	switch tok {
	case "normal":
		return WeightNormal, true
	case "bold":
		return WeightBold, true
	}
	n, err := strconv.Atoi(tok)
	if err != nil || n < 1 || n > 1000 {
		return 0, false
	}
	return n, true
}

// resolveWeight handles relative keywords against the inherited weight.
func resolveWeight(tok string, parent int) (int, bool) {
	switch tok {
	case "bolder":
		switch {
		case parent < 350:
			return 400, true
		case parent < 550:
			return 700, true
		default:
			return 900, true
		}
	case "lighter":
		switch {
		case parent < 550:
			return 100, true
		case parent < 750:
			return 400, true
		default:
			return 700, true
		}
	}
	return parseAbsoluteWeight(tok)
}

func parseAbsoluteSize(tok string) (float64, bool) {
	tok = strings.ToLower(strings.TrimSpace(tok))
	switch {
	case strings.HasSuffix(tok, "px"):
		return parsePositive(strings.TrimSuffix(tok, "px"))
	case strings.HasSuffix(tok, "pt"):
		pt, ok := parsePositive(strings.TrimSuffix(tok, "pt"))
		return finiteSize(pt*4/3, ok)
	}
	return 0, false
}

// resolveSize handles em and percentage sizes against the inherited size.
func resolveSize(tok string, parent float64) (float64, bool) {
	tok = strings.ToLower(strings.TrimSpace(tok))
	switch {
	case strings.HasSuffix(tok, "em"):
		em, ok := parsePositive(strings.TrimSuffix(tok, "em"))
		return finiteSize(em*parent, ok)
	case strings.HasSuffix(tok, "%"):
		pct, ok := parsePositive(strings.TrimSuffix(tok, "%"))
		return finiteSize(pct*parent/100, ok)
	}
	return parseAbsoluteSize(tok)
}

// parsePositive accepts finite numbers above zero. ParseFloat also accepts
// "NaN" and "Inf", which no size can be.
func parsePositive(num string) (float64, bool) {
	f, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, false
	}
	return finiteSize(f, true)
}

func finiteSize(f float64, ok bool) (float64, bool) {
	if !ok || !(f > 0) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
