// SPDX-License-Identifier: MPL-2.0

// Package capacity computes how much source code fits on a printed page.
//
// The line budget comes from real glyph metrics rather than rough estimates:
// the width of 'M' (the widest glyph in monospace fonts) at the configured
// body size determines how many characters fit between the margins. The scan
// side then measures the lines the repository actually contains, so the wizard
// can warn about wrapping before a render is committed to.
package capacity

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ErrInvalidFont is returned when font data cannot be parsed or lacks the
// glyphs needed for width measurement.
var ErrInvalidFont = errors.New("invalid font")

// lineNumberColumns is the gutter reserved for line numbers in rendered
// source pages: a right-aligned 4-digit number plus two spaces.
const lineNumberColumns = 6

const pointsPerInch = 72.0

// FontMetrics measures glyph advance widths of a parsed sfnt font.
type FontMetrics struct {
	fnt *sfnt.Font
}

// ParseFont parses TTF/OTF font data for width measurement.
func ParseFont(data []byte) (*FontMetrics, error) {
	fnt, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFont, err)
	}
	return &FontMetrics{fnt: fnt}, nil
}

// AdvanceOf returns the advance width of r in points at the given size.
func (m *FontMetrics) AdvanceOf(r rune, sizePt float64) (float64, error) {
	var buf sfnt.Buffer
	ppem := fixed.Int26_6(math.Round(sizePt * 64))

	idx, err := m.fnt.GlyphIndex(&buf, r)
	if err != nil {
		return 0, fmt.Errorf("%w: glyph index for %q: %v", ErrInvalidFont, r, err)
	}
	adv, err := m.fnt.GlyphAdvance(&buf, idx, ppem, font.HintingNone)
	if err != nil {
		return 0, fmt.Errorf("%w: advance for %q: %v", ErrInvalidFont, r, err)
	}
	return float64(adv) / 64, nil
}

// MaxCharsPerLine computes the character budget for a source line: the text
// width between the margins, minus the line number gutter, divided by the
// advance of 'M'. Dimensions are in inches, the font size in points.
func MaxCharsPerLine(pageWidthIn, innerMarginIn, outerMarginIn float64, m *FontMetrics, sizePt float64) (int, error) {
	charWidth, err := m.AdvanceOf('M', sizePt)
	if err != nil {
		return 0, err
	}
	if charWidth <= 0 {
		return 0, fmt.Errorf("%w: zero advance width", ErrInvalidFont)
	}

	textWidthPt := (pageWidthIn - innerMarginIn - outerMarginIn) * pointsPerInch
	codeWidthPt := textWidthPt - lineNumberColumns*charWidth
	if codeWidthPt <= 0 {
		return 0, nil
	}
	return int(math.Floor(codeWidthPt / charWidth)), nil
}

// SuggestFontSize finds the largest body size, to 0.1pt, at which targetChars
// characters still fit on a line. Binary search between 1pt and 72pt.
func SuggestFontSize(pageWidthIn, innerMarginIn, outerMarginIn float64, targetChars int, m *FontMetrics) (float64, error) {
	low, high := 1.0, 72.0
	best := low
	for high-low > 0.1 {
		mid := (low + high) / 2
		fits, err := MaxCharsPerLine(pageWidthIn, innerMarginIn, outerMarginIn, m, mid)
		if err != nil {
			return 0, err
		}
		if fits >= targetChars {
			best = mid
			low = mid
		} else {
			high = mid
		}
	}
	return math.Round(best*10) / 10, nil
}
