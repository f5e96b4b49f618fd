// SPDX-License-Identifier: MPL-2.0

// Package paginate assigns page-numbering schemes to book sections and
// estimates section page counts ahead of rendering.
//
// Estimates are planning values, not guarantees: the renderer reconciles the
// real counts. They are deterministic for identical input and monotonic — more
// content never yields fewer estimated pages — which is what the booklet
// planner and the preflight summary need.
package paginate

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidNumberingStyle is returned when a numbering style string is not
// recognized.
var ErrInvalidNumberingStyle = errors.New("invalid numbering style")

// Style is a page-number formatting style.
type Style string

const (
	// StyleArabic formats pages as 1, 2, 3, ...
	StyleArabic Style = "arabic"
	// StyleRomanLower formats pages as i, ii, iii, ...
	StyleRomanLower Style = "roman-lower"
	// StyleRomanUpper formats pages as I, II, III, ...
	StyleRomanUpper Style = "roman-upper"
	// StyleNone suppresses page numbers for the section.
	StyleNone Style = "none"
)

type (
	// InvalidStyleError reports an unrecognized numbering style value. It
	// wraps ErrInvalidNumberingStyle for errors.Is() compatibility.
	InvalidStyleError struct {
		Value string
	}

	// Scheme is a section's numbering: the style plus the first page number
	// assigned to the section. Numbering restarts at each section boundary.
	Scheme struct {
		Style Style `toml:"style"`
		Start int   `toml:"start"`
	}
)

func (e *InvalidStyleError) Error() string {
	return fmt.Sprintf("numbering style %q is not one of arabic, roman-lower, roman-upper, none", e.Value)
}

func (e *InvalidStyleError) Unwrap() error { return ErrInvalidNumberingStyle }

// ParseStyle converts a config string into a Style.
func ParseStyle(s string) (Style, error) {
	switch Style(strings.ToLower(strings.TrimSpace(s))) {
	case StyleArabic:
		return StyleArabic, nil
	case StyleRomanLower:
		return StyleRomanLower, nil
	case StyleRomanUpper:
		return StyleRomanUpper, nil
	case StyleNone:
		return StyleNone, nil
	default:
		return "", &InvalidStyleError{Value: s}
	}
}

// IsValid reports whether the style is one of the recognized values.
func (s Style) IsValid() bool {
	_, err := ParseStyle(string(s))
	return err == nil
}

// FormatNumber renders n in the given style. Zero and negative values fall
// back to arabic digits, matching how unnumbered filler pages are labelled.
func FormatNumber(n int, style Style) string {
	switch style {
	case StyleRomanLower:
		return toRoman(n)
	case StyleRomanUpper:
		return strings.ToUpper(toRoman(n))
	case StyleNone:
		return ""
	default:
		return fmt.Sprintf("%d", n)
	}
}

// Format renders the page number for the zero-based pageInSection index.
func (s Scheme) Format(pageInSection int) string {
	return FormatNumber(s.Start+pageInSection, s.Style)
}

var romanNumerals = []struct {
	value   int
	numeral string
}{
	{1000, "m"}, {900, "cm"}, {500, "d"}, {400, "cd"},
	{100, "c"}, {90, "xc"}, {50, "l"}, {40, "xl"},
	{10, "x"}, {9, "ix"}, {5, "v"}, {4, "iv"}, {1, "i"},
}

func toRoman(n int) string {
	if n <= 0 {
		return fmt.Sprintf("%d", n)
	}
	var b strings.Builder
	for _, rn := range romanNumerals {
		for n >= rn.value {
			b.WriteString(rn.numeral)
			n -= rn.value
		}
	}
	return b.String()
}

// historyLinesPerCommit is the planning weight of one commit entry in the
// history appendix: short hash + summary, date, author, body, separator.
const historyLinesPerCommit = 5

// EstimateFilePages estimates the pages one file occupies: every file starts
// on a fresh page, so even an empty file costs one.
func EstimateFilePages(lines, linesPerPage int) int {
	if linesPerPage < 1 {
		linesPerPage = 1
	}
	if lines <= 0 {
		return 1
	}
	return (lines + linesPerPage - 1) / linesPerPage
}

// EstimateSectionPages sums per-file estimates for a section. An empty section
// estimates zero pages.
func EstimateSectionPages(fileLines []int, linesPerPage int) int {
	total := 0
	for _, lines := range fileLines {
		total += EstimateFilePages(lines, linesPerPage)
	}
	return total
}

// EstimateHistoryPages estimates the pages of the commit appendix.
func EstimateHistoryPages(commitCount, linesPerPage int) int {
	if commitCount <= 0 {
		return 0
	}
	if linesPerPage < 1 {
		linesPerPage = 1
	}
	lines := commitCount * historyLinesPerCommit
	return (lines + linesPerPage - 1) / linesPerPage
}

// DefaultSchemes returns the default numbering policy: frontmatter restarts in
// lowercase roman at 1, source restarts in arabic at 1, and the history
// appendix continues the arabic sequence from the end of the source section.
func DefaultSchemes(sourcePages int) (frontmatter, source, history Scheme) {
	frontmatter = Scheme{Style: StyleRomanLower, Start: 1}
	source = Scheme{Style: StyleArabic, Start: 1}
	history = Scheme{Style: StyleArabic, Start: sourcePages + 1}
	return frontmatter, source, history
}
