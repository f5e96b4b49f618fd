// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"

	"bindery/internal/imposition"
	"bindery/internal/paginate"
)

const (
	// CommitOrderNewestFirst lists commits newest to oldest in the appendix.
	CommitOrderNewestFirst CommitOrder = "newest-first"
	// CommitOrderOldestFirst lists commits oldest to newest in the appendix.
	CommitOrderOldestFirst CommitOrder = "oldest-first"
	// CommitOrderDisabled skips the commit appendix entirely.
	CommitOrderDisabled CommitOrder = "disabled"

	// PositionOuter alternates left/right with the binding side.
	PositionOuter Position = "outer"
	// PositionCenter centres the text on every page.
	PositionCenter Position = "center"
	// PositionInner alternates towards the binding side.
	PositionInner Position = "inner"
	// PositionLeft pins the text to the left edge.
	PositionLeft Position = "left"
	// PositionRight pins the text to the right edge.
	PositionRight Position = "right"

	// RuleNone draws no rule around a header or footer.
	RuleNone RulePosition = "none"
	// RuleAbove draws a horizontal rule above the text.
	RuleAbove RulePosition = "above"
	// RuleBelow draws a horizontal rule below the text.
	RuleBelow RulePosition = "below"

	// PageHalfLetter is half US Letter (5.5" x 8.5").
	PageHalfLetter PagePreset = "half-letter"
	// PageA5 is ISO A5 (5.83" x 8.27").
	PageA5 PagePreset = "a5"
	// PageA6 is ISO A6 (4.13" x 5.83").
	PageA6 PagePreset = "a6"
	// PageQuarterLetter is quarter US Letter (4.25" x 5.5").
	PageQuarterLetter PagePreset = "quarter-letter"
	// PageCustom uses explicit width/height from the config.
	PageCustom PagePreset = "custom"
)

var (
	// ErrInvalidCommitOrder is returned when a CommitOrder value is not recognized.
	ErrInvalidCommitOrder = errors.New("invalid commit order")
	// ErrInvalidPosition is returned when a Position value is not recognized.
	ErrInvalidPosition = errors.New("invalid position")
	// ErrInvalidRulePosition is returned when a RulePosition value is not recognized.
	ErrInvalidRulePosition = errors.New("invalid rule position")
	// ErrInvalidPagePreset is returned when a PagePreset value is not recognized.
	ErrInvalidPagePreset = errors.New("invalid page preset")
	// ErrInvalidPageDimensions is returned when page width or height is not positive.
	ErrInvalidPageDimensions = errors.New("invalid page dimensions")
	// ErrInvalidSourceConfig is the sentinel error wrapped by InvalidSourceConfigError.
	ErrInvalidSourceConfig = errors.New("invalid source config")
	// ErrInvalidPDFConfig is the sentinel error wrapped by InvalidPDFConfigError.
	ErrInvalidPDFConfig = errors.New("invalid PDF config")
	// ErrInvalidBookletConfig is the sentinel error wrapped by InvalidBookletConfigError.
	ErrInvalidBookletConfig = errors.New("invalid booklet config")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// CommitOrder controls how the commit appendix orders history.
	CommitOrder string

	// InvalidCommitOrderError is returned when a CommitOrder value is not
	// recognized. It wraps ErrInvalidCommitOrder for errors.Is() compatibility.
	InvalidCommitOrderError struct {
		Value CommitOrder
	}

	// Position places a header or footer horizontally on the page.
	Position string

	// InvalidPositionError is returned when a Position value is not recognized.
	// It wraps ErrInvalidPosition for errors.Is() compatibility.
	InvalidPositionError struct {
		Value Position
	}

	// RulePosition places an optional horizontal rule relative to a header
	// or footer.
	RulePosition string

	// InvalidRulePositionError is returned when a RulePosition value is not
	// recognized. It wraps ErrInvalidRulePosition for errors.Is() compatibility.
	InvalidRulePositionError struct {
		Value RulePosition
	}

	// PagePreset names a standard trim size for the rendered book.
	PagePreset string

	// InvalidPagePresetError is returned when a PagePreset value is not
	// recognized. It wraps ErrInvalidPagePreset for errors.Is() compatibility.
	InvalidPagePresetError struct {
		Value PagePreset
	}

	// InvalidSourceConfigError is returned when a SourceConfig has invalid
	// fields. It wraps ErrInvalidSourceConfig for errors.Is() compatibility
	// and collects field-level validation errors.
	InvalidSourceConfigError struct {
		FieldErrors []error
	}

	// InvalidPDFConfigError is returned when a PDFConfig has invalid fields.
	// It wraps ErrInvalidPDFConfig for errors.Is() compatibility and collects
	// field-level validation errors.
	InvalidPDFConfigError struct {
		FieldErrors []error
	}

	// InvalidBookletConfigError is returned when a BookletConfig has invalid
	// fields. It wraps ErrInvalidBookletConfig for errors.Is() compatibility
	// and collects field-level validation errors.
	InvalidBookletConfigError struct {
		FieldErrors []error
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors from all sub-components.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// SourceConfig describes the repository and how its files partition into
	// book sections.
	SourceConfig struct {
		// Title is the book title.
		Title string `json:"title" toml:"title" mapstructure:"title"`
		// Repository is the path to the repository root.
		Repository string `json:"repository" toml:"repository" mapstructure:"repository"`
		// Authors are formatted as "Name <email>", ordered by prominence.
		Authors []string `json:"authors" toml:"authors" mapstructure:"authors"`
		// Licences are SPDX identifiers; not validated against the SPDX list.
		Licences []string `json:"licences" toml:"licences" mapstructure:"licences"`
		// Entrypoint optionally names the file that anchors source ordering.
		Entrypoint string `json:"entrypoint,omitempty" toml:"entrypoint,omitempty" mapstructure:"entrypoint"`
		// FrontmatterFiles lists files placed before the source section.
		FrontmatterFiles []string `json:"frontmatter_files" toml:"frontmatter_files" mapstructure:"frontmatter_files"`
		// SourceFiles lists the body files in final reading order.
		SourceFiles []string `json:"source_files" toml:"source_files" mapstructure:"source_files"`
		// NotFrontmatterFiles forces recognized frontmatter names into the
		// source section.
		NotFrontmatterFiles []string `json:"not_frontmatter_files,omitempty" toml:"not_frontmatter_files,omitempty" mapstructure:"not_frontmatter_files"`
		// BlockGlobs excludes tracked files matching any of these globs.
		BlockGlobs []string `json:"block_globs" toml:"block_globs" mapstructure:"block_globs"`
		// ExcludeSubmodules drops files under git submodule paths.
		ExcludeSubmodules bool `json:"exclude_submodules" toml:"exclude_submodules" mapstructure:"exclude_submodules"`
		// CommitOrder controls the commit appendix.
		CommitOrder CommitOrder `json:"commit_order" toml:"commit_order" mapstructure:"commit_order"`
	}

	// NumberingConfig assigns a page numbering scheme to each book section.
	NumberingConfig struct {
		Frontmatter paginate.Scheme `json:"frontmatter" toml:"frontmatter" mapstructure:"frontmatter"`
		Source      paginate.Scheme `json:"source" toml:"source" mapstructure:"source"`
		History     paginate.Scheme `json:"history" toml:"history" mapstructure:"history"`
	}

	// PDFConfig describes the rendered PDF output. Margins are asymmetric to
	// support booklet printing: the inner margin accommodates binding.
	PDFConfig struct {
		// Outfile is the output PDF path.
		Outfile string `json:"outfile" toml:"outfile" mapstructure:"outfile"`
		// Font is a font family name or a path to a TTF/OTF file.
		Font string `json:"font" toml:"font" mapstructure:"font"`
		// Theme is the syntax highlighting theme name, passed through to the
		// renderer.
		Theme string `json:"theme" toml:"theme" mapstructure:"theme"`
		// PagePreset selects a trim size; custom uses the explicit dimensions.
		PagePreset PagePreset `json:"page_preset" toml:"page_preset" mapstructure:"page_preset"`

		PageWidthIn  float64 `json:"page_width_in" toml:"page_width_in" mapstructure:"page_width_in"`
		PageHeightIn float64 `json:"page_height_in" toml:"page_height_in" mapstructure:"page_height_in"`

		MarginTopIn    float64 `json:"margin_top_in" toml:"margin_top_in" mapstructure:"margin_top_in"`
		MarginOuterIn  float64 `json:"margin_outer_in" toml:"margin_outer_in" mapstructure:"margin_outer_in"`
		MarginBottomIn float64 `json:"margin_bottom_in" toml:"margin_bottom_in" mapstructure:"margin_bottom_in"`
		MarginInnerIn  float64 `json:"margin_inner_in" toml:"margin_inner_in" mapstructure:"margin_inner_in"`

		FontSizeTitlePt      float64 `json:"font_size_title_pt" toml:"font_size_title_pt" mapstructure:"font_size_title_pt"`
		FontSizeHeadingPt    float64 `json:"font_size_heading_pt" toml:"font_size_heading_pt" mapstructure:"font_size_heading_pt"`
		FontSizeSubheadingPt float64 `json:"font_size_subheading_pt" toml:"font_size_subheading_pt" mapstructure:"font_size_subheading_pt"`
		FontSizeBodyPt       float64 `json:"font_size_body_pt" toml:"font_size_body_pt" mapstructure:"font_size_body_pt"`
		FontSizeSmallPt      float64 `json:"font_size_small_pt" toml:"font_size_small_pt" mapstructure:"font_size_small_pt"`

		HeaderTemplate string       `json:"header_template" toml:"header_template" mapstructure:"header_template"`
		HeaderPosition Position     `json:"header_position" toml:"header_position" mapstructure:"header_position"`
		HeaderRule     RulePosition `json:"header_rule" toml:"header_rule" mapstructure:"header_rule"`
		FooterTemplate string       `json:"footer_template" toml:"footer_template" mapstructure:"footer_template"`
		FooterPosition Position     `json:"footer_position" toml:"footer_position" mapstructure:"footer_position"`
		FooterRule     RulePosition `json:"footer_rule" toml:"footer_rule" mapstructure:"footer_rule"`

		// ColophonTemplate is the statistics page template; empty disables
		// the colophon.
		ColophonTemplate string `json:"colophon_template" toml:"colophon_template,multiline" mapstructure:"colophon_template"`

		// RenderBinaryHex renders binary files as hex dumps instead of
		// placeholders. This drastically increases output size.
		RenderBinaryHex bool `json:"render_binary_hex" toml:"render_binary_hex" mapstructure:"render_binary_hex"`
		// BinaryHexMaxBytes truncates binary files after this many bytes;
		// 0 means unlimited.
		BinaryHexMaxBytes int     `json:"binary_hex_max_bytes" toml:"binary_hex_max_bytes" mapstructure:"binary_hex_max_bytes"`
		FontSizeHexPt     float64 `json:"font_size_hex_pt" toml:"font_size_hex_pt" mapstructure:"font_size_hex_pt"`

		// Subject and Keywords populate the PDF document info dictionary.
		Subject  string `json:"subject,omitempty" toml:"subject,omitempty" mapstructure:"subject"`
		Keywords string `json:"keywords,omitempty" toml:"keywords,omitempty" mapstructure:"keywords"`

		Numbering NumberingConfig `json:"numbering" toml:"numbering" mapstructure:"numbering"`
	}

	// BookletConfig describes the optional print-ready booklet output for
	// saddle-stitch binding.
	BookletConfig struct {
		// Outfile is the booklet PDF path; empty disables booklet output.
		Outfile string `json:"outfile" toml:"outfile" mapstructure:"outfile"`
		// SignatureSize is the pages per signature, a positive multiple of 4.
		SignatureSize int `json:"signature_size" toml:"signature_size" mapstructure:"signature_size"`
		// SheetWidthIn is the physical sheet width, e.g. 11.0 for US Letter
		// landscape.
		SheetWidthIn float64 `json:"sheet_width_in" toml:"sheet_width_in" mapstructure:"sheet_width_in"`
		// SheetHeightIn is the physical sheet height.
		SheetHeightIn float64 `json:"sheet_height_in" toml:"sheet_height_in" mapstructure:"sheet_height_in"`
	}

	// EPUBConfig describes the optional EPUB output.
	EPUBConfig struct {
		// Outfile is the output EPUB path; empty disables EPUB output.
		Outfile string `json:"outfile" toml:"outfile" mapstructure:"outfile"`
		// Language is a BCP 47 code, required for a valid EPUB.
		Language string `json:"language" toml:"language" mapstructure:"language"`
		Subject  string `json:"subject,omitempty" toml:"subject,omitempty" mapstructure:"subject"`
		Keywords string `json:"keywords,omitempty" toml:"keywords,omitempty" mapstructure:"keywords"`
	}

	// Config holds the complete project configuration, the contents of
	// bindery.toml.
	Config struct {
		Source  SourceConfig   `json:"source" toml:"source" mapstructure:"source"`
		PDF     *PDFConfig     `json:"pdf,omitempty" toml:"pdf,omitempty" mapstructure:"pdf"`
		EPUB    *EPUBConfig    `json:"epub,omitempty" toml:"epub,omitempty" mapstructure:"epub"`
		Booklet *BookletConfig `json:"booklet,omitempty" toml:"booklet,omitempty" mapstructure:"booklet"`
	}
)

// String returns the string representation of the CommitOrder.
func (o CommitOrder) String() string { return string(o) }

// IsValid returns whether the CommitOrder is one of the defined orders,
// and a list of validation errors if it is not.
func (o CommitOrder) IsValid() (bool, []error) {
	switch o {
	case CommitOrderNewestFirst, CommitOrderOldestFirst, CommitOrderDisabled:
		return true, nil
	default:
		return false, []error{&InvalidCommitOrderError{Value: o}}
	}
}

// AllCommitOrders returns the selectable commit orders in wizard display order.
func AllCommitOrders() []CommitOrder {
	return []CommitOrder{CommitOrderNewestFirst, CommitOrderOldestFirst, CommitOrderDisabled}
}

// Error implements the error interface for InvalidCommitOrderError.
func (e *InvalidCommitOrderError) Error() string {
	return fmt.Sprintf("invalid commit order %q (valid: newest-first, oldest-first, disabled)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidCommitOrderError) Unwrap() error { return ErrInvalidCommitOrder }

// String returns the string representation of the Position.
func (p Position) String() string { return string(p) }

// IsValid returns whether the Position is one of the defined positions,
// and a list of validation errors if it is not.
func (p Position) IsValid() (bool, []error) {
	switch p {
	case PositionOuter, PositionCenter, PositionInner, PositionLeft, PositionRight:
		return true, nil
	default:
		return false, []error{&InvalidPositionError{Value: p}}
	}
}

// AllPositions returns the selectable positions in wizard display order.
func AllPositions() []Position {
	return []Position{PositionOuter, PositionCenter, PositionInner, PositionLeft, PositionRight}
}

// Error implements the error interface for InvalidPositionError.
func (e *InvalidPositionError) Error() string {
	return fmt.Sprintf("invalid position %q (valid: outer, center, inner, left, right)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidPositionError) Unwrap() error { return ErrInvalidPosition }

// String returns the string representation of the RulePosition.
func (r RulePosition) String() string { return string(r) }

// IsValid returns whether the RulePosition is one of the defined values,
// and a list of validation errors if it is not.
func (r RulePosition) IsValid() (bool, []error) {
	switch r {
	case RuleNone, RuleAbove, RuleBelow:
		return true, nil
	default:
		return false, []error{&InvalidRulePositionError{Value: r}}
	}
}

// AllRulePositions returns the selectable rule positions in wizard display order.
func AllRulePositions() []RulePosition {
	return []RulePosition{RuleNone, RuleAbove, RuleBelow}
}

// Error implements the error interface for InvalidRulePositionError.
func (e *InvalidRulePositionError) Error() string {
	return fmt.Sprintf("invalid rule position %q (valid: none, above, below)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidRulePositionError) Unwrap() error { return ErrInvalidRulePosition }

// String returns the string representation of the PagePreset.
func (p PagePreset) String() string { return string(p) }

// IsValid returns whether the PagePreset is one of the defined presets,
// and a list of validation errors if it is not.
func (p PagePreset) IsValid() (bool, []error) {
	switch p {
	case PageHalfLetter, PageA5, PageA6, PageQuarterLetter, PageCustom:
		return true, nil
	default:
		return false, []error{&InvalidPagePresetError{Value: p}}
	}
}

// AllPagePresets returns the selectable page presets in wizard display order.
func AllPagePresets() []PagePreset {
	return []PagePreset{PageHalfLetter, PageA5, PageA6, PageQuarterLetter, PageCustom}
}

// Dimensions returns (width, height) in inches for preset sizes, or ok=false
// for PageCustom (callers should use the explicit config dimensions).
func (p PagePreset) Dimensions() (width, height float64, ok bool) {
	switch p {
	case PageHalfLetter:
		return 5.5, 8.5, true
	case PageA5:
		return 5.83, 8.27, true
	case PageA6:
		return 4.13, 5.83, true
	case PageQuarterLetter:
		return 4.25, 5.5, true
	default:
		return 0, 0, false
	}
}

// Error implements the error interface for InvalidPagePresetError.
func (e *InvalidPagePresetError) Error() string {
	return fmt.Sprintf("invalid page preset %q (valid: half-letter, a5, a6, quarter-letter, custom)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidPagePresetError) Unwrap() error { return ErrInvalidPagePreset }

// IsValid returns whether the SourceConfig has valid fields.
// It delegates to CommitOrder.IsValid() and cross-checks the explicit
// frontmatter include/exclude lists for conflicts.
func (c SourceConfig) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.CommitOrder.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if strings.TrimSpace(c.Repository) == "" {
		errs = append(errs, fmt.Errorf("source.repository must not be empty"))
	}
	excluded := make(map[string]bool, len(c.NotFrontmatterFiles))
	for _, f := range c.NotFrontmatterFiles {
		excluded[f] = true
	}
	for _, f := range c.FrontmatterFiles {
		if excluded[f] {
			errs = append(errs, fmt.Errorf("file %q is listed in both frontmatter_files and not_frontmatter_files", f))
		}
	}
	if len(errs) > 0 {
		return false, []error{&InvalidSourceConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidSourceConfigError.
func (e *InvalidSourceConfigError) Error() string {
	return fmt.Sprintf("invalid source config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidSourceConfig for errors.Is() compatibility.
func (e *InvalidSourceConfigError) Unwrap() error { return ErrInvalidSourceConfig }

// IsValid returns whether the PDFConfig has valid fields.
// It delegates to the preset, position, rule, and numbering style validators
// and checks that page dimensions are positive.
func (c PDFConfig) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.PagePreset.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if c.PageWidthIn <= 0 || c.PageHeightIn <= 0 {
		errs = append(errs, fmt.Errorf("%w: %gx%g inches", ErrInvalidPageDimensions, c.PageWidthIn, c.PageHeightIn))
	}
	for _, p := range []Position{c.HeaderPosition, c.FooterPosition} {
		if valid, fieldErrs := p.IsValid(); !valid {
			errs = append(errs, fieldErrs...)
		}
	}
	for _, r := range []RulePosition{c.HeaderRule, c.FooterRule} {
		if valid, fieldErrs := r.IsValid(); !valid {
			errs = append(errs, fieldErrs...)
		}
	}
	for _, s := range []paginate.Scheme{c.Numbering.Frontmatter, c.Numbering.Source, c.Numbering.History} {
		if _, err := paginate.ParseStyle(string(s.Style)); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return false, []error{&InvalidPDFConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidPDFConfigError.
func (e *InvalidPDFConfigError) Error() string {
	return fmt.Sprintf("invalid PDF config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidPDFConfig for errors.Is() compatibility.
func (e *InvalidPDFConfigError) Unwrap() error { return ErrInvalidPDFConfig }

// IsValid returns whether the BookletConfig has valid fields.
// The signature size check delegates to the imposition planner so config
// and planning reject the same values.
func (c BookletConfig) IsValid() (bool, []error) {
	var errs []error
	if err := imposition.ValidateSignatureSize(c.SignatureSize); err != nil {
		errs = append(errs, err)
	}
	if c.SheetWidthIn <= 0 || c.SheetHeightIn <= 0 {
		errs = append(errs, fmt.Errorf("%w: sheet %gx%g inches", ErrInvalidPageDimensions, c.SheetWidthIn, c.SheetHeightIn))
	}
	if len(errs) > 0 {
		return false, []error{&InvalidBookletConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidBookletConfigError.
func (e *InvalidBookletConfigError) Error() string {
	return fmt.Sprintf("invalid booklet config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidBookletConfig for errors.Is() compatibility.
func (e *InvalidBookletConfigError) Unwrap() error { return ErrInvalidBookletConfig }

// IsValid returns whether the Config has valid fields.
// It delegates to Source.IsValid() and, when present, PDF.IsValid() and
// Booklet.IsValid(). EPUB has only free-form string fields.
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.Source.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if c.PDF != nil {
		if valid, fieldErrs := c.PDF.IsValid(); !valid {
			errs = append(errs, fieldErrs...)
		}
	}
	if c.Booklet != nil {
		if valid, fieldErrs := c.Booklet.IsValid(); !valid {
			errs = append(errs, fieldErrs...)
		}
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

// DeriveFontSizes fills the font size ladder from a base body size, matching
// the wizard's scaling factors, each rounded to a whole point.
func DeriveFontSizes(basePt float64) (title, heading, subheading, body, small float64) {
	round := func(f float64) float64 {
		if f < 1 {
			return 1
		}
		return float64(int(f + 0.5))
	}
	return round(basePt * 3.2), round(basePt * 2.4), round(basePt * 1.2), round(basePt), round(basePt * 0.8)
}

// DefaultColophonTemplate is the statistics page the wizard offers by default.
func DefaultColophonTemplate() string {
	return `{title}

by {authors}

{remotes}

---

Generated on {generated_date}

{licences}

---

Statistics

  {file_count} source files
  {line_count} lines of code
  {commit_count} commits

{language_stats}

Commit Activity

{commit_chart}
`
}

// DefaultConfig returns the configuration the non-interactive wizard emits
// before repository scanning fills in the file lists.
func DefaultConfig() *Config {
	title, heading, subheading, body, small := DeriveFontSizes(8.0)
	return &Config{
		Source: SourceConfig{
			Repository:        ".",
			Authors:           []string{},
			Licences:          []string{},
			FrontmatterFiles:  []string{},
			SourceFiles:       []string{},
			BlockGlobs:        []string{},
			ExcludeSubmodules: true,
			CommitOrder:       CommitOrderNewestFirst,
		},
		PDF: &PDFConfig{
			Outfile:              "book.pdf",
			Font:                 "SourceCodePro",
			Theme:                "GitHub",
			PagePreset:           PageHalfLetter,
			PageWidthIn:          5.5,
			PageHeightIn:         8.5,
			MarginTopIn:          0.5,
			MarginOuterIn:        0.125,
			MarginBottomIn:       0.25,
			MarginInnerIn:        0.25,
			FontSizeTitlePt:      title,
			FontSizeHeadingPt:    heading,
			FontSizeSubheadingPt: subheading,
			FontSizeBodyPt:       body,
			FontSizeSmallPt:      small,
			HeaderTemplate:       "{file}",
			HeaderPosition:       PositionOuter,
			HeaderRule:           RuleBelow,
			FooterTemplate:       "{n}",
			FooterPosition:       PositionOuter,
			FooterRule:           RuleNone,
			ColophonTemplate:     DefaultColophonTemplate(),
			RenderBinaryHex:      false,
			BinaryHexMaxBytes:    65536,
			FontSizeHexPt:        5.0,
			Numbering: NumberingConfig{
				Frontmatter: paginate.Scheme{Style: paginate.StyleRomanLower, Start: 1},
				Source:      paginate.Scheme{Style: paginate.StyleArabic, Start: 1},
				History:     paginate.Scheme{Style: paginate.StyleArabic, Start: 1},
			},
		},
		Booklet: &BookletConfig{
			SignatureSize: 16,
			SheetWidthIn:  11.0,
			SheetHeightIn: 8.5,
		},
	}
}
