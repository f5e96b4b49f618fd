// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"testing"

	"bindery/internal/paginate"
)

func TestCommitOrder_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		order CommitOrder
		want  bool
	}{
		{"newest first", CommitOrderNewestFirst, true},
		{"oldest first", CommitOrderOldestFirst, true},
		{"disabled", CommitOrderDisabled, true},
		{"empty", CommitOrder(""), false},
		{"unknown", CommitOrder("random"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			valid, errs := tt.order.IsValid()
			if valid != tt.want {
				t.Errorf("IsValid() = %v, want %v", valid, tt.want)
			}
			if !tt.want {
				if len(errs) != 1 {
					t.Fatalf("expected 1 error, got %d", len(errs))
				}
				if !errors.Is(errs[0], ErrInvalidCommitOrder) {
					t.Errorf("error should wrap ErrInvalidCommitOrder")
				}
			}
		})
	}
}

func TestPosition_IsValid(t *testing.T) {
	t.Parallel()

	for _, p := range AllPositions() {
		if valid, _ := p.IsValid(); !valid {
			t.Errorf("position %q should be valid", p)
		}
	}

	valid, errs := Position("diagonal").IsValid()
	if valid {
		t.Error("unknown position should be invalid")
	}
	var posErr *InvalidPositionError
	if !errors.As(errs[0], &posErr) {
		t.Fatalf("expected *InvalidPositionError, got %T", errs[0])
	}
	if posErr.Value != "diagonal" {
		t.Errorf("Value = %q, want %q", posErr.Value, "diagonal")
	}
}

func TestRulePosition_IsValid(t *testing.T) {
	t.Parallel()

	for _, r := range AllRulePositions() {
		if valid, _ := r.IsValid(); !valid {
			t.Errorf("rule position %q should be valid", r)
		}
	}

	if valid, errs := RulePosition("around").IsValid(); valid || !errors.Is(errs[0], ErrInvalidRulePosition) {
		t.Error("unknown rule position should wrap ErrInvalidRulePosition")
	}
}

func TestPagePreset_Dimensions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		preset PagePreset
		width  float64
		height float64
		ok     bool
	}{
		{PageHalfLetter, 5.5, 8.5, true},
		{PageA5, 5.83, 8.27, true},
		{PageA6, 4.13, 5.83, true},
		{PageQuarterLetter, 4.25, 5.5, true},
		{PageCustom, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			t.Parallel()

			w, h, ok := tt.preset.Dimensions()
			if ok != tt.ok || w != tt.width || h != tt.height {
				t.Errorf("Dimensions() = (%g, %g, %v), want (%g, %g, %v)",
					w, h, ok, tt.width, tt.height, tt.ok)
			}
		})
	}
}

func TestSourceConfig_IsValid(t *testing.T) {
	t.Parallel()

	t.Run("default is valid", func(t *testing.T) {
		t.Parallel()

		cfg := DefaultConfig().Source
		if valid, errs := cfg.IsValid(); !valid {
			t.Errorf("default source config should be valid: %v", errs)
		}
	})

	t.Run("empty repository rejected", func(t *testing.T) {
		t.Parallel()

		cfg := DefaultConfig().Source
		cfg.Repository = "  "
		valid, errs := cfg.IsValid()
		if valid {
			t.Fatal("blank repository should be invalid")
		}
		if !errors.Is(errs[0], ErrInvalidSourceConfig) {
			t.Error("error should wrap ErrInvalidSourceConfig")
		}
	})

	t.Run("frontmatter include/exclude conflict rejected", func(t *testing.T) {
		t.Parallel()

		cfg := DefaultConfig().Source
		cfg.FrontmatterFiles = []string{"README.md", "LICENSE"}
		cfg.NotFrontmatterFiles = []string{"README.md"}

		valid, errs := cfg.IsValid()
		if valid {
			t.Fatal("conflicting frontmatter lists should be invalid")
		}
		var srcErr *InvalidSourceConfigError
		if !errors.As(errs[0], &srcErr) {
			t.Fatalf("expected *InvalidSourceConfigError, got %T", errs[0])
		}
		if len(srcErr.FieldErrors) != 1 {
			t.Errorf("expected 1 field error, got %d", len(srcErr.FieldErrors))
		}
	})
}

func TestPDFConfig_IsValid(t *testing.T) {
	t.Parallel()

	t.Run("default is valid", func(t *testing.T) {
		t.Parallel()

		if valid, errs := DefaultConfig().PDF.IsValid(); !valid {
			t.Errorf("default PDF config should be valid: %v", errs)
		}
	})

	t.Run("non-positive page dimensions rejected", func(t *testing.T) {
		t.Parallel()

		cfg := *DefaultConfig().PDF
		cfg.PageWidthIn = 0

		valid, errs := cfg.IsValid()
		if valid {
			t.Fatal("zero page width should be invalid")
		}
		var pdfErr *InvalidPDFConfigError
		if !errors.As(errs[0], &pdfErr) {
			t.Fatalf("expected *InvalidPDFConfigError, got %T", errs[0])
		}
		if !errors.Is(pdfErr.FieldErrors[0], ErrInvalidPageDimensions) {
			t.Error("field error should wrap ErrInvalidPageDimensions")
		}
	})

	t.Run("bad numbering style rejected", func(t *testing.T) {
		t.Parallel()

		cfg := *DefaultConfig().PDF
		cfg.Numbering.Source = paginate.Scheme{Style: "binary", Start: 1}

		if valid, _ := cfg.IsValid(); valid {
			t.Error("unknown numbering style should be invalid")
		}
	})

	t.Run("bad position rejected", func(t *testing.T) {
		t.Parallel()

		cfg := *DefaultConfig().PDF
		cfg.FooterPosition = "everywhere"

		if valid, _ := cfg.IsValid(); valid {
			t.Error("unknown footer position should be invalid")
		}
	})
}

func TestBookletConfig_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		signatureSize int
		sheetWidth    float64
		want          bool
	}{
		{"default", 16, 11.0, true},
		{"smallest signature", 4, 11.0, true},
		{"not multiple of four", 10, 11.0, false},
		{"zero signature", 0, 11.0, false},
		{"negative signature", -8, 11.0, false},
		{"zero sheet width", 16, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := BookletConfig{
				SignatureSize: tt.signatureSize,
				SheetWidthIn:  tt.sheetWidth,
				SheetHeightIn: 8.5,
			}

			valid, errs := cfg.IsValid()
			if valid != tt.want {
				t.Errorf("IsValid() = %v, want %v (errs: %v)", valid, tt.want, errs)
			}
			if !tt.want && !errors.Is(errs[0], ErrInvalidBookletConfig) {
				t.Error("error should wrap ErrInvalidBookletConfig")
			}
		})
	}
}

func TestConfig_IsValid_Aggregates(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Source.CommitOrder = "sideways"
	cfg.Booklet.SignatureSize = 7

	valid, errs := cfg.IsValid()
	if valid {
		t.Fatal("config with two broken sections should be invalid")
	}
	var cfgErr *InvalidConfigError
	if !errors.As(errs[0], &cfgErr) {
		t.Fatalf("expected *InvalidConfigError, got %T", errs[0])
	}
	if len(cfgErr.FieldErrors) != 2 {
		t.Errorf("expected 2 section errors, got %d", len(cfgErr.FieldErrors))
	}
}

func TestDeriveFontSizes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		base                                    float64
		title, heading, subheading, body, small float64
	}{
		{8.0, 26, 19, 10, 8, 6},
		{10.0, 32, 24, 12, 10, 8},
		{7.0, 22, 17, 8, 7, 6},
	}

	for _, tt := range tests {
		title, heading, subheading, body, small := DeriveFontSizes(tt.base)
		got := [5]float64{title, heading, subheading, body, small}
		want := [5]float64{tt.title, tt.heading, tt.subheading, tt.body, tt.small}
		if got != want {
			t.Errorf("DeriveFontSizes(%g) = %v, want %v", tt.base, got, want)
		}
	}
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if valid, errs := cfg.IsValid(); !valid {
		t.Fatalf("DefaultConfig() should be valid: %v", errs)
	}

	if cfg.PDF.PagePreset != PageHalfLetter {
		t.Errorf("PagePreset = %q, want %q", cfg.PDF.PagePreset, PageHalfLetter)
	}
	if cfg.PDF.PageWidthIn != 5.5 || cfg.PDF.PageHeightIn != 8.5 {
		t.Errorf("page = %gx%g, want 5.5x8.5", cfg.PDF.PageWidthIn, cfg.PDF.PageHeightIn)
	}
	if cfg.Booklet.SignatureSize != 16 {
		t.Errorf("SignatureSize = %d, want 16", cfg.Booklet.SignatureSize)
	}
	if cfg.PDF.Numbering.Frontmatter.Style != paginate.StyleRomanLower {
		t.Errorf("frontmatter numbering = %q, want roman-lower", cfg.PDF.Numbering.Frontmatter.Style)
	}
	if cfg.EPUB != nil {
		t.Error("EPUB output should be off by default")
	}
}
