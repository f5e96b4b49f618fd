// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"bindery/internal/config"
	"bindery/internal/issue"
	"bindery/internal/tui"
)

func TestApplyScanResults_PartitionsAndDerivesFonts(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Source.Entrypoint = "src/main.rs"
	cfg.Source.FrontmatterFiles = []string{"README.md"}
	cfg.PDF.FontSizeBodyPt = 10

	scan := &scanResult{
		files: []string{"README.md", "src/lib.rs", "src/main.rs", "Cargo.toml"},
	}
	if err := applyScanResults(cfg, scan); err != nil {
		t.Fatalf("applyScanResults() returned error: %v", err)
	}

	if len(cfg.Source.FrontmatterFiles) != 1 || cfg.Source.FrontmatterFiles[0] != "README.md" {
		t.Errorf("FrontmatterFiles = %v, want [README.md]", cfg.Source.FrontmatterFiles)
	}
	if len(cfg.Source.SourceFiles) == 0 || cfg.Source.SourceFiles[0] != "src/main.rs" {
		t.Errorf("SourceFiles = %v, want entrypoint first", cfg.Source.SourceFiles)
	}
	for _, f := range cfg.Source.SourceFiles {
		if f == "README.md" {
			t.Error("README.md must not appear in the source section")
		}
	}

	if cfg.PDF.FontSizeTitlePt != 32 || cfg.PDF.FontSizeHeadingPt != 24 ||
		cfg.PDF.FontSizeSubheadingPt != 12 || cfg.PDF.FontSizeSmallPt != 8 {
		t.Errorf("font ladder = %g/%g/%g/%g/%g, want 32/24/12/10/8",
			cfg.PDF.FontSizeTitlePt, cfg.PDF.FontSizeHeadingPt,
			cfg.PDF.FontSizeSubheadingPt, cfg.PDF.FontSizeBodyPt, cfg.PDF.FontSizeSmallPt)
	}
}

func TestApplyScanResults_ConflictingOverride(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Source.FrontmatterFiles = []string{"README.md"}
	cfg.Source.NotFrontmatterFiles = []string{"README.md"}

	err := applyScanResults(cfg, &scanResult{files: []string{"README.md"}})
	if err == nil {
		t.Fatal("expected error for a file listed in both overrides")
	}
	var ae *issue.ActionableError
	if !errors.As(err, &ae) {
		t.Errorf("error = %v, want an actionable error", err)
	}
}

func TestLoadProjectConfig_NoConfigFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, _, err := loadProjectConfig(context.Background())
	if err == nil {
		t.Fatal("expected error when no config file exists")
	}
	var ae *issue.ActionableError
	if !errors.As(err, &ae) {
		t.Fatalf("error = %v, want an actionable error", err)
	}
	if !ae.HasSuggestions() {
		t.Error("missing-config error should carry suggestions")
	}
}

func TestPromptFloat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		def   float64
		want  float64
	}{
		{name: "explicit value", input: "12.5\n", def: 8, want: 12.5},
		{name: "empty keeps default", input: "\n", def: 8, want: 8},
		{name: "retries until positive", input: "abc\n-3\n9\n", def: 8, want: 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := tui.NewPrompter(strings.NewReader(tt.input), io.Discard)
			got, err := promptFloat(p, "Size:", tt.def)
			if err != nil {
				t.Fatalf("promptFloat() returned error: %v", err)
			}
			if got != tt.want {
				t.Errorf("promptFloat() = %g, want %g", got, tt.want)
			}
		})
	}
}

func TestPromptBooklet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		wantNil  bool
		wantSize int
	}{
		{name: "disable clears section", input: "n\n", wantNil: true},
		{name: "accept defaults", input: "y\n\n", wantSize: 16},
		{name: "retries bad signature size", input: "y\n7\n10\n8\n", wantSize: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := config.DefaultConfig()
			p := tui.NewPrompter(strings.NewReader(tt.input), io.Discard)
			if err := promptBooklet(p, cfg); err != nil {
				t.Fatalf("promptBooklet() returned error: %v", err)
			}
			if tt.wantNil {
				if cfg.Booklet != nil {
					t.Error("Booklet should be nil after declining")
				}
				return
			}
			if cfg.Booklet == nil {
				t.Fatal("Booklet is nil, want configured section")
			}
			if cfg.Booklet.SignatureSize != tt.wantSize {
				t.Errorf("SignatureSize = %d, want %d", cfg.Booklet.SignatureSize, tt.wantSize)
			}
		})
	}
}
