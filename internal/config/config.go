// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"bindery/internal/issue"
	"bindery/pkg/cueutil"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "bindery"
	// ConfigFileName is the name of the project config file.
	ConfigFileName = "bindery.toml"
	// EnvPrefix is the prefix for environment variable overrides
	// (e.g. BINDERY_SOURCE_COMMIT_ORDER).
	EnvPrefix = "BINDERY"
)

//go:embed config_schema.cue
var configSchema string

// FindConfigFile returns the path of the project config file inside dir,
// or "" when none exists.
func FindConfigFile(dir string) string {
	path := filepath.Join(dir, ConfigFileName)
	if fileExists(path) {
		return path
	}
	return ""
}

// loadWithOptions performs option-driven config loading without mutating
// package-level state. Callers that want caching can wrap this function.
func loadWithOptions(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	select {
	case <-ctx.Done():
		return nil, "", fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	v := viper.New()

	// Scalar defaults that hold even for a minimal config file. Section
	// defaults for pdf/booklet are applied after unmarshalling so that an
	// absent section stays absent.
	v.SetDefault("source.repository", ".")
	v.SetDefault("source.commit_order", string(CommitOrderNewestFirst))
	v.SetDefault("source.exclude_submodules", true)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	resolvedPath := ""

	if opts.ConfigFilePath != "" {
		if !fileExists(opts.ConfigFilePath) {
			return nil, "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(opts.ConfigFilePath).
				WithSuggestion("Verify the file path is correct").
				WithSuggestion("Run 'bindery config' to generate a configuration").
				Wrap(fmt.Errorf("config file not found: %s", opts.ConfigFilePath)).
				BuildError()
		}
		if err := loadTOMLIntoViper(v, opts.ConfigFilePath); err != nil {
			return nil, "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(opts.ConfigFilePath).
				WithSuggestion("Check that the file contains valid TOML syntax").
				WithSuggestion("Verify the values match the expected schema").
				WithSuggestion("See 'bindery config --help' for configuration options").
				Wrap(err).
				BuildError()
		}
		resolvedPath = opts.ConfigFilePath
	} else {
		dir := opts.ConfigDirPath
		if dir == "" {
			dir = "."
		}
		if path := FindConfigFile(dir); path != "" {
			if err := loadTOMLIntoViper(v, path); err != nil {
				return nil, "", issue.NewErrorContext().
					WithOperation("load configuration").
					WithResource(path).
					WithSuggestion("Check that the file contains valid TOML syntax").
					WithSuggestion("Verify the values match the expected schema").
					WithSuggestion("See 'bindery config --help' for configuration options").
					Wrap(err).
					BuildError()
			}
			resolvedPath = path
		}
		// If no config file found, use defaults (no error).
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}

	applyDefaults(&cfg)

	if valid, errs := cfg.IsValid(); !valid {
		return nil, "", issue.NewErrorContext().
			WithOperation("validate configuration").
			WithResource(resolvedPath).
			WithSuggestion("Fix the listed fields in bindery.toml").
			WithSuggestion("Or regenerate the file with 'bindery config'").
			Wrap(errs[0]).
			BuildError()
	}

	return &cfg, resolvedPath, nil
}

// loadTOMLIntoViper parses a TOML file, validates it against the #Config CUE
// schema, and merges its contents into Viper.
func loadTOMLIntoViper(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := cueutil.CheckFileSize(data, cueutil.DefaultMaxFileSize, path); err != nil {
		return err
	}

	var configMap map[string]any
	if err := toml.Unmarshal(data, &configMap); err != nil {
		return fmt.Errorf("failed to parse TOML: %w", err)
	}

	if err := validateAgainstSchema(configMap, path); err != nil {
		return err
	}

	if err := v.MergeConfigMap(configMap); err != nil {
		return fmt.Errorf("failed to merge config: %w", err)
	}

	return nil
}

// validateAgainstSchema unifies the decoded config map with the embedded
// #Config definition. CUE catches unknown fields, wrong types, and
// out-of-range enum values with a field path in the message.
func validateAgainstSchema(configMap map[string]any, path string) error {
	return cueutil.ValidateMap(configSchema, "#Config", configMap, cueutil.WithFilename(path))
}

// applyDefaults fills zero-valued fields of present sections, mirroring what
// the wizard writes. Absent pdf/epub/booklet sections stay nil.
func applyDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.Source.Repository == "" {
		cfg.Source.Repository = defaults.Source.Repository
	}
	if cfg.Source.CommitOrder == "" {
		cfg.Source.CommitOrder = defaults.Source.CommitOrder
	}

	if cfg.PDF != nil {
		d := defaults.PDF
		p := cfg.PDF
		if p.Outfile == "" {
			p.Outfile = d.Outfile
		}
		if p.Font == "" {
			p.Font = d.Font
		}
		if p.Theme == "" {
			p.Theme = d.Theme
		}
		if p.PagePreset == "" {
			p.PagePreset = d.PagePreset
		}
		if w, h, ok := p.PagePreset.Dimensions(); ok && p.PageWidthIn == 0 && p.PageHeightIn == 0 {
			p.PageWidthIn, p.PageHeightIn = w, h
		}
		if p.MarginTopIn == 0 && p.MarginOuterIn == 0 && p.MarginBottomIn == 0 && p.MarginInnerIn == 0 {
			p.MarginTopIn = d.MarginTopIn
			p.MarginOuterIn = d.MarginOuterIn
			p.MarginBottomIn = d.MarginBottomIn
			p.MarginInnerIn = d.MarginInnerIn
		}
		if p.FontSizeBodyPt == 0 {
			p.FontSizeTitlePt = d.FontSizeTitlePt
			p.FontSizeHeadingPt = d.FontSizeHeadingPt
			p.FontSizeSubheadingPt = d.FontSizeSubheadingPt
			p.FontSizeBodyPt = d.FontSizeBodyPt
			p.FontSizeSmallPt = d.FontSizeSmallPt
		}
		if p.HeaderPosition == "" {
			p.HeaderPosition = d.HeaderPosition
		}
		if p.HeaderRule == "" {
			p.HeaderRule = d.HeaderRule
		}
		if p.FooterPosition == "" {
			p.FooterPosition = d.FooterPosition
		}
		if p.FooterRule == "" {
			p.FooterRule = d.FooterRule
		}
		if p.BinaryHexMaxBytes == 0 && !p.RenderBinaryHex {
			p.BinaryHexMaxBytes = d.BinaryHexMaxBytes
		}
		if p.FontSizeHexPt == 0 {
			p.FontSizeHexPt = d.FontSizeHexPt
		}
		if p.Numbering.Frontmatter.Style == "" {
			p.Numbering.Frontmatter = d.Numbering.Frontmatter
		}
		if p.Numbering.Source.Style == "" {
			p.Numbering.Source = d.Numbering.Source
		}
		if p.Numbering.History.Style == "" {
			p.Numbering.History = d.Numbering.History
		}
	}

	if cfg.Booklet != nil {
		d := defaults.Booklet
		b := cfg.Booklet
		if b.SignatureSize == 0 {
			b.SignatureSize = d.SignatureSize
		}
		if b.SheetWidthIn == 0 {
			b.SheetWidthIn = d.SheetWidthIn
		}
		if b.SheetHeightIn == 0 {
			b.SheetHeightIn = d.SheetHeightIn
		}
	}

	if cfg.EPUB != nil && cfg.EPUB.Language == "" {
		cfg.EPUB.Language = "en"
	}
}

// Save writes the configuration to path as TOML, overwriting any existing
// file.
func Save(cfg *Config, path string) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	header := "# bindery configuration\n# Regenerate with 'bindery config'; re-scan files with 'bindery update'.\n\n"
	if err := os.WriteFile(path, append([]byte(header), data...), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// fileExists checks if a file exists and is not a directory
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}
