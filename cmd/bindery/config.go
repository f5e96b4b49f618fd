// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"bindery/internal/book"
	"bindery/internal/capacity"
	"bindery/internal/config"
	"bindery/internal/detect"
	"bindery/internal/gitrepo"
	"bindery/internal/history"
	"bindery/internal/issue"
	"bindery/internal/order"
	"bindery/internal/tui"

	"github.com/spf13/cobra"
)

var (
	configYes    bool
	configFrom   string
	configOutput string

	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Create bindery.toml with the setup wizard",
		Long: `Create bindery.toml with the setup wizard.

The wizard detects a title, entrypoint, licences, authors, and frontmatter
candidates from the repository, then walks through the layout choices. With
--yes every detected default is accepted without prompting; --config-from
seeds the settings from an existing file (and implies --yes).`,
		RunE: runConfig,
	}
)

func init() {
	configCmd.Flags().BoolVarP(&configYes, "yes", "y", false, "accept detected defaults without prompting")
	configCmd.Flags().StringVar(&configFrom, "config-from", "", "seed settings from an existing config file (implies --yes)")
	configCmd.Flags().StringVarP(&configOutput, "output", "o", "", "output path (default <repository>/bindery.toml)")
}

// scanResult carries everything the wizard learns from one repository pass.
type scanResult struct {
	repo            *gitrepo.Repository
	files           []string
	frontCandidates []string
	authors         []string
}

// scanRepository opens and scans the repository configured in cfg.
func scanRepository(cfg *config.Config) (*scanResult, error) {
	repo, err := gitrepo.Open(cfg.Source.Repository)
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("open repository").
			WithResource(cfg.Source.Repository).
			WithSuggestion("Run bindery from inside a git repository").
			WithSuggestion("Run 'git init' if the project is not a repository yet").
			Wrap(err).
			BuildError()
	}

	files, err := repo.TrackedFiles(gitrepo.ScanOptions{
		BlockGlobs:        cfg.Source.BlockGlobs,
		ExcludeSubmodules: cfg.Source.ExcludeSubmodules,
	})
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("scan repository").
			WithResource(cfg.Source.Repository).
			WithSuggestion("Commit at least one file so HEAD exists").
			Wrap(err).
			BuildError()
	}

	result := &scanResult{
		repo:            repo,
		files:           files,
		frontCandidates: detect.Frontmatter(files),
	}

	// Author detection is best-effort: an empty history just yields no
	// suggestions.
	if commits, err := repo.Commits(); err == nil {
		for _, a := range history.Summarize(commits).Authors {
			result.authors = append(result.authors, a.Author)
		}
	}
	return result, nil
}

// applyScanResults partitions the scanned files and writes the ordered lists
// plus the derived font ladder back into cfg.
func applyScanResults(cfg *config.Config, scan *scanResult) error {
	ordered := order.Sort(scan.files, cfg.Source.Entrypoint)
	classification, err := detect.Partition(ordered, cfg.Source.FrontmatterFiles, cfg.Source.NotFrontmatterFiles)
	if err != nil {
		return issue.NewErrorContext().
			WithOperation("classify frontmatter").
			WithSuggestion("Remove the file from either frontmatter_files or not_frontmatter_files").
			Wrap(err).
			BuildError()
	}
	cfg.Source.FrontmatterFiles = classification.Frontmatter
	cfg.Source.SourceFiles = classification.Source

	if cfg.PDF != nil {
		title, heading, subheading, body, small := config.DeriveFontSizes(cfg.PDF.FontSizeBodyPt)
		cfg.PDF.FontSizeTitlePt = title
		cfg.PDF.FontSizeHeadingPt = heading
		cfg.PDF.FontSizeSubheadingPt = subheading
		cfg.PDF.FontSizeBodyPt = body
		cfg.PDF.FontSizeSmallPt = small
	}
	return nil
}

func runConfig(c *cobra.Command, _ []string) error {
	ctx := c.Context()
	nonInteractive := configYes || configFrom != ""

	cfg := config.DefaultConfig()
	if configFrom != "" {
		loaded, err := config.NewProvider().Load(ctx, config.LoadOptions{ConfigFilePath: configFrom})
		if err != nil {
			return err
		}
		cfg = loaded
		if cfg.PDF == nil {
			cfg.PDF = config.DefaultConfig().PDF
		}
	}

	detected := detect.Detect(cfg.Source.Repository)
	if cfg.Source.Title == "" {
		cfg.Source.Title = detected.Title
	}
	if cfg.Source.Entrypoint == "" {
		cfg.Source.Entrypoint = detected.Entrypoint
	}
	if len(cfg.Source.Licences) == 0 {
		cfg.Source.Licences = detected.Licences
	}

	scan, err := scanRepository(cfg)
	if err != nil {
		return err
	}
	if len(cfg.Source.Authors) == 0 {
		cfg.Source.Authors = scan.authors
	}

	if nonInteractive {
		cfg.Source.FrontmatterFiles = scan.frontCandidates
	} else {
		if err := runWizard(ctx, cfg, scan); err != nil {
			if errors.Is(err, tui.ErrAborted) {
				fmt.Fprintln(os.Stderr)
				return fmt.Errorf("wizard aborted")
			}
			return err
		}
	}

	if err := applyScanResults(cfg, scan); err != nil {
		return err
	}
	if valid, errs := cfg.IsValid(); !valid {
		return errs[0]
	}

	outPath := configOutput
	if outPath == "" {
		outPath = filepath.Join(cfg.Source.Repository, config.ConfigFileName)
	}
	if !nonInteractive && fileExists(outPath) {
		prompter := tui.NewPrompter(os.Stdin, os.Stdout)
		overwrite, err := prompter.Confirm(fmt.Sprintf("%s exists. Overwrite?", outPath), false)
		if err != nil || !overwrite {
			return fmt.Errorf("aborted: %s not overwritten", outPath)
		}
	}
	if err := config.Save(cfg, outPath); err != nil {
		return err
	}

	fmt.Printf("%s wrote %s: %d frontmatter, %d source files\n",
		SuccessStyle.Render("✓"), CmdStyle.Render(outPath),
		len(cfg.Source.FrontmatterFiles), len(cfg.Source.SourceFiles))
	return nil
}

// runWizard walks the interactive prompts, mutating cfg in place.
func runWizard(ctx context.Context, cfg *config.Config, scan *scanResult) error {
	p := tui.NewPrompter(os.Stdin, os.Stdout)
	fmt.Println(TitleStyle.Render("bindery setup"))
	fmt.Println(SubtitleStyle.Render(fmt.Sprintf("%d tracked files found", len(scan.files))))
	fmt.Println()

	title, err := p.Input("Book title:", cfg.Source.Title)
	if err != nil {
		return err
	}
	cfg.Source.Title = title

	entrypoint, err := p.Input("Entrypoint file (reading starts here):", cfg.Source.Entrypoint)
	if err != nil {
		return err
	}
	cfg.Source.Entrypoint = entrypoint

	if err := promptCommitOrder(p, cfg); err != nil {
		return err
	}
	if err := promptPageGeometry(p, cfg); err != nil {
		return err
	}
	if err := promptFontSize(ctx, p, cfg, scan); err != nil {
		return err
	}
	if err := promptFrontmatter(p, cfg, scan); err != nil {
		return err
	}
	return promptBooklet(p, cfg)
}

func promptCommitOrder(p *tui.Prompter, cfg *config.Config) error {
	orders := config.AllCommitOrders()
	labels := make([]string, len(orders))
	defaultIdx := 0
	for i, o := range orders {
		labels[i] = o.String()
		if o == cfg.Source.CommitOrder {
			defaultIdx = i
		}
	}
	idx, err := p.Select("Commit history appendix:", labels, defaultIdx)
	if err != nil {
		return err
	}
	cfg.Source.CommitOrder = orders[idx]
	return nil
}

func promptPageGeometry(p *tui.Prompter, cfg *config.Config) error {
	presets := config.AllPagePresets()
	labels := make([]string, len(presets))
	defaultIdx := 0
	for i, preset := range presets {
		if w, h, ok := preset.Dimensions(); ok {
			labels[i] = fmt.Sprintf("%s (%g\" x %g\")", preset, w, h)
		} else {
			labels[i] = string(preset)
		}
		if preset == cfg.PDF.PagePreset {
			defaultIdx = i
		}
	}
	idx, err := p.Select("Page size:", labels, defaultIdx)
	if err != nil {
		return err
	}
	cfg.PDF.PagePreset = presets[idx]

	if w, h, ok := cfg.PDF.PagePreset.Dimensions(); ok {
		cfg.PDF.PageWidthIn, cfg.PDF.PageHeightIn = w, h
		return nil
	}
	width, err := promptFloat(p, "Page width (inches):", cfg.PDF.PageWidthIn)
	if err != nil {
		return err
	}
	height, err := promptFloat(p, "Page height (inches):", cfg.PDF.PageHeightIn)
	if err != nil {
		return err
	}
	cfg.PDF.PageWidthIn, cfg.PDF.PageHeightIn = width, height
	return nil
}

// promptFontSize asks for the body size and closes the feedback loop: when
// the repository's lines would wrap at the chosen size, it offers the largest
// size that fits the 95th-percentile line.
func promptFontSize(ctx context.Context, p *tui.Prompter, cfg *config.Config, scan *scanResult) error {
	size, err := promptFloat(p, "Body font size (points):", cfg.PDF.FontSizeBodyPt)
	if err != nil {
		return err
	}
	cfg.PDF.FontSizeBodyPt = size

	stats, suggested, err := analyzeCapacity(ctx, cfg, scan)
	if err != nil {
		// Capacity analysis is advisory; a failure falls back to the chosen size.
		fmt.Println(WarningStyle.Render("capacity analysis unavailable: " + err.Error()))
		return nil
	}
	if stats.WrapLines == 0 {
		fmt.Println(SuccessStyle.Render(fmt.Sprintf("✓ no wrapping at %.1fpt (%d chars per line)",
			cfg.PDF.FontSizeBodyPt, stats.MaxCharsPerLine)))
		return nil
	}

	fmt.Println(WarningStyle.Render(fmt.Sprintf(
		"%d of %d lines (%.1f%%) wrap at %.1fpt; longest is %s:%d (%d chars)",
		stats.WrapLines, stats.TotalLines, stats.WrapPercent(), cfg.PDF.FontSizeBodyPt,
		stats.LongestFile, stats.LongestLine, stats.LongestLength)))
	if suggested > 0 && suggested < cfg.PDF.FontSizeBodyPt {
		use, err := p.Confirm(fmt.Sprintf("Use %.1fpt to fit the 95th-percentile line?", suggested), true)
		if err != nil {
			return err
		}
		if use {
			cfg.PDF.FontSizeBodyPt = suggested
		}
	}
	return nil
}

// analyzeCapacity measures the repository against the current geometry and
// returns the scan stats plus a suggested body size.
func analyzeCapacity(ctx context.Context, cfg *config.Config, scan *scanResult) (*capacity.Stats, float64, error) {
	metrics, err := book.LoadFontMetrics(cfg.PDF.Font)
	if err != nil {
		return nil, 0, err
	}
	maxChars, err := capacity.MaxCharsPerLine(
		cfg.PDF.PageWidthIn, cfg.PDF.MarginInnerIn, cfg.PDF.MarginOuterIn, metrics, cfg.PDF.FontSizeBodyPt)
	if err != nil {
		return nil, 0, err
	}
	stats, err := capacity.Scan(ctx, scan.repo.Path(), scan.files, maxChars)
	if err != nil {
		return nil, 0, err
	}
	suggested, err := capacity.SuggestFontSize(
		cfg.PDF.PageWidthIn, cfg.PDF.MarginInnerIn, cfg.PDF.MarginOuterIn, stats.Percentile95, metrics)
	if err != nil {
		return stats, 0, nil
	}
	return stats, suggested, nil
}

func promptFrontmatter(p *tui.Prompter, cfg *config.Config, scan *scanResult) error {
	if len(scan.frontCandidates) == 0 {
		return nil
	}
	preselected := make([]bool, len(scan.frontCandidates))
	for i := range preselected {
		preselected[i] = true
	}
	chosen, err := p.MultiSelect("Frontmatter (before the source code):", scan.frontCandidates, preselected)
	if err != nil {
		return err
	}

	chosenSet := make(map[int]bool, len(chosen))
	for _, idx := range chosen {
		chosenSet[idx] = true
	}
	cfg.Source.FrontmatterFiles = nil
	cfg.Source.NotFrontmatterFiles = nil
	for i, candidate := range scan.frontCandidates {
		if chosenSet[i] {
			cfg.Source.FrontmatterFiles = append(cfg.Source.FrontmatterFiles, candidate)
		} else {
			// Deselected recognized names go to the source section.
			cfg.Source.NotFrontmatterFiles = append(cfg.Source.NotFrontmatterFiles, candidate)
		}
	}
	return nil
}

func promptBooklet(p *tui.Prompter, cfg *config.Config) error {
	enabled, err := p.Confirm("Plan a print-ready booklet (saddle stitch)?", cfg.Booklet != nil)
	if err != nil {
		return err
	}
	if !enabled {
		cfg.Booklet = nil
		return nil
	}
	if cfg.Booklet == nil {
		cfg.Booklet = config.DefaultConfig().Booklet
	}

	for {
		answer, err := p.Input("Pages per signature (multiple of 4):", strconv.Itoa(cfg.Booklet.SignatureSize))
		if err != nil {
			return err
		}
		size, err := strconv.Atoi(strings.TrimSpace(answer))
		if err == nil && size > 0 && size%4 == 0 {
			cfg.Booklet.SignatureSize = size
			return nil
		}
		fmt.Println(WarningStyle.Render("The signature size must be a positive multiple of 4 (e.g. 8, 16, 32)."))
	}
}

func promptFloat(p *tui.Prompter, label string, defaultValue float64) (float64, error) {
	for {
		answer, err := p.Input(label, strconv.FormatFloat(defaultValue, 'g', -1, 64))
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(answer), 64)
		if err == nil && v > 0 {
			return v, nil
		}
		fmt.Println(WarningStyle.Render("Please enter a positive number."))
	}
}

// fileExists checks if a file exists and is not a directory
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
