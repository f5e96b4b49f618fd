// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"os"

	"bindery/internal/config"
	"bindery/internal/issue"

	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Refresh the file lists in bindery.toml after the repository changed",
	Long: `Refresh the file lists in bindery.toml after the repository changed.

The repository is re-scanned with the stored block globs. Files that vanished
are dropped, newly tracked files are sorted into their sections, and newly
recognized frontmatter is picked up. Every other setting is preserved.`,
	RunE: runUpdate,
}

// loadProjectConfig resolves and loads the project config, returning the
// path it came from so commands can write changes back.
func loadProjectConfig(ctx context.Context) (*config.Config, string, error) {
	path := cfgFile
	if path == "" {
		path = config.FindConfigFile(".")
	}
	if path == "" {
		renderIssuePage(issue.ConfigNotFoundId)
		return nil, "", issue.NewErrorContext().
			WithOperation("load config").
			WithResource(config.ConfigFileName).
			WithSuggestion("Run 'bindery config' to create one").
			WithSuggestion("Or point at an existing file with --config").
			Wrap(fmt.Errorf("no %s found in the current directory", config.ConfigFileName)).
			BuildError()
	}
	cfg, err := config.NewProvider().Load(ctx, config.LoadOptions{ConfigFilePath: path})
	if err != nil {
		renderIssuePage(issue.ConfigParseErrorId)
		return nil, "", err
	}
	return cfg, path, nil
}

func runUpdate(c *cobra.Command, _ []string) error {
	ctx := c.Context()

	cfg, path, err := loadProjectConfig(ctx)
	if err != nil {
		return err
	}

	before := make(map[string]bool, len(cfg.Source.FrontmatterFiles)+len(cfg.Source.SourceFiles))
	for _, f := range cfg.Source.FrontmatterFiles {
		before[f] = true
	}
	for _, f := range cfg.Source.SourceFiles {
		before[f] = true
	}

	scan, err := scanRepository(cfg)
	if err != nil {
		return err
	}
	tracked := make(map[string]bool, len(scan.files))
	for _, f := range scan.files {
		tracked[f] = true
	}

	// Surviving frontmatter keeps its place; newly recognized candidates are
	// added unless they were explicitly pushed to the source section before.
	excluded := make(map[string]bool, len(cfg.Source.NotFrontmatterFiles))
	for _, f := range cfg.Source.NotFrontmatterFiles {
		excluded[f] = true
	}
	var frontmatter []string
	seen := make(map[string]bool)
	for _, f := range cfg.Source.FrontmatterFiles {
		if tracked[f] && !seen[f] {
			frontmatter = append(frontmatter, f)
			seen[f] = true
		}
	}
	for _, candidate := range scan.frontCandidates {
		if !seen[candidate] && !excluded[candidate] {
			frontmatter = append(frontmatter, candidate)
			seen[candidate] = true
		}
	}
	cfg.Source.FrontmatterFiles = frontmatter

	if cfg.Source.Entrypoint != "" && !tracked[cfg.Source.Entrypoint] {
		fmt.Fprintln(os.Stderr, WarningStyle.Render(fmt.Sprintf(
			"⚠ entrypoint %s is no longer tracked; falling back to path order", cfg.Source.Entrypoint)))
		cfg.Source.Entrypoint = ""
	}

	if len(scan.authors) > 0 {
		cfg.Source.Authors = scan.authors
	}

	if err := applyScanResults(cfg, scan); err != nil {
		return err
	}
	if err := config.Save(cfg, path); err != nil {
		return err
	}

	var added, removed int
	after := make(map[string]bool, len(cfg.Source.FrontmatterFiles)+len(cfg.Source.SourceFiles))
	for _, f := range cfg.Source.FrontmatterFiles {
		after[f] = true
	}
	for _, f := range cfg.Source.SourceFiles {
		after[f] = true
	}
	for f := range after {
		if !before[f] {
			added++
		}
	}
	for f := range before {
		if !after[f] {
			removed++
		}
	}

	fmt.Printf("%s updated %s: +%d added, -%d removed (%d frontmatter, %d source)\n",
		SuccessStyle.Render("✓"), CmdStyle.Render(path), added, removed,
		len(cfg.Source.FrontmatterFiles), len(cfg.Source.SourceFiles))
	return nil
}
