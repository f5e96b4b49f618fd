// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"bindery/internal/capacity"
	"bindery/internal/gitrepo"
	"bindery/internal/imposition"
	"bindery/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables debug logging and full error chains
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "bindery",
		Short: "Turn a source repository into a printable book plan",
		Long: TitleStyle.Render("bindery") + SubtitleStyle.Render(" - turn a source repository into a printable book plan") + `

bindery reads a git repository and plans a book out of it: documentation
as frontmatter, source files in reading order, the commit history as an
appendix, and a colophon with repository statistics. The plan covers page
numbering, line-wrap analysis against real font metrics, and saddle-stitch
booklet imposition for home printing.

` + SubtitleStyle.Render("Quick Start:") + `
  1. Run the wizard in your repository: bindery config
  2. Adjust bindery.toml to taste
  3. Plan the book with: bindery render

` + SubtitleStyle.Render("Examples:") + `
  bindery config            Interactive setup wizard
  bindery config --yes      Non-interactive setup with detected defaults
  bindery update            Refresh file lists after the repository changed
  bindery render            Plan the book and print the preflight report`,
	}
)

func init() {
	cobra.OnInitialize(initLogging)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./bindery.toml)")

	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(renderCmd)
}

// initLogging applies the verbosity flag to the package-level logger.
func initLogging() {
	if verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}

// renderIssuePage prints the glamour-rendered help page for a known issue.
// Rendering failures fall back silently; the underlying error is still shown.
func renderIssuePage(id issue.Id) {
	entry := issue.Get(id)
	if entry == nil {
		return
	}
	if rendered, err := entry.Render("dark"); err == nil {
		fmt.Println(rendered)
	}
}

// issuePageFor maps well-known failures to their catalog pages.
func issuePageFor(err error) (issue.Id, bool) {
	switch {
	case errors.Is(err, gitrepo.ErrNotARepository):
		return issue.RepositoryOpenFailedId, true
	case errors.Is(err, gitrepo.ErrNoHistory):
		return issue.NoCommitHistoryId, true
	case errors.Is(err, capacity.ErrInvalidFont):
		return issue.FontLoadFailedId, true
	case errors.Is(err, imposition.ErrInvalidSignatureSize):
		return issue.InvalidSignatureSizeId, true
	}
	return 0, false
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
