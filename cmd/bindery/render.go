// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"os"

	"bindery/internal/book"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	renderOut string

	renderCmd = &cobra.Command{
		Use:   "render",
		Short: "Plan the book and print the preflight report",
		Long: `Plan the book and print the preflight report.

The repository is scanned, sections and page numbering are laid out, line
widths are checked against the configured font, and the booklet imposition
is computed when a [booklet] section is configured. The report shows the
full plan so problems surface before any typesetting happens.`,
		RunE: runRender,
	}
)

func init() {
	renderCmd.Flags().StringVarP(&renderOut, "output", "o", "", "write the report to a file instead of stdout")
}

func runRender(c *cobra.Command, _ []string) error {
	ctx := c.Context()

	cfg, path, err := loadProjectConfig(ctx)
	if err != nil {
		return err
	}
	log.Debug("planning book", "config", path)

	doc, err := book.Plan(ctx, cfg, book.PlanOptions{Version: Version})
	if err != nil {
		if id, ok := issuePageFor(err); ok {
			renderIssuePage(id)
		}
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("✗ ")+formatErrorForDisplay(err, verbose))
		return err
	}

	for _, warning := range doc.Warnings {
		fmt.Fprintln(os.Stderr, WarningStyle.Render("⚠ "+warning))
	}

	var out io.Writer = os.Stdout
	if renderOut != "" {
		f, err := os.Create(renderOut)
		if err != nil {
			return fmt.Errorf("create report file: %w", err)
		}
		defer f.Close()
		out = f
	}
	if err := (&book.PlanWriter{Out: out}).Render(ctx, doc); err != nil {
		return err
	}

	if doc.Booklet != nil {
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, SubtitleStyle.Render(fmt.Sprintf(
			"Print %d sheets double-sided, flip on the short edge, then fold each signature in half and staple along the spine.",
			doc.Booklet.Sheets)))
	}

	fmt.Fprintf(os.Stderr, "%s planned %d pages in %d sections\n",
		SuccessStyle.Render("✓"), doc.TotalPages(), len(doc.Sections))
	return nil
}
