// SPDX-License-Identifier: MPL-2.0

package book

import (
	"context"
	"fmt"
	"io"
	"strings"

	"bindery/internal/paginate"
)

// PlanWriter is the built-in Renderer: it writes the planned document as a
// deterministic text report. Byte-level sinks (PDF, EPUB) implement Renderer
// elsewhere and consume the same document.
type PlanWriter struct {
	Out io.Writer
}

// Render writes the plan report. The output is stable for identical documents
// so it can be diffed between runs.
func (w *PlanWriter) Render(ctx context.Context, doc *Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p := func(format string, args ...any) {
		fmt.Fprintf(w.Out, format+"\n", args...)
	}

	p("%s", doc.Title)
	if len(doc.Authors) > 0 {
		p("by %s", strings.Join(doc.Authors, ", "))
	}
	p("")
	p("sections:")
	for _, s := range doc.Sections {
		p("  %-12s %3d pages  numbering %s", s.Kind, s.Pages, schemeLabel(s.Scheme))
		for _, f := range s.Files {
			if f.Binary {
				p("    %s (binary)", f.Path)
			} else {
				p("    %s (%d lines)", f.Path, f.Lines)
			}
		}
	}
	p("total: %d pages", doc.TotalPages())

	if doc.Commits != nil {
		p("")
		p("history: %d commits, %s", doc.HistoryStats.Total, doc.HistoryStats.DateRange())
	}

	if doc.Imposition != nil {
		p("")
		p("booklet: %d signatures of %d pages, %d sheets, %d blank slots",
			len(doc.Imposition.Signatures), doc.Imposition.SignatureSize,
			doc.Imposition.SheetCount(), doc.Imposition.BlankCount())
		for i, sig := range doc.Imposition.Signatures {
			line := fmt.Sprintf("  signature %d:", i+1)
			for _, sheet := range sig.Sheets {
				line += fmt.Sprintf(" [%s|%s // %s|%s]",
					pageLabel(sheet.Front.Left), pageLabel(sheet.Front.Right),
					pageLabel(sheet.Back.Left), pageLabel(sheet.Back.Right))
			}
			p("%s", line)
		}
	}

	return nil
}

func schemeLabel(s paginate.Scheme) string {
	if s.Style == paginate.StyleNone {
		return "none"
	}
	return fmt.Sprintf("%s from %s", s.Style, paginate.FormatNumber(s.Start, s.Style))
}

func pageLabel(page int) string {
	if page == 0 {
		return "-"
	}
	return fmt.Sprintf("%d", page)
}
