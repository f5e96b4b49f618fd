// SPDX-License-Identifier: MPL-2.0

// Package book assembles the abstract book document model: the ordered
// sections, numbering schemes, imposition plan, and resolved templates that an
// external renderer turns into bytes.
//
// Plan() runs the whole planning pipeline — scan, order, classify, history,
// capacity, paginate, impose, resolve — and accumulates advisory warnings
// instead of failing on cosmetic problems. Only configuration and repository
// errors abort a plan.
package book

import (
	"context"

	"bindery/internal/capacity"
	"bindery/internal/config"
	"bindery/internal/history"
	"bindery/internal/imposition"
	"bindery/internal/paginate"
)

// SectionKind identifies the role of a section in the book.
type SectionKind int

const (
	// SectionTitle is the title page.
	SectionTitle SectionKind = iota
	// SectionFrontmatter holds documentation files read before the code.
	SectionFrontmatter
	// SectionSource holds the source files in reading order.
	SectionSource
	// SectionHistory is the commit appendix.
	SectionHistory
	// SectionColophon is the statistics page.
	SectionColophon
)

// String returns a human-readable section name.
func (k SectionKind) String() string {
	switch k {
	case SectionTitle:
		return "title"
	case SectionFrontmatter:
		return "frontmatter"
	case SectionSource:
		return "source"
	case SectionHistory:
		return "history"
	case SectionColophon:
		return "colophon"
	default:
		return "unknown"
	}
}

type (
	// File is one repository file placed in a section.
	File struct {
		// Path is the slash-separated path relative to the repository root.
		Path string
		// Lines is the text line count; 0 for binary files.
		Lines int
		// Binary marks files that failed UTF-8 or NUL checks.
		Binary bool
	}

	// Section is one ordered run of pages sharing a numbering scheme.
	Section struct {
		Kind SectionKind
		// Files is empty for the title and colophon sections.
		Files []File
		// Scheme is the section's page numbering; numbering restarts at each
		// section boundary.
		Scheme paginate.Scheme
		// Pages is the deterministic page estimate for the section.
		Pages int
	}

	// BookletSummary reports the physical print layout when booklet output is
	// enabled.
	BookletSummary struct {
		OriginalPages int
		PaddedPages   int
		Sheets        int
		SignatureSize int
	}

	// Document is the complete book document model handed to a renderer.
	Document struct {
		Title    string
		Authors  []string
		Licences []string
		Remotes  []string

		Sections []Section

		// Commits back the history section, already in configured order.
		Commits      []history.Commit
		HistoryStats history.Stats

		// TitlePage and Colophon are fully resolved text blocks.
		TitlePage string
		Colophon  string

		// Capacity carries the line-length analysis for preflight reporting.
		Capacity *capacity.Stats

		// Imposition and Booklet are nil when booklet output is disabled.
		Imposition *imposition.Plan
		Booklet    *BookletSummary

		// Layout passes the page geometry, fonts, and raw header/footer
		// templates through to the renderer. Header and footer templates stay
		// unresolved because {n} and {file} only bind per page.
		Layout *config.PDFConfig

		// Warnings are advisory findings accumulated during planning.
		Warnings []string
	}
)

// TotalPages sums the section page estimates.
func (d *Document) TotalPages() int {
	total := 0
	for _, s := range d.Sections {
		total += s.Pages
	}
	return total
}

// Section returns the first section of the given kind, or nil.
func (d *Document) Section(kind SectionKind) *Section {
	for i := range d.Sections {
		if d.Sections[i].Kind == kind {
			return &d.Sections[i]
		}
	}
	return nil
}

// Renderer turns a planned document into output bytes. Implementations live
// outside the planning pipeline; rendering failures do not invalidate a plan.
type Renderer interface {
	Render(ctx context.Context, doc *Document) error
}
