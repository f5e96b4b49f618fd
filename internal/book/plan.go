// SPDX-License-Identifier: MPL-2.0

package book

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"bindery/internal/capacity"
	"bindery/internal/config"
	"bindery/internal/detect"
	"bindery/internal/gitrepo"
	"bindery/internal/history"
	"bindery/internal/imposition"
	"bindery/internal/issue"
	"bindery/internal/order"
	"bindery/internal/paginate"
	"bindery/internal/placeholder"

	"github.com/charmbracelet/log"
	"golang.org/x/exp/slices"
)

// ErrNoPDFOutput is returned when planning runs without a [pdf] section.
var ErrNoPDFOutput = errors.New("no pdf output configured")

// defaultTitleTemplate shapes the title page from the title-scope
// placeholders.
const defaultTitleTemplate = "{title}\n\nby {authors}\n\n{licences}\n\n{date}"

// lineSpacing is the planning estimate of line height relative to the font
// size. The renderer's real leading reconciles the counts.
const lineSpacing = 1.2

// PlanOptions carries the ambient inputs of a planning run.
type PlanOptions struct {
	// Version fills the {tool_version} colophon placeholder.
	Version string
	// Now supplies the clock; nil means time.Now. Tests pin it for
	// reproducible colophons.
	Now func() time.Time
}

// Plan runs the planning pipeline over the configured repository and returns
// the complete document model. Configuration and repository problems are
// errors; cosmetic findings (wrapping lines, unknown placeholders, a missing
// entrypoint) accumulate as warnings on the document.
func Plan(ctx context.Context, cfg *config.Config, opts PlanOptions) (*Document, error) {
	if cfg.PDF == nil {
		return nil, fmt.Errorf("%w: add a [pdf] section to bindery.toml", ErrNoPDFOutput)
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	repo, err := gitrepo.Open(cfg.Source.Repository)
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("open repository").
			WithResource(cfg.Source.Repository).
			WithSuggestion("Check the [source] repository path in bindery.toml").
			WithSuggestion("Run 'git init' if the project is not a repository yet").
			Wrap(err).
			BuildError()
	}

	doc := &Document{Layout: cfg.PDF}

	ordered, classification, err := planFiles(cfg, repo, doc)
	if err != nil {
		return nil, err
	}
	log.Debug("scanned repository", "files", len(ordered),
		"frontmatter", len(classification.Frontmatter), "source", len(classification.Source))

	commits, err := planHistory(cfg, repo, doc)
	if err != nil {
		return nil, err
	}

	capStats, err := planCapacity(ctx, cfg, repo.Path(), ordered, doc)
	if err != nil {
		return nil, err
	}
	doc.Capacity = capStats

	files := make([]File, len(ordered))
	sizes := make([]int64, len(ordered))
	for i, p := range ordered {
		files[i], sizes[i] = countFile(repo.Path(), p)
	}
	stats := collectStats(repo.Path(), files, sizes)

	planSections(cfg, doc, files, classification, len(commits))
	log.Debug("estimated pages", "total", doc.TotalPages())

	if cfg.Booklet != nil {
		plan, err := imposition.Impose(doc.TotalPages(), cfg.Booklet.SignatureSize)
		if err != nil {
			return nil, issue.WrapWithOperation(err, "plan booklet imposition")
		}
		doc.Imposition = plan
		doc.Booklet = &BookletSummary{
			OriginalPages: doc.TotalPages(),
			PaddedPages:   plan.PaddedPages,
			Sheets:        plan.SheetCount(),
			SignatureSize: plan.SignatureSize,
		}
		log.Debug("planned booklet", "sheets", plan.SheetCount(), "blanks", plan.BlankCount())
	}

	planMetadata(cfg, repo, doc)
	resolveTemplates(cfg, doc, stats, opts.Version, now())

	return doc, nil
}

// planFiles produces the ordered file list and its frontmatter/source
// partition. Explicit config listings take precedence over block_globs:
// files named in frontmatter_files or source_files are kept even when a glob
// would drop them.
func planFiles(cfg *config.Config, repo *gitrepo.Repository, doc *Document) ([]string, detect.Classification, error) {
	scanned, err := repo.TrackedFiles(gitrepo.ScanOptions{
		BlockGlobs:        cfg.Source.BlockGlobs,
		ExcludeSubmodules: cfg.Source.ExcludeSubmodules,
	})
	if err != nil {
		return nil, detect.Classification{}, issue.NewErrorContext().
			WithOperation("scan repository").
			WithResource(cfg.Source.Repository).
			WithSuggestion("Commit at least one file so HEAD exists").
			WithSuggestion("Check block_globs patterns in bindery.toml").
			Wrap(err).
			BuildError()
	}

	present := make(map[string]bool, len(scanned))
	for _, p := range scanned {
		present[p] = true
	}
	for _, p := range append(slices.Clone(cfg.Source.FrontmatterFiles), cfg.Source.SourceFiles...) {
		if !present[p] {
			scanned = append(scanned, p)
			present[p] = true
		}
	}

	entrypoint := cfg.Source.Entrypoint
	if entrypoint != "" && !present[entrypoint] {
		doc.Warnings = append(doc.Warnings,
			fmt.Sprintf("entrypoint %q is not among the tracked files; ordering falls back to lexicographic", entrypoint))
	}
	ordered := order.Sort(scanned, entrypoint)

	classification, err := detect.Partition(ordered, cfg.Source.FrontmatterFiles, cfg.Source.NotFrontmatterFiles)
	if err != nil {
		return nil, detect.Classification{}, issue.NewErrorContext().
			WithOperation("classify frontmatter").
			WithSuggestion("Remove the file from either frontmatter_files or not_frontmatter_files").
			Wrap(err).
			BuildError()
	}
	return ordered, classification, nil
}

// planHistory materializes the commit log in configured order, or nothing
// when the appendix is disabled.
func planHistory(cfg *config.Config, repo *gitrepo.Repository, doc *Document) ([]history.Commit, error) {
	if cfg.Source.CommitOrder == config.CommitOrderDisabled {
		return nil, nil
	}

	commits, err := repo.Commits()
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("read commit history").
			WithResource(cfg.Source.Repository).
			WithSuggestion("Commit your work, or set commit_order = \"disabled\"").
			Wrap(err).
			BuildError()
	}
	if cfg.Source.CommitOrder == config.CommitOrderOldestFirst {
		slices.Reverse(commits)
	}

	doc.Commits = commits
	doc.HistoryStats = history.Summarize(commits)
	log.Debug("read commit history", "commits", len(commits), "order", cfg.Source.CommitOrder)
	return commits, nil
}

// planCapacity measures the repository's lines against the page's character
// budget and records wrapping as an advisory warning.
func planCapacity(ctx context.Context, cfg *config.Config, repoPath string, files []string, doc *Document) (*capacity.Stats, error) {
	metrics, err := LoadFontMetrics(cfg.PDF.Font)
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("load body font").
			WithResource(cfg.PDF.Font).
			WithSuggestion("Point [pdf] font at a TTF/OTF file or a known family name").
			Wrap(err).
			BuildError()
	}

	maxChars, err := capacity.MaxCharsPerLine(
		cfg.PDF.PageWidthIn, cfg.PDF.MarginInnerIn, cfg.PDF.MarginOuterIn, metrics, cfg.PDF.FontSizeBodyPt)
	if err != nil {
		return nil, issue.WrapWithOperation(err, "compute line capacity")
	}

	stats, err := capacity.Scan(ctx, repoPath, files, maxChars)
	if err != nil {
		return nil, issue.WrapWithOperation(err, "scan line lengths")
	}
	log.Debug("analyzed capacity", "max_chars", maxChars, "lines", stats.TotalLines, "wrapping", stats.WrapLines)

	if stats.WrapLines > 0 {
		suggested, err := capacity.SuggestFontSize(
			cfg.PDF.PageWidthIn, cfg.PDF.MarginInnerIn, cfg.PDF.MarginOuterIn, stats.Percentile95, metrics)
		if err == nil {
			doc.Warnings = append(doc.Warnings, fmt.Sprintf(
				"%d of %d lines (%.1f%%) exceed the %d-character budget and will wrap; %.1fpt would fit the 95th percentile",
				stats.WrapLines, stats.TotalLines, stats.WrapPercent(), maxChars, suggested))
		} else {
			doc.Warnings = append(doc.Warnings, fmt.Sprintf(
				"%d of %d lines (%.1f%%) exceed the %d-character budget and will wrap",
				stats.WrapLines, stats.TotalLines, stats.WrapPercent(), maxChars))
		}
	}
	return stats, nil
}

// planSections builds the section sequence with page estimates and numbering
// schemes.
func planSections(cfg *config.Config, doc *Document, files []File, classification detect.Classification, commitCount int) {
	byPath := make(map[string]File, len(files))
	for _, f := range files {
		byPath[f.Path] = f
	}
	pick := func(paths []string) ([]File, []int) {
		picked := make([]File, 0, len(paths))
		lines := make([]int, 0, len(paths))
		for _, p := range paths {
			f := byPath[p]
			picked = append(picked, f)
			lines = append(lines, f.Lines)
		}
		return picked, lines
	}

	lpp := linesPerPage(cfg.PDF)
	frontFiles, frontLines := pick(classification.Frontmatter)
	sourceFiles, sourceLines := pick(classification.Source)
	sourcePages := paginate.EstimateSectionPages(sourceLines, lpp)

	none := paginate.Scheme{Style: paginate.StyleNone, Start: 1}
	doc.Sections = append(doc.Sections, Section{Kind: SectionTitle, Scheme: none, Pages: 1})
	doc.Sections = append(doc.Sections, Section{
		Kind:   SectionFrontmatter,
		Files:  frontFiles,
		Scheme: cfg.PDF.Numbering.Frontmatter,
		Pages:  paginate.EstimateSectionPages(frontLines, lpp),
	})
	doc.Sections = append(doc.Sections, Section{
		Kind:   SectionSource,
		Files:  sourceFiles,
		Scheme: cfg.PDF.Numbering.Source,
		Pages:  sourcePages,
	})
	if commitCount > 0 {
		doc.Sections = append(doc.Sections, Section{
			Kind:   SectionHistory,
			Scheme: historyScheme(cfg.PDF.Numbering.History, sourcePages),
			Pages:  paginate.EstimateHistoryPages(commitCount, lpp),
		})
	}
	if cfg.PDF.ColophonTemplate != "" {
		doc.Sections = append(doc.Sections, Section{Kind: SectionColophon, Scheme: none, Pages: 1})
	}
}

// historyScheme keeps the default behavior of continuing the source section's
// arabic sequence. An explicitly customized scheme is honored as configured.
func historyScheme(configured paginate.Scheme, sourcePages int) paginate.Scheme {
	if configured.Style == paginate.StyleArabic && configured.Start == 1 {
		_, _, continued := paginate.DefaultSchemes(sourcePages)
		return continued
	}
	return configured
}

// linesPerPage estimates how many body lines fit between the vertical
// margins.
func linesPerPage(pdf *config.PDFConfig) int {
	textHeightPt := (pdf.PageHeightIn - pdf.MarginTopIn - pdf.MarginBottomIn) * 72
	lines := int(textHeightPt / (pdf.FontSizeBodyPt * lineSpacing))
	if lines < 1 {
		lines = 1
	}
	return lines
}

// planMetadata fills title, authors, licences, and remotes, falling back to
// detection and commit prominence where the config is silent.
func planMetadata(cfg *config.Config, repo *gitrepo.Repository, doc *Document) {
	doc.Title = cfg.Source.Title
	if doc.Title == "" {
		doc.Title = detect.Title(repo.Path())
	}

	doc.Authors = cfg.Source.Authors
	if len(doc.Authors) == 0 {
		for _, a := range doc.HistoryStats.Authors {
			doc.Authors = append(doc.Authors, a.Author)
		}
	}

	doc.Licences = cfg.Source.Licences
	if remotes, err := repo.Remotes(); err == nil {
		doc.Remotes = remotes
	}
}

// resolveTemplates expands the title page and colophon, and checks the
// header/footer templates for unknown placeholders. Unknown tokens stay
// verbatim and surface as warnings.
func resolveTemplates(cfg *config.Config, doc *Document, stats repoStats, version string, now time.Time) {
	titleCtx := placeholder.NewContext(placeholder.ScopeTitle).
		Set("title", doc.Title).
		Set("authors", strings.Join(doc.Authors, ", ")).
		Set("licences", strings.Join(doc.Licences, ", ")).
		Set("date", now.Format("2006-01-02"))
	title, warns := placeholder.Resolve(defaultTitleTemplate, titleCtx)
	doc.TitlePage = title
	appendPlaceholderWarnings(doc, warns)

	if cfg.PDF.ColophonTemplate != "" {
		colophonCtx := placeholder.NewContext(placeholder.ScopeColophon).
			Set("title", doc.Title).
			Set("authors", strings.Join(doc.Authors, ", ")).
			Set("licences", strings.Join(doc.Licences, ", ")).
			Set("remotes", strings.Join(doc.Remotes, "\n")).
			Set("file_count", fmt.Sprintf("%d", stats.fileCount)).
			Set("line_count", fmt.Sprintf("%d", stats.lineCount)).
			Set("commit_count", fmt.Sprintf("%d", doc.HistoryStats.Total)).
			Set("total_bytes", humanBytes(stats.totalBytes)).
			Set("language_stats", stats.languageTable()).
			Set("commit_chart", doc.HistoryStats.Chart()).
			Set("generated_date", now.Format("2006-01-02")).
			Set("tool_version", version).
			Set("date_range", doc.HistoryStats.DateRange())
		colophon, warns := placeholder.Resolve(cfg.PDF.ColophonTemplate, colophonCtx)
		doc.Colophon = colophon
		appendPlaceholderWarnings(doc, warns)
	}

	probe := placeholder.NewContext(placeholder.ScopeHeaderFooter).
		Set("file", "probe").
		Set("n", "1").
		Set("total", "1")
	for _, tmpl := range []string{cfg.PDF.HeaderTemplate, cfg.PDF.FooterTemplate} {
		if tmpl == "" {
			continue
		}
		_, warns := placeholder.Resolve(tmpl, probe)
		appendPlaceholderWarnings(doc, warns)
	}
}

func appendPlaceholderWarnings(doc *Document, warns []placeholder.Warning) {
	for _, w := range warns {
		doc.Warnings = append(doc.Warnings, w.String())
	}
}
