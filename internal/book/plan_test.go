// SPDX-License-Identifier: MPL-2.0

package book

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"bindery/internal/config"
	"bindery/internal/paginate"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

func fixtureRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("failed to init repository: %v", err)
	}
	w, err := repo.Worktree()
	if err != nil {
		t.Fatalf("failed to open worktree: %v", err)
	}

	base := time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)
	commit := func(msg string, when time.Time, files map[string]string) {
		for name, content := range files {
			path := filepath.Join(dir, filepath.FromSlash(name))
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				t.Fatalf("failed to create dir: %v", err)
			}
			if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
				t.Fatalf("failed to write %s: %v", name, err)
			}
			if _, err := w.Add(name); err != nil {
				t.Fatalf("failed to add %s: %v", name, err)
			}
		}
		sig := &object.Signature{Name: "Ada", Email: "ada@example.com", When: when}
		if _, err := w.Commit(msg, &git.CommitOptions{Author: sig, Committer: sig}); err != nil {
			t.Fatalf("failed to commit: %v", err)
		}
	}

	commit("initial import", base, map[string]string{
		"README.md":   "# Demo\n\nA fixture project.\n",
		"src/main.rs": "fn main() {\n    println!(\"hi\");\n}\n",
	})
	commit("add library", base.Add(48*time.Hour), map[string]string{
		"src/lib.rs": "pub fn answer() -> i32 {\n    42\n}\n",
	})
	return dir
}

func fixtureConfig(dir string) *config.Config {
	cfg := config.DefaultConfig()
	cfg.Source.Repository = dir
	cfg.Source.Title = "Demo Book"
	cfg.Source.Entrypoint = "src/main.rs"
	return cfg
}

func planFixture(t *testing.T, cfg *config.Config) *Document {
	t.Helper()
	doc, err := Plan(context.Background(), cfg, PlanOptions{
		Version: "1.2.3",
		Now:     func() time.Time { return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC) },
	})
	if err != nil {
		t.Fatalf("Plan() returned error: %v", err)
	}
	return doc
}

func TestPlan_SectionSequence(t *testing.T) {
	t.Parallel()

	doc := planFixture(t, fixtureConfig(fixtureRepo(t)))

	wantKinds := []SectionKind{SectionTitle, SectionFrontmatter, SectionSource, SectionHistory, SectionColophon}
	if len(doc.Sections) != len(wantKinds) {
		t.Fatalf("got %d sections, want %d", len(doc.Sections), len(wantKinds))
	}
	for i, kind := range wantKinds {
		if doc.Sections[i].Kind != kind {
			t.Errorf("section[%d] = %v, want %v", i, doc.Sections[i].Kind, kind)
		}
	}

	front := doc.Section(SectionFrontmatter)
	if len(front.Files) != 1 || front.Files[0].Path != "README.md" {
		t.Errorf("frontmatter files = %v", front.Files)
	}

	source := doc.Section(SectionSource)
	if len(source.Files) != 2 || source.Files[0].Path != "src/main.rs" {
		t.Errorf("source files = %v, want entrypoint first", source.Files)
	}
	if source.Files[0].Lines != 3 {
		t.Errorf("entrypoint lines = %d, want 3", source.Files[0].Lines)
	}
}

func TestPlan_NumberingSchemes(t *testing.T) {
	t.Parallel()

	doc := planFixture(t, fixtureConfig(fixtureRepo(t)))

	front := doc.Section(SectionFrontmatter)
	if front.Scheme.Style != paginate.StyleRomanLower || front.Scheme.Start != 1 {
		t.Errorf("frontmatter scheme = %+v", front.Scheme)
	}

	source := doc.Section(SectionSource)
	if source.Scheme.Style != paginate.StyleArabic || source.Scheme.Start != 1 {
		t.Errorf("source scheme = %+v", source.Scheme)
	}

	hist := doc.Section(SectionHistory)
	if hist == nil {
		t.Fatal("missing history section")
	}
	if hist.Scheme.Style != paginate.StyleArabic || hist.Scheme.Start != source.Pages+1 {
		t.Errorf("history scheme = %+v, want arabic continuing at %d", hist.Scheme, source.Pages+1)
	}
}

func TestPlan_BookletSummary(t *testing.T) {
	t.Parallel()

	doc := planFixture(t, fixtureConfig(fixtureRepo(t)))

	if doc.Booklet == nil || doc.Imposition == nil {
		t.Fatal("booklet output configured but no imposition planned")
	}
	if doc.Booklet.OriginalPages != doc.TotalPages() {
		t.Errorf("OriginalPages = %d, want %d", doc.Booklet.OriginalPages, doc.TotalPages())
	}
	if doc.Booklet.PaddedPages%16 != 0 {
		t.Errorf("PaddedPages = %d, want multiple of signature size 16", doc.Booklet.PaddedPages)
	}
	if doc.Booklet.Sheets != doc.Booklet.PaddedPages/4 {
		t.Errorf("Sheets = %d, want %d", doc.Booklet.Sheets, doc.Booklet.PaddedPages/4)
	}
}

func TestPlan_ResolvedTemplates(t *testing.T) {
	t.Parallel()

	doc := planFixture(t, fixtureConfig(fixtureRepo(t)))

	if !strings.Contains(doc.TitlePage, "Demo Book") {
		t.Errorf("title page should contain the title: %q", doc.TitlePage)
	}
	if !strings.Contains(doc.TitlePage, "Ada <ada@example.com>") {
		t.Errorf("title page should contain the derived author: %q", doc.TitlePage)
	}
	if !strings.Contains(doc.Colophon, "2 commits") {
		t.Errorf("colophon should contain the commit count: %q", doc.Colophon)
	}
	if !strings.Contains(doc.Colophon, "Generated on 2024-06-01") {
		t.Errorf("colophon should contain the pinned date: %q", doc.Colophon)
	}
	if strings.Contains(doc.Colophon, "{") {
		t.Errorf("default colophon should resolve every placeholder: %q", doc.Colophon)
	}
}

func TestPlan_HistoryDisabled(t *testing.T) {
	t.Parallel()

	cfg := fixtureConfig(fixtureRepo(t))
	cfg.Source.CommitOrder = config.CommitOrderDisabled

	doc := planFixture(t, cfg)
	if doc.Section(SectionHistory) != nil {
		t.Error("disabled history should produce no history section")
	}
	if doc.Commits != nil {
		t.Errorf("Commits = %v, want nil", doc.Commits)
	}
}

func TestPlan_CommitOrderOldestFirst(t *testing.T) {
	t.Parallel()

	cfg := fixtureConfig(fixtureRepo(t))
	cfg.Source.CommitOrder = config.CommitOrderOldestFirst

	doc := planFixture(t, cfg)
	if len(doc.Commits) != 2 {
		t.Fatalf("len(Commits) = %d, want 2", len(doc.Commits))
	}
	if doc.Commits[0].Summary != "initial import" {
		t.Errorf("Commits[0].Summary = %q, want oldest first", doc.Commits[0].Summary)
	}
}

func TestPlan_MissingEntrypointWarns(t *testing.T) {
	t.Parallel()

	cfg := fixtureConfig(fixtureRepo(t))
	cfg.Source.Entrypoint = "src/gone.rs"

	doc := planFixture(t, cfg)
	found := false
	for _, w := range doc.Warnings {
		if strings.Contains(w, "entrypoint") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an entrypoint warning, got %v", doc.Warnings)
	}
}

func TestPlan_UnknownFooterPlaceholderWarns(t *testing.T) {
	t.Parallel()

	cfg := fixtureConfig(fixtureRepo(t))
	cfg.PDF.FooterTemplate = "{page}"

	doc := planFixture(t, cfg)
	found := false
	for _, w := range doc.Warnings {
		if strings.Contains(w, "{page}") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a placeholder warning for {page}, got %v", doc.Warnings)
	}
}

func TestPlan_RequiresPDFSection(t *testing.T) {
	t.Parallel()

	cfg := fixtureConfig(fixtureRepo(t))
	cfg.PDF = nil

	if _, err := Plan(context.Background(), cfg, PlanOptions{}); !errors.Is(err, ErrNoPDFOutput) {
		t.Errorf("Plan() error = %v, want ErrNoPDFOutput", err)
	}
}

func TestPlan_NotARepository(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Source.Repository = t.TempDir()

	if _, err := Plan(context.Background(), cfg, PlanOptions{}); err == nil {
		t.Fatal("expected error for non-repository path")
	}
}

func TestPlan_NoBookletWhenUnconfigured(t *testing.T) {
	t.Parallel()

	cfg := fixtureConfig(fixtureRepo(t))
	cfg.Booklet = nil

	doc := planFixture(t, cfg)
	if doc.Booklet != nil || doc.Imposition != nil {
		t.Error("unconfigured booklet should leave imposition nil")
	}
}
