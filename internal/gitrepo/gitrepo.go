// SPDX-License-Identifier: MPL-2.0

// Package gitrepo reads everything the planning pipeline needs from a git
// repository: the tracked file list, the commit log, remotes, and submodule
// paths.
//
// Only this package holds a repository handle. Downstream packages receive
// plain values (paths, history.Commit records), which keeps them pure and
// testable without a repository.
package gitrepo

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"bindery/internal/history"

	"github.com/bmatcuk/doublestar/v4"
	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	gitcfg "github.com/go-git/go-git/v5/plumbing/format/config"
	"github.com/go-git/go-git/v5/plumbing/object"
)

var (
	// ErrNotARepository is returned when the configured path is not inside a
	// git repository.
	ErrNotARepository = errors.New("not a git repository")
	// ErrNoHistory is returned when the repository has no commits.
	ErrNoHistory = errors.New("repository has no commit history")
	// ErrBadBlockGlob is returned when a block_globs pattern is malformed.
	ErrBadBlockGlob = errors.New("malformed block glob")
)

type (
	// Repository wraps an opened git repository.
	Repository struct {
		repo *git.Repository
		path string
	}

	// ScanOptions controls which tracked files a scan returns.
	ScanOptions struct {
		// BlockGlobs excludes tracked files matching any of these doublestar
		// patterns (slash-separated, e.g. "target/**").
		BlockGlobs []string
		// ExcludeSubmodules drops files at or under submodule paths.
		ExcludeSubmodules bool
	}
)

// Open opens the repository containing path, searching upward for the .git
// directory the way the git CLI does.
func Open(path string) (*Repository, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%w: %s", ErrNotARepository, path)
		}
		return nil, fmt.Errorf("failed to open repository at %s: %w", path, err)
	}
	return &Repository{repo: repo, path: path}, nil
}

// Path returns the path the repository was opened with.
func (r *Repository) Path() string {
	return r.path
}

// headTree returns the tree of the HEAD commit.
func (r *Repository) headTree() (*object.Tree, error) {
	ref, err := r.repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return nil, ErrNoHistory
		}
		return nil, fmt.Errorf("failed to resolve HEAD: %w", err)
	}
	commit, err := r.repo.CommitObject(ref.Hash())
	if err != nil {
		return nil, fmt.Errorf("failed to load HEAD commit: %w", err)
	}
	tree, err := commit.Tree()
	if err != nil {
		return nil, fmt.Errorf("failed to load HEAD tree: %w", err)
	}
	return tree, nil
}

// TrackedFiles lists the files of the HEAD tree, slash-separated and sorted
// lexicographically, after applying the scan options. Untracked and ignored
// working-tree files never appear.
func (r *Repository) TrackedFiles(opts ScanOptions) ([]string, error) {
	tree, err := r.headTree()
	if err != nil {
		return nil, err
	}

	var submodules []string
	if opts.ExcludeSubmodules {
		submodules, err = r.Submodules()
		if err != nil {
			return nil, err
		}
	}

	var files []string
	err = tree.Files().ForEach(func(f *object.File) error {
		blocked, err := matchesAny(opts.BlockGlobs, f.Name)
		if err != nil {
			return err
		}
		if blocked || underAny(submodules, f.Name) {
			return nil
		}
		files = append(files, f.Name)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// matchesAny reports whether path matches any of the doublestar patterns.
func matchesAny(patterns []string, path string) (bool, error) {
	for _, pattern := range patterns {
		ok, err := doublestar.Match(pattern, path)
		if err != nil {
			return false, fmt.Errorf("%w: %q", ErrBadBlockGlob, pattern)
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// underAny reports whether path equals or lies under any of the given
// directory prefixes.
func underAny(prefixes []string, path string) bool {
	for _, prefix := range prefixes {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return true
		}
	}
	return false
}

// Submodules returns the submodule paths declared in .gitmodules at HEAD,
// or nil when the repository declares none.
func (r *Repository) Submodules() ([]string, error) {
	tree, err := r.headTree()
	if err != nil {
		return nil, err
	}

	file, err := tree.File(".gitmodules")
	if err != nil {
		if errors.Is(err, object.ErrFileNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read .gitmodules: %w", err)
	}
	contents, err := file.Contents()
	if err != nil {
		return nil, fmt.Errorf("failed to read .gitmodules: %w", err)
	}

	cfg := gitcfg.New()
	if err := gitcfg.NewDecoder(strings.NewReader(contents)).Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse .gitmodules: %w", err)
	}

	var paths []string
	for _, sub := range cfg.Section("submodule").Subsections {
		if p := sub.Option("path"); p != "" {
			paths = append(paths, p)
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// Commits returns the commit log reachable from HEAD, newest first. Callers
// that want oldest-first order reverse the slice.
func (r *Repository) Commits() ([]history.Commit, error) {
	ref, err := r.repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return nil, ErrNoHistory
		}
		return nil, fmt.Errorf("failed to resolve HEAD: %w", err)
	}

	iter, err := r.repo.Log(&git.LogOptions{From: ref.Hash(), Order: git.LogOrderCommitterTime})
	if err != nil {
		return nil, fmt.Errorf("failed to walk commit log: %w", err)
	}
	defer iter.Close()

	var commits []history.Commit
	err = iter.ForEach(func(c *object.Commit) error {
		summary, body := splitMessage(c.Message)
		commits = append(commits, history.Commit{
			Hash:    c.Hash.String(),
			Author:  c.Author.Name,
			Email:   c.Author.Email,
			When:    c.Author.When,
			Summary: summary,
			Body:    body,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk commit log: %w", err)
	}
	if len(commits) == 0 {
		return nil, ErrNoHistory
	}
	return commits, nil
}

// splitMessage separates a commit message into its summary line and trimmed
// body.
func splitMessage(message string) (summary, body string) {
	summary, body, _ = strings.Cut(message, "\n")
	return strings.TrimSpace(summary), strings.TrimSpace(body)
}

// Remotes returns the configured remotes as "name: first-url" strings, sorted
// by name. Repositories without remotes yield nil.
func (r *Repository) Remotes() ([]string, error) {
	remotes, err := r.repo.Remotes()
	if err != nil {
		return nil, fmt.Errorf("failed to list remotes: %w", err)
	}

	var out []string
	for _, remote := range remotes {
		cfg := remote.Config()
		if len(cfg.URLs) == 0 {
			continue
		}
		out = append(out, fmt.Sprintf("%s: %s", cfg.Name, cfg.URLs[0]))
	}
	sort.Strings(out)
	return out, nil
}
