// SPDX-License-Identifier: MPL-2.0

package detect

import (
	"errors"
	"fmt"
	"strings"
)

// ErrConflictingOverride is returned when the same file is both explicitly
// included in and excluded from the frontmatter section.
var ErrConflictingOverride = errors.New("conflicting frontmatter override")

type (
	// ConflictingOverrideError reports a file listed in both the explicit
	// include and exclude lists. It wraps ErrConflictingOverride for
	// errors.Is() compatibility.
	ConflictingOverrideError struct {
		Path string
	}

	// Classification is the partition of the ordered file list. Frontmatter
	// and Source each preserve the relative order of the input; together they
	// cover it exactly.
	Classification struct {
		Frontmatter []string
		Source      []string
	}
)

func (e *ConflictingOverrideError) Error() string {
	return fmt.Sprintf("file %q is listed as both frontmatter and not-frontmatter", e.Path)
}

func (e *ConflictingOverrideError) Unwrap() error { return ErrConflictingOverride }

// frontmatterGroups are the recognized frontmatter file names, grouped by
// reading priority: the README comes first, the licence last because it is
// standard boilerplate. Detection picks at most one file per group.
var frontmatterGroups = [][]string{
	{"README.md", "README", "README.txt", "README.rst"},
	{"ARCHITECTURE.md", "ARCHITECTURE", "DESIGN.md", "DESIGN"},
	{"CONTRIBUTING.md", "CONTRIBUTING"},
	{"CHANGELOG.md", "CHANGELOG", "HISTORY.md", "HISTORY"},
	{"CODE_OF_CONDUCT.md", "CODE_OF_CONDUCT"},
	{"SECURITY.md", "SECURITY"},
	{"Cargo.toml"},
	{"package.json"},
	{"pyproject.toml", "setup.py"},
	{"go.mod"},
	{"Makefile"},
	{"LICENSE", "LICENSE.md", "LICENSE.txt", "LICENCE", "LICENCE.md", "COPYING"},
}

// Frontmatter returns the files from the candidate list that match the
// recognized frontmatter names, in reading-priority order. Only root-level
// files match, case-insensitively, and at most one file per group is taken.
func Frontmatter(paths []string) []string {
	var result []string
	for _, group := range frontmatterGroups {
		for _, pattern := range group {
			found := ""
			for _, p := range paths {
				if strings.EqualFold(p, pattern) {
					found = p
					break
				}
			}
			if found == "" {
				continue
			}
			if !containsString(result, found) {
				result = append(result, found)
			}
			break
		}
	}
	return result
}

// IsRecognized reports whether the basename matches the recognized
// frontmatter set, case-insensitively.
func IsRecognized(path string) bool {
	for _, group := range frontmatterGroups {
		for _, pattern := range group {
			if strings.EqualFold(path, pattern) {
				return true
			}
		}
	}
	return false
}

// Partition splits the ordered file list into frontmatter and source
// sections. Auto-detection classifies recognized root-level names as
// frontmatter; the explicit include and exclude lists override it in either
// direction. A file present in both override lists is a configuration error.
// Every input file lands in exactly one section, order preserved.
func Partition(ordered, include, exclude []string) (Classification, error) {
	includeSet := make(map[string]bool, len(include))
	for _, p := range include {
		includeSet[p] = true
	}
	for _, p := range exclude {
		if includeSet[p] {
			return Classification{}, &ConflictingOverrideError{Path: p}
		}
	}
	excludeSet := make(map[string]bool, len(exclude))
	for _, p := range exclude {
		excludeSet[p] = true
	}

	var c Classification
	for _, p := range ordered {
		isFront := IsRecognized(p)
		if includeSet[p] {
			isFront = true
		}
		if excludeSet[p] {
			isFront = false
		}
		if isFront {
			c.Frontmatter = append(c.Frontmatter, p)
		} else {
			c.Source = append(c.Source, p)
		}
	}
	return c, nil
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
