// SPDX-License-Identifier: MPL-2.0

// Package order sorts candidate files into the final reading order of the
// book.
//
// Reading source code as a book works best when it follows the path a
// developer would take through an unfamiliar codebase: start at the entry
// point, read its immediate neighbours, then descend into related modules,
// and leave the rest for last. The orderer encodes that as a total order over
// unique paths, so ranks never tie and repeated runs produce identical output.
package order

import (
	"path"
	"sort"
	"strings"
)

// group classifies a path relative to the entrypoint, lower groups first.
const (
	groupEntrypoint = iota
	groupEntryDir
	groupEntrySubdir
	groupRest
)

// Sort returns the paths in final reading order:
//
//  1. the entrypoint itself,
//  2. files in the entrypoint's directory, lexicographically,
//  3. files under subdirectories of the entrypoint's directory,
//     lexicographically (which keeps each subdirectory's files together),
//  4. everything else in full lexicographic path order.
//
// An empty entrypoint, or one that is not among the candidates, degrades to
// pure lexicographic order with no error. The input slice is not modified.
func Sort(paths []string, entrypoint string) []string {
	sorted := make([]string, len(paths))
	copy(sorted, paths)

	entrypoint = path.Clean(entrypoint)
	if entrypoint == "." || !containsPath(sorted, entrypoint) {
		entrypoint = ""
	}

	entryDir := ""
	if entrypoint != "" {
		entryDir = path.Dir(entrypoint)
	}

	classify := func(p string) int {
		if entrypoint == "" {
			return groupRest
		}
		switch {
		case p == entrypoint:
			return groupEntrypoint
		case path.Dir(p) == entryDir:
			return groupEntryDir
		case entryDir == "." || strings.HasPrefix(p, entryDir+"/"):
			return groupEntrySubdir
		default:
			return groupRest
		}
	}

	sort.Slice(sorted, func(i, j int) bool {
		gi, gj := classify(sorted[i]), classify(sorted[j])
		if gi != gj {
			return gi < gj
		}
		return sorted[i] < sorted[j]
	})

	return sorted
}

func containsPath(paths []string, p string) bool {
	for _, candidate := range paths {
		if candidate == p {
			return true
		}
	}
	return false
}
