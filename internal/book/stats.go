// SPDX-License-Identifier: MPL-2.0

package book

import (
	"bytes"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// languageStatsLimit caps the colophon's language table at the largest
// contributors.
const languageStatsLimit = 10

type (
	// langStat is one extension's share of the codebase.
	langStat struct {
		ext   string
		lines int
	}

	// repoStats aggregates the per-file counts feeding the colophon.
	repoStats struct {
		fileCount  int
		lineCount  int
		totalBytes int64
		languages  []langStat
	}
)

// countFile reads one repository file and returns its File record plus its
// byte size. Unreadable files count as empty; binary files count zero lines.
func countFile(repoPath, relPath string) (File, int64) {
	data, err := os.ReadFile(filepath.Join(repoPath, filepath.FromSlash(relPath)))
	if err != nil {
		return File{Path: relPath}, 0
	}
	if bytes.IndexByte(data, 0) >= 0 || !utf8.Valid(data) {
		return File{Path: relPath, Binary: true}, int64(len(data))
	}

	lines := bytes.Count(data, []byte("\n"))
	if len(data) > 0 && data[len(data)-1] != '\n' {
		lines++
	}
	return File{Path: relPath, Lines: lines}, int64(len(data))
}

// collectStats counts every planned file once and aggregates lines per file
// extension for the language table.
func collectStats(repoPath string, files []File, sizes []int64) repoStats {
	stats := repoStats{fileCount: len(files)}
	perExt := make(map[string]int)

	for i, f := range files {
		stats.lineCount += f.Lines
		stats.totalBytes += sizes[i]
		if f.Binary {
			continue
		}
		ext := strings.ToLower(path.Ext(f.Path))
		if ext == "" {
			ext = "(none)"
		}
		perExt[ext] += f.Lines
	}

	exts := maps.Keys(perExt)
	slices.Sort(exts)
	for _, ext := range exts {
		stats.languages = append(stats.languages, langStat{ext: ext, lines: perExt[ext]})
	}
	slices.SortStableFunc(stats.languages, func(a, b langStat) int {
		return b.lines - a.lines
	})
	if len(stats.languages) > languageStatsLimit {
		stats.languages = stats.languages[:languageStatsLimit]
	}
	return stats
}

// languageTable formats the per-extension line counts for the
// {language_stats} placeholder, largest first.
func (s repoStats) languageTable() string {
	if len(s.languages) == 0 || s.lineCount == 0 {
		return ""
	}
	var lines []string
	for _, l := range s.languages {
		pct := float64(l.lines) / float64(s.lineCount) * 100
		lines = append(lines, fmt.Sprintf("  %-8s %6d lines (%.1f%%)", l.ext, l.lines, pct))
	}
	return strings.Join(lines, "\n")
}

// humanBytes formats a byte count with a binary unit suffix.
func humanBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
