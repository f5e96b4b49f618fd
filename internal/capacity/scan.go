// SPDX-License-Identifier: MPL-2.0

package capacity

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"
)

const (
	// tabWidth is the visual width a tab contributes, matching common
	// editor defaults.
	tabWidth = 4

	// maxOffensesPerFile bounds how many overlong lines are reported for a
	// single file, so one machine-generated file cannot flood the report.
	maxOffensesPerFile = 10
)

type (
	// Offense is a single line that exceeds the character budget.
	Offense struct {
		Path   string
		Line   int
		Length int
	}

	// Stats summarizes the line lengths found across the scanned files.
	Stats struct {
		MaxCharsPerLine int
		TotalLines      int
		WrapLines       int
		LongestLength   int
		LongestFile     string
		LongestLine     int
		Percentile95    int
		Offenses        []Offense
	}

	fileResult struct {
		lines    int
		wraps    int
		longest  int
		longestN int
		lengths  []int
		offenses []Offense
	}
)

// WrapPercent returns the share of lines that exceed the budget, 0-100.
func (s *Stats) WrapPercent() float64 {
	if s.TotalLines == 0 {
		return 0
	}
	return float64(s.WrapLines) / float64(s.TotalLines) * 100
}

// Scan measures every line of the given files against maxChars. Files are
// scanned concurrently but results are merged in input order, so the report is
// deterministic. Binary and unreadable files are skipped silently.
func Scan(ctx context.Context, repoPath string, files []string, maxChars int) (*Stats, error) {
	results := make([]*fileResult, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = scanFile(filepath.Join(repoPath, filepath.FromSlash(file)), file, maxChars)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &Stats{MaxCharsPerLine: maxChars}
	var allLengths []int
	for i, res := range results {
		if res == nil {
			continue
		}
		stats.TotalLines += res.lines
		stats.WrapLines += res.wraps
		if res.longest > stats.LongestLength {
			stats.LongestLength = res.longest
			stats.LongestFile = files[i]
			stats.LongestLine = res.longestN
		}
		stats.Offenses = append(stats.Offenses, res.offenses...)
		allLengths = append(allLengths, res.lengths...)
	}

	sort.Ints(allLengths)
	if idx := int(float64(len(allLengths)) * 0.95); idx < len(allLengths) {
		stats.Percentile95 = allLengths[idx]
	}
	return stats, nil
}

func scanFile(fullPath, relPath string, maxChars int) *fileResult {
	data, err := os.ReadFile(fullPath)
	if err != nil || isBinary(data) {
		return nil
	}

	lines := strings.Split(string(data), "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	res := &fileResult{}
	for n, line := range lines {
		res.lines++
		length := visualLength(line)
		res.lengths = append(res.lengths, length)
		if length > maxChars {
			res.wraps++
			if len(res.offenses) < maxOffensesPerFile {
				res.offenses = append(res.offenses, Offense{Path: relPath, Line: n + 1, Length: length})
			}
		}
		if length > res.longest {
			res.longest = length
			res.longestN = n + 1
		}
	}
	return res
}

// visualLength counts characters with tabs expanded, runes not bytes.
func visualLength(line string) int {
	length := 0
	for _, r := range line {
		if r == '\t' {
			length += tabWidth
		} else {
			length++
		}
	}
	return length
}

func isBinary(data []byte) bool {
	return bytes.IndexByte(data, 0) >= 0 || !utf8.Valid(data)
}
