// SPDX-License-Identifier: MPL-2.0

// Package history summarizes an already-materialized sequence of commit
// records: totals, per-author counts, first/last dates, and an ASCII activity
// histogram for the colophon.
//
// The package never touches a repository. The provider hands it plain records,
// which keeps every computation here a pure function and testable without git.
package history

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

const (
	// chartBuckets is the fixed number of time buckets in the histogram.
	chartBuckets = 24
	// chartBarWidth is the maximum bar length in characters. Together with
	// the label and count columns the rendered lines stay within ~60 columns.
	chartBarWidth = 40
)

type (
	// Commit is one commit record as delivered by the repository provider.
	Commit struct {
		// Hash is the full commit hash.
		Hash string
		// Author is the author's name.
		Author string
		// Email is the author's email address.
		Email string
		// When is the author timestamp.
		When time.Time
		// Summary is the first line of the commit message.
		Summary string
		// Body is the remainder of the commit message.
		Body string
	}

	// AuthorCount pairs a formatted author string with their commit count.
	AuthorCount struct {
		Author  string
		Commits int
	}

	// Bucket is one histogram bucket: commits counted in [Start, End).
	Bucket struct {
		Start time.Time
		End   time.Time
		Count int
	}

	// Stats is the summary of a commit sequence.
	Stats struct {
		Total   int
		Authors []AuthorCount
		First   time.Time
		Last    time.Time
		Buckets []Bucket
	}
)

// ShortHash returns the 8-character abbreviated hash used in the appendix.
func (c Commit) ShortHash() string {
	if len(c.Hash) <= 8 {
		return c.Hash
	}
	return c.Hash[:8]
}

// AuthorString formats the commit author as "Name <email>", degrading
// gracefully when either part is missing.
func (c Commit) AuthorString() string {
	switch {
	case c.Author != "" && c.Email != "":
		return fmt.Sprintf("%s <%s>", c.Author, c.Email)
	case c.Author != "":
		return c.Author
	default:
		return c.Email
	}
}

// Summarize computes statistics over the commit sequence. The input order does
// not matter; first/last are found by scanning timestamps. An empty input
// yields zero-valued stats with no buckets.
func Summarize(commits []Commit) Stats {
	stats := Stats{Total: len(commits)}
	if len(commits) == 0 {
		return stats
	}

	counts := make(map[string]int)
	stats.First = commits[0].When
	stats.Last = commits[0].When
	for _, c := range commits {
		counts[c.AuthorString()]++
		if c.When.Before(stats.First) {
			stats.First = c.When
		}
		if c.When.After(stats.Last) {
			stats.Last = c.When
		}
	}

	authors := maps.Keys(counts)
	slices.Sort(authors)
	stats.Authors = make([]AuthorCount, 0, len(authors))
	for _, a := range authors {
		stats.Authors = append(stats.Authors, AuthorCount{Author: a, Commits: counts[a]})
	}
	slices.SortStableFunc(stats.Authors, func(a, b AuthorCount) int {
		return b.Commits - a.Commits
	})

	stats.Buckets = bucketize(commits, stats.First, stats.Last)
	return stats
}

// bucketize splits the span between first and last into a fixed number of
// equal buckets and counts commits per bucket. A zero span (single commit, or
// all commits at the same instant) collapses to one bucket.
func bucketize(commits []Commit, first, last time.Time) []Bucket {
	span := last.Sub(first)
	if span <= 0 {
		return []Bucket{{Start: first, End: last.Add(time.Second), Count: len(commits)}}
	}

	width := span / chartBuckets
	if width <= 0 {
		width = 1
	}

	buckets := make([]Bucket, chartBuckets)
	for i := range buckets {
		buckets[i].Start = first.Add(time.Duration(i) * width)
		buckets[i].End = first.Add(time.Duration(i+1) * width)
	}
	// The final bucket is closed so the newest commit lands inside it.
	buckets[chartBuckets-1].End = last.Add(time.Second)

	for _, c := range commits {
		idx := int(c.When.Sub(first) / width)
		if idx >= chartBuckets {
			idx = chartBuckets - 1
		}
		if idx < 0 {
			idx = 0
		}
		buckets[idx].Count++
	}
	return buckets
}

// Chart renders the bucketed commit counts as an ASCII histogram, one line per
// bucket, bars scaled to the busiest bucket. Returns "" for empty stats.
func (s Stats) Chart() string {
	if len(s.Buckets) == 0 {
		return ""
	}

	max := 0
	for _, b := range s.Buckets {
		if b.Count > max {
			max = b.Count
		}
	}
	if max == 0 {
		return ""
	}

	var lines []string
	for _, b := range s.Buckets {
		width := 0
		if b.Count > 0 {
			width = b.Count * chartBarWidth / max
			if width < 1 {
				width = 1
			}
		}
		lines = append(lines, fmt.Sprintf("  %s %s (%d)",
			b.Start.Format("2006-01"), strings.Repeat("#", width), b.Count))
	}
	return strings.Join(lines, "\n")
}

// DateRange formats the first and last commit dates for the {date_range}
// placeholder.
func (s Stats) DateRange() string {
	if s.Total == 0 {
		return "unknown"
	}
	return fmt.Sprintf("%s to %s", s.First.Format("2006-01-02"), s.Last.Format("2006-01-02"))
}
