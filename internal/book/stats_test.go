// SPDX-License-Identifier: MPL-2.0

package book

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCountFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	write := func(name string, data []byte) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}

	write("three.txt", []byte("a\nb\nc\n"))
	write("no-trailing.txt", []byte("a\nb"))
	write("binary.bin", []byte{0x89, 0x50, 0x00, 0x47})

	tests := []struct {
		name   string
		path   string
		lines  int
		binary bool
	}{
		{"trailing newline", "three.txt", 3, false},
		{"no trailing newline", "no-trailing.txt", 2, false},
		{"binary", "binary.bin", 0, true},
		{"missing", "absent.txt", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f, _ := countFile(dir, tt.path)
			if f.Lines != tt.lines || f.Binary != tt.binary {
				t.Errorf("countFile(%s) = {Lines: %d, Binary: %v}, want {%d, %v}",
					tt.path, f.Lines, f.Binary, tt.lines, tt.binary)
			}
		})
	}
}

func TestCollectStats_LanguageTable(t *testing.T) {
	t.Parallel()

	files := []File{
		{Path: "src/main.rs", Lines: 300},
		{Path: "src/lib.rs", Lines: 200},
		{Path: "build.py", Lines: 100},
		{Path: "Makefile", Lines: 50},
		{Path: "logo.png", Binary: true},
	}
	sizes := []int64{3000, 2000, 1000, 500, 4096}

	stats := collectStats(t.TempDir(), files, sizes)

	if stats.fileCount != 5 {
		t.Errorf("fileCount = %d, want 5", stats.fileCount)
	}
	if stats.lineCount != 650 {
		t.Errorf("lineCount = %d, want 650", stats.lineCount)
	}
	if stats.totalBytes != 10596 {
		t.Errorf("totalBytes = %d, want 10596", stats.totalBytes)
	}

	if len(stats.languages) != 3 {
		t.Fatalf("languages = %v, want 3 entries", stats.languages)
	}
	if stats.languages[0].ext != ".rs" || stats.languages[0].lines != 500 {
		t.Errorf("languages[0] = %+v, want .rs with 500 lines", stats.languages[0])
	}

	table := stats.languageTable()
	lines := strings.Split(table, "\n")
	if len(lines) != 3 {
		t.Fatalf("table has %d lines: %q", len(lines), table)
	}
	if !strings.Contains(lines[0], ".rs") || !strings.Contains(lines[0], "(76.9%)") {
		t.Errorf("table[0] = %q", lines[0])
	}
	if !strings.Contains(lines[2], "(none)") {
		t.Errorf("table[2] = %q, want the extensionless bucket last", lines[2])
	}
}

func TestHumanBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n    int64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{2048, "2.0 KiB"},
		{1536, "1.5 KiB"},
		{5 * 1024 * 1024, "5.0 MiB"},
		{3 * 1024 * 1024 * 1024, "3.0 GiB"},
	}

	for _, tt := range tests {
		if got := humanBytes(tt.n); got != tt.want {
			t.Errorf("humanBytes(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
