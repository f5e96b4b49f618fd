// SPDX-License-Identifier: MPL-2.0

// Package detect probes a repository for sensible configuration defaults and
// classifies files into frontmatter and source sections.
//
// The wizard leans on this package to pre-fill its prompts: a title derived
// from the directory name, an entrypoint guessed from language conventions,
// licences read from manifest files or LICENSE text, and the documentation
// files that belong before the source code.
package detect

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/pelletier/go-toml/v2"
)

// Defaults holds the values detected from a repository path.
type Defaults struct {
	Title      string
	Entrypoint string
	Licences   []string
}

// Detect probes repoPath for all defaults at once.
func Detect(repoPath string) Defaults {
	return Defaults{
		Title:      Title(repoPath),
		Entrypoint: Entrypoint(repoPath),
		Licences:   Licences(repoPath),
	}
}

// Title derives a book title from the repository directory name, replacing
// separators with spaces and title-casing each word.
func Title(repoPath string) string {
	abs, err := filepath.Abs(repoPath)
	if err != nil {
		return ""
	}
	name := filepath.Base(abs)
	if name == "." || name == string(filepath.Separator) {
		return ""
	}

	words := strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})
	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// entrypointCandidates are common entrypoint files, ordered by specificity.
var entrypointCandidates = []string{
	"src/main.rs",
	"src/lib.rs",
	"__main__.py",
	"main.py",
	"src/__main__.py",
	"src/index.ts",
	"src/index.js",
	"index.ts",
	"index.js",
	"main.go",
	"cmd/main.go",
}

// Entrypoint returns the first conventional entrypoint file that exists under
// repoPath, or "" when none does.
func Entrypoint(repoPath string) string {
	for _, candidate := range entrypointCandidates {
		info, err := os.Stat(filepath.Join(repoPath, filepath.FromSlash(candidate)))
		if err == nil && info.Mode().IsRegular() {
			return candidate
		}
	}
	return ""
}

// Licences detects SPDX licence identifiers: manifest files first (Cargo.toml,
// package.json), falling back to pattern-matching LICENSE file text.
func Licences(repoPath string) []string {
	if id := licenceFromCargoManifest(repoPath); id != "" {
		return []string{id}
	}
	if id := licenceFromPackageJSON(repoPath); id != "" {
		return []string{id}
	}
	if id := licenceFromLicenseFile(repoPath); id != "" {
		return []string{id}
	}
	return nil
}

func licenceFromCargoManifest(repoPath string) string {
	data, err := os.ReadFile(filepath.Join(repoPath, "Cargo.toml"))
	if err != nil {
		return ""
	}
	var manifest struct {
		Package struct {
			License string `toml:"license"`
		} `toml:"package"`
	}
	if err := toml.Unmarshal(data, &manifest); err != nil {
		return ""
	}
	return manifest.Package.License
}

func licenceFromPackageJSON(repoPath string) string {
	data, err := os.ReadFile(filepath.Join(repoPath, "package.json"))
	if err != nil {
		return ""
	}
	var manifest struct {
		License string `json:"license"`
	}
	if err := json.Unmarshal(data, &manifest); err != nil {
		return ""
	}
	return manifest.License
}

func licenceFromLicenseFile(repoPath string) string {
	for _, name := range []string{"LICENSE", "LICENSE.md", "LICENSE.txt", "LICENCE", "LICENCE.md", "COPYING"} {
		data, err := os.ReadFile(filepath.Join(repoPath, name))
		if err != nil {
			continue
		}
		if id := MatchLicenceText(string(data)); id != "" {
			return id
		}
	}
	return ""
}

// licencePatterns map substrings of licence body text to SPDX identifiers,
// ordered roughly by popularity. Version-specific patterns come before their
// generic fallback.
var licencePatterns = []struct {
	contains []string
	id       string
}{
	{[]string{"mit license"}, "MIT"},
	{[]string{"permission is hereby granted, free of charge"}, "MIT"},
	{[]string{"apache license", "version 2.0"}, "Apache-2.0"},
	{[]string{"apache license"}, "Apache-2.0"},
	{[]string{"gnu lesser general public license", "version 3"}, "LGPL-3.0"},
	{[]string{"gnu lesser general public license", "version 2.1"}, "LGPL-2.1"},
	{[]string{"gnu lesser general public license"}, "LGPL-3.0"},
	{[]string{"gnu general public license", "version 3"}, "GPL-3.0"},
	{[]string{"gnu general public license", "version 2"}, "GPL-2.0"},
	{[]string{"gnu general public license"}, "GPL-3.0"},
	{[]string{"bsd 3-clause"}, "BSD-3-Clause"},
	{[]string{"3-clause bsd"}, "BSD-3-Clause"},
	{[]string{"bsd 2-clause"}, "BSD-2-Clause"},
	{[]string{"2-clause bsd"}, "BSD-2-Clause"},
	{[]string{"simplified bsd"}, "BSD-2-Clause"},
	{[]string{"mozilla public license"}, "MPL-2.0"},
	{[]string{"this is free and unencumbered software"}, "Unlicense"},
	{[]string{"the unlicense"}, "Unlicense"},
	{[]string{"isc license"}, "ISC"},
	{[]string{"boost software license"}, "BSL-1.0"},
	{[]string{"creative commons", "cc0"}, "CC0-1.0"},
	{[]string{"creative commons", "public domain"}, "CC0-1.0"},
	{[]string{"wtfpl"}, "WTFPL"},
	{[]string{"do what the fuck you want"}, "WTFPL"},
	{[]string{"zlib license"}, "Zlib"},
}

// MatchLicenceText maps licence file contents to an SPDX identifier, or ""
// when no pattern matches.
func MatchLicenceText(contents string) string {
	lower := strings.ToLower(contents)
	for _, p := range licencePatterns {
		matched := true
		for _, substr := range p.contains {
			if !strings.Contains(lower, substr) {
				matched = false
				break
			}
		}
		if matched {
			return p.id
		}
	}
	return ""
}
