// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	ConfigNotFoundId Id = iota + 1
	ConfigParseErrorId
	RepositoryOpenFailedId
	NoCommitHistoryId
	FontLoadFailedId
	InvalidSignatureSizeId
	EntrypointNotFoundId
	CapacityExceededId
	RenderFailedId
)

type MarkdownMsg string

type HttpLink string

type Renderer interface {
	Render(in string, stylePath string) (string, error)
}

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // must never be empty, because we need to have docs about all issue types
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n"
		extraMd += "## See also: "
		for _, link := range i.docLinks {
			extraMd += "- [" + string(link) + "]"
		}
		for _, link := range i.extLinks {
			extraMd += "- [" + string(link) + "]"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	configNotFoundIssue = &Issue{
		id: ConfigNotFoundId,
		mdMsg: `
# No bindery.toml found!

We searched for a bindery.toml but couldn't find one in the repository root.

## Things you can try:
- Run the configuration wizard:
~~~
$ bindery config
~~~

- Or generate one non-interactively with detected defaults:
~~~
$ bindery config --yes
~~~

- Or point at an explicit config file:
~~~
$ bindery render --config path/to/bindery.toml
~~~`,
	}

	configParseErrorIssue = &Issue{
		id: ConfigParseErrorId,
		mdMsg: `
# Failed to parse bindery.toml!

Your configuration file contains syntax errors or invalid values.

## Common issues:
- Invalid TOML syntax (unbalanced quotes or brackets)
- Unknown field names
- A numbering style outside arabic / roman-lower / roman-upper / none
- A booklet signature_size that is not a positive multiple of 4

## Things you can try:
- Check the error message above for the offending field
- Regenerate the file with the wizard:
~~~
$ bindery config
~~~

## Example of a minimal configuration:
~~~toml
[source]
title = "My Project"
repository = "."
commit_order = "newest-first"

[pdf]
outfile = "book.pdf"
page_width_in = 5.5
page_height_in = 8.5
~~~`,
	}

	repositoryOpenFailedIssue = &Issue{
		id: RepositoryOpenFailedId,
		mdMsg: `
# Failed to open the git repository!

The configured repository path could not be opened as a git repository.

## Things you can try:
- Check that the path in bindery.toml points at a repository root:
~~~toml
[source]
repository = "."
~~~

- Initialise a repository if there is none yet:
~~~
$ git init && git add -A && git commit -m "initial import"
~~~

- Verify the working tree is readable by your user`,
	}

	noCommitHistoryIssue = &Issue{
		id: NoCommitHistoryId,
		mdMsg: `
# No commit history available!

The repository has no commits to build the history appendix from.

## Things you can try:
- Commit your work first:
~~~
$ git add -A && git commit -m "initial import"
~~~

- Or disable the commit appendix:
~~~toml
[source]
commit_order = "disabled"
~~~`,
	}

	fontLoadFailedIssue = &Issue{
		id: FontLoadFailedId,
		mdMsg: `
# Failed to load the body font!

The capacity analysis needs a monospace TTF/OTF font to measure glyph widths.

## Things you can try:
- Check the font path in bindery.toml:
~~~toml
[pdf]
font = "SourceCodePro"
~~~

- Point at a font file directly if the family name is not bundled
- Verify the file is a valid TrueType or OpenType font`,
	}

	invalidSignatureSizeIssue = &Issue{
		id: InvalidSignatureSizeId,
		mdMsg: `
# Invalid booklet signature size!

Saddle-stitch imposition folds sheets in half twice, so every signature
needs a page count that is a positive multiple of 4.

## Things you can try:
- Use one of the common sizes:
~~~toml
[booklet]
signature_size = 16  # or 8, 12, 20, 24, 32
~~~

- Larger signatures mean fewer folds but thicker spines`,
	}

	entrypointNotFoundIssue = &Issue{
		id: EntrypointNotFoundId,
		mdMsg: `
# Entrypoint file not found!

The configured entrypoint is not among the repository's tracked files, so
files will be ordered purely lexicographically.

## Things you can try:
- Check the path spelling in bindery.toml:
~~~toml
[source]
entrypoint = "src/main.rs"
~~~

- Re-scan the repository to refresh the file lists:
~~~
$ bindery update
~~~`,
	}

	capacityExceededIssue = &Issue{
		id: CapacityExceededId,
		mdMsg: `
# Some lines will wrap in print!

Lines longer than the page's character budget wrap mid-expression, which
makes printed code hard to follow.

## Things you can try:
- Reduce the body font size in bindery.toml:
~~~toml
[pdf]
font_size_body_pt = 7.0
~~~

- Use a wider page preset
- Re-run the wizard and accept the suggested font size:
~~~
$ bindery config
~~~

- Or proceed anyway: wrapping is cosmetic, not fatal`,
	}

	renderFailedIssue = &Issue{
		id: RenderFailedId,
		mdMsg: `
# Rendering failed!

The book plan was handed to the renderer but producing the output failed.

## Common causes:
- Output path is not writable
- Disk full
- A source file disappeared between planning and rendering

## Things you can try:
- Check the output path in bindery.toml
- Re-run with verbose logging:
~~~
$ bindery --verbose render
~~~`,
	}

	issues = map[Id]*Issue{
		configNotFoundIssue.Id():       configNotFoundIssue,
		configParseErrorIssue.Id():     configParseErrorIssue,
		repositoryOpenFailedIssue.Id(): repositoryOpenFailedIssue,
		noCommitHistoryIssue.Id():      noCommitHistoryIssue,
		fontLoadFailedIssue.Id():       fontLoadFailedIssue,
		invalidSignatureSizeIssue.Id(): invalidSignatureSizeIssue,
		entrypointNotFoundIssue.Id():   entrypointNotFoundIssue,
		capacityExceededIssue.Id():     capacityExceededIssue,
		renderFailedIssue.Id():         renderFailedIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}
