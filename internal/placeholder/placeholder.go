// SPDX-License-Identifier: MPL-2.0

// Package placeholder expands {name} tokens in header, footer, title, cover,
// and colophon templates.
//
// Each call site resolves against a Context scoped to where the template is
// rendered: a colophon knows about repository statistics, a header knows about
// the current file and page number, and so on. Unrecognized tokens are left
// verbatim rather than failing the render — a typo in a footer template should
// produce an odd footer, not an aborted book. Resolution is pure: the same
// template and context always produce the same output.
package placeholder

import (
	"fmt"
	"strings"
)

// Scope identifies where a template is rendered, which determines the set of
// placeholders it may use.
type Scope int

const (
	// ScopeTitle is the title page template.
	ScopeTitle Scope = iota
	// ScopeCover is the cover template.
	ScopeCover
	// ScopeHeaderFooter covers page header and footer templates.
	ScopeHeaderFooter
	// ScopeColophon is the statistics/colophon page template.
	ScopeColophon
)

// String returns a human-readable scope name.
func (s Scope) String() string {
	switch s {
	case ScopeTitle:
		return "title"
	case ScopeCover:
		return "cover"
	case ScopeHeaderFooter:
		return "header/footer"
	case ScopeColophon:
		return "colophon"
	default:
		return "unknown"
	}
}

// scopeTokens maps each scope to the placeholder names valid within it.
var scopeTokens = map[Scope][]string{
	ScopeTitle:        {"title", "authors", "licences", "date"},
	ScopeCover:        {"title", "authors", "licences", "date"},
	ScopeHeaderFooter: {"file", "n", "total"},
	ScopeColophon: {
		"title", "authors", "licences", "remotes",
		"file_count", "line_count", "commit_count", "total_bytes",
		"language_stats", "commit_chart",
		"generated_date", "tool_version", "date_range",
	},
}

type (
	// Context holds the resolved values available to one template expansion.
	// Values set for names outside the context's scope are ignored.
	Context struct {
		scope  Scope
		values map[string]string
	}

	// Warning records a {token} that was found in a template but is not a
	// recognized placeholder for the scope. The token was left verbatim.
	Warning struct {
		Scope Scope
		Token string
	}
)

// String formats the warning for display.
func (w Warning) String() string {
	return fmt.Sprintf("unrecognized placeholder {%s} in %s template left as-is", w.Token, w.Scope)
}

// NewContext creates an empty context for the given scope.
func NewContext(scope Scope) *Context {
	return &Context{scope: scope, values: make(map[string]string)}
}

// Set assigns a value to a placeholder name. Names that are not valid in the
// context's scope are dropped, keeping out-of-scope data from leaking into a
// template by accident.
func (c *Context) Set(name, value string) *Context {
	for _, tok := range scopeTokens[c.scope] {
		if tok == name {
			c.values[name] = value
			break
		}
	}
	return c
}

// Scope returns the scope the context was created for.
func (c *Context) Scope() Scope {
	return c.scope
}

// Resolve expands every recognized {name} token in template against ctx.
// Recognized names with no value set expand to the empty string (history
// placeholders resolve empty when commit history is disabled). Unrecognized
// tokens stay verbatim and are reported as warnings. Literal braces that do
// not form a {name} token pass through untouched.
func Resolve(template string, ctx *Context) (string, []Warning) {
	var (
		out      strings.Builder
		warnings []Warning
	)
	out.Grow(len(template))

	recognized := func(name string) bool {
		for _, tok := range scopeTokens[ctx.scope] {
			if tok == name {
				return true
			}
		}
		return false
	}

	for i := 0; i < len(template); {
		open := strings.IndexByte(template[i:], '{')
		if open < 0 {
			out.WriteString(template[i:])
			break
		}
		open += i
		out.WriteString(template[i:open])

		close := strings.IndexByte(template[open:], '}')
		if close < 0 {
			out.WriteString(template[open:])
			break
		}
		close += open

		name := template[open+1 : close]
		switch {
		case validTokenName(name) && recognized(name):
			out.WriteString(ctx.values[name])
		case validTokenName(name):
			out.WriteString(template[open : close+1])
			warnings = append(warnings, Warning{Scope: ctx.scope, Token: name})
		default:
			// Not a placeholder shape at all (empty, spaces, nested braces);
			// leave the opening brace and keep scanning after it.
			out.WriteByte('{')
			i = open + 1
			continue
		}
		i = close + 1
	}

	return out.String(), warnings
}

// validTokenName reports whether s looks like a placeholder name:
// non-empty lowercase letters and underscores.
func validTokenName(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && r != '_' {
			return false
		}
	}
	return true
}
