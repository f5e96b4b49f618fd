// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling for the CLI.
//
// ActionableError pairs a failure with remediation suggestions, and the issue
// catalog holds Markdown help pages (rendered with glamour) for the well-known
// failure modes: missing or invalid bindery.toml, repositories without
// history, unloadable fonts, and bad booklet geometry.
package issue
