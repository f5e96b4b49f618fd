// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"fmt"
	"strconv"
	"strings"

	"cuelang.org/go/cue/errors"
)

// ValidationError is one schema violation with its location.
type ValidationError struct {
	// FilePath is the file being validated.
	FilePath string

	// FieldPath locates the invalid value in JSON-path notation,
	// e.g. "pdf.page_width_in" or "source.block_globs[2]".
	FieldPath string

	// Message is the validation error message.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("%s: %s: %s", e.FilePath, e.FieldPath, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.FilePath, e.Message)
}

// FormatError converts a CUE error into field-path-prefixed messages.
//
// Error format: <file-path>: <field-path>: <message>
//
// Examples:
//   - bindery.toml: pdf.page_width_in: conflicting values -1 and >0
//   - bindery.toml: source.commit_order: 3 errors in empty disjunction
//
// A single violation comes back as a *ValidationError; multiple violations
// are collapsed into one multi-line error.
func FormatError(err error, filePath string) error {
	if err == nil {
		return nil
	}

	cueErrors := errors.Errors(err)
	if len(cueErrors) == 0 {
		// Not a CUE error at all.
		return fmt.Errorf("%s: %w", filePath, err)
	}

	violations := make([]*ValidationError, 0, len(cueErrors))
	for _, e := range cueErrors {
		fieldPath := formatPath(errors.Path(e))

		// CUE often repeats the field path at the start of the message.
		msg := strings.TrimSpace(strings.TrimPrefix(
			strings.TrimPrefix(e.Error(), fieldPath), ":"))

		violations = append(violations, &ValidationError{
			FilePath:  filePath,
			FieldPath: fieldPath,
			Message:   msg,
		})
	}

	if len(violations) == 1 {
		return violations[0]
	}
	lines := make([]string, len(violations))
	for i, v := range violations {
		if v.FieldPath != "" {
			lines[i] = fmt.Sprintf("%s: %s", v.FieldPath, v.Message)
		} else {
			lines[i] = v.Message
		}
	}
	return fmt.Errorf("%s: validation failed:\n  %s", filePath, strings.Join(lines, "\n  "))
}

// formatPath renders a CUE error path (a flat string slice where numeric
// elements are list indices, e.g. ["source", "block_globs", "2"]) in
// JSON-path notation ("source.block_globs[2]").
func formatPath(path []string) string {
	var b strings.Builder
	for i, part := range path {
		if _, err := strconv.Atoi(part); err == nil && i > 0 {
			fmt.Fprintf(&b, "[%s]", part)
			continue
		}
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(part)
	}
	return b.String()
}
