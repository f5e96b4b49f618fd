// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      *ActionableError
		expected string
	}{
		{
			name:     "operation only",
			err:      &ActionableError{Operation: "load config"},
			expected: "failed to load config",
		},
		{
			name: "operation with resource",
			err: &ActionableError{
				Operation: "load config",
				Resource:  "./bindery.toml",
			},
			expected: "failed to load config: ./bindery.toml",
		},
		{
			name: "operation with cause",
			err: &ActionableError{
				Operation: "parse config",
				Cause:     errors.New("syntax error at line 5"),
			},
			expected: "failed to parse config: syntax error at line 5",
		},
		{
			name: "full context",
			err: &ActionableError{
				Operation: "open repository",
				Resource:  "/tmp/project",
				Cause:     errors.New("not a git repository"),
			},
			expected: "failed to open repository: /tmp/project: not a git repository",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestActionableError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("underlying error")
	err := &ActionableError{Operation: "scan repository", Cause: cause}

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}

	errNoCause := &ActionableError{Operation: "scan repository"}
	if errNoCause.Unwrap() != nil {
		t.Error("Unwrap() should return nil when there is no cause")
	}
}

func TestActionableError_Format(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      *ActionableError
		verbose  bool
		contains []string
		excludes []string
	}{
		{
			name:     "plain error",
			err:      &ActionableError{Operation: "load config"},
			contains: []string{"failed to load config"},
		},
		{
			name: "suggestions as bullets",
			err: &ActionableError{
				Operation:   "load config",
				Resource:    "./bindery.toml",
				Suggestions: []string{"Run 'bindery config'", "Check file permissions"},
			},
			contains: []string{
				"failed to load config",
				"./bindery.toml",
				"• Run 'bindery config'",
				"• Check file permissions",
			},
		},
		{
			name: "error chain in verbose mode",
			err: &ActionableError{
				Operation: "parse config",
				Cause:     errors.New("syntax error"),
			},
			verbose: true,
			contains: []string{
				"failed to parse config",
				"Error chain:",
				"1. syntax error",
			},
		},
		{
			name: "no error chain in non-verbose",
			err: &ActionableError{
				Operation: "parse config",
				Cause:     errors.New("syntax error"),
			},
			contains: []string{"failed to parse config: syntax error"},
			excludes: []string{"Error chain:"},
		},
		{
			name: "nested chain unwinds fully",
			err: &ActionableError{
				Operation: "plan book",
				Cause: &ActionableError{
					Operation: "open repository",
					Cause:     errors.New("not a git repository"),
				},
			},
			verbose: true,
			contains: []string{
				"Error chain:",
				"1. failed to open repository: not a git repository",
				"2. not a git repository",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := tt.err.Format(tt.verbose)
			for _, s := range tt.contains {
				if !strings.Contains(got, s) {
					t.Errorf("Format() missing %q\ngot:\n%s", s, got)
				}
			}
			for _, s := range tt.excludes {
				if strings.Contains(got, s) {
					t.Errorf("Format() should not contain %q\ngot:\n%s", s, got)
				}
			}
		})
	}
}

func TestActionableError_HasSuggestions(t *testing.T) {
	t.Parallel()

	with := &ActionableError{Operation: "load config", Suggestions: []string{"Try this"}}
	if !with.HasSuggestions() {
		t.Error("HasSuggestions() = false with suggestions present")
	}
	without := &ActionableError{Operation: "load config"}
	if without.HasSuggestions() {
		t.Error("HasSuggestions() = true with no suggestions")
	}
}

func TestErrorContext_Build(t *testing.T) {
	t.Parallel()

	t.Run("missing operation returns nil", func(t *testing.T) {
		t.Parallel()

		if got := NewErrorContext().WithResource("some/path").Build(); got != nil {
			t.Errorf("Build() = %v, want nil", got)
		}
	})

	t.Run("full context", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("parse error")
		err := NewErrorContext().
			WithOperation("load config").
			WithResource("bindery.toml").
			WithSuggestion("Check TOML syntax").
			WithSuggestions("Regenerate with 'bindery config'", "Check file permissions").
			Wrap(cause).
			Build()

		if err == nil {
			t.Fatal("Build() returned nil")
		}
		if err.Operation != "load config" || err.Resource != "bindery.toml" {
			t.Errorf("Build() = %+v", err)
		}
		if len(err.Suggestions) != 3 {
			t.Errorf("Suggestions count = %d, want 3", len(err.Suggestions))
		}
		if !errors.Is(err, cause) {
			t.Error("built error should wrap its cause")
		}
	})
}

func TestErrorContext_BuildError(t *testing.T) {
	t.Parallel()

	err := NewErrorContext().WithOperation("load config").BuildError()
	if err == nil {
		t.Fatal("BuildError() returned nil")
	}
	var ae *ActionableError
	if !errors.As(err, &ae) {
		t.Error("BuildError() should return an *ActionableError")
	}

	if got := NewErrorContext().BuildError(); got != nil {
		t.Errorf("BuildError() = %v, want nil when operation missing", got)
	}
}

func TestWrapWithOperation(t *testing.T) {
	t.Parallel()

	cause := errors.New("original error")
	err := WrapWithOperation(cause, "scan line lengths")
	if err == nil {
		t.Fatal("WrapWithOperation returned nil")
	}
	if err.Operation != "scan line lengths" {
		t.Errorf("Operation = %q", err.Operation)
	}
	if !errors.Is(err, cause) {
		t.Error("Cause should be the original error")
	}

	if got := WrapWithOperation(nil, "scan line lengths"); got != nil {
		t.Error("WrapWithOperation(nil) should return nil")
	}
}

// A reused context keeps its operation but takes the latest cause.
func TestErrorContext_Reuse(t *testing.T) {
	t.Parallel()

	ctx := NewErrorContext().
		WithOperation("classify frontmatter").
		WithSuggestion("Check the override lists")

	err1 := ctx.Wrap(errors.New("error 1")).Build()
	err2 := ctx.Wrap(errors.New("error 2")).Build()

	if err1.Cause.Error() == err2.Cause.Error() {
		t.Error("reused context should allow different causes")
	}
	if err1.Operation != err2.Operation {
		t.Error("reused context should preserve the operation")
	}
}
