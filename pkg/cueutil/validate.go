// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// ValidateMap checks a decoded configuration map against an embedded CUE
// schema:
//
//  1. Compile the schema and look up the root definition
//  2. Encode the map as a CUE value and unify it with the definition
//  3. Validate the unified value
//
// Because the definition is closed, unknown fields, wrong types, and
// out-of-range enum values are all rejected with the offending field path in
// the message. Validation is non-concrete by default so that optional fields
// the caller defaults later may stay absent; pass WithConcrete(true) to
// require every field.
func ValidateMap(schema, schemaPath string, data map[string]any, opts ...Option) error {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	filename := options.filename
	if filename == "" {
		filename = "<input>"
	}

	ctx := cuecontext.New()

	schemaValue := ctx.CompileString(schema)
	if schemaValue.Err() != nil {
		return fmt.Errorf("internal error: failed to compile schema: %w", schemaValue.Err())
	}
	root := schemaValue.LookupPath(cue.ParsePath(schemaPath))
	if root.Err() != nil {
		return fmt.Errorf("internal error: schema definition %s not found: %w", schemaPath, root.Err())
	}

	userValue := ctx.Encode(data)
	if userValue.Err() != nil {
		return FormatError(userValue.Err(), filename)
	}

	unified := root.Unify(userValue)
	if err := unified.Validate(cue.Concrete(options.concrete)); err != nil {
		return FormatError(err, filename)
	}
	return nil
}

// CheckFileSize rejects input larger than maxSize before any parsing happens,
// so an oversized file cannot balloon memory during decode.
func CheckFileSize(data []byte, maxSize int64, filename string) error {
	if int64(len(data)) > maxSize {
		return fmt.Errorf("%s: file size %d bytes exceeds maximum %d bytes",
			filename, len(data), maxSize)
	}
	return nil
}
