// SPDX-License-Identifier: MPL-2.0

// Package config handles project configuration using Viper with TOML as the
// file format.
//
// Configuration is loaded from bindery.toml in the repository root (or an
// explicit path passed via LoadOptions). The decoded TOML is validated
// against a CUE schema (config_schema.cue) before merging, so unknown fields
// and out-of-range enum values are reported with a field path. Semantic
// validation beyond the schema (signature sizes, position enums, numbering
// styles) runs through the IsValid() methods on the config types.
//
// Environment variables prefixed with BINDERY_ override file values, e.g.
// BINDERY_SOURCE_COMMIT_ORDER=disabled.
package config
