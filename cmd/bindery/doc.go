// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for bindery.
//
// The binary has three operations: "config" runs the setup wizard and writes
// bindery.toml, "update" refreshes the scanned file lists while preserving
// settings, and "render" plans the book and hands the document model to the
// renderer.
package cmd
