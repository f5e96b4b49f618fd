// SPDX-License-Identifier: MPL-2.0

// Package cueutil validates decoded configuration maps against embedded CUE
// schemas.
//
// bindery's config file is TOML, but its shape is specified once as a closed
// CUE definition. The flow is:
//
//  1. Decode the TOML file into a map
//  2. Validate the map with ValidateMap against the embedded schema
//  3. Unmarshal the map into the typed config
//
// # Usage
//
//	//go:embed config_schema.cue
//	var configSchema string
//
//	if err := cueutil.ValidateMap(
//	    configSchema,
//	    "#Config",
//	    configMap,
//	    cueutil.WithFilename("bindery.toml"),
//	); err != nil {
//	    return err // message carries the offending field path
//	}
package cueutil
