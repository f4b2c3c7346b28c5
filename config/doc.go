// SPDX-License-Identifier: MIT

// Package config loads the flowmap run configuration from YAML.
//
// Example file:
//
//	gap: 1800
//	workers: 4
//	skip_self_loops: false
//	columns:
//	  entity: device
//	  location: room
//	  timestamp: seen_at
//	format: csv
//	log_level: info
//
// Keys absent from the file keep their Default values. Command-line flags
// override the file after Load.
package config
