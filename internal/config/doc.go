// Package config handles loading and parsing jobeff configuration files.
//
// # Overview
//
// The config file holds per-user defaults for the report: the column format
// string, the color mode, the pager threshold, and an optional sacct binary
// override. Command-line flags win over config values, which win over the
// built-in defaults.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/jobeff/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # TOML Format
//
// Example config.toml:
//
//	format = "JobID%>,State,Elapsed%>,CPUEff,MemEff"
//	color = "auto"
//	pager_threshold = 20
//	sacct_path = "/opt/slurm/bin/sacct"
//
// All fields are optional. Tilde expansion is performed on the config path.
//
// # Error Handling
//
// Load returns errors for path expansion failures, file read errors (except
// os.ErrNotExist, which triggers defaults), TOML parsing errors, and invalid
// color modes. A missing config file is NOT an error, so jobeff works
// out-of-the-box without configuration.
package config
