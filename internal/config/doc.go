// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources. For every field the first
// source that sets a non-zero value wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON or TOML config file
//  4. Built-in defaults
//
// The main entry points are [RegisterFlags], which declares the flags on a
// cobra-owned FlagSet, and [GetClientConfig], which returns the validated
// runtime view.
package config
