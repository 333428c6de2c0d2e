// Package config provides configuration loading, merging, and validation
// facilities for the zonesync client.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line overrides supplied by the CLI layer
//  3. JSON config file
//
// The main entry point is [GetClientConfig], which merges the sources,
// applies defaults, and validates the result.
package config
