// Package config provides configuration loading, merging, and validation
// facilities for the payment service.
//
// Configuration is assembled from multiple sources; earlier sources take
// precedence over later ones for non-zero fields:
//  1. Command-line flags
//  2. Environment variables, after a .env file has been loaded into the
//     process environment
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry point is [GetStructuredConfig].
package config
