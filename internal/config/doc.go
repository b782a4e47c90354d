// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from these sources, highest precedence first:
//  1. Environment variables (a .env file in the working directory is loaded
//     into the environment first and never overrides variables already set)
//  2. Command-line flags (server only)
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for fuelctl.
package config
