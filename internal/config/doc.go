// Package config provides the configuration of the diagnostics tool: report
// generation options, the location of the log and settings store, and the
// optional .diagnostics YAML file that overrides the defaults.
package config
