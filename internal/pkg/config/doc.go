// Package config loads and validates the settings of the editor API and CLI.
//
// Settings come from an optional YAML file overlaid with environment
// variables (a .env file is honoured). Each settings struct validates itself.
package config
