// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Config holds the settings resolved from flags, environment and the
// optional config file.
type Config struct {
	// Lang selects the message catalog (e.g. "en", "zh", "zh_CN.UTF-8").
	Lang string `json:"lang" yaml:"lang"`

	// CatalogFile is an optional YAML message catalog that replaces the
	// built-in catalogs.
	CatalogFile string `json:"catalog,omitempty" yaml:"catalog,omitempty"`

	// Color enables styled result and error lines on terminals.
	Color bool `json:"color" yaml:"color"`

	// LogLevel is the stderr log level: debug, info, warn, error (default warn).
	LogLevel string `json:"log_level" yaml:"log_level"`
}
