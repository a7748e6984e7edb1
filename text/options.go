// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package text

// SourceOption configures Typeface creation.
type SourceOption func(*sourceConfig)

// sourceConfig holds configuration for Typeface.
type sourceConfig struct {
	parserName string
	name       string
}

// defaultSourceConfig returns the default source configuration.
func defaultSourceConfig() sourceConfig {
	return sourceConfig{
		parserName: defaultParserName,
	}
}

// WithParser specifies the font parser backend.
// The default is "ximage" which uses golang.org/x/image/font/opentype.
//
// Custom parsers can be registered with RegisterParser. Outline extraction
// only works with the default backend.
func WithParser(name string) SourceOption {
	return func(c *sourceConfig) {
		c.parserName = name
	}
}

// WithName overrides the name reported by Typeface.Name.
func WithName(name string) SourceOption {
	return func(c *sourceConfig) {
		c.name = name
	}
}
