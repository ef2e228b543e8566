package config

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateSamples(); err != nil {
		return err
	}
	if err := c.validateReport(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		return errors.New("paths.data_dir must be set")
	}
	return nil
}

func (c *Config) validateSamples() error {
	if c.Samples.Prefix == "" {
		return errors.New("samples.prefix must not be empty")
	}
	if strings.ContainsAny(c.Samples.Prefix, `/\`) {
		return fmt.Errorf("samples.prefix %q must not contain path separators", c.Samples.Prefix)
	}
	return nil
}

func (c *Config) validateReport() error {
	if _, err := language.Parse(c.Report.Locale); err != nil {
		return fmt.Errorf("report.locale %q: %w", c.Report.Locale, err)
	}
	switch c.Report.Color {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	default:
		return fmt.Errorf("report.color must be one of auto, always, never (got %q)", c.Report.Color)
	}
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json (got %q)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error (got %q)", c.Logging.Level)
	}
	return nil
}

// Tag returns the parsed report locale. Validate guarantees it parses.
func (r Report) Tag() language.Tag {
	tag, err := language.Parse(r.Locale)
	if err != nil {
		return language.English
	}
	return tag
}
