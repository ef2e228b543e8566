// Package config loads, normalizes, and validates olistcheck configuration.
//
// It supplies defaults, expands user paths (including tilde shortcuts), reads
// an optional TOML file, and honours the OLISTCHECK_DATA_DIR environment
// fallback. Running without any configuration checks ./data relative to the
// working directory.
package config
