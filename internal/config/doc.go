// Package config loads, normalizes, and validates clipmeta configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// CLIPMETA_SOURCE_DIR, optionally seeded from a .env file in the working
// directory. Validation combines struct-tag rules with a few cross-field
// checks so every command receives a usable Config.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
