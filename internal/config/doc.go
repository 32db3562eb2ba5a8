// Package config loads, normalizes, and validates multitube configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// MULTITUBE_STATE_DIR. The Config type centralizes every knob the CLI needs so
// the state directory, storage backend, and player host are discovered in one
// pass.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
