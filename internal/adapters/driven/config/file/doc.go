// Package file provides the TOML-backed configuration store. API keys and
// backend selection live in ~/.rolo/config.toml; nested tables are flattened
// to dot-notation keys ("gemini.api_key") for lookup.
package file
