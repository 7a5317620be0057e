// Package config loads typed configuration from environment variables.
//
// Structs describe their variables with caarlos0/env tags. Load parses a type
// once and serves later calls from an in-process cache; Reload and
// ResetCache exist for tests and for processes that change their environment.
// LoadEnv reads .env files through godotenv before parsing.
package config
