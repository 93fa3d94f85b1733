// Package config loads podcraft settings from a TOML file, fills defaults,
// applies environment overrides for secrets and validates the result.
//
// Lookup order for the file: explicit --config path, ~/.config/podcraft/config.toml,
// ./podcraft.toml. A missing file is not an error, defaults plus environment
// are enough to run when the API keys are exported.
package config
