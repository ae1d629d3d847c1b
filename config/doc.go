// Package config loads the externally supplied property set that drives
// framework boot. Properties come from an optional application.yml, an
// optional .env file, and process environment variables, merged through
// viper. A typed FrameworkConfig view is derived from the raw property
// set and validated before any module sees it.
package config
