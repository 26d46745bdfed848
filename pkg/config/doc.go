// Package config provides a type-safe, generic way to load application
// configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11` to
// deliver a small API that:
//
//   - Loads the default `.env` file from the current working directory once
//     per process, if it exists.
//   - Parses the environment into any Go struct using field tags.
//   - Exposes a helper that panics on failure (`MustLoad`) for configuration
//     the application cannot start without.
//
// # Usage
//
// Create a struct describing your configuration and annotate its fields with
// `env` tags:
//
//	type APIConfig struct {
//	    BaseURL string        `env:"AUTHFORM_API_BASE_URL,required"`
//	    Timeout time.Duration `env:"AUTHFORM_API_TIMEOUT" envDefault:"30s"`
//	}
//
// then populate it:
//
//	var cfg APIConfig
//	config.MustLoad(&cfg)
//
// Errors wrap the package sentinels, so callers can test with errors.Is:
//
//	if err := config.Load(&cfg); errors.Is(err, config.ErrParsingConfig) {
//	    // a variable was missing or malformed
//	}
package config
