package authapi

import "time"

// Config holds the externally adjustable transport settings. Endpoint paths
// and the time budget are deployment concerns, not code concerns.
type Config struct {
	BaseURL      string        `env:"AUTHFORM_API_BASE_URL"`
	LoginPath    string        `env:"AUTHFORM_API_LOGIN_PATH" envDefault:"/login"`
	RegisterPath string        `env:"AUTHFORM_API_REGISTER_PATH" envDefault:"/register"`
	Timeout      time.Duration `env:"AUTHFORM_API_TIMEOUT" envDefault:"30s"`
}
