package auth

import "time"

// Config holds authentication settings
type Config struct {
	JWT JWTConfig
}

// JWTConfig holds token signing settings
type JWTConfig struct {
	SecretKey      string
	AccessTokenTTL time.Duration
	Issuer         string
}

// DefaultConfig returns sane defaults; the secret must be overridden
func DefaultConfig() Config {
	return Config{
		JWT: JWTConfig{
			AccessTokenTTL: 8 * time.Hour,
			Issuer:         "unidoc-api",
		},
	}
}
