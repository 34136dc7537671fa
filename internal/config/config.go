package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all configuration values for the application, loaded from environment variables or config files.
// This struct centralizes configuration for maintainability and testability.
type Config struct {
	Port                 string // HTTP server port
	Env                  string // Application environment (e.g., development, production)
	AppBaseURL           string // Base URL the browser is redirected back to (settings page lives here)
	GitHubClientID       string // GitHub OAuth client ID (sign-in)
	GitHubClientSecret   string // GitHub OAuth client secret (sign-in)
	GitHubRedirectURL    string // GitHub OAuth redirect URL (sign-in)
	MetaClientID         string // Meta app client ID (Instagram account linking)
	MetaAppSecret        string // Meta app secret
	MetaRedirectURI      string // Meta OAuth redirect URI
	DBUser               string // Database user
	DBPort               string // Database port
	DBHost               string // Database host
	DBName               string // Database name
	DBPassword           string // Database password
	DBMaxOpenConns       int    // Maximum open database connections
	DBMaxIdleConns       int    // Maximum idle database connections
	DBConnMaxLifetime    int    // Connection max lifetime in minutes
	DBConnMaxIdleTime    int    // Connection max idle time in minutes
	JWTSecret            string // Secret key for signing JWTs
	AccessTokenDuration  int    // Access token duration in minutes
	RefreshTokenDuration int    // Refresh token duration in minutes
}

// Load reads configuration from the .env file and environment variables, returning a Config struct.
// The Meta OAuth settings are required: linking an Instagram account with a missing client id or
// secret would build a malformed authorization URL, so Load fails fast instead.
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()
	viper.SetDefault("DB_USER", "postpilot_user")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PASSWORD", "postpilot")
	viper.SetDefault("DB_NAME", "postpilot")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_MAX_OPEN_CONNS", 25)
	viper.SetDefault("DB_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DB_CONN_MAX_LIFETIME", 30) // minutes
	viper.SetDefault("DB_CONN_MAX_IDLE_TIME", 5) // minutes
	viper.SetDefault("APP_BASE_URL", "http://localhost:3000")
	viper.SetDefault("ACCESS_TOKEN_DURATION", 10)    // 10 minutes
	viper.SetDefault("REFRESH_TOKEN_DURATION", 1440) // 1 day in minutes
	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:                 viper.GetString("PORT"),
		Env:                  viper.GetString("ENV"),
		AppBaseURL:           viper.GetString("APP_BASE_URL"),
		GitHubClientID:       viper.GetString("GITHUB_CLIENT_ID"),
		GitHubClientSecret:   viper.GetString("GITHUB_CLIENT_SECRET"),
		GitHubRedirectURL:    viper.GetString("GITHUB_REDIRECT_URL"),
		MetaClientID:         viper.GetString("META_CLIENT_ID"),
		MetaAppSecret:        viper.GetString("META_APP_SECRET"),
		MetaRedirectURI:      viper.GetString("META_REDIRECT_URI"),
		DBUser:               viper.GetString("DB_USER"),
		DBPort:               viper.GetString("DB_PORT"),
		DBHost:               viper.GetString("DB_HOST"),
		DBName:               viper.GetString("DB_NAME"),
		DBPassword:           viper.GetString("DB_PASSWORD"),
		DBMaxOpenConns:       viper.GetInt("DB_MAX_OPEN_CONNS"),
		DBMaxIdleConns:       viper.GetInt("DB_MAX_IDLE_CONNS"),
		DBConnMaxLifetime:    viper.GetInt("DB_CONN_MAX_LIFETIME"),
		DBConnMaxIdleTime:    viper.GetInt("DB_CONN_MAX_IDLE_TIME"),
		JWTSecret:            viper.GetString("JWT_SECRET"),
		AccessTokenDuration:  viper.GetInt("ACCESS_TOKEN_DURATION"),
		RefreshTokenDuration: viper.GetInt("REFRESH_TOKEN_DURATION"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate checks that the settings required for the Meta linking flow are present.
func (c *Config) validate() error {
	missing := []string{}
	if c.MetaClientID == "" {
		missing = append(missing, "META_CLIENT_ID")
	}
	if c.MetaAppSecret == "" {
		missing = append(missing, "META_APP_SECRET")
	}
	if c.MetaRedirectURI == "" {
		missing = append(missing, "META_REDIRECT_URI")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %v", missing)
	}
	return nil
}
