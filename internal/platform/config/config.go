package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultPort           = "8080"
	defaultJWTSecret      = "a-very-secret-key-should-be-longer-and-random"
	defaultJWTExpiry      = 24 * time.Hour
	defaultJWTIssuer      = "workspace-finance-app"
	defaultLoginRateLimit = "5-M"
	defaultAvatarMaxBytes = 600000
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	EnableDBCheck     bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	CORSAllowedOrigins []string
	// LoginRateLimit uses the ulule/limiter format, e.g. "5-M" for five per minute.
	LoginRateLimit string
	AvatarMaxBytes int

	// External OAuth Providers
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string
	FrontendBaseURL    string

	PostHogAPIKey string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return fromViper(v), nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", defaultPort)
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_EXPIRY_DURATION", defaultJWTExpiry.String())
	v.SetDefault("JWT_ISSUER", defaultJWTIssuer)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("LOGIN_RATE_LIMIT", defaultLoginRateLimit)
	v.SetDefault("AVATAR_MAX_BYTES", defaultAvatarMaxBytes)
	v.SetDefault("GOOGLE_CLIENT_ID", "")
	v.SetDefault("GOOGLE_CLIENT_SECRET", "")
	v.SetDefault("GOOGLE_REDIRECT_URL", "")
	v.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	v.SetDefault("POSTHOG_API_KEY", "")
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{
		DatabaseURL:        v.GetString("PGSQL_URL"),
		Port:               v.GetString("PORT"),
		IsProduction:       v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:      v.GetBool("ENABLE_DB_CHECK"),
		JWTSecret:          v.GetString("JWT_SECRET"),
		JWTIssuer:          v.GetString("JWT_ISSUER"),
		CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		LoginRateLimit:     v.GetString("LOGIN_RATE_LIMIT"),
		AvatarMaxBytes:     v.GetInt("AVATAR_MAX_BYTES"),
		GoogleClientID:     v.GetString("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: v.GetString("GOOGLE_CLIENT_SECRET"),
		GoogleRedirectURL:  v.GetString("GOOGLE_REDIRECT_URL"),
		FrontendBaseURL:    v.GetString("FRONTEND_BASE_URL"),
		PostHogAPIKey:      v.GetString("POSTHOG_API_KEY"),
	}

	if cfg.DatabaseURL == "" {
		slog.Warn("PGSQL_URL environment variable not set")
	}
	if cfg.Port == "" {
		cfg.Port = defaultPort
		slog.Warn("PORT not set, using default", slog.String("port", cfg.Port))
	}
	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret
		slog.Warn("JWT_SECRET not set, using default insecure key")
	}
	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = defaultJWTIssuer
	}

	// Load JWT Expiry Duration (e.g., "60m", "24h")
	jwtExpiryStr := v.GetString("JWT_EXPIRY_DURATION")
	expiry, err := time.ParseDuration(jwtExpiryStr)
	if err != nil || expiry <= 0 {
		expiry = defaultJWTExpiry
		slog.Warn("Invalid JWT_EXPIRY_DURATION, using default",
			slog.String("value", jwtExpiryStr), slog.String("default", expiry.String()))
	}
	cfg.JWTExpiryDuration = expiry

	if cfg.LoginRateLimit == "" {
		cfg.LoginRateLimit = defaultLoginRateLimit
	}
	if cfg.AvatarMaxBytes <= 0 {
		cfg.AvatarMaxBytes = defaultAvatarMaxBytes
	}

	if cfg.GoogleClientID == "" || cfg.GoogleClientSecret == "" || cfg.GoogleRedirectURL == "" {
		slog.Warn("Google OAuth is not fully configured and will not function")
	}

	return cfg
}

// GoogleOAuthEnabled reports whether all Google sign-in settings are present.
func (c *Config) GoogleOAuthEnabled() bool {
	return c.GoogleClientID != "" && c.GoogleClientSecret != "" && c.GoogleRedirectURL != ""
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
