package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const insecureDefaultSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	MigrationsPath string
	DBMaxConns     int32

	// Hosted Postgres project settings, kept for parity with the frontend env.
	SupabaseURL            string
	SupabaseServiceRoleKey string

	// Session cookie
	SessionSecret         string
	SessionExpiryDuration time.Duration
	SessionCookieName     string
	SessionIssuer         string
	SessionCookieSecure   bool
	PendingRedirectMaxAge time.Duration

	CORSAllowedOrigins []string
	LoginRateLimit     string

	// Analytics
	PosthogAPIKey   string
	PosthogEndpoint string

	// Economic indicator sync job
	IndicatorSyncEnabled  bool
	IndicatorSyncSchedule string
	IndicatorSourceURL    string
	IndicatorFetchTimeout time.Duration
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("SUPABASE_DB_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("NEXT_PUBLIC_SUPABASE_URL", "")
	viper.SetDefault("SUPABASE_SERVICE_ROLE_KEY", "")
	viper.SetDefault("SESSION_SECRET", "")
	viper.SetDefault("SUPABASE_JWT_SECRET", "")
	viper.SetDefault("SESSION_EXPIRY_DURATION", "12h")
	viper.SetDefault("SESSION_COOKIE_NAME", "contapyme_session")
	viper.SetDefault("SESSION_ISSUER", "contapyme")
	viper.SetDefault("SESSION_COOKIE_SECURE", false)
	viper.SetDefault("PENDING_REDIRECT_MAX_AGE", "5m")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("POSTHOG_ENDPOINT", "https://eu.i.posthog.com")
	viper.SetDefault("INDICATOR_SYNC_ENABLED", false)
	viper.SetDefault("INDICATOR_SYNC_SCHEDULE", "0 9 * * *")
	viper.SetDefault("INDICATOR_SOURCE_URL", "https://mindicador.cl/api")
	viper.SetDefault("INDICATOR_FETCH_TIMEOUT", "10s")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = viper.GetString("SUPABASE_DB_URL")
	}
	if cfg.DatabaseURL == "" {
		log.Println("Warning: neither PGSQL_URL nor SUPABASE_DB_URL is set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.SupabaseURL = viper.GetString("NEXT_PUBLIC_SUPABASE_URL")
	cfg.SupabaseServiceRoleKey = viper.GetString("SUPABASE_SERVICE_ROLE_KEY")
	if cfg.SupabaseURL == "" || cfg.SupabaseServiceRoleKey == "" {
		log.Println("Warning: NEXT_PUBLIC_SUPABASE_URL or SUPABASE_SERVICE_ROLE_KEY not set.")
	}

	cfg.SessionSecret = viper.GetString("SESSION_SECRET")
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = viper.GetString("SUPABASE_JWT_SECRET")
	}
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = insecureDefaultSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: SESSION_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.SessionExpiryDuration = parseDuration("SESSION_EXPIRY_DURATION", 12*time.Hour)
	cfg.PendingRedirectMaxAge = parseDuration("PENDING_REDIRECT_MAX_AGE", 5*time.Minute)
	cfg.IndicatorFetchTimeout = parseDuration("INDICATOR_FETCH_TIMEOUT", 10*time.Second)

	cfg.SessionCookieName = viper.GetString("SESSION_COOKIE_NAME")
	if cfg.SessionCookieName == "" {
		cfg.SessionCookieName = "contapyme_session"
		log.Printf("Warning: SESSION_COOKIE_NAME not set. Defaulting to %s.\n", cfg.SessionCookieName)
	}

	cfg.SessionIssuer = viper.GetString("SESSION_ISSUER")
	if cfg.SessionIssuer == "" {
		cfg.SessionIssuer = "contapyme"
	}

	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")
	cfg.DBMaxConns = viper.GetInt32("DB_MAX_CONNS")
	cfg.SessionCookieSecure = viper.GetBool("SESSION_COOKIE_SECURE") || cfg.IsProduction
	cfg.LoginRateLimit = viper.GetString("LOGIN_RATE_LIMIT")
	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")
	cfg.PosthogEndpoint = viper.GetString("POSTHOG_ENDPOINT")
	cfg.IndicatorSyncEnabled = viper.GetBool("INDICATOR_SYNC_ENABLED")
	cfg.IndicatorSyncSchedule = viper.GetString("INDICATOR_SYNC_SCHEDULE")
	cfg.IndicatorSourceURL = viper.GetString("INDICATOR_SOURCE_URL")

	if cfg.IsProduction && cfg.SessionSecret == insecureDefaultSecret {
		log.Println("Warning: running in production with the default session secret.")
	}

	return cfg, nil
}

func parseDuration(key string, fallback time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback.String())
		}
		return fallback
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
