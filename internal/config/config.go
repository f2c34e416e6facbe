package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Analytics AnalyticsConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	Timezone string
}

type JWTConfig struct {
	Secret             string
	ExpiryHours        time.Duration
	RefreshExpiryHours time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

// AnalyticsConfig tunes the sales analytics engine. The defaults match
// the territory this deployment serves: four southeastern states and
// the metro groupings the reps work.
type AnalyticsConfig struct {
	TopN               int
	RecentWindowMonths int
	DropoffSplitDate   string // YYYY-MM-DD
	States             []string
	Metros             map[string][]string
}

// DropoffSplit parses the configured dropoff split date.
func (a *AnalyticsConfig) DropoffSplit() (time.Time, error) {
	return time.Parse("2006-01-02", a.DropoffSplitDate)
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "mfc-sales-api")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_NAME", "mfc_sales")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("DB_TIMEZONE", "America/Chicago")
	viper.SetDefault("JWT_SECRET", "change-this-secret-in-production")
	viper.SetDefault("JWT_EXPIRY_HOURS", 24)
	viper.SetDefault("JWT_REFRESH_EXPIRY_HOURS", 168)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)
	viper.SetDefault("ANALYTICS_TOP_N", 10)
	viper.SetDefault("ANALYTICS_RECENT_WINDOW_MONTHS", 6)
	viper.SetDefault("ANALYTICS_DROPOFF_SPLIT_DATE", "2025-07-01")
	viper.SetDefault("ANALYTICS_STATES", []string{"AL", "GA", "MS", "TN"})

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			SSLMode:  viper.GetString("DB_SSL_MODE"),
			Timezone: viper.GetString("DB_TIMEZONE"),
		},
		JWT: JWTConfig{
			Secret:             viper.GetString("JWT_SECRET"),
			ExpiryHours:        time.Duration(viper.GetInt("JWT_EXPIRY_HOURS")) * time.Hour,
			RefreshExpiryHours: time.Duration(viper.GetInt("JWT_REFRESH_EXPIRY_HOURS")) * time.Hour,
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
		Analytics: AnalyticsConfig{
			TopN:               viper.GetInt("ANALYTICS_TOP_N"),
			RecentWindowMonths: viper.GetInt("ANALYTICS_RECENT_WINDOW_MONTHS"),
			DropoffSplitDate:   viper.GetString("ANALYTICS_DROPOFF_SPLIT_DATE"),
			States:             viper.GetStringSlice("ANALYTICS_STATES"),
			Metros:             defaultMetros(),
		},
	}
}

// defaultMetros lists the metro groupings as city keywords matched
// against the ship-to city. Keyword lists are kept disjoint across
// metros. The Chattanooga misspelling appears in the legacy customer
// exports and is matched on purpose.
func defaultMetros() map[string][]string {
	return map[string][]string{
		"Birmingham":  {"Birmingham", "Trussville", "Hoover", "Mountain Brook", "Tuscaloosa"},
		"Huntsville":  {"Huntsville", "Madison"},
		"Atlanta":     {"Atlanta", "Gwinnett", "Buford", "Conyers", "Covington", "Lawrenceville"},
		"Nashville":   {"Nashville", "Brentwood", "Franklin"},
		"Memphis":     {"Memphis", "Germantown", "Collierville"},
		"Chattanooga": {"Chattanooga", "Chatanooga"},
	}
}

func (c *DatabaseConfig) DSN() string {
	return "host=" + c.Host +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Name +
		" port=" + c.Port +
		" sslmode=" + c.SSLMode +
		" TimeZone=" + c.Timezone
}
