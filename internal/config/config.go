package config

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/spf13/viper"
)

// DefaultJWTSecret is the development signing key. It is rejected outside
// development.
const DefaultJWTSecret = "default_jwt_secret"

// Config holds all configuration for our application
type Config struct {
	Port                   string
	Origin                 string
	Environment            string
	JWTSecret              string
	JWTExpirationMinutes   int
	Database               DatabaseConfig
	AppURL                 string
	TimeZone               string
	Location               *time.Location
	RecentPrescriptionDays int
	MaxUploadBytes         int64
	LogLevel               string
}

// DatabaseConfig holds database connection details
type DatabaseConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	Name     string
	DSN      string
}

// IsDev reports whether the server runs in development mode.
func (c *Config) IsDev() bool {
	return c.Environment == "development"
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("PORT", "3001")
	v.SetDefault("ORIGIN", "http://localhost:3000")
	v.SetDefault("NODE_ENV", "development")
	v.SetDefault("JWT_SECRET", DefaultJWTSecret)
	v.SetDefault("JWT_EXPIRATION_MINUTES", 60*24)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "3306")
	v.SetDefault("DB_USERNAME", "root")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "childcare")
	v.SetDefault("APP_URL", "http://localhost:3001")
	v.SetDefault("TIME_ZONE", "Asia/Seoul")
	v.SetDefault("RECENT_PRESCRIPTION_DAYS", 3)
	v.SetDefault("MAX_UPLOAD_BYTES", 10<<20)
	v.SetDefault("LOG_LEVEL", "info")
	v.AutomaticEnv()
	return v
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	v := newViper()

	// Load database configuration
	dbConfig := DatabaseConfig{
		Host:     v.GetString("DB_HOST"),
		Port:     v.GetString("DB_PORT"),
		Username: v.GetString("DB_USERNAME"),
		Password: v.GetString("DB_PASSWORD"),
		Name:     v.GetString("DB_NAME"),
	}

	// Build DSN (Data Source Name) for MySQL connection. clientFoundRows makes
	// UPDATE report matched rather than changed rows.
	dbConfig.DSN = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC&clientFoundRows=true",
		dbConfig.Username, dbConfig.Password, dbConfig.Host, dbConfig.Port, dbConfig.Name)

	jwtExpMinutes := v.GetInt("JWT_EXPIRATION_MINUTES")
	if jwtExpMinutes <= 0 {
		return nil, fmt.Errorf("invalid JWT_EXPIRATION_MINUTES: %q", v.GetString("JWT_EXPIRATION_MINUTES"))
	}

	recentDays := v.GetInt("RECENT_PRESCRIPTION_DAYS")
	if recentDays <= 0 {
		return nil, fmt.Errorf("invalid RECENT_PRESCRIPTION_DAYS: %q", v.GetString("RECENT_PRESCRIPTION_DAYS"))
	}

	maxUpload := v.GetInt64("MAX_UPLOAD_BYTES")
	if maxUpload <= 0 {
		return nil, fmt.Errorf("invalid MAX_UPLOAD_BYTES: %q", v.GetString("MAX_UPLOAD_BYTES"))
	}

	tz := v.GetString("TIME_ZONE")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid TIME_ZONE: %w", err)
	}

	env := v.GetString("NODE_ENV")
	if e := v.GetString("ENV"); e != "" {
		env = e
	}

	secret := v.GetString("JWT_SECRET")
	if env != "development" && (secret == "" || secret == DefaultJWTSecret) {
		return nil, fmt.Errorf("JWT_SECRET must be set when NODE_ENV is %q", env)
	}

	return &Config{
		Port:                   v.GetString("PORT"),
		Origin:                 v.GetString("ORIGIN"),
		Environment:            env,
		JWTSecret:              secret,
		JWTExpirationMinutes:   jwtExpMinutes,
		Database:               dbConfig,
		AppURL:                 strings.TrimRight(v.GetString("APP_URL"), "/"),
		TimeZone:               tz,
		Location:               loc,
		RecentPrescriptionDays: recentDays,
		MaxUploadBytes:         maxUpload,
		LogLevel:               v.GetString("LOG_LEVEL"),
	}, nil
}
