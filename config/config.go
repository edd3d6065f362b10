package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string
	JWTTTL      time.Duration
	AdminAPIKey string
	CORSOrigins []string
	// MaxUploadBytes bounds multipart bodies kept in memory.
	MaxUploadBytes int64

	Storage  Storage
	Razorpay Razorpay
}

type Storage struct {
	Bucket          string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	// Endpoint points at an S3-compatible service; objects are addressed path-style.
	Endpoint      string
	PublicBaseURL string
}

type Razorpay struct {
	KeyID     string
	KeySecret string
	APIURL    string
	Currency  string
}

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function.
func FromEnv(getenv func(string) string) (*Config, error) {
	get := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}

	cfg := &Config{
		Port:        get("PORT", "8080"),
		DatabaseURL: databaseURL(get),
		JWTSecret:   get("JWT_SECRET", ""),
		AdminAPIKey: get("ADMIN_API_KEY", ""),
		Storage: Storage{
			Bucket:          get("S3_BUCKET_NAME", ""),
			Region:          get("AWS_REGION", "ap-south-1"),
			AccessKeyID:     get("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: get("AWS_SECRET_ACCESS_KEY", ""),
			Endpoint:        strings.TrimRight(get("S3_ENDPOINT", ""), "/"),
			PublicBaseURL:   strings.TrimRight(get("S3_PUBLIC_BASE_URL", ""), "/"),
		},
		Razorpay: Razorpay{
			KeyID:     get("RAZORPAY_KEY_ID", ""),
			KeySecret: get("RAZORPAY_KEY_SECRET", ""),
			APIURL:    strings.TrimRight(get("RAZORPAY_API_URL", "https://api.razorpay.com"), "/"),
			Currency:  get("PAYMENT_CURRENCY", "INR"),
		},
	}

	for _, origin := range strings.Split(get("CORS_ORIGINS", "*"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, origin)
		}
	}

	ttl, err := time.ParseDuration(get("JWT_TTL", "168h"))
	if err != nil {
		return nil, fmt.Errorf("config: JWT_TTL: %w", err)
	}
	cfg.JWTTTL = ttl

	mb, err := strconv.ParseInt(get("MAX_UPLOAD_MB", "32"), 10, 64)
	if err != nil || mb <= 0 {
		return nil, fmt.Errorf("config: MAX_UPLOAD_MB must be a positive integer")
	}
	cfg.MaxUploadBytes = mb << 20

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	var errs []error
	if c.DatabaseURL == "" {
		errs = append(errs, errors.New("DATABASE_URL or DB_HOST is required"))
	}
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	if c.Storage.Bucket == "" {
		errs = append(errs, errors.New("S3_BUCKET_NAME is required"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

func databaseURL(get func(string, string) string) string {
	if url := get("DATABASE_URL", ""); url != "" {
		return url
	}
	host := get("DB_HOST", "")
	if host == "" {
		return ""
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		host,
		get("DB_USER", "postgres"),
		get("DB_PASSWORD", ""),
		get("DB_NAME", "aspire"),
		get("DB_PORT", "5432"),
		get("DB_SSLMODE", "disable"),
	)
}
