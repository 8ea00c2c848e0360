package config

import (
	"fmt"
	"os"
)

type Config struct {
	// Database
	DatabaseURL string

	// Blob storage
	StorageBackend string // "disk" or "supabase"
	UploadDir      string

	// Supabase (storage backend and realtime events)
	SupabaseURL            string
	SupabasePublishableKey string
	SupabaseStorageBucket  string

	// MPesa verification
	MpesaAPIBaseURL string
	MpesaAPIKey     string

	// Staff auth; staff routes are open when unset
	StaffJWTSecret string

	// Server
	Port        string
	Environment string
}

func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL: getEnv("DATABASE_URL", ""),

		StorageBackend: getEnv("STORAGE_BACKEND", "disk"),
		UploadDir:      getEnv("UPLOAD_DIR", "uploads"),

		SupabaseURL:            getEnv("SUPABASE_URL", ""),
		SupabasePublishableKey: getEnv("SUPABASE_PUBLISHABLE_KEY", ""),
		SupabaseStorageBucket:  getEnv("SUPABASE_STORAGE_BUCKET", "print-orders"),

		MpesaAPIBaseURL: getEnv("MPESA_API_BASE_URL", "https://api.safaricom.co.ke/v1/"),
		MpesaAPIKey:     getEnv("MPESA_API_KEY", ""),

		StaffJWTSecret: getEnv("STAFF_JWT_SECRET", ""),

		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.StorageBackend != "disk" && c.StorageBackend != "supabase" {
		return fmt.Errorf("STORAGE_BACKEND must be \"disk\" or \"supabase\", got %q", c.StorageBackend)
	}
	if c.StorageBackend == "supabase" {
		if c.SupabaseURL == "" {
			return fmt.Errorf("SUPABASE_URL is required when STORAGE_BACKEND is supabase")
		}
		if c.SupabasePublishableKey == "" {
			return fmt.Errorf("SUPABASE_PUBLISHABLE_KEY is required when STORAGE_BACKEND is supabase")
		}
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
