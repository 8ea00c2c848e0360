package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"printshop-backend/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/printshop")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "disk", cfg.StorageBackend)
	assert.Equal(t, "uploads", cfg.UploadDir)
	assert.Equal(t, "print-orders", cfg.SupabaseStorageBucket)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Empty(t, cfg.StaffJWTSecret)
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL is required")
}

func TestValidate_UnknownStorageBackend(t *testing.T) {
	cfg := &config.Config{
		DatabaseURL:    "postgres://localhost/printshop",
		StorageBackend: "s3",
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STORAGE_BACKEND")
}

func TestValidate_SupabaseBackendNeedsCredentials(t *testing.T) {
	cfg := &config.Config{
		DatabaseURL:    "postgres://localhost/printshop",
		StorageBackend: "supabase",
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SUPABASE_URL is required")

	cfg.SupabaseURL = "https://example.supabase.co"
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SUPABASE_PUBLISHABLE_KEY is required")

	cfg.SupabasePublishableKey = "sb_publishable_key"
	assert.NoError(t, cfg.Validate())
}
