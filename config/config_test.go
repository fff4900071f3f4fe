package config

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("SUPABASE_URL", "https://abc.supabase.co/")
	t.Setenv("FRONTEND_URL", "https://muto-consults.com/")
	t.Setenv("RATE_LIMIT_WRITE_THRESHOLD", "not-a-number")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://abc.supabase.co", cfg.SupabaseUrl)
	assert.Equal(t, "https://abc.supabase.co/auth/v1/.well-known/jwks.json", cfg.JWKSURL())
	assert.Equal(t, 10, cfg.RateLimitWriteThreshold)
	assert.Equal(t, []string{"https://muto-consults.com"}, cfg.AllowedOrigins)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "Africa/Kampala", cfg.Timezone)
}

func TestLocation(t *testing.T) {
	cfg := &Config{Timezone: "Africa/Kampala"}
	loc, err := cfg.Location()
	require.NoError(t, err)
	_, offset := time.Date(2026, 3, 10, 12, 0, 0, 0, loc).Zone()
	assert.Equal(t, 3*60*60, offset)

	cfg.Timezone = "Mars/Olympus_Mons"
	loc, err = cfg.Location()
	assert.Error(t, err)
	assert.Equal(t, time.UTC, loc)
}

func TestLoadConfigOrigins(t *testing.T) {
	t.Setenv("ALLOWED_ORIGINS", "https://a.example.com/, ,https://b.example.com")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.AllowedOrigins)
}

func TestJWKSURLEmptyWithoutSupabase(t *testing.T) {
	cfg := &Config{}
	assert.Empty(t, cfg.JWKSURL())
}
