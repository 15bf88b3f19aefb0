package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]

		return v, ok
	}
}

func TestApplyLegacyEnv(t *testing.T) {
	cfg := &Config{}

	err := applyLegacyEnv(cfg, lookupFrom(map[string]string{
		"JWT_SECRET_KEY":              "legacy-secret",
		"ALGORITHM":                   "HS512",
		"ACCESS_TOKEN_EXPIRE_MINUTES": "15",
		"REFRESH_TOKEN_EXPIRE_DAYS":   "3",
	}))

	require.NoError(t, err)
	assert.Equal(t, "legacy-secret", cfg.Token.Secret)
	assert.Equal(t, "HS512", cfg.Token.Algorithm)
	assert.Equal(t, 15*time.Minute, cfg.Token.AccessTTL)
	assert.Equal(t, 72*time.Hour, cfg.Token.RefreshTTL)
}

func TestApplyLegacyEnv_CanonicalWins(t *testing.T) {
	cfg := &Config{}
	cfg.Token.Secret = "from-token-secret"

	err := applyLegacyEnv(cfg, lookupFrom(map[string]string{
		"TOKEN_SECRET":   "from-token-secret",
		"JWT_SECRET_KEY": "legacy-secret",
	}))

	require.NoError(t, err)
	assert.Equal(t, "from-token-secret", cfg.Token.Secret)
}

func TestApplyLegacyEnv_BadNumber(t *testing.T) {
	err := applyLegacyEnv(&Config{}, lookupFrom(map[string]string{
		"ACCESS_TOKEN_EXPIRE_MINUTES": "thirty",
	}))

	assert.Error(t, err)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	assert.Equal(t, 8000, cfg.HTTP.Port)
	assert.Equal(t, "HS256", cfg.Token.Algorithm)
	assert.Equal(t, 30*time.Minute, cfg.Token.AccessTTL)
	assert.Equal(t, 7*24*time.Hour, cfg.Token.RefreshTTL)
	assert.Equal(t, bcrypt.DefaultCost, cfg.Auth.BcryptCost)
	assert.Equal(t, 2*time.Second, cfg.Auth.AdminCheckTimeout)
	assert.Equal(t, 6, cfg.PasswordStrength.MinLength)
	assert.Equal(t, 72, cfg.PasswordStrength.MaxLength)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		cfg.Token.Secret = "s3cr3t"
		applyDefaults(cfg)

		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr bool
	}{
		{name: "defaults with secret", mutate: func(*Config) {}},
		{name: "missing secret", mutate: func(cfg *Config) { cfg.Token.Secret = "  " }, wantErr: true},
		{name: "asymmetric algorithm", mutate: func(cfg *Config) { cfg.Token.Algorithm = "RS256" }, wantErr: true},
		{name: "none algorithm", mutate: func(cfg *Config) { cfg.Token.Algorithm = "none" }, wantErr: true},
		{name: "hs384", mutate: func(cfg *Config) { cfg.Token.Algorithm = "HS384" }},
		{name: "negative ttl", mutate: func(cfg *Config) { cfg.Token.AccessTTL = -time.Minute }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAdminSeedConfig_Enabled(t *testing.T) {
	var nilSeed *AdminSeedConfig
	assert.False(t, nilSeed.Enabled())
	assert.False(t, (&AdminSeedConfig{Username: "root", Email: "root@vendo.io"}).Enabled())
	assert.True(t, (&AdminSeedConfig{Username: "root", Email: "root@vendo.io", Password: "pw"}).Enabled())
}
