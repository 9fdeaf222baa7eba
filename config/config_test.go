package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	cfg := &Config{}
	cfg.HTTP.Port = 8080
	cfg.Database.Provider = DatabaseMemory
	cfg.Session.Secret = "a-very-long-session-secret-of-32-chars!"
	cfg.Auth = AuthConfig{ListKey: "User", IdentityField: "email", SecretField: "password"}
	applyDefaults(cfg)

	return cfg
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, DatabasePostgres, cfg.Database.Provider)
	assert.Equal(t, SessionStateless, cfg.Session.Strategy)
	assert.Equal(t, "keystonejs-session", cfg.Session.CookieName)
	assert.Equal(t, 30*24*time.Hour, cfg.Session.MaxAge)
	assert.Equal(t, "id", cfg.Auth.SessionData)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{
			name:    "short session secret",
			mutate:  func(cfg *Config) { cfg.Session.Secret = "too-short" },
			wantErr: "Secret",
		},
		{
			name:    "unknown provider",
			mutate:  func(cfg *Config) { cfg.Database.Provider = "mysql" },
			wantErr: "Provider",
		},
		{
			name:    "missing list key",
			mutate:  func(cfg *Config) { cfg.Auth.ListKey = "" },
			wantErr: "ListKey",
		},
		{
			name:    "postgres without connection",
			mutate:  func(cfg *Config) { cfg.Database.Provider = DatabasePostgres },
			wantErr: "postgres section is required",
		},
		{
			name:    "redis without connection",
			mutate:  func(cfg *Config) { cfg.Session.Strategy = SessionRedis },
			wantErr: "redis section is required",
		},
		{
			name:    "empty cors origin",
			mutate:  func(cfg *Config) { cfg.HTTP.CORS.AllowOrigins = []string{"https://admin.example.com", ""} },
			wantErr: "AllowOrigins",
		},
		{
			name: "redis with connection",
			mutate: func(cfg *Config) {
				cfg.Session.Strategy = SessionRedis
				cfg.Redis = &RedisConfig{Addr: "localhost:6379"}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)

				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadWithEnv_CORSOriginsFromEnv(t *testing.T) {
	type httpOnly struct {
		HTTP struct {
			CORS CORSConfig `json:"cors" yaml:"cors"`
		} `json:"http" yaml:"http"`
	}

	dir := t.TempDir()
	yaml := "http:\n  cors:\n    allowOrigins:\n      - http://localhost:3000\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cors.yaml"), []byte(yaml), 0o600))
	t.Chdir(dir)

	cfg, err := LoadWithEnv[httpOnly]("cors")
	require.NoError(t, err)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.HTTP.CORS.AllowOrigins)

	t.Setenv("HTTP_CORS_ALLOWORIGINS", "https://a.example.com,https://b.example.com")

	cfg, err = LoadWithEnv[httpOnly]("cors")
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.HTTP.CORS.AllowOrigins)
}
