package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validYAML = `
server:
  host: "0.0.0.0"
  port: 8080
store:
  path: "data/rental_data.json"
storage:
  upload_dir: "uploads"
jwt:
  secret: "test-secret-key-needs-32-characters!"
admin:
  email: "admin@toolrental.local"
  password: "admin123"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, validYAML))
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.GetServerAddress())
	assert.Equal(t, int64(10), cfg.Storage.MaxFileSize)
	assert.Contains(t, cfg.Storage.AllowedTypes, "image/jpeg")
	assert.Equal(t, 60, cfg.JWT.AccessTokenExpiry)
	assert.Equal(t, "Administrator", cfg.Admin.Name)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "0 0 2 * * *", cfg.Scheduler.SweepOrphanUploads)
	assert.Equal(t, "0 0 3 * * *", cfg.Scheduler.FlagOverdueRentals)
	assert.Equal(t, 24, cfg.Scheduler.OrphanUploadMaxAgeHr)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadMalformedYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "server: [not a mapping"))
	assert.Error(t, err)
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad port", func(c *Config) { c.Server.Port = 0 }},
		{"port out of range", func(c *Config) { c.Server.Port = 70000 }},
		{"missing store path", func(c *Config) { c.Store.Path = "" }},
		{"missing upload dir", func(c *Config) { c.Storage.UploadDir = "" }},
		{"missing jwt secret", func(c *Config) { c.JWT.Secret = "" }},
		{"short jwt secret", func(c *Config) { c.JWT.Secret = "too-short" }},
		{"missing admin email", func(c *Config) { c.Admin.Email = "" }},
		{"missing admin password", func(c *Config) { c.Admin.Password = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, validYAML))
			require.NoError(t, err)
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("STORE_PATH", "/tmp/other.json")
	t.Setenv("JWT_SECRET", "override-secret-also-32-chars-long!!")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load(writeConfig(t, validYAML))
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "/tmp/other.json", cfg.Store.Path)
	assert.Equal(t, "override-secret-also-32-chars-long!!", cfg.JWT.Secret)
	assert.Equal(t, "debug", cfg.Log.Level)
}
