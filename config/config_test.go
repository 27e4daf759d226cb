package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/slighter12/go-lib/database/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
http:
  port: 8080
secretKey:
  access: from-file
auth:
  bcryptCost: 10
  accessTokenTTL: 2h
qrcode:
  errorCorrectionLevel: M
`

func TestLoadWithEnv_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.yaml"), []byte(testYAML), 0o600))
	t.Setenv("SECRETKEY_ACCESS", "from-env")
	t.Setenv("AUTH_ACCESSTOKENTTL", "30m")

	cfg, err := LoadWithEnv[Config]("app", dir)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "from-env", cfg.SecretKey.Access)
	assert.Equal(t, 30*time.Minute, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("does-not-exist", t.TempDir())
	assert.ErrorContains(t, err, "does-not-exist.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, defaultAccessTokenTTL, cfg.Auth.AccessTokenTTL)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{SecretKey: SecretKeyConfig{Access: "secret"}}
		cfg.applyDefaults()

		return cfg
	}

	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"missing secret", func(c *Config) { c.SecretKey.Access = "" }, "secretKey.access"},
		{"bcrypt cost", func(c *Config) { c.Auth.BcryptCost = 40 }, "auth.bcryptCost"},
		{"password bounds", func(c *Config) { c.PasswordStrength = &PasswordStrengthConfig{MinLength: 10, MaxLength: 8} }, "passwordStrength.minLength"},
		{"qr level", func(c *Config) { c.QRCode = &QRCodeConfig{ErrorCorrectionLevel: "X"} }, "qrcode.errorCorrectionLevel"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.want)
		})
	}
}

func TestReplicasFromEnv(t *testing.T) {
	vars := map[string]string{
		"POSTGRES_REPLICAS_0_HOST":     "replica-0",
		"POSTGRES_REPLICAS_0_PORT":     "5432",
		"POSTGRES_REPLICAS_0_USERNAME": "ro",
		"POSTGRES_REPLICAS_1_HOST":     "replica-1",
		"POSTGRES_REPLICAS_2_HOST":     "replica-2",
		"POSTGRES_REPLICAS_2_PORT":     "5432",
	}

	replicas := replicasFromEnv(func(key string) string { return vars[key] })

	assert.Equal(t, []postgres.ConnectionConfig{{Host: "replica-0", Port: "5432", UserName: "ro"}}, replicas)
}
