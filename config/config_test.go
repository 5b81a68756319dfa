package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	LoadConfig()

	assert.Equal(t, "8080", AppConfig.AppPort)
	assert.Equal(t, "hdmonks", AppConfig.DatabaseName)
	assert.Equal(t, 24*time.Hour, SessionTTL())
	assert.False(t, IsProduction())
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("ALLOWED_ORIGINS", "https://hdmonks.com, https://admin.hdmonks.com ,")
	t.Setenv("SESSION_TTL_HOURS", "6")

	LoadConfig()

	assert.Equal(t, "9090", AppConfig.AppPort)
	assert.True(t, IsProduction())
	assert.Equal(t, []string{"https://hdmonks.com", "https://admin.hdmonks.com"}, AllowedOrigins())
	assert.Equal(t, 6*time.Hour, SessionTTL())
}

func TestSMTPConfigured(t *testing.T) {
	AppConfig = Config{SMTPServer: "smtp.gmail.com", SMTPUsername: "u"}
	assert.False(t, SMTPConfigured())

	AppConfig.SMTPPassword = "p"
	assert.True(t, SMTPConfigured())
}
