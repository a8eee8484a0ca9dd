package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("AI_API_KEY", "")
	t.Setenv("EMAIL_SERVICE", "")
	t.Setenv("SMTP_HOST", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.Equal(t, "gpt-3.5-turbo", cfg.AI.Model)
	assert.Equal(t, 1000, cfg.AI.MaxTokens)
	assert.Equal(t, 30*time.Second, cfg.AI.Timeout)
	assert.Equal(t, 10*time.Minute, cfg.Redis.CacheTTL)
	assert.False(t, cfg.AI.Enabled())
	assert.False(t, cfg.Mail.Configured())
}

func TestLoad_FlatKeys(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("AI_API_KEY", "sk-test")
	t.Setenv("EMAIL_SERVICE", "gmail")
	t.Setenv("EMAIL_USER", "notes@example.com")
	t.Setenv("SMTP_HOST", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.True(t, cfg.AI.Enabled())
	assert.Equal(t, "smtp.gmail.com", cfg.Mail.Host)
	assert.Equal(t, 465, cfg.Mail.Port)
	assert.False(t, cfg.Mail.StartTLS)
	assert.Equal(t, "notes@example.com", cfg.Mail.Sender())
}

func TestAIConfig_Enabled(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want bool
	}{
		{name: "empty", key: "", want: false},
		{name: "placeholder", key: "your-api-key", want: false},
		{name: "real key", key: "sk-123", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AIConfig{APIKey: tt.key}.Enabled())
		})
	}
}

func TestMailConfig_ResolveService(t *testing.T) {
	tests := []struct {
		name     string
		in       MailConfig
		host     string
		port     int
		startTLS bool
	}{
		{
			name:     "outlook preset",
			in:       MailConfig{Service: "Outlook"},
			host:     "smtp.office365.com",
			port:     587,
			startTLS: true,
		},
		{
			name: "explicit host wins",
			in:   MailConfig{Service: "gmail", Host: "mail.internal", Port: 2525},
			host: "mail.internal",
			port: 2525,
		},
		{
			name:     "explicit host with starttls default port",
			in:       MailConfig{Host: "mail.internal", StartTLS: true},
			host:     "mail.internal",
			port:     587,
			startTLS: true,
		},
		{
			name: "unknown service",
			in:   MailConfig{Service: "carrier-pigeon"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := tt.in
			m.resolveService()
			assert.Equal(t, tt.host, m.Host)
			assert.Equal(t, tt.port, m.Port)
			assert.Equal(t, tt.startTLS, m.StartTLS)
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{Server: ServerConfig{Port: "5000"}, Mail: MailConfig{Host: "smtp.example.com"}}
	assert.Error(t, cfg.Validate())

	cfg.Mail.User = "me@example.com"
	assert.NoError(t, cfg.Validate())

	cfg.Storage = StorageConfig{Enabled: true}
	assert.Error(t, cfg.Validate())
}
