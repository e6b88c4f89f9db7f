package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insuretrack/insuretrack-api/pkg/config"
	"github.com/insuretrack/insuretrack-api/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

// The reset mail names the user, carries the full link and states the expiry.
func TestPasswordResetBody(t *testing.T) {
	link := "https://app.insuretrack.example.com/reset-password?token=abc123"
	subject, body := passwordResetBody("dana", link)

	assert.Equal(t, "Reset Your Password - INsuretrack", subject)
	assert.Contains(t, body, "Hello dana,")
	assert.Contains(t, body, link)
	assert.Contains(t, body, "expires in 1 hour")
	assert.Contains(t, body, "ignore")
}

// The reset link is built from the configured base URL and the raw token.
func TestSendPasswordReset_LinkFromBaseURL(t *testing.T) {
	s := NewSender(config.SMTPConfig{}, "https://app.insuretrack.example.com", testLogger())

	resetLink := "https://app.insuretrack.example.com/reset-password?token=tok-1"
	_, body := passwordResetBody("dana", resetLink)
	assert.Contains(t, body, "reset-password?token=tok-1")

	// Unconfigured SMTP: the send is logged, never dialed, and succeeds.
	require.NoError(t, s.SendPasswordReset("dana@example.com", "dana", "tok-1"))
}

// Without SMTP settings the sender runs in mock mode and never errors.
func TestSendBrokerNotice_MockMode(t *testing.T) {
	s := NewSender(config.SMTPConfig{}, "https://app.insuretrack.example.com", testLogger())

	err := s.SendBrokerNotice("broker@example.com", "Compliance action required", "limits below requirement")
	require.NoError(t, err)
}

// Partial SMTP settings still count as unconfigured.
func TestConfigured_PartialSettings(t *testing.T) {
	cfg := config.SMTPConfig{Host: "smtp.example.com", Port: 587}
	assert.False(t, cfg.Configured())

	s := NewSender(cfg, "https://app.insuretrack.example.com", testLogger())
	require.NoError(t, s.SendBrokerNotice("broker@example.com", "subject", "body"))
}
