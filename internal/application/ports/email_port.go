package ports

// EmailSender is the outbound port for transactional mail. Implementations
// may be a real SMTP sender or a mock that only logs (local development).
type EmailSender interface {
	// SendPasswordReset mails a single-use reset token to the account holder.
	SendPasswordReset(to, username, token string) error
	// SendBrokerNotice mails a compliance deficiency summary to a broker.
	SendBrokerNotice(to, subject, body string) error
}
