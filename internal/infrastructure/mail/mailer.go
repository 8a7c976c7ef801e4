// Package mail holds the password-reset delivery collaborator. Real delivery
// (SMTP, transactional-mail API) sits outside this service; the log-backed
// implementation here is what development and test environments run with.
package mail

import (
	"context"

	"github.com/rs/zerolog"
)

// LogMailer writes reset tokens to the structured log instead of sending
// mail. It satisfies ports.ResetMailer.
type LogMailer struct {
	log zerolog.Logger
}

func NewLogMailer(log zerolog.Logger) *LogMailer {
	return &LogMailer{log: log}
}

func (m *LogMailer) SendPasswordReset(_ context.Context, email, token string) error {
	m.log.Info().
		Str("email", email).
		Str("reset_token", token).
		Msg("password reset requested")
	return nil
}
