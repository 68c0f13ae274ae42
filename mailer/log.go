package mailer

import (
	"ceam-backend/models"
	"ceam-backend/utils/logger"
	"context"
)

// LogTransport writes messages to the log instead of delivering them.
// It is used in development and whenever SMTP credentials are missing.
type LogTransport struct {
	logger logger.Logger
}

func NewLogTransport(log logger.Logger) *LogTransport {
	return &LogTransport{logger: log}
}

func (t *LogTransport) Name() string { return "log" }

func (t *LogTransport) Send(ctx context.Context, msg *models.MailMessage) error {
	if err := validateMessage(msg); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	t.logger.WithFields(logger.Fields{
		"transport": t.Name(),
		"from":      formatAddress(msg.FromName, msg.From),
		"to":        msg.To,
		"reply_to":  msg.ReplyTo,
		"subject":   msg.Subject,
		"bytes":     len(msg.HTML),
	}).Info("Mail not delivered, transport is log only")
	return nil
}
