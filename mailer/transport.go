package mailer

import (
	"ceam-backend/models"
	"ceam-backend/utils/logger"
	"context"
	"fmt"
	"net/mail"
)

// Transport delivers a single rendered message
type Transport interface {
	Send(ctx context.Context, msg *models.MailMessage) error
	Name() string
}

// NewTransport builds the transport selected by cfg.MailTransport
func NewTransport(ctx context.Context, cfg *models.Config, log logger.Logger) (Transport, error) {
	switch cfg.MailTransport {
	case "smtp":
		return NewSMTPTransport(cfg, log)
	case "ses":
		return NewSESTransport(ctx, cfg, log)
	case "log":
		return NewLogTransport(log), nil
	default:
		return nil, fmt.Errorf("unknown mail transport %q", cfg.MailTransport)
	}
}

// formatAddress renders a display name and address as a header value
func formatAddress(name, address string) string {
	if name == "" {
		return address
	}
	return (&mail.Address{Name: name, Address: address}).String()
}

func validateMessage(msg *models.MailMessage) error {
	if msg == nil {
		return fmt.Errorf("mail message is nil")
	}
	if msg.From == "" {
		return fmt.Errorf("mail message has no sender")
	}
	if msg.To == "" {
		return fmt.Errorf("mail message has no recipient")
	}
	return nil
}
