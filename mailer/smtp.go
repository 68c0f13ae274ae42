package mailer

import (
	"ceam-backend/models"
	"ceam-backend/utils/logger"
	"context"
	"fmt"
	"strings"

	gomail "github.com/wneessen/go-mail"
)

// ServicePreset is the SMTP endpoint of a well known mail provider
type ServicePreset struct {
	Host string
	Port int
}

// servicePresets maps EMAIL_SERVICE names to their SMTP endpoints
var servicePresets = map[string]ServicePreset{
	"gmail":     {Host: "smtp.gmail.com", Port: 465},
	"outlook":   {Host: "smtp-mail.outlook.com", Port: 587},
	"hotmail":   {Host: "smtp-mail.outlook.com", Port: 587},
	"office365": {Host: "smtp.office365.com", Port: 587},
	"yahoo":     {Host: "smtp.mail.yahoo.com", Port: 465},
	"zoho":      {Host: "smtp.zoho.com", Port: 465},
}

// ResolveSMTPEndpoint returns the host and port to dial.
// An explicit SMTP_HOST wins over the service preset.
func ResolveSMTPEndpoint(cfg *models.Config) (string, int, error) {
	if cfg.SMTPHost != "" {
		port := cfg.SMTPPort
		if port == 0 {
			port = 587
		}
		return cfg.SMTPHost, port, nil
	}

	preset, ok := servicePresets[strings.ToLower(cfg.EmailService)]
	if !ok {
		return "", 0, fmt.Errorf("unknown email service %q, set SMTP_HOST instead", cfg.EmailService)
	}
	port := preset.Port
	if cfg.SMTPPort != 0 {
		port = cfg.SMTPPort
	}
	return preset.Host, port, nil
}

// SMTPTransport sends mail through an authenticated SMTP relay
type SMTPTransport struct {
	host     string
	port     int
	username string
	password string
	logger   logger.Logger
}

func NewSMTPTransport(cfg *models.Config, log logger.Logger) (*SMTPTransport, error) {
	host, port, err := ResolveSMTPEndpoint(cfg)
	if err != nil {
		return nil, err
	}
	log.Infof("SMTP transport configured for %s:%d", host, port)
	return &SMTPTransport{
		host:     host,
		port:     port,
		username: cfg.EmailUser,
		password: cfg.EmailPassword,
		logger:   log,
	}, nil
}

func (t *SMTPTransport) Name() string { return "smtp" }

// buildMessage converts msg into a go-mail message
func (t *SMTPTransport) buildMessage(msg *models.MailMessage) (*gomail.Msg, error) {
	m := gomail.NewMsg()
	if err := m.FromFormat(msg.FromName, msg.From); err != nil {
		return nil, fmt.Errorf("invalid sender: %w", err)
	}
	if err := m.To(msg.To); err != nil {
		return nil, fmt.Errorf("invalid recipient: %w", err)
	}
	if msg.ReplyTo != "" {
		if err := m.ReplyTo(msg.ReplyTo); err != nil {
			return nil, fmt.Errorf("invalid reply-to: %w", err)
		}
	}
	m.Subject(msg.Subject)
	m.SetBodyString(gomail.TypeTextHTML, msg.HTML)
	return m, nil
}

func (t *SMTPTransport) clientOptions() []gomail.Option {
	opts := []gomail.Option{
		gomail.WithPort(t.port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(t.username),
		gomail.WithPassword(t.password),
	}
	if t.port == 465 {
		opts = append(opts, gomail.WithSSL())
	} else {
		opts = append(opts, gomail.WithTLSPolicy(gomail.TLSMandatory))
	}
	return opts
}

func (t *SMTPTransport) Send(ctx context.Context, msg *models.MailMessage) error {
	if err := validateMessage(msg); err != nil {
		return err
	}
	m, err := t.buildMessage(msg)
	if err != nil {
		return err
	}

	client, err := gomail.NewClient(t.host, t.clientOptions()...)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("smtp send failed: %w", err)
	}

	t.logger.Debugf("SMTP message delivered to %s", msg.To)
	return nil
}
