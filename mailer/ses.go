package mailer

import (
	"ceam-backend/models"
	"ceam-backend/utils/logger"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

// SESAPI is the subset of the SES v2 client the transport calls
type SESAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// SESTransport sends mail through Amazon SES
type SESTransport struct {
	client SESAPI
	logger logger.Logger
}

// NewSESTransport loads AWS configuration the same way the DynamoDB client does
func NewSESTransport(ctx context.Context, cfg *models.Config, log logger.Logger) (*SESTransport, error) {
	awsCfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(cfg.AWSRegion))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	if cfg.AWSAccessKeyID != "" && cfg.AWSSecretAccessKey != "" {
		awsCfg.Credentials = aws.NewCredentialsCache(credentials.NewStaticCredentialsProvider(
			cfg.AWSAccessKeyID,
			cfg.AWSSecretAccessKey,
			"",
		))
	}

	client := sesv2.NewFromConfig(awsCfg, func(o *sesv2.Options) {
		if cfg.SESEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.SESEndpoint)
		}
	})

	log.Infof("SES transport configured for region %s", cfg.AWSRegion)
	return NewSESTransportWithClient(client, log), nil
}

// NewSESTransportWithClient wraps an existing SES client
func NewSESTransportWithClient(client SESAPI, log logger.Logger) *SESTransport {
	return &SESTransport{client: client, logger: log}
}

func (t *SESTransport) Name() string { return "ses" }

func (t *SESTransport) buildInput(msg *models.MailMessage) *sesv2.SendEmailInput {
	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(formatAddress(msg.FromName, msg.From)),
		Destination: &types.Destination{
			ToAddresses: []string{msg.To},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(msg.Subject),
					Charset: aws.String("UTF-8"),
				},
				Body: &types.Body{
					Html: &types.Content{
						Data:    aws.String(msg.HTML),
						Charset: aws.String("UTF-8"),
					},
				},
			},
		},
	}
	if msg.ReplyTo != "" {
		input.ReplyToAddresses = []string{msg.ReplyTo}
	}
	return input
}

func (t *SESTransport) Send(ctx context.Context, msg *models.MailMessage) error {
	if err := validateMessage(msg); err != nil {
		return err
	}
	out, err := t.client.SendEmail(ctx, t.buildInput(msg))
	if err != nil {
		return fmt.Errorf("ses send failed: %w", err)
	}
	if out != nil && out.MessageId != nil {
		t.logger.Debugf("SES accepted message %s for %s", *out.MessageId, msg.To)
	}
	return nil
}
