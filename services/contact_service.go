package services

import (
	"ceam-backend/mailer"
	"ceam-backend/models"
	"ceam-backend/repository"
	"ceam-backend/utils"
	"ceam-backend/utils/logger"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	adminFromName     = "CEAM Website"
	autoReplyFromName = "CEAM"
	autoReplySubject  = "Thank you for contacting CEAM"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// headerSanitizer keeps user text from breaking out of a single header line
var headerSanitizer = strings.NewReplacer("\r", " ", "\n", " ")

type ContactService struct {
	transport  mailer.Transport
	renderer   *mailer.Renderer
	deliveries repository.DeliveryRepositoryInterface
	validate   *validator.Validate
	config     *models.Config
	location   *time.Location
	logger     logger.Logger
	now        func() time.Time
}

func NewContactService(
	transport mailer.Transport,
	renderer *mailer.Renderer,
	deliveries repository.DeliveryRepositoryInterface,
	config *models.Config,
	log logger.Logger,
) *ContactService {
	loc, err := time.LoadLocation(config.DisplayTimezone)
	if err != nil {
		log.Warnf("Unknown display timezone %q, using UTC", config.DisplayTimezone)
		loc = time.UTC
	}
	if deliveries == nil {
		deliveries = repository.DisabledDeliveryRepository{}
	}

	return &ContactService{
		transport:  transport,
		renderer:   renderer,
		deliveries: deliveries,
		validate:   validator.New(),
		config:     config,
		location:   loc,
		logger:     log,
		now:        time.Now,
	}
}

// ParseInquiry decodes a JSON request body.
// A null body is a ParseError. Arrays and scalars carry no fields, so they decode
// to an empty inquiry and fail validation instead.
func (s *ContactService) ParseInquiry(body []byte) (*models.Inquiry, error) {
	var raw interface{}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, &models.ParseError{Err: err}
	}

	switch raw.(type) {
	case nil:
		return nil, &models.ParseError{Err: errors.New("request body is null")}
	case map[string]interface{}:
	default:
		return &models.Inquiry{}, nil
	}

	var inq models.Inquiry
	if err := json.Unmarshal(body, &inq); err != nil {
		return nil, &models.ParseError{Err: err}
	}
	return &inq, nil
}

// ValidateInquiry checks required fields first, then the email format
func (s *ContactService) ValidateInquiry(inq *models.Inquiry) error {
	if err := s.validate.Struct(inq); err != nil {
		var fieldErrs validator.ValidationErrors
		field := ""
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			field = strings.ToLower(fieldErrs[0].Field())
		}
		return &models.ValidationError{Message: models.MsgMissingFields, Field: field}
	}

	if !emailPattern.MatchString(inq.Email) {
		return &models.ValidationError{Message: models.MsgInvalidEmail, Field: "email"}
	}
	return nil
}

// Submit validates the inquiry and dispatches both emails.
// Mail failures are logged and reported in the result, never returned as an error.
func (s *ContactService) Submit(ctx context.Context, inq *models.Inquiry, clientIP string) (*models.SubmissionResult, error) {
	if err := s.ValidateInquiry(inq); err != nil {
		return nil, err
	}

	result := &models.SubmissionResult{
		ID:              utils.GenerateUUID(),
		ClientIP:        utils.ClientIdentifier(clientIP),
		ReceivedAt:      s.now(),
		AdminStatus:     models.DeliveryStatusSkipped,
		AutoReplyStatus: models.DeliveryStatusSkipped,
	}

	s.dispatch(ctx, inq, result)

	s.logger.WithFields(logger.Fields{
		"submission_id": result.ID,
		"timestamp":     result.ReceivedAt.UTC().Format(time.RFC3339Nano),
		"name":          inq.Name,
		"email":         inq.Email,
		"type":          inq.Type,
		"subject":       inq.Subject,
		"ip":            result.ClientIP,
	}).Info("Contact form submission")

	s.record(ctx, inq, result)
	return result, nil
}

// dispatch sends the admin notification and then the auto-reply.
// The auto-reply is only attempted once the notification went out.
func (s *ContactService) dispatch(ctx context.Context, inq *models.Inquiry, result *models.SubmissionResult) {
	adminMsg, err := s.adminMessage(inq, result.ReceivedAt)
	if err == nil {
		err = s.transport.Send(ctx, adminMsg)
	}
	if err != nil {
		s.fail(result, &models.MailDispatchError{Kind: "admin", Recipient: s.config.AdminEmail, Err: err})
		result.AdminStatus = models.DeliveryStatusFailed
		return
	}
	result.AdminStatus = models.DeliveryStatusSent

	replyMsg, err := s.autoReplyMessage(inq)
	if err == nil {
		err = s.transport.Send(ctx, replyMsg)
	}
	if err != nil {
		s.fail(result, &models.MailDispatchError{Kind: "auto_reply", Recipient: inq.Email, Err: err})
		result.AutoReplyStatus = models.DeliveryStatusFailed
		return
	}
	result.AutoReplyStatus = models.DeliveryStatusSent
}

func (s *ContactService) fail(result *models.SubmissionResult, err *models.MailDispatchError) {
	s.logger.Errorf("Email sending error: %v", err)
	result.Errors = append(result.Errors, err.Error())
}

func (s *ContactService) adminMessage(inq *models.Inquiry, at time.Time) (*models.MailMessage, error) {
	html, err := s.renderer.RenderAdminNotification(inq, at, s.location)
	if err != nil {
		return nil, err
	}
	return &models.MailMessage{
		FromName: adminFromName,
		From:     s.config.EmailUser,
		To:       s.config.AdminEmail,
		ReplyTo:  inq.Email,
		Subject:  headerSanitizer.Replace(fmt.Sprintf("[%s] %s", strings.ToUpper(inq.Type), inq.Subject)),
		HTML:     html,
	}, nil
}

func (s *ContactService) autoReplyMessage(inq *models.Inquiry) (*models.MailMessage, error) {
	html, err := s.renderer.RenderAutoReply(inq.Name)
	if err != nil {
		return nil, err
	}
	return &models.MailMessage{
		FromName: autoReplyFromName,
		From:     s.config.EmailUser,
		To:       inq.Email,
		Subject:  autoReplySubject,
		HTML:     html,
	}, nil
}

// record writes the delivery outcome to the ledger. Only the type and client IP of the inquiry are kept.
func (s *ContactService) record(ctx context.Context, inq *models.Inquiry, result *models.SubmissionResult) {
	if !s.deliveries.Enabled() {
		return
	}

	status := models.DeliveryStatusSent
	if result.AdminStatus != models.DeliveryStatusSent || result.AutoReplyStatus != models.DeliveryStatusSent {
		status = models.DeliveryStatusFailed
	}

	record := &models.DeliveryRecord{
		ID:              result.ID,
		InquiryType:     inq.Type,
		ClientIP:        result.ClientIP,
		Status:          status,
		AdminStatus:     result.AdminStatus,
		AutoReplyStatus: result.AutoReplyStatus,
		Errors:          result.Errors,
		CreatedAt:       result.ReceivedAt,
	}
	if err := s.deliveries.Record(ctx, record); err != nil {
		s.logger.Warnf("Delivery ledger write failed for %s: %v", result.ID, err)
	}
}
