package mailer

import (
	"bytes"
	"ceam-backend/models"
	"ceam-backend/utils/logger"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// MockSESAPI is a mock implementation of SESAPI
type MockSESAPI struct {
	mock.Mock
}

func (m *MockSESAPI) SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sesv2.SendEmailOutput), args.Error(1)
}

func TestSanitizeInput(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain text unchanged", "Hello there", "Hello there"},
		{"script tag", "<script>alert(1)</script>", "&lt;script&gt;alert(1)&lt;/script&gt;"},
		{"ampersand escaped once", "Tom & Jerry", "Tom &amp; Jerry"},
		{"quotes", `say "hi" it's`, "say &quot;hi&quot; it&#39;s"},
		{"existing entity is escaped literally", "&lt;", "&amp;lt;"},
		{"empty", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, SanitizeInput(tc.input))
		})
	}
}

// RendererTestSuite covers the two email bodies
type RendererTestSuite struct {
	suite.Suite
	renderer *Renderer
	loc      *time.Location
}

func (suite *RendererTestSuite) SetupTest() {
	var err error
	suite.renderer, err = NewRenderer(DefaultOrganization)
	require.NoError(suite.T(), err)
	suite.loc, err = time.LoadLocation("Asia/Kuala_Lumpur")
	require.NoError(suite.T(), err)
}

func TestRendererTestSuite(t *testing.T) {
	suite.Run(t, new(RendererTestSuite))
}

func (suite *RendererTestSuite) inquiry() *models.Inquiry {
	return &models.Inquiry{
		Name:    "Ana",
		Email:   "ana@example.com",
		Subject: "Membership",
		Message: "Line one\nLine two",
		Type:    "membership",
	}
}

func (suite *RendererTestSuite) TestAdminNotificationFields() {
	at := time.Date(2026, 3, 31, 17, 30, 0, 0, time.UTC)

	html, err := suite.renderer.RenderAdminNotification(suite.inquiry(), at, suite.loc)
	require.NoError(suite.T(), err)

	assert.Contains(suite.T(), html, `<span class="badge">MEMBERSHIP</span>`)
	assert.Contains(suite.T(), html, `<a href="mailto:ana@example.com">ana@example.com</a>`)
	assert.Contains(suite.T(), html, "Line one\nLine two")
	assert.Contains(suite.T(), html, "white-space: pre-wrap;")
	assert.Contains(suite.T(), html, "Time: 4/1/2026, 1:30:00 AM (Malaysia Time)")
	assert.NotContains(suite.T(), html, "Phone:")
}

func (suite *RendererTestSuite) TestAdminNotificationPhoneRow() {
	inq := suite.inquiry()
	inq.Phone = "+60 11-222 3333"

	html, err := suite.renderer.RenderAdminNotification(inq, time.Now(), suite.loc)
	require.NoError(suite.T(), err)
	assert.Contains(suite.T(), html, "Phone:")
	assert.Contains(suite.T(), html, "+60 11-222 3333")
}

func (suite *RendererTestSuite) TestAdminNotificationEscapesEveryField() {
	inq := &models.Inquiry{
		Name:    "<b>Ana</b>",
		Email:   "a\"@x.co",
		Phone:   "<i>1</i>",
		Subject: "Hi & bye",
		Message: "<script>alert('x')</script>",
		Type:    "<general>",
	}

	html, err := suite.renderer.RenderAdminNotification(inq, time.Now(), suite.loc)
	require.NoError(suite.T(), err)

	assert.Contains(suite.T(), html, "&lt;b&gt;Ana&lt;/b&gt;")
	assert.Contains(suite.T(), html, "a&quot;@x.co")
	assert.Contains(suite.T(), html, "&lt;i&gt;1&lt;/i&gt;")
	assert.Contains(suite.T(), html, "Hi &amp; bye")
	assert.Contains(suite.T(), html, "&lt;script&gt;alert(&#39;x&#39;)&lt;/script&gt;")
	assert.Contains(suite.T(), html, "&lt;GENERAL&gt;")
	assert.NotContains(suite.T(), html, "<script>")
	assert.NotContains(suite.T(), html, "&amp;lt;")
}

func (suite *RendererTestSuite) TestAutoReply() {
	html, err := suite.renderer.RenderAutoReply("<Ana>")
	require.NoError(suite.T(), err)

	assert.Contains(suite.T(), html, "Dear &lt;Ana&gt;,")
	assert.Contains(suite.T(), html, "K'Cho Ethnic Association Malaysia (CEAM)")
	assert.Contains(suite.T(), html, "+60 12-345-6789")
	assert.Contains(suite.T(), html, `<a href="https://ceamalaysia.org">ceamalaysia.org</a>`)
	assert.Contains(suite.T(), html, "contact@ceamalaysia.org")
	assert.Contains(suite.T(), html, "This is an automated response.")
}

func TestTimezoneLabel(t *testing.T) {
	kl, err := time.LoadLocation("Asia/Kuala_Lumpur")
	require.NoError(t, err)
	assert.Equal(t, "Malaysia Time", TimezoneLabel(kl))
	assert.Equal(t, "UTC", TimezoneLabel(time.UTC))
}

func TestResolveSMTPEndpoint(t *testing.T) {
	testCases := []struct {
		name     string
		cfg      models.Config
		wantHost string
		wantPort int
		wantErr  bool
	}{
		{"gmail preset", models.Config{EmailService: "gmail"}, "smtp.gmail.com", 465, false},
		{"outlook preset is case insensitive", models.Config{EmailService: "Outlook"}, "smtp-mail.outlook.com", 587, false},
		{"preset port override", models.Config{EmailService: "gmail", SMTPPort: 587}, "smtp.gmail.com", 587, false},
		{"explicit host", models.Config{EmailService: "gmail", SMTPHost: "mail.local", SMTPPort: 2525}, "mail.local", 2525, false},
		{"explicit host default port", models.Config{SMTPHost: "mail.local"}, "mail.local", 587, false},
		{"unknown service", models.Config{EmailService: "pigeon"}, "", 0, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			host, port, err := ResolveSMTPEndpoint(&tc.cfg)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantHost, host)
			assert.Equal(t, tc.wantPort, port)
		})
	}
}

func testMessage() *models.MailMessage {
	return &models.MailMessage{
		FromName: "CEAM Website",
		From:     "website@ceamalaysia.org",
		To:       "contact@ceamalaysia.org",
		ReplyTo:  "ana@example.com",
		Subject:  "[GENERAL] Hello",
		HTML:     "<p>hello</p>",
	}
}

func TestSMTPBuildMessage(t *testing.T) {
	tr, err := NewSMTPTransport(&models.Config{EmailService: "gmail", EmailUser: "u", EmailPassword: "p"},
		logger.NewLoggerWithOutput("error", "json", io.Discard))
	require.NoError(t, err)

	m, err := tr.buildMessage(testMessage())
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = m.WriteTo(&buf)
	require.NoError(t, err)
	raw := buf.String()
	assert.Contains(t, raw, "Subject: [GENERAL] Hello")
	assert.Contains(t, raw, "<website@ceamalaysia.org>")
	assert.Contains(t, raw, "<contact@ceamalaysia.org>")
	assert.Contains(t, raw, "Reply-To: <ana@example.com>")
	assert.Contains(t, raw, "text/html")

	bad := testMessage()
	bad.To = "not an address"
	_, err = tr.buildMessage(bad)
	assert.Error(t, err)
}

func TestSMTPSendRejectsIncompleteMessage(t *testing.T) {
	tr, err := NewSMTPTransport(&models.Config{EmailService: "gmail"}, logger.NewLoggerWithOutput("error", "json", io.Discard))
	require.NoError(t, err)

	msg := testMessage()
	msg.To = ""
	assert.Error(t, tr.Send(context.Background(), msg))
	assert.Equal(t, "smtp", tr.Name())
}

func TestSESTransportSend(t *testing.T) {
	client := &MockSESAPI{}
	client.On("SendEmail", mock.Anything, mock.MatchedBy(func(in *sesv2.SendEmailInput) bool {
		return *in.FromEmailAddress == `"CEAM Website" <website@ceamalaysia.org>` &&
			len(in.Destination.ToAddresses) == 1 && in.Destination.ToAddresses[0] == "contact@ceamalaysia.org" &&
			len(in.ReplyToAddresses) == 1 && in.ReplyToAddresses[0] == "ana@example.com" &&
			*in.Content.Simple.Subject.Data == "[GENERAL] Hello" &&
			*in.Content.Simple.Body.Html.Data == "<p>hello</p>"
	})).Return(&sesv2.SendEmailOutput{}, nil).Once()

	tr := NewSESTransportWithClient(client, logger.NewLoggerWithOutput("error", "json", io.Discard))
	require.NoError(t, tr.Send(context.Background(), testMessage()))
	client.AssertExpectations(t)
}

func TestSESTransportNoReplyTo(t *testing.T) {
	client := &MockSESAPI{}
	client.On("SendEmail", mock.Anything, mock.MatchedBy(func(in *sesv2.SendEmailInput) bool {
		return len(in.ReplyToAddresses) == 0
	})).Return(&sesv2.SendEmailOutput{}, nil).Once()

	msg := testMessage()
	msg.ReplyTo = ""
	tr := NewSESTransportWithClient(client, logger.NewLoggerWithOutput("error", "json", io.Discard))
	require.NoError(t, tr.Send(context.Background(), msg))
	client.AssertExpectations(t)
}

func TestSESTransportError(t *testing.T) {
	client := &MockSESAPI{}
	client.On("SendEmail", mock.Anything, mock.Anything).Return(nil, errors.New("throttled")).Once()

	tr := NewSESTransportWithClient(client, logger.NewLoggerWithOutput("error", "json", io.Discard))
	err := tr.Send(context.Background(), testMessage())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "throttled")
}

func TestLogTransport(t *testing.T) {
	var buf bytes.Buffer
	tr := NewLogTransport(logger.NewLoggerWithOutput("info", "json", &buf))

	require.NoError(t, tr.Send(context.Background(), testMessage()))
	out := buf.String()
	assert.Contains(t, out, "contact@ceamalaysia.org")
	assert.Contains(t, out, "[GENERAL] Hello")
	assert.False(t, strings.Contains(out, "<p>hello</p>"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, tr.Send(ctx, testMessage()))
}

func TestNewTransport(t *testing.T) {
	log := logger.NewLoggerWithOutput("error", "json", io.Discard)

	tr, err := NewTransport(context.Background(), &models.Config{MailTransport: "log"}, log)
	require.NoError(t, err)
	assert.Equal(t, "log", tr.Name())

	tr, err = NewTransport(context.Background(), &models.Config{MailTransport: "smtp", EmailService: "yahoo"}, log)
	require.NoError(t, err)
	assert.Equal(t, "smtp", tr.Name())

	_, err = NewTransport(context.Background(), &models.Config{MailTransport: "fax"}, log)
	assert.Error(t, err)
}
