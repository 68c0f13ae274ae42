package mailer

import (
	"bytes"
	"ceam-backend/models"
	"embed"
	"fmt"
	"strings"
	"text/template"
	"time"
	_ "time/tzdata"
)

//go:embed templates/*.html
var templateFS embed.FS

// timestampLayout matches the en-US locale rendering, e.g. "4/1/2026, 10:00:00 AM"
const timestampLayout = "1/2/2006, 3:04:05 PM"

// Organization holds the static contact details printed in outbound mail
type Organization struct {
	Name      string
	ShortName string
	Location  string
	Phone     string
	Email     string
	URL       string
	Domain    string
}

// DefaultOrganization is the association the site belongs to
var DefaultOrganization = Organization{
	Name:      "K'Cho Ethnic Association Malaysia",
	ShortName: "CEAM",
	Location:  "Kuala Lumpur, Malaysia",
	Phone:     "+60 12-345-6789",
	Email:     "contact@ceamalaysia.org",
	URL:       "https://ceamalaysia.org",
	Domain:    "ceamalaysia.org",
}

// timezoneLabels gives a friendlier label than the IANA name where one is known
var timezoneLabels = map[string]string{
	"Asia/Kuala_Lumpur": "Malaysia Time",
}

type adminNotificationData struct {
	Org           Organization
	Type          string
	Name          string
	Email         string
	Phone         string
	Subject       string
	Message       string
	Timestamp     string
	TimezoneLabel string
}

type autoReplyData struct {
	Org  Organization
	Name string
}

// Renderer produces the HTML bodies for the two contact emails.
// Every user supplied value is passed through SanitizeInput before it reaches a template.
type Renderer struct {
	org       Organization
	admin     *template.Template
	autoReply *template.Template
}

// NewRenderer parses the embedded templates
func NewRenderer(org Organization) (*Renderer, error) {
	admin, err := template.ParseFS(templateFS, "templates/admin_notification.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse admin notification template: %w", err)
	}
	autoReply, err := template.ParseFS(templateFS, "templates/auto_reply.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse auto-reply template: %w", err)
	}
	return &Renderer{org: org, admin: admin, autoReply: autoReply}, nil
}

// MustNewRenderer is NewRenderer for the embedded templates, which are known to parse
func MustNewRenderer(org Organization) *Renderer {
	r, err := NewRenderer(org)
	if err != nil {
		panic(err)
	}
	return r
}

// Organization returns the details the renderer prints
func (r *Renderer) Organization() Organization {
	return r.org
}

// RenderAdminNotification renders the notification sent to the association inbox.
// The inquiry type is shown uppercased and the phone row only when a phone was given.
func (r *Renderer) RenderAdminNotification(inq *models.Inquiry, at time.Time, loc *time.Location) (string, error) {
	if loc == nil {
		loc = time.UTC
	}
	data := adminNotificationData{
		Org:           r.org,
		Type:          SanitizeInput(strings.ToUpper(inq.Type)),
		Name:          SanitizeInput(inq.Name),
		Email:         SanitizeInput(inq.Email),
		Phone:         SanitizeInput(inq.Phone),
		Subject:       SanitizeInput(inq.Subject),
		Message:       SanitizeInput(inq.Message),
		Timestamp:     at.In(loc).Format(timestampLayout),
		TimezoneLabel: TimezoneLabel(loc),
	}

	var buf bytes.Buffer
	if err := r.admin.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render admin notification: %w", err)
	}
	return buf.String(), nil
}

// RenderAutoReply renders the acknowledgement sent back to the submitter
func (r *Renderer) RenderAutoReply(name string) (string, error) {
	var buf bytes.Buffer
	if err := r.autoReply.Execute(&buf, autoReplyData{Org: r.org, Name: SanitizeInput(name)}); err != nil {
		return "", fmt.Errorf("failed to render auto-reply: %w", err)
	}
	return buf.String(), nil
}

// TimezoneLabel returns the human label for loc
func TimezoneLabel(loc *time.Location) string {
	if label, ok := timezoneLabels[loc.String()]; ok {
		return label
	}
	return loc.String()
}
