package models

import "time"

// Inquiry is a single contact form submission. It lives for one request only.
type Inquiry struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
	Type    string `json:"type" validate:"required"`
}

// MailMessage is what a mail transport is asked to deliver
type MailMessage struct {
	FromName string
	From     string
	To       string
	ReplyTo  string
	Subject  string
	HTML     string
}

// SubmissionResult describes what happened to an accepted inquiry.
// It is never surfaced to the submitter.
type SubmissionResult struct {
	ID              string
	ClientIP        string
	ReceivedAt      time.Time
	AdminStatus     DeliveryStatus
	AutoReplyStatus DeliveryStatus
	Errors          []string
}
