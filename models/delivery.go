package models

import "time"

// DeliveryStatus is the outcome of one outbound email
type DeliveryStatus string

const (
	DeliveryStatusSent    DeliveryStatus = "sent"
	DeliveryStatusFailed  DeliveryStatus = "failed"
	DeliveryStatusSkipped DeliveryStatus = "skipped"
)

// DeliveryRecord is the ledger entry written for each accepted submission.
// It holds no inquiry content.
type DeliveryRecord struct {
	ID              string         `json:"id" dynamodbav:"id"`
	InquiryType     string         `json:"inquiry_type" dynamodbav:"inquiry_type"`
	ClientIP        string         `json:"client_ip" dynamodbav:"client_ip"`
	Status          DeliveryStatus `json:"status" dynamodbav:"status"`
	AdminStatus     DeliveryStatus `json:"admin_status" dynamodbav:"admin_status"`
	AutoReplyStatus DeliveryStatus `json:"auto_reply_status" dynamodbav:"auto_reply_status"`
	Errors          []string       `json:"errors,omitempty" dynamodbav:"errors,omitempty"`
	CreatedAt       time.Time      `json:"created_at" dynamodbav:"created_at"`
}

// DeliveryFilter narrows a delivery listing
type DeliveryFilter struct {
	Status DeliveryStatus
	Limit  int
}
