package models

import (
	"errors"
	"fmt"
)

// Messages returned to contact form submitters
const (
	MsgMissingFields   = "Please fill in all required fields"
	MsgInvalidEmail    = "Please provide a valid email address"
	MsgContactAccepted = "Thank you for your message. We will get back to you soon!"
	MsgContactFailed   = "An error occurred while processing your request. Please try again later."
	MsgContactRunning  = "Contact API is running"
)

var (
	ErrEventNotFound   = errors.New("event not found")
	ErrArticleNotFound = errors.New("article not found")
)

// ValidationError is a user-correctable input problem. Message is shown to the caller verbatim.
type ValidationError struct {
	Message string
	Field   string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ParseError wraps a request body that could not be decoded
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse inquiry: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// MailDispatchError is a transport failure for one outbound email
type MailDispatchError struct {
	Kind      string // "admin" or "auto_reply"
	Recipient string
	Err       error
}

func (e *MailDispatchError) Error() string {
	return fmt.Sprintf("failed to send %s email to %s: %v", e.Kind, e.Recipient, e.Err)
}

func (e *MailDispatchError) Unwrap() error {
	return e.Err
}
