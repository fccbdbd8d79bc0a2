// Package api contains shared JSON request/response structs.
// This package is shared between the CLI and the server.
package api

import (
	"encoding/json"
	"time"
)

// SendMessageRequest is the request body for sending an outbound message.
// Providers post the same shape to the inbound webhooks, with their message
// identifier in messaging_provider_id (or xillio_id for email providers).
type SendMessageRequest struct {
	From        string          `json:"from"`
	To          string          `json:"to"`
	Type        string          `json:"type,omitempty"`
	Body        string          `json:"body"`
	Attachments json.RawMessage `json:"attachments,omitempty"`
	Timestamp   time.Time       `json:"timestamp"`

	ProviderMessageID string `json:"messaging_provider_id,omitempty"`
	XillioID          string `json:"xillio_id,omitempty"`
}

// SendMessageResponse is the response body after a message has been stored.
type SendMessageResponse struct {
	MessageID int64 `json:"message_id"`
}

// MessageResponse represents a single message in API responses.
type MessageResponse struct {
	ID          int64           `json:"id"`
	MsgType     string          `json:"msg_type"`
	FromAddress string          `json:"from_address"`
	ToAddress   string          `json:"to_address"`
	Body        string          `json:"body"`
	Attachments json.RawMessage `json:"attachments"`
	Timestamp   time.Time       `json:"timestamp"`
}

// ConversationResponse represents a conversation with its messages,
// ordered by timestamp.
type ConversationResponse struct {
	ID           int64             `json:"id"`
	ParticipantA string            `json:"participant_a"`
	ParticipantB string            `json:"participant_b"`
	Messages     []MessageResponse `json:"messages"`
}

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}
