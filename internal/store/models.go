// Package store contains the database layer for msghub.
package store

import (
	"encoding/json"
	"time"
)

// MessageType identifies the channel a message was sent over.
type MessageType string

const (
	MessageTypeSMS   MessageType = "sms"
	MessageTypeMMS   MessageType = "mms"
	MessageTypeEmail MessageType = "email"
)

// ParseMessageType validates a raw message type string.
func ParseMessageType(s string) (MessageType, bool) {
	switch MessageType(s) {
	case MessageTypeSMS, MessageTypeMMS, MessageTypeEmail:
		return MessageType(s), true
	}
	return "", false
}

// Conversation groups all messages exchanged between two participants.
// A participant is an address (phone number or email). Participants are
// stored sorted so the pair is canonical regardless of message direction.
type Conversation struct {
	ID           int64
	ParticipantA string
	ParticipantB string
}

// Message is a single sms, mms or email message within a conversation.
type Message struct {
	ID             int64
	ConversationID int64
	MsgType        MessageType
	FromAddress    string
	ToAddress      string
	Body           string
	// Attachments is a nullable JSON array of attachment URLs.
	Attachments json.RawMessage
	Timestamp   time.Time
	// ProviderMessageID is set for messages created via provider webhooks.
	// Email providers call it xillio_id on the wire.
	ProviderMessageID *string
}
