package store

import (
	"context"
	"database/sql"
)

// DBTransaction defines the methods shared by *sql.DB and *sql.Tx.
// This allows us to pass either a connection pool or an active transaction to the repository methods.
type DBTransaction interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

type Tx interface {
	DBTransaction
	Commit() error
	Rollback() error
}

// ConversationStore handles persistence of conversations.
type ConversationStore interface {
	// GetOrCreateConversation returns the conversation for the given pair of
	// addresses, creating it first if none exists. The lookup is agnostic to
	// which address is the sender.
	GetOrCreateConversation(ctx context.Context, tx DBTransaction, addrA, addrB string) (*Conversation, error)

	// ListConversations returns all conversations.
	ListConversations(ctx context.Context) ([]*Conversation, error)

	// GetConversationByID returns a conversation by its ID.
	// Returns sql.ErrNoRows if it does not exist.
	GetConversationByID(ctx context.Context, id int64) (*Conversation, error)
}

// MessageStore handles persistence of messages.
type MessageStore interface {
	// CreateMessage inserts a new message and fills in the generated ID.
	CreateMessage(ctx context.Context, tx DBTransaction, msg *Message) error

	// ListMessages returns all messages of a conversation ordered by timestamp.
	ListMessages(ctx context.Context, conversationID int64) ([]*Message, error)
}
