package postgres

import (
	"context"
	"database/sql"
	"encoding/json"

	"msghub/internal/store"
)

// CreateMessage inserts a new message row and fills in the generated ID.
func (s *Store) CreateMessage(ctx context.Context, tx store.DBTransaction, msg *store.Message) error {
	query := `
		INSERT INTO messages (conversation_id, msg_type, from_address, to_address, body, attachments, "timestamp", messaging_provider_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	// A nil RawMessage must become SQL NULL, not the string "null".
	var attachments interface{}
	if msg.Attachments != nil {
		attachments = []byte(msg.Attachments)
	}

	return s.querier(tx).QueryRowContext(ctx, query,
		msg.ConversationID,
		msg.MsgType,
		msg.FromAddress,
		msg.ToAddress,
		msg.Body,
		attachments,
		msg.Timestamp,
		msg.ProviderMessageID,
	).Scan(&msg.ID)
}

// ListMessages returns all messages of a conversation ordered by timestamp.
func (s *Store) ListMessages(ctx context.Context, conversationID int64) ([]*store.Message, error) {
	query := `
		SELECT id, conversation_id, msg_type, from_address, to_address, body, attachments, "timestamp", messaging_provider_id
		FROM messages
		WHERE conversation_id = $1
		ORDER BY "timestamp", id
	`

	rows, err := s.db.QueryContext(ctx, query, conversationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*store.Message
	for rows.Next() {
		var (
			msg         store.Message
			attachments []byte
			providerID  sql.NullString
		)
		if err := rows.Scan(
			&msg.ID,
			&msg.ConversationID,
			&msg.MsgType,
			&msg.FromAddress,
			&msg.ToAddress,
			&msg.Body,
			&attachments,
			&msg.Timestamp,
			&providerID,
		); err != nil {
			return nil, err
		}
		if attachments != nil {
			msg.Attachments = json.RawMessage(attachments)
		}
		if providerID.Valid {
			msg.ProviderMessageID = &providerID.String
		}
		messages = append(messages, &msg)
	}

	return messages, rows.Err()
}
