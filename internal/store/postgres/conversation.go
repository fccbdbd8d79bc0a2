package postgres

import (
	"context"

	"msghub/internal/store"
)

// GetOrCreateConversation returns the conversation for the given pair of
// addresses, creating it if it does not exist. Participants are sorted
// before the lookup so the pair is canonical regardless of who sent first.
func (s *Store) GetOrCreateConversation(ctx context.Context, tx store.DBTransaction, addrA, addrB string) (*store.Conversation, error) {
	a, b := addrA, addrB
	if b < a {
		a, b = b, a
	}

	// The no-op DO UPDATE makes RETURNING yield the existing row's id
	// on conflict.
	query := `
		INSERT INTO conversations (participant_a, participant_b)
		VALUES ($1, $2)
		ON CONFLICT (participant_a, participant_b)
		DO UPDATE SET participant_a = EXCLUDED.participant_a
		RETURNING id
	`

	conv := &store.Conversation{
		ParticipantA: a,
		ParticipantB: b,
	}
	if err := s.querier(tx).QueryRowContext(ctx, query, a, b).Scan(&conv.ID); err != nil {
		return nil, err
	}

	return conv, nil
}

// ListConversations returns all conversations ordered by id.
func (s *Store) ListConversations(ctx context.Context) ([]*store.Conversation, error) {
	query := "SELECT id, participant_a, participant_b FROM conversations ORDER BY id"

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var conversations []*store.Conversation
	for rows.Next() {
		var conv store.Conversation
		if err := rows.Scan(&conv.ID, &conv.ParticipantA, &conv.ParticipantB); err != nil {
			return nil, err
		}
		conversations = append(conversations, &conv)
	}

	return conversations, rows.Err()
}

// GetConversationByID returns a conversation by its ID.
func (s *Store) GetConversationByID(ctx context.Context, id int64) (*store.Conversation, error) {
	query := "SELECT id, participant_a, participant_b FROM conversations WHERE id = $1"

	var conv store.Conversation
	err := s.db.QueryRowContext(ctx, query, id).Scan(&conv.ID, &conv.ParticipantA, &conv.ParticipantB)
	if err != nil {
		return nil, err
	}

	return &conv, nil
}
