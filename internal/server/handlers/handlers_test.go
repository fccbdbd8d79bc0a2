package handlers

import (
	"context"
	"database/sql"

	"msghub/internal/store"
)

// Mock transaction
type mockTx struct {
	commitErr error
}

func (m *mockTx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return nil, nil
}
func (m *mockTx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return nil, nil
}
func (m *mockTx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return nil
}

func (m *mockTx) Commit() error { return m.commitErr }

func (m *mockTx) Rollback() error { return nil }

// Mock Store
type mockStore struct {
	// Transaction hooks
	beginTxErr error
	commitErr  error
	pingErr    error

	// Conversation hooks
	getOrCreateConvResp   *store.Conversation
	getOrCreateConvErr    error
	listConversationsResp []*store.Conversation
	listConversationsErr  error
	getConversationResp   *store.Conversation
	getConversationErr    error

	// Message hooks
	createMessageErr error
	nextMessageID    int64
	listMessagesResp []*store.Message
	listMessagesErr  error

	// Spies (to verify arguments passed by handlers)
	capturedParticipants [2]string
	capturedMessage      *store.Message
}

func (m *mockStore) BeginTx(ctx context.Context) (store.Tx, error) {
	if m.beginTxErr != nil {
		return nil, m.beginTxErr
	}
	return &mockTx{commitErr: m.commitErr}, nil
}

func (m *mockStore) Ping(ctx context.Context) error {
	return m.pingErr
}

func (m *mockStore) GetOrCreateConversation(ctx context.Context, tx store.DBTransaction, addrA, addrB string) (*store.Conversation, error) {
	m.capturedParticipants = [2]string{addrA, addrB}
	if m.getOrCreateConvErr != nil {
		return nil, m.getOrCreateConvErr
	}
	if m.getOrCreateConvResp != nil {
		return m.getOrCreateConvResp, nil
	}
	return &store.Conversation{ID: 1, ParticipantA: addrA, ParticipantB: addrB}, nil
}

func (m *mockStore) ListConversations(ctx context.Context) ([]*store.Conversation, error) {
	return m.listConversationsResp, m.listConversationsErr
}

func (m *mockStore) GetConversationByID(ctx context.Context, id int64) (*store.Conversation, error) {
	return m.getConversationResp, m.getConversationErr
}

func (m *mockStore) CreateMessage(ctx context.Context, tx store.DBTransaction, msg *store.Message) error {
	if m.createMessageErr != nil {
		return m.createMessageErr
	}
	if m.nextMessageID == 0 {
		m.nextMessageID = 1
	}
	msg.ID = m.nextMessageID
	m.capturedMessage = msg
	return nil
}

func (m *mockStore) ListMessages(ctx context.Context, conversationID int64) ([]*store.Message, error) {
	return m.listMessagesResp, m.listMessagesErr
}

// Stub provider
type stubProvider struct {
	status    int
	err       error
	delivered *store.Message
}

func (p *stubProvider) Deliver(ctx context.Context, msg *store.Message) (int, error) {
	p.delivered = msg
	if p.err != nil {
		return 0, p.err
	}
	return p.status, nil
}
