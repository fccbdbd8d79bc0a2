package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"msghub/internal/store"
)

func TestCreateMessage_Success(t *testing.T) {
	st, mock := newMockStore(t)
	defer st.db.Close()

	ctx := context.Background()
	timestamp := time.Date(2024, 11, 1, 14, 0, 0, 0, time.UTC)
	attachments := json.RawMessage(`["http://file.url"]`)

	msg := &store.Message{
		ConversationID: 1,
		MsgType:        store.MessageTypeEmail,
		FromAddress:    "user@example.com",
		ToAddress:      "other@example.com",
		Body:           "<html><b>Email</b></html>",
		Attachments:    attachments,
		Timestamp:      timestamp,
	}

	mock.ExpectQuery(`INSERT INTO messages`).
		WithArgs(int64(1), store.MessageTypeEmail, "user@example.com", "other@example.com",
			"<html><b>Email</b></html>", []byte(attachments), timestamp, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))

	if err := st.CreateMessage(ctx, nil, msg); err != nil {
		t.Fatalf("CreateMessage failed: %v", err)
	}

	if msg.ID != 42 {
		t.Errorf("got id %d, want 42", msg.ID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestCreateMessage_NilAttachmentsStoredAsNull(t *testing.T) {
	st, mock := newMockStore(t)
	defer st.db.Close()

	timestamp := time.Date(2024, 11, 1, 14, 0, 0, 0, time.UTC)
	providerID := "msg-123"

	msg := &store.Message{
		ConversationID:    1,
		MsgType:           store.MessageTypeSMS,
		FromAddress:       "+12016661234",
		ToAddress:         "+18045551234",
		Body:              "Incoming SMS",
		Timestamp:         timestamp,
		ProviderMessageID: &providerID,
	}

	mock.ExpectQuery(`INSERT INTO messages`).
		WithArgs(int64(1), store.MessageTypeSMS, "+12016661234", "+18045551234",
			"Incoming SMS", nil, timestamp, &providerID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(5)))

	if err := st.CreateMessage(context.Background(), nil, msg); err != nil {
		t.Fatalf("CreateMessage failed: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestCreateMessage_InsertError(t *testing.T) {
	st, mock := newMockStore(t)
	defer st.db.Close()

	mock.ExpectQuery(`INSERT INTO messages`).
		WillReturnError(sql.ErrConnDone)

	msg := &store.Message{
		ConversationID: 1,
		MsgType:        store.MessageTypeSMS,
		FromAddress:    "+111",
		ToAddress:      "+222",
		Timestamp:      time.Now(),
	}

	if err := st.CreateMessage(context.Background(), nil, msg); err == nil {
		t.Error("expected error, got nil")
	}
}

func TestListMessages_OrderedWithNullableColumns(t *testing.T) {
	st, mock := newMockStore(t)
	defer st.db.Close()

	t1 := time.Date(2024, 11, 1, 14, 0, 0, 0, time.UTC)
	t2 := time.Date(2025, 11, 1, 14, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{
		"id", "conversation_id", "msg_type", "from_address", "to_address",
		"body", "attachments", "timestamp", "messaging_provider_id",
	}).
		AddRow(int64(1), int64(9), "sms", "+111", "+222", "First", []byte(`[]`), t1, nil).
		AddRow(int64(2), int64(9), "mms", "+222", "+111", "Reply", nil, t2, "msg-123")

	mock.ExpectQuery(`SELECT (.+) FROM messages`).
		WithArgs(int64(9)).
		WillReturnRows(rows)

	messages, err := st.ListMessages(context.Background(), 9)
	if err != nil {
		t.Fatalf("ListMessages failed: %v", err)
	}

	if len(messages) != 2 {
		t.Fatalf("got %d messages, want 2", len(messages))
	}

	first := messages[0]
	if first.MsgType != store.MessageTypeSMS || string(first.Attachments) != "[]" {
		t.Errorf("unexpected first message: %+v", first)
	}
	if first.ProviderMessageID != nil {
		t.Errorf("expected nil provider id, got %v", *first.ProviderMessageID)
	}

	second := messages[1]
	if second.Attachments != nil {
		t.Errorf("expected nil attachments, got %s", second.Attachments)
	}
	if second.ProviderMessageID == nil || *second.ProviderMessageID != "msg-123" {
		t.Errorf("unexpected provider id: %v", second.ProviderMessageID)
	}
}
