package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"msghub/internal/store"
	"msghub/pkg/api"
)

// SendMessage handles POST /messages/{type}.
// It stores the outbound message in its conversation, then relays it to the
// downstream provider. The message is kept even when the provider rejects
// the relay, matching the send-then-notify flow of the frontend.
func (h *Handlers) SendMessage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	msg, ok := h.storeMessageFromRequest(w, r, nil)
	if !ok {
		return
	}

	h.stored.Add(ctx, 1, metric.WithAttributes(attribute.String("direction", "outbound")))

	status, err := h.provider.Deliver(ctx, msg)
	if err != nil {
		h.httpError(w, fmt.Sprintf("Failed to reach provider: %v", err), http.StatusBadGateway)
		return
	}

	switch status {
	case http.StatusOK:
		h.respondJSON(w, http.StatusCreated, api.SendMessageResponse{MessageID: msg.ID})
	case http.StatusTooManyRequests:
		h.httpError(w, "Rate limited by provider. Please retry later.", status)
	case http.StatusInternalServerError:
		h.httpError(w, "Provider service unavailable.", status)
	default:
		h.httpError(w, "Unknown error occurred.", status)
	}
}

// storeMessageFromRequest handles the deserialize/validate/store sequence
// shared by the send endpoint and the provider webhooks. providerID, when
// non-nil, extracts the provider's message identifier from the payload.
// On failure it writes the error response and returns ok=false.
func (h *Handlers) storeMessageFromRequest(w http.ResponseWriter, r *http.Request, providerID func(store.MessageType, *api.SendMessageRequest) *string) (*store.Message, bool) {
	ctx := r.Context()

	msgType, ok := store.ParseMessageType(r.PathValue("type"))
	if !ok {
		h.httpError(w, "Unknown message type", http.StatusNotFound)
		return nil, false
	}

	var req api.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.httpError(w, "Invalid request body", http.StatusBadRequest)
		return nil, false
	}

	if req.From == "" || req.To == "" {
		h.httpError(w, "From and To are required", http.StatusBadRequest)
		return nil, false
	}

	// The payload's type field wins over the URL when both are present.
	if req.Type != "" {
		if msgType, ok = store.ParseMessageType(req.Type); !ok {
			h.httpError(w, "Unknown message type", http.StatusBadRequest)
			return nil, false
		}
	}

	timestamp := req.Timestamp.UTC()
	if req.Timestamp.IsZero() {
		timestamp = time.Now().UTC()
	}

	tx, err := h.store.BeginTx(ctx)
	if err != nil {
		h.httpError(w, "Internal database error", http.StatusInternalServerError)
		return nil, false
	}
	defer tx.Rollback()

	conv, err := h.store.GetOrCreateConversation(ctx, tx, req.From, req.To)
	if err != nil {
		h.httpError(w, "Failed to create conversation", http.StatusInternalServerError)
		return nil, false
	}

	msg := &store.Message{
		ConversationID: conv.ID,
		MsgType:        msgType,
		FromAddress:    req.From,
		ToAddress:      req.To,
		Body:           req.Body,
		Attachments:    req.Attachments,
		Timestamp:      timestamp,
	}
	if providerID != nil {
		msg.ProviderMessageID = providerID(msgType, &req)
	}

	if err := h.store.CreateMessage(ctx, tx, msg); err != nil {
		h.httpError(w, "Failed to create message", http.StatusInternalServerError)
		return nil, false
	}

	if err := tx.Commit(); err != nil {
		h.httpError(w, "Failed to commit transaction", http.StatusInternalServerError)
		return nil, false
	}

	return msg, true
}
