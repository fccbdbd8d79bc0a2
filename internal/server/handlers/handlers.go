// Package handlers contains HTTP handlers for the messaging API.
package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"

	"msghub/internal/store"
	"msghub/pkg/api"
)

// StoreFactory combines the interfaces needed for the API to function.
type StoreFactory interface {
	BeginTx(ctx context.Context) (store.Tx, error)
	Ping(ctx context.Context) error
	store.ConversationStore
	store.MessageStore
}

// Deliverer sends stored outbound messages to the downstream provider.
type Deliverer interface {
	Deliver(ctx context.Context, msg *store.Message) (int, error)
}

// Handlers holds all HTTP handlers and their dependencies.
type Handlers struct {
	store    StoreFactory
	provider Deliverer
	stored   metric.Int64Counter
}

// New creates a new Handlers instance with the given dependencies.
func New(s StoreFactory, p Deliverer) *Handlers {
	meter := otel.Meter("msghub/handlers")
	stored, _ := meter.Int64Counter("msghub.messages.stored",
		metric.WithDescription("Number of messages stored, by direction"))

	return &Handlers{store: s, provider: p, stored: stored}
}

// A helper function to write standard JSON responses.
func (h *Handlers) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}

// A helper function to return consistent error messages.
func (h *Handlers) httpError(w http.ResponseWriter, message string, code int) {
	h.respondJSON(w, code, api.ErrorResponse{Error: message})
}

func toMessageResponse(msg *store.Message) api.MessageResponse {
	return api.MessageResponse{
		ID:          msg.ID,
		MsgType:     string(msg.MsgType),
		FromAddress: msg.FromAddress,
		ToAddress:   msg.ToAddress,
		Body:        msg.Body,
		Attachments: msg.Attachments,
		Timestamp:   msg.Timestamp,
	}
}

func toMessageResponses(msgs []*store.Message) []api.MessageResponse {
	out := make([]api.MessageResponse, 0, len(msgs))
	for _, msg := range msgs {
		out = append(out, toMessageResponse(msg))
	}
	return out
}
