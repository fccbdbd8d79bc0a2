package handlers

import (
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"msghub/internal/store"
	"msghub/pkg/api"
)

// ReceiveWebhook handles POST /webhooks/{type}.
// Providers invoke it after a message has been received on our numbers or
// addresses. SMS/MMS providers send their message identifier as
// messaging_provider_id; email providers send it as xillio_id.
func (h *Handlers) ReceiveWebhook(w http.ResponseWriter, r *http.Request) {
	msg, ok := h.storeMessageFromRequest(w, r, func(msgType store.MessageType, req *api.SendMessageRequest) *string {
		id := req.ProviderMessageID
		if msgType == store.MessageTypeEmail {
			id = req.XillioID
		}
		if id == "" {
			return nil
		}
		return &id
	})
	if !ok {
		return
	}

	h.stored.Add(r.Context(), 1, metric.WithAttributes(attribute.String("direction", "inbound")))

	h.respondJSON(w, http.StatusCreated, api.SendMessageResponse{MessageID: msg.ID})
}
