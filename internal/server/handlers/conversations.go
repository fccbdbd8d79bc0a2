package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"msghub/pkg/api"
)

// ListConversations handles GET /conversations.
// It returns every conversation with its messages ordered by timestamp.
func (h *Handlers) ListConversations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	conversations, err := h.store.ListConversations(ctx)
	if err != nil {
		h.httpError(w, "Failed to list conversations", http.StatusInternalServerError)
		return
	}

	resp := make([]api.ConversationResponse, 0, len(conversations))
	for _, conv := range conversations {
		messages, err := h.store.ListMessages(ctx, conv.ID)
		if err != nil {
			h.httpError(w, "Failed to list messages", http.StatusInternalServerError)
			return
		}
		resp = append(resp, api.ConversationResponse{
			ID:           conv.ID,
			ParticipantA: conv.ParticipantA,
			ParticipantB: conv.ParticipantB,
			Messages:     toMessageResponses(messages),
		})
	}

	h.respondJSON(w, http.StatusOK, resp)
}

// GetConversationMessages handles GET /conversations/{id}/messages.
// It returns the messages grouped into the requested conversation.
func (h *Handlers) GetConversationMessages(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		h.httpError(w, "Invalid conversation id", http.StatusBadRequest)
		return
	}

	if _, err := h.store.GetConversationByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			h.httpError(w, "Conversation not found", http.StatusNotFound)
			return
		}
		h.httpError(w, "Internal database error", http.StatusInternalServerError)
		return
	}

	messages, err := h.store.ListMessages(ctx, id)
	if err != nil {
		h.httpError(w, "Failed to list messages", http.StatusInternalServerError)
		return
	}

	h.respondJSON(w, http.StatusOK, toMessageResponses(messages))
}
