package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-message-board/internal/logger"
	"github.com/sbilibin2017/gw-message-board/internal/middlewares"
	"github.com/sbilibin2017/gw-message-board/internal/services"
)

// MessageUpdater defines the interface that the board service must implement.
type MessageUpdater interface {
	Update(ctx context.Context, messageID int64, text string, requesterID *int64) error
}

// UpdateMessageRequest represents the JSON body for updating a message
// swagger:model UpdateMessageRequest
type UpdateMessageRequest struct {
	// Message ID, must match the path id
	// required: true
	// default: 1
	ID int64 `json:"id"`

	// New message text
	// required: true
	// default: Hello again
	Text string `json:"text"`
}

// UpdateMessageErrorResponse represents an error response for updating a message
// swagger:model UpdateMessageErrorResponse
type UpdateMessageErrorResponse struct {
	// Error message
	// default: Message not found
	Error string `json:"error"`
}

// NewUpdateMessageHandler returns an HTTP handler for editing a message.
// A missing message and a message owned by another user both answer 404,
// so existence is not revealed to non-owners.
// @Summary Update a message
// @Description Replaces the text of the requester's own message
// @Tags messages
// @Accept json
// @Produce json
// @Param id path int true "Message ID"
// @Param updateMessageRequest body handlers.UpdateMessageRequest true "Edited message"
// @Success 204 "Message updated"
// @Failure 400 {object} handlers.UpdateMessageErrorResponse "Path and body ids differ"
// @Failure 401 {object} handlers.UpdateMessageErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.UpdateMessageErrorResponse "Message not found or not owned"
// @Failure 500 {object} handlers.UpdateMessageErrorResponse "Internal server error"
// @Router /messages/{id} [put]
// @Security BearerAuth
func NewUpdateMessageHandler(svc MessageUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		messageID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(UpdateMessageErrorResponse{
				Error: "Message not found",
			})
			return
		}

		var req UpdateMessageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UpdateMessageErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		if req.ID != messageID {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UpdateMessageErrorResponse{
				Error: "Path and body ids differ",
			})
			return
		}

		requesterID := middlewares.GetUserIDFromContext(ctx)
		if requesterID == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(UpdateMessageErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		if err := svc.Update(ctx, messageID, req.Text, requesterID); err != nil {
			switch {
			case errors.Is(err, services.ErrNotMessageAuthor):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(UpdateMessageErrorResponse{
					Error: "Message not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(UpdateMessageErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
