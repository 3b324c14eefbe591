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

// MessageDeleter defines the interface that the board service must implement.
type MessageDeleter interface {
	Delete(ctx context.Context, messageID int64, requesterID *int64) error
}

// DeleteMessageErrorResponse represents an error response for deleting a message
// swagger:model DeleteMessageErrorResponse
type DeleteMessageErrorResponse struct {
	// Error message
	// default: Message not found
	Error string `json:"error"`
}

// NewDeleteMessageHandler returns an HTTP handler for deleting a message.
// Deleting an already-absent message answers 204; deleting another user's
// message answers 404.
// @Summary Delete a message
// @Description Removes the requester's own message. Deleting an absent message is an idempotent success.
// @Tags messages
// @Produce json
// @Param id path int true "Message ID"
// @Success 204 "Message deleted or already absent"
// @Failure 401 {object} handlers.DeleteMessageErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.DeleteMessageErrorResponse "Message owned by another user"
// @Failure 500 {object} handlers.DeleteMessageErrorResponse "Internal server error"
// @Router /messages/{id} [delete]
// @Security BearerAuth
func NewDeleteMessageHandler(svc MessageDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		messageID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(DeleteMessageErrorResponse{
				Error: "Message not found",
			})
			return
		}

		requesterID := middlewares.GetUserIDFromContext(ctx)
		if requesterID == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(DeleteMessageErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		if err := svc.Delete(ctx, messageID, requesterID); err != nil {
			switch {
			case errors.Is(err, services.ErrNotMessageAuthor):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(DeleteMessageErrorResponse{
					Error: "Message not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(DeleteMessageErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
