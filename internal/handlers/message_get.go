package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-message-board/internal/logger"
	"github.com/sbilibin2017/gw-message-board/internal/middlewares"
	"github.com/sbilibin2017/gw-message-board/internal/models"
)

// BoardGetter defines the interface that the board service must implement.
type BoardGetter interface {
	Get(ctx context.Context, messageID int64, requesterID *int64) (*models.MessageView, error)
}

// GetMessageErrorResponse represents an error response for fetching a message
// swagger:model GetMessageErrorResponse
type GetMessageErrorResponse struct {
	// Error message
	// default: Message not found
	Error string `json:"error"`
}

// NewGetMessageHandler returns an HTTP handler for fetching a single message.
// @Summary Get a message
// @Description Returns the message with the given id, projected for the requester
// @Tags messages
// @Produce json
// @Param id path int true "Message ID"
// @Success 200 {object} models.MessageView "The message"
// @Failure 404 {object} handlers.GetMessageErrorResponse "Message not found"
// @Failure 500 {object} handlers.GetMessageErrorResponse "Internal server error"
// @Router /messages/{id} [get]
// @Security BearerAuth
func NewGetMessageHandler(svc BoardGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		messageID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(GetMessageErrorResponse{
				Error: "Message not found",
			})
			return
		}

		requesterID := middlewares.GetUserIDFromContext(ctx)

		view, err := svc.Get(ctx, messageID, requesterID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(GetMessageErrorResponse{
				Error: "Internal server error",
			})
			return
		}
		if view == nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(GetMessageErrorResponse{
				Error: "Message not found",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(view)
	}
}
