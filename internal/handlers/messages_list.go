package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-message-board/internal/logger"
	"github.com/sbilibin2017/gw-message-board/internal/middlewares"
	"github.com/sbilibin2017/gw-message-board/internal/models"
)

// BoardLister defines the interface that the board service must implement.
type BoardLister interface {
	ListAll(ctx context.Context, requesterID *int64) ([]models.MessageView, error)
}

// ListMessagesErrorResponse represents an error response for listing messages
// swagger:model ListMessagesErrorResponse
type ListMessagesErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewListMessagesHandler returns an HTTP handler for listing all messages.
// Works for anonymous requesters; canEdit reflects the requester identity.
// @Summary List all messages
// @Description Returns every message in insertion order, projected for the requester
// @Tags messages
// @Produce json
// @Success 200 {array} models.MessageView "All messages"
// @Failure 500 {object} handlers.ListMessagesErrorResponse "Internal server error"
// @Router /messages [get]
// @Security BearerAuth
func NewListMessagesHandler(svc BoardLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		requesterID := middlewares.GetUserIDFromContext(ctx)

		views, err := svc.ListAll(ctx, requesterID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ListMessagesErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(views)
	}
}
