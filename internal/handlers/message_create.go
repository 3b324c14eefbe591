package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/sbilibin2017/gw-message-board/internal/logger"
	"github.com/sbilibin2017/gw-message-board/internal/middlewares"
	"github.com/sbilibin2017/gw-message-board/internal/models"
	"github.com/sbilibin2017/gw-message-board/internal/services"
)

// MessageCreator defines the interface that the board service must implement.
type MessageCreator interface {
	Create(ctx context.Context, text string, requesterID *int64) (*models.MessageView, error)
}

// CreateMessageRequest represents the JSON body for creating a message
// swagger:model CreateMessageRequest
type CreateMessageRequest struct {
	// Message text
	// required: true
	// default: Hello Board
	Text string `json:"text"`
}

// CreateMessageErrorResponse represents an error response for creating a message
// swagger:model CreateMessageErrorResponse
type CreateMessageErrorResponse struct {
	// Error message
	// default: Invalid author
	Error string `json:"error"`
}

// NewCreateMessageHandler returns an HTTP handler for posting a new message.
// @Summary Create a message
// @Description Stores a new message authored by the authenticated requester
// @Tags messages
// @Accept json
// @Produce json
// @Param createMessageRequest body handlers.CreateMessageRequest true "Message to create"
// @Success 201 {object} models.MessageView "The created message"
// @Failure 400 {object} handlers.CreateMessageErrorResponse "Invalid author or request body"
// @Failure 401 {object} handlers.CreateMessageErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.CreateMessageErrorResponse "Internal server error"
// @Router /messages [post]
// @Security BearerAuth
func NewCreateMessageHandler(svc MessageCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req CreateMessageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreateMessageErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		requesterID := middlewares.GetUserIDFromContext(ctx)
		if requesterID == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(CreateMessageErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		view, err := svc.Create(ctx, req.Text, requesterID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUnknownAuthor):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(CreateMessageErrorResponse{
					Error: "Invalid author",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(CreateMessageErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Location", fmt.Sprintf("/messages/%d", view.ID))
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(view)
	}
}
