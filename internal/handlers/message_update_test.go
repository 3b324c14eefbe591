package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-message-board/internal/middlewares"
	"github.com/sbilibin2017/gw-message-board/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestUpdateMessageHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockMessageUpdater(ctrl)

	router := chi.NewRouter()
	router.Put("/messages/{id}", NewUpdateMessageHandler(mockSvc))

	tests := []struct {
		name         string
		url          string
		inputBody    interface{}
		requesterID  *int64
		mockSetup    func()
		expectedCode int
	}{
		{
			name:        "success",
			url:         "/messages/5",
			inputBody:   UpdateMessageRequest{ID: 5, Text: "hi"},
			requesterID: int64Ptr(1),
			mockSetup: func() {
				mockSvc.EXPECT().
					Update(gomock.Any(), int64(5), "hi", gomock.Not(gomock.Nil())).
					Return(nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name:         "id mismatch",
			url:          "/messages/5",
			inputBody:    UpdateMessageRequest{ID: 6, Text: "hi"},
			requesterID:  int64Ptr(1),
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "invalid JSON",
			url:          "/messages/5",
			inputBody:    "{invalid json}",
			requesterID:  int64Ptr(1),
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "no identity",
			url:          "/messages/5",
			inputBody:    UpdateMessageRequest{ID: 5, Text: "hi"},
			mockSetup:    func() {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:        "missing message and foreign message look the same",
			url:         "/messages/5",
			inputBody:   UpdateMessageRequest{ID: 5, Text: "hi"},
			requesterID: int64Ptr(2),
			mockSetup: func() {
				mockSvc.EXPECT().
					Update(gomock.Any(), int64(5), "hi", gomock.Not(gomock.Nil())).
					Return(services.ErrNotMessageAuthor)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "non-numeric id",
			url:          "/messages/abc",
			inputBody:    UpdateMessageRequest{ID: 5, Text: "hi"},
			requesterID:  int64Ptr(1),
			mockSetup:    func() {},
			expectedCode: http.StatusNotFound,
		},
		{
			name:        "internal error",
			url:         "/messages/5",
			inputBody:   UpdateMessageRequest{ID: 5, Text: "hi"},
			requesterID: int64Ptr(1),
			mockSetup: func() {
				mockSvc.EXPECT().
					Update(gomock.Any(), int64(5), "hi", gomock.Not(gomock.Nil())).
					Return(errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			var body []byte
			switch v := tt.inputBody.(type) {
			case string:
				body = []byte(v)
			default:
				body, _ = json.Marshal(v)
			}

			req := httptest.NewRequest(http.MethodPut, tt.url, bytes.NewReader(body))
			if tt.requesterID != nil {
				req = req.WithContext(middlewares.SetUserIDToContext(req.Context(), *tt.requesterID))
			}
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}
