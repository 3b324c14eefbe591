package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-message-board/internal/models"
	"github.com/sbilibin2017/gw-message-board/internal/repositories"
	"github.com/sbilibin2017/gw-message-board/internal/services"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Authenticate_ExistingUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

	password := "secret"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	tests := []struct {
		name      string
		username  string
		loginPass string
		user      *models.UserDB
		readerErr error
		jwtErr    error
		expectJWT string
		wantErr   error
	}{
		{
			name:      "successful login",
			username:  "alice",
			loginPass: password,
			user:      &models.UserDB{UserID: 1, Username: "alice", PasswordHash: string(hashed)},
			expectJWT: "token123",
		},
		{
			name:      "wrong password",
			username:  "alice",
			loginPass: "not-the-password",
			user:      &models.UserDB{UserID: 1, Username: "alice", PasswordHash: string(hashed)},
			wantErr:   services.ErrInvalidCredentials,
		},
		{
			name:      "reader error",
			username:  "alice",
			loginPass: password,
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "jwt error",
			username:  "alice",
			loginPass: password,
			user:      &models.UserDB{UserID: 1, Username: "alice", PasswordHash: string(hashed)},
			jwtErr:    errors.New("sign error"),
			wantErr:   errors.New("sign error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByUsername(gomock.Any(), tt.username).
				Return(tt.user, tt.readerErr)

			if tt.user != nil && tt.loginPass == password {
				mockJWT.EXPECT().
					Generate(gomock.Any(), tt.user.UserID).
					Return(tt.expectJWT, tt.jwtErr)
			}

			token, err := svc.Authenticate(context.Background(), tt.username, tt.loginPass)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectJWT, token)
			}
		})
	}
}

func TestAuthService_Authenticate_AutoRegistration(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

	t.Run("unseen username is registered and authenticated", func(t *testing.T) {
		mockReader.EXPECT().
			GetByUsername(gomock.Any(), "newcomer").
			Return(nil, nil)

		mockWriter.EXPECT().
			Save(gomock.Any(), "newcomer", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, passwordHash string) (int64, error) {
				// The stored hash must verify against the supplied password
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte("pass123")))
				return int64(7), nil
			})

		mockJWT.EXPECT().
			Generate(gomock.Any(), int64(7)).
			Return("JWT_TOKEN", nil)

		token, err := svc.Authenticate(context.Background(), "newcomer", "pass123")
		assert.NoError(t, err)
		assert.Equal(t, "JWT_TOKEN", token)
	})

	t.Run("lost registration race is an authentication failure", func(t *testing.T) {
		mockReader.EXPECT().
			GetByUsername(gomock.Any(), "racer").
			Return(nil, nil)

		mockWriter.EXPECT().
			Save(gomock.Any(), "racer", gomock.Any()).
			Return(int64(0), repositories.ErrUsernameTaken)

		token, err := svc.Authenticate(context.Background(), "racer", "pass123")
		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
		assert.Empty(t, token)
	})

	t.Run("writer infrastructure error propagates", func(t *testing.T) {
		mockReader.EXPECT().
			GetByUsername(gomock.Any(), "carol").
			Return(nil, nil)

		mockWriter.EXPECT().
			Save(gomock.Any(), "carol", gomock.Any()).
			Return(int64(0), errors.New("save error"))

		token, err := svc.Authenticate(context.Background(), "carol", "pass123")
		assert.EqualError(t, err, "save error")
		assert.Empty(t, token)
	})
}
