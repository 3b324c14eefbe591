package jwt

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJWT_GenerateAndGetUserID(t *testing.T) {
	j := New("test-secret", time.Minute)

	var userID int64 = 42
	ctx := context.Background()

	token, err := j.Generate(ctx, userID)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	got, err := j.GetUserID(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestJWT_NoExpiration(t *testing.T) {
	// Zero duration means the token carries no exp claim and never expires
	j := New("test-secret", 0)
	ctx := context.Background()

	token, err := j.Generate(ctx, 7)
	assert.NoError(t, err)

	got, err := j.GetUserID(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), got)
}

func TestJWT_ExpiredToken(t *testing.T) {
	j := New("test-secret", -time.Minute) // already expired
	ctx := context.Background()

	token, err := j.Generate(ctx, 42)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	got, err := j.GetUserID(ctx, token)
	assert.Error(t, err)
	assert.Zero(t, got)
}

func TestJWT_InvalidToken(t *testing.T) {
	j := New("secret", time.Minute)
	ctx := context.Background()

	got, err := j.GetUserID(ctx, "invalid.token.string")
	assert.Error(t, err)
	assert.Zero(t, got)
}

func TestJWT_WrongSecret(t *testing.T) {
	ctx := context.Background()

	token, err := New("secret-a", time.Minute).Generate(ctx, 1)
	assert.NoError(t, err)

	got, err := New("secret-b", time.Minute).GetUserID(ctx, token)
	assert.Error(t, err)
	assert.Zero(t, got)
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	j := New("secret", time.Minute)
	ctx := context.Background()

	tests := []struct {
		name      string
		header    string
		wantErr   bool
		wantToken string
	}{
		{name: "valid bearer", header: "Bearer sometoken", wantToken: "sometoken"},
		{name: "case insensitive scheme", header: "bearer sometoken", wantToken: "sometoken"},
		{name: "missing header", header: "", wantErr: true},
		{name: "wrong scheme", header: "Basic abc", wantErr: true},
		{name: "missing token", header: "Bearer", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			token, err := j.GetTokenFromRequest(ctx, req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
			}
		})
	}
}
