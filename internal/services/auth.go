package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/gw-message-board/internal/logger"
	"github.com/sbilibin2017/gw-message-board/internal/models"
	"github.com/sbilibin2017/gw-message-board/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username string, passwordHash string) (int64, error)
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID int64) (string, error)
}

// AuthService exchanges credentials for a bearer token.
// An unseen username is registered on its first successful authentication.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    JWTGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
	}
}

// Authenticate verifies the credentials and returns a signed token.
// If the username is unseen, the user is created with the hash of the given
// password and authentication succeeds. Losing the concurrent-registration
// race is reported as ErrInvalidCredentials, not as an infrastructure error.
func (svc *AuthService) Authenticate(ctx context.Context, username, password string) (string, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}

	var userID int64
	if user == nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			logger.Log.Errorw("failed to hash password", "err", err)
			return "", err
		}

		userID, err = svc.writer.Save(ctx, username, string(hashedPassword))
		if err != nil {
			if errors.Is(err, repositories.ErrUsernameTaken) {
				logger.Log.Errorw("lost registration race", "username", username)
				return "", ErrInvalidCredentials
			}
			logger.Log.Errorw("failed to save user", "err", err)
			return "", err
		}
		logger.Log.Infow("user created", "username", username)
	} else {
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
			logger.Log.Errorw("invalid credentials", "username", username)
			return "", ErrInvalidCredentials
		}
		userID = user.UserID
	}

	token, err := svc.jwt.Generate(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}
