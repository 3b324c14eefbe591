package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/gw-message-board/internal/logger"
	"github.com/sbilibin2017/gw-message-board/internal/models"
)

// Error variables
var (
	ErrUnknownAuthor    = errors.New("author is not a known user")
	ErrNotMessageAuthor = errors.New("message does not exist or belongs to another user")
)

// UserGetter resolves a requester id to a stored user.
type UserGetter interface {
	GetByID(ctx context.Context, userID int64) (*models.UserDB, error)
}

// MessageReader defines read-only operations for messages.
type MessageReader interface {
	List(ctx context.Context) ([]models.MessageDB, error)
	GetByID(ctx context.Context, messageID int64) (*models.MessageDB, error)
}

// MessageWriter defines write operations for messages.
type MessageWriter interface {
	Save(ctx context.Context, text string, authorID int64) (int64, error)
	UpdateText(ctx context.Context, messageID int64, text string) error
	Delete(ctx context.Context, messageID int64) error
}

// BoardService is CRUD over messages with per-operation author-ownership checks.
// A nil requesterID means the request is anonymous.
type BoardService struct {
	users  UserGetter
	reader MessageReader
	writer MessageWriter
}

// NewBoardService creates a new BoardService instance.
func NewBoardService(users UserGetter, reader MessageReader, writer MessageWriter) *BoardService {
	return &BoardService{
		users:  users,
		reader: reader,
		writer: writer,
	}
}

// ListAll returns every message in insertion order, projected for the requester.
func (svc *BoardService) ListAll(ctx context.Context, requesterID *int64) ([]models.MessageView, error) {
	messages, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list messages", "err", err)
		return nil, err
	}

	views := make([]models.MessageView, 0, len(messages))
	for _, m := range messages {
		views = append(views, project(m, requesterID))
	}
	return views, nil
}

// Get returns the projection of a single message, or nil if it does not exist.
func (svc *BoardService) Get(ctx context.Context, messageID int64, requesterID *int64) (*models.MessageView, error) {
	message, err := svc.reader.GetByID(ctx, messageID)
	if err != nil {
		logger.Log.Errorw("failed to get message", "id", messageID, "err", err)
		return nil, err
	}
	if message == nil {
		return nil, nil
	}

	view := project(*message, requesterID)
	return &view, nil
}

// Create stores a new message for the requester. The requester must resolve
// to an existing user; the author lookup precedes the insert. The returned
// view is always editable by its creator.
func (svc *BoardService) Create(ctx context.Context, text string, requesterID *int64) (*models.MessageView, error) {
	if requesterID == nil {
		logger.Log.Infow("message creation attempted anonymously")
		return nil, ErrUnknownAuthor
	}

	author, err := svc.users.GetByID(ctx, *requesterID)
	if err != nil {
		logger.Log.Errorw("failed to look up author", "author_id", *requesterID, "err", err)
		return nil, err
	}
	if author == nil {
		logger.Log.Infow("message creation attempted by invalid user", "author_id", *requesterID)
		return nil, ErrUnknownAuthor
	}

	messageID, err := svc.writer.Save(ctx, text, author.UserID)
	if err != nil {
		logger.Log.Errorw("failed to save message", "author_id", author.UserID, "err", err)
		return nil, err
	}

	return &models.MessageView{
		ID:      messageID,
		Text:    text,
		Author:  author.Username,
		CanEdit: true,
	}, nil
}

// Update replaces the text of the requester's own message. A missing message
// and a message owned by someone else report the same rejection, so existence
// is not revealed to non-owners.
func (svc *BoardService) Update(ctx context.Context, messageID int64, text string, requesterID *int64) error {
	message, err := svc.reader.GetByID(ctx, messageID)
	if err != nil {
		logger.Log.Errorw("failed to get message", "id", messageID, "err", err)
		return err
	}
	if message == nil || requesterID == nil || message.AuthorID != *requesterID {
		logger.Log.Infow("message update rejected", "id", messageID)
		return ErrNotMessageAuthor
	}

	if err := svc.writer.UpdateText(ctx, messageID, text); err != nil {
		logger.Log.Errorw("failed to update message", "id", messageID, "err", err)
		return err
	}
	return nil
}

// Delete removes the requester's own message. Deleting an already-absent
// message succeeds, deleting another user's message is rejected.
func (svc *BoardService) Delete(ctx context.Context, messageID int64, requesterID *int64) error {
	message, err := svc.reader.GetByID(ctx, messageID)
	if err != nil {
		logger.Log.Errorw("failed to get message", "id", messageID, "err", err)
		return err
	}
	if message == nil {
		logger.Log.Infow("message already deleted", "id", messageID)
		return nil
	}
	if requesterID == nil || message.AuthorID != *requesterID {
		logger.Log.Infow("message delete rejected", "id", messageID)
		return ErrNotMessageAuthor
	}

	if err := svc.writer.Delete(ctx, messageID); err != nil {
		logger.Log.Errorw("failed to delete message", "id", messageID, "err", err)
		return err
	}
	return nil
}

// project computes the per-request view of a message.
func project(m models.MessageDB, requesterID *int64) models.MessageView {
	return models.MessageView{
		ID:      m.MessageID,
		Text:    m.Text,
		Author:  m.Author,
		CanEdit: requesterID != nil && m.AuthorID == *requesterID,
	}
}
