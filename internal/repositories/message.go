package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-message-board/internal/logger"
	"github.com/sbilibin2017/gw-message-board/internal/middlewares"
	"github.com/sbilibin2017/gw-message-board/internal/models"
)

type MessageReadRepository struct {
	db *sqlx.DB
}

func NewMessageReadRepository(db *sqlx.DB) *MessageReadRepository {
	return &MessageReadRepository{db: db}
}

// List returns all messages in insertion order, each joined with its author's username.
func (r *MessageReadRepository) List(ctx context.Context) ([]models.MessageDB, error) {
	const query = `
		SELECT m.message_id, m.text, m.author_id, u.username AS author, m.created_at
		FROM messages m
		JOIN users u ON u.user_id = m.author_id
		ORDER BY m.message_id
	`

	messages := []models.MessageDB{}
	err := r.db.SelectContext(ctx, &messages, query)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(messages),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return messages, nil
}

// GetByID returns the message with the given id, or nil if absent.
func (r *MessageReadRepository) GetByID(ctx context.Context, messageID int64) (*models.MessageDB, error) {
	const query = `
		SELECT m.message_id, m.text, m.author_id, u.username AS author, m.created_at
		FROM messages m
		JOIN users u ON u.user_id = m.author_id
		WHERE m.message_id = $1
	`

	var message models.MessageDB
	err := r.db.GetContext(ctx, &message, query, messageID)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{messageID},
		"result", message,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &message, nil
}

type MessageWriteRepository struct {
	db *sqlx.DB
}

func NewMessageWriteRepository(db *sqlx.DB) *MessageWriteRepository {
	return &MessageWriteRepository{db: db}
}

// Save inserts a new message and returns the assigned id.
func (r *MessageWriteRepository) Save(ctx context.Context, text string, authorID int64) (int64, error) {
	const query = `
		INSERT INTO messages (text, author_id, created_at)
		VALUES ($1, $2, NOW())
		RETURNING message_id
	`
	args := []any{text, authorID}

	var messageID int64
	err := sqlx.GetContext(ctx, r.ext(ctx), &messageID, query, args...)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", messageID,
		"error", err,
	)

	if err != nil {
		return 0, err
	}

	return messageID, nil
}

// UpdateText replaces the text of the given message.
func (r *MessageWriteRepository) UpdateText(ctx context.Context, messageID int64, text string) error {
	const query = `
		UPDATE messages
		SET text = $2
		WHERE message_id = $1
	`
	args := []any{messageID, text}

	res, err := r.ext(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// Delete removes the given message.
func (r *MessageWriteRepository) Delete(ctx context.Context, messageID int64) error {
	const query = `
		DELETE FROM messages
		WHERE message_id = $1
	`
	args := []any{messageID}

	res, err := r.ext(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// ext returns the request transaction when one is present in the context.
func (r *MessageWriteRepository) ext(ctx context.Context) sqlx.ExtContext {
	if tx := middlewares.GetTxFromContext(ctx); tx != nil {
		return tx
	}
	return r.db
}
