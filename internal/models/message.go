package models

import "time"

// MessageDB represents a message record in the database,
// joined with the author's username.
type MessageDB struct {
	MessageID int64     `json:"message_id" db:"message_id"` // Primary key
	Text      string    `json:"text" db:"text"`             // Message body, the only mutable column
	AuthorID  int64     `json:"author_id" db:"author_id"`   // Foreign key to users, immutable
	Author    string    `json:"author" db:"author"`         // Author username, joined from users
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}

// MessageView is the per-request projection of a message.
// CanEdit is recomputed on every read and never stored.
type MessageView struct {
	ID      int64  `json:"id"`
	Text    string `json:"text"`
	Author  string `json:"author"`
	CanEdit bool   `json:"canEdit"`
}
