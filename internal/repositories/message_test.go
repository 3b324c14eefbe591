package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessageRepositories_CRUD(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	users := NewUserWriteRepository(db)
	writeRepo := NewMessageWriteRepository(db)
	readRepo := NewMessageReadRepository(db)
	ctx := context.Background()

	aliceID, err := users.Save(ctx, "alice", "hash")
	assert.NoError(t, err)
	bobID, err := users.Save(ctx, "bob", "hash")
	assert.NoError(t, err)

	firstID, err := writeRepo.Save(ctx, "first message", aliceID)
	assert.NoError(t, err)
	assert.NotZero(t, firstID)
	secondID, err := writeRepo.Save(ctx, "second message", bobID)
	assert.NoError(t, err)

	t.Run("get joins the author username", func(t *testing.T) {
		message, err := readRepo.GetByID(ctx, firstID)
		assert.NoError(t, err)
		assert.NotNil(t, message)
		assert.Equal(t, firstID, message.MessageID)
		assert.Equal(t, "first message", message.Text)
		assert.Equal(t, aliceID, message.AuthorID)
		assert.Equal(t, "alice", message.Author)
	})

	t.Run("get absent message returns nil", func(t *testing.T) {
		message, err := readRepo.GetByID(ctx, firstID+1000)
		assert.NoError(t, err)
		assert.Nil(t, message)
	})

	t.Run("list returns insertion order", func(t *testing.T) {
		messages, err := readRepo.List(ctx)
		assert.NoError(t, err)
		assert.Len(t, messages, 2)
		assert.Equal(t, firstID, messages[0].MessageID)
		assert.Equal(t, secondID, messages[1].MessageID)
		assert.Equal(t, "alice", messages[0].Author)
		assert.Equal(t, "bob", messages[1].Author)
	})

	t.Run("update replaces only the text", func(t *testing.T) {
		assert.NoError(t, writeRepo.UpdateText(ctx, firstID, "edited"))

		message, err := readRepo.GetByID(ctx, firstID)
		assert.NoError(t, err)
		assert.Equal(t, "edited", message.Text)
		assert.Equal(t, aliceID, message.AuthorID)
	})

	t.Run("delete removes the row", func(t *testing.T) {
		assert.NoError(t, writeRepo.Delete(ctx, firstID))

		message, err := readRepo.GetByID(ctx, firstID)
		assert.NoError(t, err)
		assert.Nil(t, message)

		messages, err := readRepo.List(ctx)
		assert.NoError(t, err)
		assert.Len(t, messages, 1)
	})

	t.Run("delete of an absent row is a no-op", func(t *testing.T) {
		assert.NoError(t, writeRepo.Delete(ctx, firstID))
	})
}
