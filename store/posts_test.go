package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookface/apperr"
)

func TestCreatePost_Validation(t *testing.T) {
	cleanTables(t)
	ctx := context.Background()

	john := mustRegister(t, "John", "Doe", "john@test.com")

	_, err := testStore.CreatePost(ctx, john.ID, "  ")
	assert.ErrorIs(t, err, apperr.ErrEmptyContent)

	post, err := testStore.CreatePost(ctx, john.ID, "  hello world  ")
	require.NoError(t, err)
	assert.Equal(t, "hello world", post.Content)
}

func TestDeletePostIfOwner(t *testing.T) {
	cleanTables(t)
	ctx := context.Background()

	john := mustRegister(t, "John", "Doe", "john@test.com")
	jane := mustRegister(t, "Jane", "Smith", "jane@test.com")

	post, err := testStore.CreatePost(ctx, john.ID, "mine")
	require.NoError(t, err)

	t.Run("non-owner delete is a silent no-op", func(t *testing.T) {
		require.NoError(t, testStore.DeletePostIfOwner(ctx, post.ID, jane.ID))
		posts, err := testStore.ListRecentPosts(ctx, john.ID, 20)
		require.NoError(t, err)
		assert.Len(t, posts, 1)
	})

	t.Run("missing post is a silent no-op", func(t *testing.T) {
		require.NoError(t, testStore.DeletePostIfOwner(ctx, "missing-id", john.ID))
	})

	t.Run("owner delete removes the post and its attachments", func(t *testing.T) {
		require.NoError(t, testStore.ToggleLike(ctx, post.ID, jane.ID))
		require.NoError(t, testStore.AddComment(ctx, post.ID, jane.ID, "nice"))

		require.NoError(t, testStore.DeletePostIfOwner(ctx, post.ID, john.ID))

		posts, err := testStore.ListRecentPosts(ctx, john.ID, 20)
		require.NoError(t, err)
		assert.Empty(t, posts)

		var leftovers int
		require.NoError(t, testDB.QueryRow(
			"SELECT (SELECT COUNT(*) FROM post_likes) + (SELECT COUNT(*) FROM post_comments)",
		).Scan(&leftovers))
		assert.Equal(t, 0, leftovers)
	})
}

func TestListRecentPosts_OrderAndAttachments(t *testing.T) {
	cleanTables(t)
	ctx := context.Background()

	john := mustRegister(t, "John", "Doe", "john@test.com")
	jane := mustRegister(t, "Jane", "Smith", "jane@test.com")

	first, err := testStore.CreatePost(ctx, john.ID, "older")
	require.NoError(t, err)
	second, err := testStore.CreatePost(ctx, jane.ID, "newer")
	require.NoError(t, err)

	require.NoError(t, testStore.ToggleLike(ctx, first.ID, jane.ID))
	require.NoError(t, testStore.ToggleLike(ctx, first.ID, john.ID))
	require.NoError(t, testStore.AddComment(ctx, first.ID, jane.ID, "first comment"))
	require.NoError(t, testStore.AddComment(ctx, first.ID, john.ID, "second comment"))

	posts, err := testStore.ListRecentPosts(ctx, jane.ID, 20)
	require.NoError(t, err)
	require.Len(t, posts, 2)

	assert.Equal(t, second.ID, posts[0].ID)
	assert.Equal(t, "Jane Smith", posts[0].AuthorName)

	older := posts[1]
	assert.Equal(t, 2, older.LikeCount)
	assert.True(t, older.LikedByMe)
	require.Len(t, older.Comments, 2)
	assert.Equal(t, "first comment", older.Comments[0].Content)
	assert.Equal(t, "second comment", older.Comments[1].Content)
}

func TestListPostsByAuthor(t *testing.T) {
	cleanTables(t)
	ctx := context.Background()

	john := mustRegister(t, "John", "Doe", "john@test.com")
	jane := mustRegister(t, "Jane", "Smith", "jane@test.com")

	_, err := testStore.CreatePost(ctx, john.ID, "john's post")
	require.NoError(t, err)
	_, err = testStore.CreatePost(ctx, jane.ID, "jane's post")
	require.NoError(t, err)

	posts, err := testStore.ListPostsByAuthor(ctx, john.ID, john.ID)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "john's post", posts[0].Content)
}

func TestToggleLike(t *testing.T) {
	cleanTables(t)
	ctx := context.Background()

	john := mustRegister(t, "John", "Doe", "john@test.com")

	post, err := testStore.CreatePost(ctx, john.ID, "likeable")
	require.NoError(t, err)

	err = testStore.ToggleLike(ctx, "missing-id", john.ID)
	assert.ErrorIs(t, err, apperr.ErrPostNotFound)

	require.NoError(t, testStore.ToggleLike(ctx, post.ID, john.ID))
	posts, err := testStore.ListRecentPosts(ctx, john.ID, 20)
	require.NoError(t, err)
	assert.Equal(t, 1, posts[0].LikeCount)
	assert.True(t, posts[0].LikedByMe)

	require.NoError(t, testStore.ToggleLike(ctx, post.ID, john.ID))
	posts, err = testStore.ListRecentPosts(ctx, john.ID, 20)
	require.NoError(t, err)
	assert.Equal(t, 0, posts[0].LikeCount)
	assert.False(t, posts[0].LikedByMe)
}
