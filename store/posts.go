package store

import (
	"context"
	"strings"
	"time"

	"bookface/apperr"
	"bookface/models"
	"bookface/utils"
)

func (s *Store) CreatePost(ctx context.Context, authorID, content string) (*models.Post, error) {
	content, err := models.ValidateContent(content)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		ID:        utils.GenerateUUID(),
		AuthorID:  authorID,
		Content:   content,
		CreatedAt: time.Now(),
	}

	_, err = s.db.ExecContext(ctx,
		"INSERT INTO posts (id, author_id, content, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
		post.ID, post.AuthorID, post.Content, post.CreatedAt, post.CreatedAt,
	)
	if err != nil {
		return nil, dbError(err)
	}

	return post, nil
}

// DeletePostIfOwner removes the post and its likes and comments. A missing
// post or a non-owner caller is a silent no-op.
func (s *Store) DeletePostIfOwner(ctx context.Context, postID, actingUserID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return dbError(err)
	}

	result, err := tx.ExecContext(ctx,
		"DELETE FROM posts WHERE id = ? AND author_id = ?",
		postID, actingUserID,
	)
	if err != nil {
		tx.Rollback()
		return dbError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		tx.Rollback()
		return dbError(err)
	}
	if rowsAffected == 0 {
		tx.Rollback()
		return nil
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM post_likes WHERE post_id = ?", postID); err != nil {
		tx.Rollback()
		return dbError(err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM post_comments WHERE post_id = ?", postID); err != nil {
		tx.Rollback()
		return dbError(err)
	}

	if err := tx.Commit(); err != nil {
		return dbError(err)
	}
	return nil
}

func (s *Store) ListRecentPosts(ctx context.Context, viewerID string, limit int) ([]models.Post, error) {
	return s.listPosts(ctx, viewerID, "", limit)
}

func (s *Store) ListPostsByAuthor(ctx context.Context, viewerID, authorID string) ([]models.Post, error) {
	return s.listPosts(ctx, viewerID, authorID, 0)
}

// ToggleLike adds the viewer to the post's like set, or removes them when
// already present.
func (s *Store) ToggleLike(ctx context.Context, postID, userID string) error {
	exists, err := s.postExists(ctx, postID)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.ErrPostNotFound
	}

	result, err := s.db.ExecContext(ctx,
		"DELETE FROM post_likes WHERE post_id = ? AND user_id = ?",
		postID, userID,
	)
	if err != nil {
		return dbError(err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return dbError(err)
	}
	if rowsAffected > 0 {
		return nil
	}

	_, err = s.db.ExecContext(ctx,
		"INSERT IGNORE INTO post_likes (post_id, user_id, created_at) VALUES (?, ?, ?)",
		postID, userID, time.Now(),
	)
	if err != nil {
		return dbError(err)
	}
	return nil
}

func (s *Store) AddComment(ctx context.Context, postID, authorID, content string) error {
	content, err := models.ValidateContent(content)
	if err != nil {
		return err
	}

	exists, err := s.postExists(ctx, postID)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.ErrPostNotFound
	}

	_, err = s.db.ExecContext(ctx,
		"INSERT INTO post_comments (id, post_id, author_id, content, created_at) VALUES (?, ?, ?, ?, ?)",
		utils.GenerateUUID(), postID, authorID, content, time.Now(),
	)
	if err != nil {
		return dbError(err)
	}
	return nil
}

func (s *Store) listPosts(ctx context.Context, viewerID, authorID string, limit int) ([]models.Post, error) {
	query := `
		SELECT p.id, p.author_id, p.content, p.created_at,
			   u.first_name, u.last_name
		FROM posts p
		JOIN users u ON u.id = p.author_id`
	var args []interface{}
	if authorID != "" {
		query += " WHERE p.author_id = ?"
		args = append(args, authorID)
	}
	query += " ORDER BY p.created_at DESC"
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, dbError(err)
	}
	defer rows.Close()

	var posts []models.Post
	postIndex := make(map[string]int)
	for rows.Next() {
		var post models.Post
		var firstName, lastName string
		if err := rows.Scan(&post.ID, &post.AuthorID, &post.Content, &post.CreatedAt, &firstName, &lastName); err != nil {
			continue
		}
		post.AuthorName = firstName + " " + lastName
		post.Comments = []models.Comment{}
		postIndex[post.ID] = len(posts)
		posts = append(posts, post)
	}

	if posts == nil {
		return []models.Post{}, nil
	}

	if err := s.attachLikes(ctx, viewerID, posts, postIndex); err != nil {
		return nil, err
	}
	if err := s.attachComments(ctx, posts, postIndex); err != nil {
		return nil, err
	}

	return posts, nil
}

func (s *Store) attachLikes(ctx context.Context, viewerID string, posts []models.Post, postIndex map[string]int) error {
	placeholders, args := inArgs(postIndex)

	rows, err := s.db.QueryContext(ctx, `
		SELECT post_id, COUNT(*), MAX(user_id = ?)
		FROM post_likes
		WHERE post_id IN (`+placeholders+`)
		GROUP BY post_id
	`, append([]interface{}{viewerID}, args...)...)
	if err != nil {
		return dbError(err)
	}
	defer rows.Close()

	for rows.Next() {
		var postID string
		var count int
		var likedByMe bool
		if err := rows.Scan(&postID, &count, &likedByMe); err != nil {
			continue
		}
		if idx, ok := postIndex[postID]; ok {
			posts[idx].LikeCount = count
			posts[idx].LikedByMe = likedByMe
		}
	}
	return nil
}

func (s *Store) attachComments(ctx context.Context, posts []models.Post, postIndex map[string]int) error {
	placeholders, args := inArgs(postIndex)

	rows, err := s.db.QueryContext(ctx, `
		SELECT c.id, c.post_id, c.author_id, c.content, c.created_at,
			   u.first_name, u.last_name
		FROM post_comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.post_id IN (`+placeholders+`)
		ORDER BY c.created_at
	`, args...)
	if err != nil {
		return dbError(err)
	}
	defer rows.Close()

	for rows.Next() {
		var comment models.Comment
		var firstName, lastName string
		if err := rows.Scan(&comment.ID, &comment.PostID, &comment.AuthorID, &comment.Content, &comment.CreatedAt, &firstName, &lastName); err != nil {
			continue
		}
		comment.AuthorName = firstName + " " + lastName
		if idx, ok := postIndex[comment.PostID]; ok {
			posts[idx].Comments = append(posts[idx].Comments, comment)
		}
	}
	return nil
}

func (s *Store) postExists(ctx context.Context, postID string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM posts WHERE id = ?)", postID,
	).Scan(&exists)
	if err != nil {
		return false, dbError(err)
	}
	return exists, nil
}

func inArgs(ids map[string]int) (string, []interface{}) {
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]interface{}, 0, len(ids))
	for id := range ids {
		args = append(args, id)
	}
	return placeholders, args
}
