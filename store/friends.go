package store

import (
	"context"
	"database/sql"
	"time"

	"bookface/apperr"
	"bookface/models"
	"bookface/utils"
)

func (s *Store) Friends(ctx context.Context, userID string) ([]models.User, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT u.id, u.first_name, u.last_name, u.bio, u.profile_picture
		FROM friends f
		JOIN users u ON u.id = f.friend_id
		WHERE f.user_id = ?
		ORDER BY u.first_name, u.last_name
	`, userID)
	if err != nil {
		return nil, dbError(err)
	}
	defer rows.Close()

	var friends []models.User
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.FirstName, &user.LastName, &user.Bio, &user.ProfilePicture); err != nil {
			continue
		}
		friends = append(friends, user)
	}

	if friends == nil {
		friends = []models.User{}
	}

	return friends, nil
}

// RemoveFriend deletes both directions of the friendship. Removing a
// non-friend is a no-op, not an error.
func (s *Store) RemoveFriend(ctx context.Context, userID, otherID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return dbError(err)
	}

	_, err = tx.ExecContext(ctx,
		"DELETE FROM friends WHERE (user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)",
		userID, otherID, otherID, userID,
	)
	if err != nil {
		tx.Rollback()
		return dbError(err)
	}

	if err := tx.Commit(); err != nil {
		return dbError(err)
	}
	return nil
}

// SendFriendRequest creates a pending request between the pair. A request
// already on record in either direction, whatever its status, makes this a
// silent no-op — the reference behavior, which also means a declined pair
// can never re-request.
func (s *Store) SendFriendRequest(ctx context.Context, requesterID, recipientID string) error {
	if requesterID == recipientID {
		return nil
	}

	exists, err := s.userExists(ctx, recipientID)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.ErrUserNotFound
	}

	var taken bool
	err = s.db.QueryRowContext(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM friend_requests
			WHERE (requester_id = ? AND recipient_id = ?)
			   OR (requester_id = ? AND recipient_id = ?)
		)
	`, requesterID, recipientID, recipientID, requesterID).Scan(&taken)
	if err != nil {
		return dbError(err)
	}
	if taken {
		return nil
	}

	now := time.Now()
	_, err = s.db.ExecContext(ctx,
		"INSERT INTO friend_requests (id, requester_id, recipient_id, status, created_at, updated_at) VALUES (?, ?, ?, 'pending', ?, ?)",
		utils.GenerateUUID(), requesterID, recipientID, now, now,
	)
	if err != nil {
		return dbError(err)
	}
	return nil
}

// AcceptFriendRequest moves a pending request to accepted and records the
// friendship in both directions, all in one transaction. Only the recipient
// may accept; a resolved request stays resolved.
func (s *Store) AcceptFriendRequest(ctx context.Context, requestID, actingUserID string) error {
	req, err := s.getRequest(ctx, requestID)
	if err != nil {
		return err
	}
	if req.RecipientID != actingUserID {
		return apperr.ErrNotRecipient
	}
	if req.Status != models.RequestPending {
		return apperr.ErrRequestResolved
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return dbError(err)
	}

	now := time.Now()

	result, err := tx.ExecContext(ctx,
		"UPDATE friend_requests SET status = 'accepted', updated_at = ? WHERE id = ? AND status = 'pending'",
		now, requestID,
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
		return apperr.ErrRequestResolved
	}

	for _, pair := range [][2]string{{req.RequesterID, req.RecipientID}, {req.RecipientID, req.RequesterID}} {
		_, err = tx.ExecContext(ctx,
			"INSERT IGNORE INTO friends (user_id, friend_id, created_at) VALUES (?, ?, ?)",
			pair[0], pair[1], now,
		)
		if err != nil {
			tx.Rollback()
			return dbError(err)
		}
	}

	if err := tx.Commit(); err != nil {
		return dbError(err)
	}
	return nil
}

// DeclineFriendRequest applies the same recipient guard as accept.
func (s *Store) DeclineFriendRequest(ctx context.Context, requestID, actingUserID string) error {
	req, err := s.getRequest(ctx, requestID)
	if err != nil {
		return err
	}
	if req.RecipientID != actingUserID {
		return apperr.ErrNotRecipient
	}
	if req.Status != models.RequestPending {
		return apperr.ErrRequestResolved
	}

	result, err := s.db.ExecContext(ctx,
		"UPDATE friend_requests SET status = 'declined', updated_at = ? WHERE id = ? AND status = 'pending'",
		time.Now(), requestID,
	)
	if err != nil {
		return dbError(err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return dbError(err)
	}
	if rowsAffected == 0 {
		return apperr.ErrRequestResolved
	}
	return nil
}

func (s *Store) PendingRequestsFor(ctx context.Context, userID string) ([]models.RequestWithUser, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT r.id, r.requester_id, r.recipient_id, r.status, r.created_at, r.updated_at,
			   u.id, u.first_name, u.last_name, u.profile_picture
		FROM friend_requests r
		JOIN users u ON u.id = r.requester_id
		WHERE r.recipient_id = ? AND r.status = 'pending'
		ORDER BY r.created_at DESC
	`, userID)
	if err != nil {
		return nil, dbError(err)
	}
	defer rows.Close()

	var requests []models.RequestWithUser
	for rows.Next() {
		var r models.RequestWithUser
		var user models.User
		if err := rows.Scan(
			&r.ID, &r.RequesterID, &r.RecipientID, &r.Status, &r.CreatedAt, &r.UpdatedAt,
			&user.ID, &user.FirstName, &user.LastName, &user.ProfilePicture,
		); err != nil {
			continue
		}
		r.Requester = user
		requests = append(requests, r)
	}

	if requests == nil {
		requests = []models.RequestWithUser{}
	}

	return requests, nil
}

func (s *Store) getRequest(ctx context.Context, requestID string) (*models.FriendRequest, error) {
	var req models.FriendRequest
	err := s.db.QueryRowContext(ctx,
		"SELECT id, requester_id, recipient_id, status, created_at, updated_at FROM friend_requests WHERE id = ?",
		requestID,
	).Scan(&req.ID, &req.RequesterID, &req.RecipientID, &req.Status, &req.CreatedAt, &req.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, apperr.ErrRequestNotFound
	}
	if err != nil {
		return nil, dbError(err)
	}
	return &req, nil
}
