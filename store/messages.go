package store

import (
	"context"
	"time"

	"bookface/apperr"
	"bookface/models"
	"bookface/utils"
)

func (s *Store) SendMessage(ctx context.Context, senderID, recipientID, content string) (*models.Message, error) {
	content, err := models.ValidateContent(content)
	if err != nil {
		return nil, err
	}

	exists, err := s.userExists(ctx, recipientID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.ErrUserNotFound
	}

	msg := &models.Message{
		ID:          utils.GenerateUUID(),
		SenderID:    senderID,
		RecipientID: recipientID,
		Content:     content,
		CreatedAt:   time.Now(),
	}

	_, err = s.db.ExecContext(ctx,
		"INSERT INTO messages (id, sender_id, recipient_id, content, is_read, created_at) VALUES (?, ?, ?, ?, FALSE, ?)",
		msg.ID, msg.SenderID, msg.RecipientID, msg.Content, msg.CreatedAt,
	)
	if err != nil {
		return nil, dbError(err)
	}

	return msg, nil
}

// ConversationWith returns the full history between the viewer and the
// counterpart, oldest first, and in the same transaction marks every unread
// message from the counterpart as read. Reading is the only way a message
// becomes read; the operation is idempotent.
func (s *Store) ConversationWith(ctx context.Context, userID, otherID string) ([]models.Message, error) {
	exists, err := s.userExists(ctx, otherID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.ErrUserNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, dbError(err)
	}

	rows, err := tx.QueryContext(ctx, `
		SELECT m.id, m.sender_id, m.recipient_id, m.content, m.is_read, m.created_at,
			   u.first_name, u.last_name
		FROM messages m
		JOIN users u ON u.id = m.sender_id
		WHERE (m.sender_id = ? AND m.recipient_id = ?)
		   OR (m.sender_id = ? AND m.recipient_id = ?)
		ORDER BY m.created_at
	`, userID, otherID, otherID, userID)
	if err != nil {
		tx.Rollback()
		return nil, dbError(err)
	}

	var messages []models.Message
	for rows.Next() {
		var msg models.Message
		var firstName, lastName string
		if err := rows.Scan(&msg.ID, &msg.SenderID, &msg.RecipientID, &msg.Content, &msg.IsRead, &msg.CreatedAt, &firstName, &lastName); err != nil {
			continue
		}
		msg.SenderName = firstName + " " + lastName
		if msg.SenderID == otherID {
			msg.IsRead = true
		}
		messages = append(messages, msg)
	}
	rows.Close()

	_, err = tx.ExecContext(ctx,
		"UPDATE messages SET is_read = TRUE WHERE sender_id = ? AND recipient_id = ? AND is_read = FALSE",
		otherID, userID,
	)
	if err != nil {
		tx.Rollback()
		return nil, dbError(err)
	}

	if err := tx.Commit(); err != nil {
		return nil, dbError(err)
	}

	if messages == nil {
		messages = []models.Message{}
	}

	return messages, nil
}

// UnreadCount feeds the navigation badge.
func (s *Store) UnreadCount(ctx context.Context, userID string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM messages WHERE recipient_id = ? AND is_read = FALSE",
		userID,
	).Scan(&count)
	if err != nil {
		return 0, dbError(err)
	}
	return count, nil
}
