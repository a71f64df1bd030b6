package store

import (
	"context"
	"strings"

	"bookface/models"
)

// Conversations derives one conversation per counterpart from the flat
// message log: newest-first scan, first message seen per counterpart wins.
// The result is ordered most-recently-active first.
func (s *Store) Conversations(ctx context.Context, userID string) ([]models.Conversation, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, sender_id, recipient_id, content, is_read, created_at
		FROM messages
		WHERE sender_id = ? OR recipient_id = ?
		ORDER BY created_at DESC
	`, userID, userID)
	if err != nil {
		return nil, dbError(err)
	}
	defer rows.Close()

	var messages []models.Message
	for rows.Next() {
		var msg models.Message
		if err := rows.Scan(&msg.ID, &msg.SenderID, &msg.RecipientID, &msg.Content, &msg.IsRead, &msg.CreatedAt); err != nil {
			continue
		}
		messages = append(messages, msg)
	}

	conversations := deriveConversations(userID, messages)
	if len(conversations) == 0 {
		return []models.Conversation{}, nil
	}

	if err := s.attachCounterparts(ctx, conversations); err != nil {
		return nil, err
	}

	return conversations, nil
}

// deriveConversations groups messages by "the other participant" and keeps
// the most recent message per group. Messages must arrive sorted by
// created_at descending; ties keep scan order, so the output is
// deterministic for equal timestamps.
func deriveConversations(userID string, messages []models.Message) []models.Conversation {
	seen := make(map[string]bool)
	var conversations []models.Conversation

	for _, msg := range messages {
		counterpart := msg.SenderID
		if counterpart == userID {
			counterpart = msg.RecipientID
		}
		if seen[counterpart] {
			continue
		}
		seen[counterpart] = true
		conversations = append(conversations, models.Conversation{
			Counterpart: models.User{ID: counterpart},
			LastMessage: msg,
		})
	}

	return conversations
}

func (s *Store) attachCounterparts(ctx context.Context, conversations []models.Conversation) error {
	index := make(map[string]int, len(conversations))
	for i, conv := range conversations {
		index[conv.Counterpart.ID] = i
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(index)), ",")
	args := make([]interface{}, 0, len(index))
	for id := range index {
		args = append(args, id)
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, first_name, last_name, profile_picture FROM users WHERE id IN ("+placeholders+")",
		args...)
	if err != nil {
		return dbError(err)
	}
	defer rows.Close()

	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.FirstName, &user.LastName, &user.ProfilePicture); err != nil {
			continue
		}
		if idx, ok := index[user.ID]; ok {
			conversations[idx].Counterpart = user
		}
	}

	return nil
}
