package store

import (
	"context"
	"database/sql"
	"time"

	"golang.org/x/crypto/bcrypt"

	"bookface/apperr"
	"bookface/models"
	"bookface/utils"
)

func (s *Store) Register(ctx context.Context, reg *models.Registration) (*models.User, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM users WHERE email = ?)", reg.Email,
	).Scan(&exists)
	if err != nil {
		return nil, dbError(err)
	}
	if exists {
		return nil, apperr.ErrDuplicateEmail
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, dbError(err)
	}

	user := &models.User{
		ID:             utils.GenerateUUID(),
		FirstName:      reg.FirstName,
		LastName:       reg.LastName,
		Email:          reg.Email,
		ProfilePicture: "/images/default-profile.png",
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	_, err = s.db.ExecContext(ctx,
		"INSERT INTO users (id, first_name, last_name, email, password, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		user.ID, user.FirstName, user.LastName, user.Email, string(hashedPassword), user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		return nil, dbError(err)
	}

	return user, nil
}

// Authenticate answers the same failure for an unknown email and a wrong
// password, so callers cannot probe which accounts exist.
func (s *Store) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	email = models.NormalizeEmail(email)

	var user models.User
	err := s.db.QueryRowContext(ctx,
		"SELECT id, first_name, last_name, email, password, bio, profile_picture, created_at FROM users WHERE email = ?",
		email,
	).Scan(&user.ID, &user.FirstName, &user.LastName, &user.Email, &user.Password, &user.Bio, &user.ProfilePicture, &user.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, apperr.ErrInvalidCredentials
	}
	if err != nil {
		return nil, dbError(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperr.ErrInvalidCredentials
	}

	user.Password = ""
	return &user, nil
}

func (s *Store) GetUser(ctx context.Context, userID string) (*models.User, error) {
	var user models.User
	err := s.db.QueryRowContext(ctx,
		"SELECT id, first_name, last_name, email, bio, profile_picture, created_at FROM users WHERE id = ?",
		userID,
	).Scan(&user.ID, &user.FirstName, &user.LastName, &user.Email, &user.Bio, &user.ProfilePicture, &user.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, apperr.ErrUserNotFound
	}
	if err != nil {
		return nil, dbError(err)
	}

	return &user, nil
}

func (s *Store) UpdateProfile(ctx context.Context, userID string, upd *models.ProfileUpdate) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE users SET first_name = ?, last_name = ?, bio = ?, updated_at = ? WHERE id = ?",
		upd.FirstName, upd.LastName, upd.Bio, time.Now(), userID,
	)
	if err != nil {
		return dbError(err)
	}
	return nil
}

// SuggestedFriends lists users the viewer is not yet friends with, for the
// friends page sidebar.
func (s *Store) SuggestedFriends(ctx context.Context, userID string, limit int) ([]models.User, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, first_name, last_name, bio, profile_picture FROM users
		WHERE id != ? AND id NOT IN (SELECT friend_id FROM friends WHERE user_id = ?)
		ORDER BY first_name, last_name
		LIMIT ?
	`, userID, userID, limit)
	if err != nil {
		return nil, dbError(err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.FirstName, &user.LastName, &user.Bio, &user.ProfilePicture); err != nil {
			continue
		}
		users = append(users, user)
	}

	if users == nil {
		users = []models.User{}
	}

	return users, nil
}

func (s *Store) userExists(ctx context.Context, userID string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM users WHERE id = ?)", userID,
	).Scan(&exists)
	if err != nil {
		return false, dbError(err)
	}
	return exists, nil
}
