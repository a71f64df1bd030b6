// Command seed establishes a friendship between two users identified by
// email, registering them first when absent. Handy for wiring up test
// accounts on a fresh database; running it twice is harmless.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"strings"
	"time"

	"bookface/apperr"
	"bookface/config"
	"bookface/database"
	"bookface/models"
	"bookface/store"
)

func main() {
	emailA := flag.String("a", "john.doe@test.com", "email of the first user")
	emailB := flag.String("b", "jane.smith@test.com", "email of the second user")
	password := flag.String("password", "password123", "password for newly created users")
	flag.Parse()

	config.Load()

	if err := database.Connect(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	if err := database.CreateTables(); err != nil {
		log.Fatalf("Failed to create tables: %v", err)
	}

	ctx := context.Background()
	st := store.New(database.DB)

	a := findOrRegister(ctx, st, *emailA, *password)
	b := findOrRegister(ctx, st, *emailB, *password)

	now := time.Now()
	for _, pair := range [][2]string{{a, b}, {b, a}} {
		_, err := database.DB.ExecContext(ctx,
			"INSERT IGNORE INTO friends (user_id, friend_id, created_at) VALUES (?, ?, ?)",
			pair[0], pair[1], now,
		)
		if err != nil {
			log.Fatalf("Failed to insert friendship: %v", err)
		}
	}

	log.Printf("Friendship established between %s and %s", *emailA, *emailB)
}

func findOrRegister(ctx context.Context, st *store.Store, email, password string) string {
	reg, err := models.NewRegistration(nameFromEmail(email), "Test", email, password, password)
	if err != nil {
		log.Fatalf("Bad input for %s: %v", email, err)
	}

	user, err := st.Register(ctx, reg)
	if err == nil {
		log.Printf("Registered %s", email)
		return user.ID
	}
	if !errors.Is(err, apperr.ErrDuplicateEmail) {
		log.Fatalf("Failed to register %s: %v", email, err)
	}

	var id string
	err = database.DB.QueryRowContext(ctx,
		"SELECT id FROM users WHERE email = ?", models.NormalizeEmail(email),
	).Scan(&id)
	if err != nil {
		log.Fatalf("Failed to look up %s: %v", email, err)
	}
	return id
}

func nameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	first, _, _ := strings.Cut(local, ".")
	if first == "" {
		return "User"
	}
	return strings.ToUpper(first[:1]) + first[1:]
}
