package database

import (
	"database/sql"
	"log"

	"bookface/config"

	_ "github.com/go-sql-driver/mysql"
)

var DB *sql.DB

func Connect() error {
	var err error
	DB, err = sql.Open("mysql", config.Cfg.MysqlDSN)
	if err != nil {
		return err
	}

	if err = DB.Ping(); err != nil {
		return err
	}

	DB.SetMaxOpenConns(25)
	DB.SetMaxIdleConns(5)

	log.Println("Database connected successfully")
	return nil
}

func Close() {
	if DB != nil {
		DB.Close()
	}
}

func CreateTables() error {
	return CreateTablesOn(DB)
}

// CreateTablesOn lets tests build the schema on their own connection.
func CreateTablesOn(db *sql.DB) error {
	tables := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id              VARCHAR(36) PRIMARY KEY,
			first_name      VARCHAR(50) NOT NULL,
			last_name       VARCHAR(50) NOT NULL,
			email           VARCHAR(255) NOT NULL,
			password        VARCHAR(255) NOT NULL,
			bio             VARCHAR(500) NOT NULL DEFAULT '',
			profile_picture VARCHAR(255) NOT NULL DEFAULT '/images/default-profile.png',
			created_at      DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at      DATETIME DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			UNIQUE KEY uk_email (email)
		)`,
		`CREATE TABLE IF NOT EXISTS friends (
			user_id     VARCHAR(36) NOT NULL,
			friend_id   VARCHAR(36) NOT NULL,
			created_at  DATETIME DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (user_id, friend_id),
			INDEX idx_friend (friend_id)
		)`,
		`CREATE TABLE IF NOT EXISTS friend_requests (
			id           VARCHAR(36) PRIMARY KEY,
			requester_id VARCHAR(36) NOT NULL,
			recipient_id VARCHAR(36) NOT NULL,
			status       ENUM('pending', 'accepted', 'declined') DEFAULT 'pending',
			created_at   DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at   DATETIME DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			INDEX idx_requester (requester_id),
			INDEX idx_recipient (recipient_id, status)
		)`,
		`CREATE TABLE IF NOT EXISTS posts (
			id          VARCHAR(36) PRIMARY KEY,
			author_id   VARCHAR(36) NOT NULL,
			content     VARCHAR(1000) NOT NULL,
			created_at  DATETIME(6) DEFAULT CURRENT_TIMESTAMP(6),
			updated_at  DATETIME(6) DEFAULT CURRENT_TIMESTAMP(6) ON UPDATE CURRENT_TIMESTAMP(6),
			INDEX idx_author_time (author_id, created_at)
		)`,
		`CREATE TABLE IF NOT EXISTS post_likes (
			post_id     VARCHAR(36) NOT NULL,
			user_id     VARCHAR(36) NOT NULL,
			created_at  DATETIME DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (post_id, user_id)
		)`,
		`CREATE TABLE IF NOT EXISTS post_comments (
			id          VARCHAR(36) PRIMARY KEY,
			post_id     VARCHAR(36) NOT NULL,
			author_id   VARCHAR(36) NOT NULL,
			content     VARCHAR(1000) NOT NULL,
			created_at  DATETIME(6) DEFAULT CURRENT_TIMESTAMP(6),
			INDEX idx_post_time (post_id, created_at)
		)`,
		`CREATE TABLE IF NOT EXISTS messages (
			id           VARCHAR(36) PRIMARY KEY,
			sender_id    VARCHAR(36) NOT NULL,
			recipient_id VARCHAR(36) NOT NULL,
			content      VARCHAR(1000) NOT NULL,
			is_read      BOOLEAN NOT NULL DEFAULT FALSE,
			created_at   DATETIME(6) DEFAULT CURRENT_TIMESTAMP(6),
			INDEX idx_sender_time (sender_id, created_at),
			INDEX idx_recipient_time (recipient_id, created_at),
			INDEX idx_unread (recipient_id, sender_id, is_read)
		)`,
	}

	for _, table := range tables {
		if _, err := db.Exec(table); err != nil {
			return err
		}
	}

	log.Println("Database tables created successfully")
	return nil
}
