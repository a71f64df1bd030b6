// Package store owns every query against the database. Handlers hand it an
// authenticated user id and get back models or an apperr-coded failure;
// they never touch SQL themselves.
package store

import (
	"database/sql"

	"bookface/apperr"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func dbError(err error) error {
	return apperr.Unavailable("database error", err)
}
