// Package handlers wires HTTP requests to the store and renders templates.
// Every POST answers 303 See Other on success and failure alike; only the
// login and signup forms re-render with an error string.
package handlers

import (
	"errors"

	"bookface/apperr"
	"bookface/store"
)

type Server struct {
	store *store.Store
}

func New(st *store.Store) *Server {
	return &Server{store: st}
}

// errorMessage turns a store failure into the string shown on a form.
// Store outages never leak details to the page.
func errorMessage(err error) string {
	var ae *apperr.AppError
	if errors.As(err, &ae) && ae.Code != apperr.CodeUnavailable {
		return ae.Message
	}
	return "An error occurred. Please try again."
}
