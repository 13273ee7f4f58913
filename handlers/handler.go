package handlers

import (
	"github.com/uptrace/bun"

	"github.com/cdaly/biblenotes/bible"
)

// Handler holds shared dependencies used by all route handlers.
type Handler struct {
	db    *bun.DB
	bible *bible.Client
}

// New creates a Handler with the given database connection and Bible API client.
func New(db *bun.DB, bc *bible.Client) *Handler {
	return &Handler{db: db, bible: bc}
}
