package models

import "github.com/uptrace/bun"

// Verse bookmarks a scripture reference (e.g. "GEN.1.1") for a user.
// Create-only, like Note.
type Verse struct {
	bun.BaseModel `bun:"table:verses,alias:v"`

	ID        int    `bun:"id,pk,autoincrement" json:"id"`
	Reference string `bun:"reference,notnull" json:"reference"`
	UserID    int    `bun:"user_id,notnull" json:"userId"`

	User *User `bun:"rel:belongs-to,join:user_id=id,on_delete:CASCADE" json:"-"`
}
