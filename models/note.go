package models

import "github.com/uptrace/bun"

// Note is a study note owned by a user. Notes are create-only through the
// API: no update or delete endpoint exists.
type Note struct {
	bun.BaseModel `bun:"table:notes,alias:n"`

	ID      int    `bun:"id,pk,autoincrement" json:"id"`
	Title   string `bun:"title,notnull" json:"title"`
	Content string `bun:"content" json:"content"`
	UserID  int    `bun:"user_id,notnull" json:"userId"`

	User *User `bun:"rel:belongs-to,join:user_id=id,on_delete:CASCADE" json:"-"`
}
