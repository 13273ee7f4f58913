package models

import "github.com/uptrace/bun"

// User is an account holder. Password always stores a bcrypt hash,
// never plaintext. Avatar holds the raw uploaded image bytes; encoding
// for transport happens at the handler layer.
type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID       int    `bun:"id,pk,autoincrement" json:"id"`
	Username string `bun:"username,notnull,unique" json:"username"`
	Email    string `bun:"email,notnull,unique" json:"email"`
	Password string `bun:"password,notnull" json:"-"`
	Avatar   []byte `bun:"avatar" json:"-"`

	Notes  []*Note  `bun:"rel:has-many,join:id=user_id" json:"-"`
	Verses []*Verse `bun:"rel:has-many,join:id=user_id" json:"-"`
}
