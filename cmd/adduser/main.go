// cmd/adduser/main.go
// Creates or updates a user in the database.
//
// Usage:
//
//	go run ./cmd/adduser -username ann -email ann@example.com -password secret
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/cdaly/biblenotes/config"
	bundb "github.com/cdaly/biblenotes/db"
	"github.com/cdaly/biblenotes/models"
	"github.com/cdaly/biblenotes/password"
)

func main() {
	username := flag.String("username", "", "username (required)")
	email := flag.String("email", "", "email address (required)")
	pass := flag.String("password", "", "plain-text password (required)")
	flag.Parse()

	if *username == "" || *email == "" || *pass == "" {
		log.Fatal("-username, -email and -password are all required")
	}

	hash, err := password.Hash(*pass)
	if err != nil {
		log.Fatal("hash password:", err)
	}

	cfg := config.Load()
	db := bundb.Setup(cfg)
	defer db.Close()

	ctx := context.Background()
	if err := bundb.CreateTables(ctx, db); err != nil {
		log.Fatal("create tables:", err)
	}

	user := &models.User{
		Username: *username,
		Email:    *email,
		Password: hash,
	}

	_, err = db.NewInsert().Model(user).
		On("CONFLICT (email) DO UPDATE SET username = EXCLUDED.username, password = EXCLUDED.password").
		Exec(ctx)
	if err != nil {
		log.Fatal("insert user:", err)
	}

	fmt.Printf("user %q saved\n", *email)
}
