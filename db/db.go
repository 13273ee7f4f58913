package db

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	_ "github.com/go-sql-driver/mysql"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/mysqldialect"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/driver/sqliteshim"
	"github.com/uptrace/bun/extra/bundebug"

	"github.com/cdaly/biblenotes/config"
	"github.com/cdaly/biblenotes/models"
)

// Setup opens a database connection using the provided config.
// MYSQL_DSN selects MySQL, DATABASE_URL selects PostgreSQL, and with
// neither set a local SQLite file is used.
func Setup(cfg *config.Config) *bun.DB {
	var db *bun.DB

	switch {
	case cfg.MySQLDSN != "":
		sqldb, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			log.Fatal("failed to open mysql database:", err)
		}
		db = bun.NewDB(sqldb, mysqldialect.New())
	case cfg.DatabaseURL != "":
		sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.DatabaseURL)))
		db = bun.NewDB(sqldb, pgdialect.New())
	default:
		var err error
		db, err = OpenSQLite(fmt.Sprintf("file:%s?cache=shared", cfg.SQLitePath))
		if err != nil {
			log.Fatal("failed to open sqlite database:", err)
		}
	}

	if cfg.Debug {
		db.AddQueryHook(bundebug.NewQueryHook(bundebug.WithVerbose(true)))
	}

	if err := db.PingContext(context.Background()); err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	return db
}

// OpenSQLite opens a SQLite database from a file: DSN. Shared by the
// DATABASE_URL-unset fallback, the migrate tool and tests.
func OpenSQLite(dsn string) (*bun.DB, error) {
	sqldb, err := sql.Open(sqliteshim.ShimName, dsn)
	if err != nil {
		return nil, err
	}
	// SQLite handles one writer at a time. The single pooled connection also
	// keeps the pragma below in force for every query.
	sqldb.SetMaxOpenConns(1)
	sqldb.SetMaxIdleConns(1)

	db := bun.NewDB(sqldb, sqlitedialect.New())

	// SQLite ships with foreign keys off; without this the ON DELETE CASCADE
	// rules on notes and verses are silently ignored.
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// CreateTables creates all tables in dependency order.
func CreateTables(ctx context.Context, db *bun.DB) error {
	tables := []interface{}{
		(*models.User)(nil),
		(*models.Note)(nil),
		(*models.Verse)(nil),
	}

	for _, model := range tables {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().WithForeignKeys().Exec(ctx); err != nil {
			return fmt.Errorf("creating table for %T: %w", model, err)
		}
	}

	return nil
}
