package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"log/slog"

	entdialect "entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"modernc.org/sqlite"

	"github.com/solargrid-io/lease-tracker/gen/ent"
)

// sqliteDriver adapts the cgo-free sqlite driver to the name Ent's
// sqlite3 dialect expects, switching foreign keys on per connection.
type sqliteDriver struct {
	*sqlite.Driver
}

func (d sqliteDriver) Open(name string) (driver.Conn, error) {
	conn, err := d.Driver.Open(name)
	if err != nil {
		return conn, err
	}
	c := conn.(interface {
		Exec(stmt string, args []driver.Value) (driver.Result, error)
	})
	if _, err := c.Exec("PRAGMA foreign_keys = on;", nil); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	return conn, nil
}

func init() {
	sql.Register("sqlite3", sqliteDriver{Driver: &sqlite.Driver{}})
}

// OpenSQLite opens a standalone sqlite database (":memory:" for ephemeral
// batch runs) and migrates the schema. There is no pool to manage.
func OpenSQLite(ctx context.Context, path string, logger *slog.Logger) (*ent.Client, error) {
	if logger == nil {
		logger = slog.Default()
	}
	dsn := path
	if path == ":memory:" {
		dsn = "file:lease-tracker?mode=memory&cache=shared"
	}

	drv, err := entsql.Open(entdialect.SQLite, dsn)
	if err != nil {
		logger.Error("failed to open sqlite database", "path", path, "error", err)
		return nil, err
	}
	client := ent.NewClient(ent.Driver(drv))

	if err := client.Schema.Create(ctx); err != nil {
		_ = client.Close()
		logger.Error("failed to migrate sqlite schema", "path", path, "error", err)
		return nil, err
	}
	logger.Info("sqlite database ready", "path", path)
	return client, nil
}
