package database

import (
	"context"
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestGateway(t *testing.T) *Gateway {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test DB: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	return NewGateway(db)
}

func TestGatewaySelectAndExec(t *testing.T) {
	gw := newTestGateway(t)
	ctx := context.Background()

	if _, err := gw.Exec(ctx, "CREATE TABLE t (id INTEGER PRIMARY KEY, name TEXT)"); err != nil {
		t.Fatalf("expected no error creating table, got: %v", err)
	}

	affected, err := gw.Exec(ctx, "INSERT INTO t (id, name) VALUES (?, ?), (?, ?)", 1, "a", 2, "b")
	if err != nil {
		t.Fatalf("expected no error inserting, got: %v", err)
	}
	if affected != 2 {
		t.Errorf("expected 2 rows affected, got %d", affected)
	}

	var names []string
	if err := gw.Select(ctx, &names, "SELECT name FROM t WHERE id IN (?, ?) ORDER BY id", 2, 1); err != nil {
		t.Fatalf("expected no error selecting, got: %v", err)
	}
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("unexpected select result: %v", names)
	}
}

func TestGatewayWrapsStoreErrors(t *testing.T) {
	gw := newTestGateway(t)
	ctx := context.Background()

	var dest []string
	err := gw.Select(ctx, &dest, "SELECT nope FROM missing_table")
	if !errors.Is(err, ErrDataAccess) {
		t.Errorf("expected read failure wrapped in ErrDataAccess, got: %v", err)
	}

	_, err = gw.Exec(ctx, "INSERT INTO missing_table (x) VALUES (?)", 1)
	if !errors.Is(err, ErrDataAccess) {
		t.Errorf("expected write failure wrapped in ErrDataAccess, got: %v", err)
	}
}
