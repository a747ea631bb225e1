package database

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrDataAccess wraps every store-level failure surfaced by the Gateway.
// Callers do not get finer-grained store errors than this.
var ErrDataAccess = errors.New("data access failure")

// Gateway is the only path to the store: a thin bind-and-run layer over
// the shared gorm handle. Every variable value travels as a bound
// parameter; no query text is built from user input here or above.
type Gateway struct {
	db *gorm.DB
}

// NewGateway wraps the process-wide database handle.
func NewGateway(db *gorm.DB) *Gateway {
	return &Gateway{db: db}
}

// Select runs a parameterized read query and scans all rows into dest.
func (g *Gateway) Select(ctx context.Context, dest any, sql string, args ...any) error {
	if err := g.db.WithContext(ctx).Raw(sql, args...).Scan(dest).Error; err != nil {
		return fmt.Errorf("%w: %v", ErrDataAccess, err)
	}
	return nil
}

// Exec runs a parameterized write statement and reports the number of
// rows affected.
func (g *Gateway) Exec(ctx context.Context, sql string, args ...any) (int64, error) {
	tx := g.db.WithContext(ctx).Exec(sql, args...)
	if tx.Error != nil {
		return 0, fmt.Errorf("%w: %v", ErrDataAccess, tx.Error)
	}
	return tx.RowsAffected, nil
}
