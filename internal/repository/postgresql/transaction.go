package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/analytics-backend-go/internal/domain/analytics"
	"github.com/cmlabs-hris/analytics-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

// WithTransaction executes fn inside a database transaction. The transaction
// is injected into fn's context so that store methods called through
// GetQuerier run on it instead of the pool.
func WithTransaction(ctx context.Context, db *database.DB, opts pgx.TxOptions, fn func(ctx context.Context) error) error {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				fmt.Printf("rollback error during panic recovery: %v\n", rbErr)
			}
			panic(p)
		}
	}()

	if err := fn(context.WithValue(ctx, "tx", tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback error: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

type snapshotRunnerImpl struct {
	db *database.DB
}

func NewSnapshotRunner(db *database.DB) analytics.SnapshotRunner {
	return &snapshotRunnerImpl{db: db}
}

// ReadSnapshot runs fn inside a read-only repeatable-read transaction, so
// every store call fn makes sees the same database snapshot.
func (r *snapshotRunnerImpl) ReadSnapshot(ctx context.Context, fn func(ctx context.Context) error) error {
	return WithTransaction(ctx, r.db, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	}, fn)
}

// GetQuerier returns either transaction or pool
// Used in repositories to support both transactional and non-transactional operations
func GetQuerier(ctx context.Context, db *database.DB) database.Querier {
	if tx, ok := ctx.Value("tx").(pgx.Tx); ok {
		return tx
	}
	return db.Pool
}
