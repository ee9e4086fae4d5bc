package postgresql

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/analytics-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
)

type fakeTx struct {
	pgx.Tx
}

func TestGetQuerier_PrefersContextTransaction(t *testing.T) {
	db := &database.DB{}
	tx := fakeTx{}
	ctx := context.WithValue(context.Background(), "tx", pgx.Tx(tx))

	q := GetQuerier(ctx, db)

	assert.Equal(t, tx, q, "store calls inside a transaction must run on it")
}

func TestGetQuerier_FallsBackToPool(t *testing.T) {
	db := &database.DB{}

	q := GetQuerier(context.Background(), db)

	assert.Equal(t, db.Pool, q)
}
