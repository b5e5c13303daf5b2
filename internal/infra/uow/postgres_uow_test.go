//go:build unit

package uow

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel-platform/internal/infra/db"
	"hotel-platform/internal/pkg/errs"
	"hotel-platform/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTx struct {
	pgx.Tx
	execs      []string
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	t.execs = append(t.execs, sql)
	return pgconn.NewCommandTag("SET"), nil
}

func (t *fakeTx) Commit(ctx context.Context) error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	if t.committed {
		return pgx.ErrTxClosed
	}
	t.rolledBack = true
	return nil
}

type fakePool struct {
	db.DBTX
	txs  []*fakeTx
	opts []pgx.TxOptions
}

func (p *fakePool) BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error) {
	tx := &fakeTx{}
	p.txs = append(p.txs, tx)
	p.opts = append(p.opts, opts)
	return tx, nil
}

func newTestUoW(pool *fakePool) *PostgresUoW {
	u := NewPostgresUoWWith(pool, 1500*time.Millisecond)
	u.retryBase = time.Millisecond
	return u
}

func TestWithin_CommitsWithBoundedLockWait(t *testing.T) {
	pool := &fakePool{}
	u := newTestUoW(pool)

	var sawTx shared.Tx
	err := u.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		sawTx = tx
		return nil
	})

	require.NoError(t, err)
	require.Len(t, pool.txs, 1)
	assert.True(t, pool.txs[0].committed)
	assert.False(t, pool.txs[0].rolledBack)
	assert.Equal(t, []string{"SET LOCAL lock_timeout = '1500ms'"}, pool.txs[0].execs)
	assert.Equal(t, pgx.ReadCommitted, pool.opts[0].IsoLevel)
	assert.NotNil(t, sawTx.Rooms())
	assert.Same(t, sawTx.Rooms(), sawTx.Rooms())
}

func TestWithin_RollsBackOnError(t *testing.T) {
	pool := &fakePool{}
	u := newTestUoW(pool)
	sentinel := errors.New("room unavailable")

	err := u.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		return sentinel
	})

	assert.ErrorIs(t, err, sentinel)
	require.Len(t, pool.txs, 1)
	assert.True(t, pool.txs[0].rolledBack)
}

func TestWithin_RetriesSerializationFailures(t *testing.T) {
	pool := &fakePool{}
	u := newTestUoW(pool)
	calls := 0

	err := u.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		calls++
		if calls == 1 {
			return &pgconn.PgError{Code: pgErrCodeSerializationFailure}
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	require.Len(t, pool.txs, 2)
	assert.True(t, pool.txs[0].rolledBack)
	assert.True(t, pool.txs[1].committed)
}

func TestWithin_GivesUpAfterMaxRetries(t *testing.T) {
	pool := &fakePool{}
	u := newTestUoW(pool)

	err := u.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		return &pgconn.PgError{Code: pgErrCodeDeadlockDetected}
	})

	assert.True(t, errs.Is(err, errMaxRetriesExceeded))
	assert.Len(t, pool.txs, defaultMaxRetries+1)
}

func TestWithin_DoesNotRetryLockTimeout(t *testing.T) {
	pool := &fakePool{}
	u := newTestUoW(pool)

	err := u.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		return &pgconn.PgError{Code: "55P03"}
	})

	var pgErr *pgconn.PgError
	require.ErrorAs(t, err, &pgErr)
	assert.Equal(t, "55P03", pgErr.Code)
	assert.Len(t, pool.txs, 1)
}

func TestWithin_StopsRetryingWhenContextEnds(t *testing.T) {
	pool := &fakePool{}
	u := newTestUoW(pool)
	u.retryBase = time.Hour
	ctx, cancel := context.WithCancel(context.Background())

	err := u.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		cancel()
		return &pgconn.PgError{Code: pgErrCodeSerializationFailure}
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, pool.txs, 1)
}
