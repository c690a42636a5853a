package uow

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"facility-booking/internal/infra/readstore"
	"facility-booking/internal/infra/repository"
	sqlc "facility-booking/internal/infra/sqlc/generated"
	"facility-booking/internal/pkg/errs"
	"facility-booking/internal/usecase/queries"
	"facility-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
	pgErrCodeLockNotAvailable     = "55P03"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

// RetryPolicy bounds how often a write transaction is replayed after a
// serialization failure, deadlock or lock timeout.
type RetryPolicy struct {
	MaxRetries int
	BaseDelay  time.Duration
}

// Backoff doubles BaseDelay per attempt and adds up to 20% jitter.
func (p RetryPolicy) Backoff(attempt int) time.Duration {
	wait := p.BaseDelay << attempt
	if jitter := int64(wait / 5); jitter > 0 {
		wait += time.Duration(rand.Int64N(jitter))
	}
	return wait
}

type PostgresUoW struct {
	pool   *pgxpool.Pool
	q      *sqlc.Queries
	policy RetryPolicy
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries, policy RetryPolicy) shared.UnitOfWork {
	return &PostgresUoW{
		pool:   pool,
		q:      q,
		policy: policy,
	}
}

// Bookings on a space are serialized by an advisory lock and inventory by a
// row lock, so ReadCommitted is sufficient.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return retry(ctx, u.policy, func() error {
		return u.runInTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
	})
}

func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, u.pool)
}

// runInTx runs one attempt. The rollback is explicit so retries do not pile
// up deferred calls.
func (u *PostgresUoW) runInTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	err = fn(ctx, &pgTx{dbtx: pgxTx, uow: u})
	if err == nil {
		if err = pgxTx.Commit(ctx); err == nil {
			return nil
		}
		err = errs.Mark(err, errTransactionCommit)
	}

	if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
		slog.Warn("rollback failed", "error", rollbackErr.Error())
	}
	return err
}

// retry replays attempt while it fails with a retryable error. Other errors
// are returned as they are.
func retry(ctx context.Context, policy RetryPolicy, attempt func() error) error {
	var err error
	for n := 0; n <= policy.MaxRetries; n++ {
		if err = attempt(); err == nil || !isRetryableError(err) {
			return err
		}
		if n == policy.MaxRetries {
			break
		}

		wait := policy.Backoff(n)
		slog.Warn("retrying transaction",
			"attempt", n+1,
			"wait_ms", wait.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}

	slog.Error("transaction failed after max retries",
		"attempts", policy.MaxRetries+1,
		"error", err.Error())
	return errs.Mark(err, errMaxRetriesExceeded)
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
		}
	}()

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected, pgErrCodeLockNotAvailable:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	reservationRepo shared.ReservationRepository
	spaceRepo       shared.SpaceRepository
	resourceRepo    shared.ResourceRepository
	clientRepo      shared.ClientRepository
	userRepo        shared.UserRepository
	commandReads    shared.CommandReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Reservations() shared.ReservationRepository {
	if t.reservationRepo == nil {
		t.reservationRepo = repository.NewReservationRepository(t.uow.q)
	}
	return t.reservationRepo
}

func (t *pgTx) Spaces() shared.SpaceRepository {
	if t.spaceRepo == nil {
		t.spaceRepo = repository.NewSpaceRepository(t.uow.q)
	}
	return t.spaceRepo
}

func (t *pgTx) Resources() shared.ResourceRepository {
	if t.resourceRepo == nil {
		t.resourceRepo = repository.NewResourceRepository(t.uow.q)
	}
	return t.resourceRepo
}

func (t *pgTx) Clients() shared.ClientRepository {
	if t.clientRepo == nil {
		t.clientRepo = repository.NewClientRepository(t.uow.q)
	}
	return t.clientRepo
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository(t.uow.q)
	}
	return t.userRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX

	reservationStore *readstore.ReservationReadStore
}

// ReservationView reads through the transaction, so it sees rows the
// command has not committed yet.
func (r *commandReads) ReservationView(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	if r.reservationStore == nil {
		r.reservationStore = readstore.NewReservationReadStore(r.uow.q, r.dbtx)
	}
	return r.reservationStore.FindByID(ctx, id)
}
