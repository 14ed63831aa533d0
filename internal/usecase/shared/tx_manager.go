package shared

import (
	"context"
	"errors"
	"log/slog"

	"eventure/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
)

var (
	ErrTransactionBegin  = errs.New("failed to begin transaction")
	ErrTransactionCommit = errs.New("failed to commit transaction")
)

// TxStarter is the subset of pgxpool.Pool needed to open a transaction.
type TxStarter interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// RunInTx executes fn in a single transaction, rolling back on any error.
func RunInTx[T any](ctx context.Context, db TxStarter, fn func(tx pgx.Tx) (T, error)) (T, error) {
	var zero T

	tx, err := db.Begin(ctx)
	if err != nil {
		return zero, errs.Mark(err, ErrTransactionBegin)
	}

	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
			// Rollback after commit reports ErrTxClosed; anything else is worth a log line.
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback transaction", "error", rollbackErr)
			}
		}
	}()

	result, err := fn(tx)
	if err != nil {
		return zero, err
	}

	if err = tx.Commit(ctx); err != nil {
		return zero, errs.Mark(err, ErrTransactionCommit)
	}

	return result, nil
}
