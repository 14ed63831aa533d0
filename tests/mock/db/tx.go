package dbmock

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// StubTx is a no-op pgx.Tx for exercising transactional code paths without a
// database. Repository calls inside the transaction are expected to be mocked
// separately; StubTx only tracks commit/rollback ordering.
type StubTx struct {
	CommitErr error
	committed bool
}

func (t *StubTx) Begin(_ context.Context) (pgx.Tx, error) { return t, nil }

func (t *StubTx) Commit(_ context.Context) error {
	if t.CommitErr != nil {
		return t.CommitErr
	}
	t.committed = true
	return nil
}

func (t *StubTx) Rollback(_ context.Context) error {
	if t.committed {
		return pgx.ErrTxClosed
	}
	return nil
}

func (t *StubTx) Committed() bool { return t.committed }

func (t *StubTx) CopyFrom(_ context.Context, _ pgx.Identifier, _ []string, _ pgx.CopyFromSource) (int64, error) {
	return 0, nil
}

func (t *StubTx) SendBatch(_ context.Context, _ *pgx.Batch) pgx.BatchResults { return nil }

func (t *StubTx) LargeObjects() pgx.LargeObjects { return pgx.LargeObjects{} }

func (t *StubTx) Prepare(_ context.Context, _, _ string) (*pgconn.StatementDescription, error) {
	return nil, nil
}

func (t *StubTx) Exec(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (t *StubTx) Query(_ context.Context, _ string, _ ...any) (pgx.Rows, error) { return nil, nil }

func (t *StubTx) QueryRow(_ context.Context, _ string, _ ...any) pgx.Row { return nil }

func (t *StubTx) Conn() *pgx.Conn { return nil }

// StubTxStarter hands out a single StubTx, optionally failing Begin.
type StubTxStarter struct {
	Tx       *StubTx
	BeginErr error
}

func NewStubTxStarter() *StubTxStarter {
	return &StubTxStarter{Tx: &StubTx{}}
}

func (s *StubTxStarter) Begin(_ context.Context) (pgx.Tx, error) {
	if s.BeginErr != nil {
		return nil, s.BeginErr
	}
	return s.Tx, nil
}
