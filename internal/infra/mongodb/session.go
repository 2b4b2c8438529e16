package mongodb

import (
	"context"
	"log/slog"

	"pousada-api/internal/pkg/errs"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrTransactionBegin  = errs.New("failed to begin transaction")
	ErrTransactionCommit = errs.New("failed to commit transaction")
)

// TxRunner scopes a function to one store transaction. The context passed to
// fn carries the session; repositories executing with it run inside the
// transaction without further plumbing.
type TxRunner interface {
	Run(ctx context.Context, fn func(ctx context.Context) error) error
}

type sessionTxRunner struct {
	client *mongo.Client
}

func NewTxRunner(client *mongo.Client) TxRunner {
	return &sessionTxRunner{client: client}
}

// Run starts a session and transaction, invokes fn, commits on success and
// aborts on any error before rethrowing it. No partial writes survive a
// failed fn.
func (r *sessionTxRunner) Run(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := r.client.StartSession()
	if err != nil {
		return errs.Mark(err, ErrTransactionBegin)
	}
	defer session.EndSession(ctx)

	return mongo.WithSession(ctx, session, func(sc mongo.SessionContext) error {
		if err := session.StartTransaction(); err != nil {
			return errs.Mark(err, ErrTransactionBegin)
		}

		if err := fn(sc); err != nil {
			if abortErr := session.AbortTransaction(sc); abortErr != nil {
				slog.Warn("failed to abort transaction", "error", abortErr)
			}
			return err
		}

		if err := session.CommitTransaction(sc); err != nil {
			return errs.Mark(err, ErrTransactionCommit)
		}

		return nil
	})
}
