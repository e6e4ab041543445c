package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/osse101/JackpotEngine_Go/internal/domain"
	"github.com/osse101/JackpotEngine_Go/internal/logger"
)

// Tx is the commit/rollback surface of a context-aware transaction (pgx.Tx)
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// SafeRollback is deferred right after Begin. Once the transaction has
// committed the rollback is a no-op; any other failure is logged.
func SafeRollback(ctx context.Context, tx Tx) {
	if err := unexpectedRollbackErr(tx.Rollback(ctx)); err != nil {
		logger.FromContext(ctx).Error(LogMsgRollbackFailed, "error", err)
	}
}

func unexpectedRollbackErr(err error) error {
	if err == nil || errors.Is(err, sql.ErrTxDone) || err.Error() == domain.ErrMsgTxClosed {
		return nil
	}
	return err
}
