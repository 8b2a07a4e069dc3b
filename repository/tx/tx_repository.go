package tx

import (
	"context"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/ShohjahonSohibov/Aberno/utils/logger"
)

type TxRepository interface {
	// WithTx runs fn in one transaction, committing on nil and rolling back otherwise.
	WithTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error
}

type txRepo struct {
	db *sqlx.DB
}

func NewTxRepository(db *sqlx.DB) TxRepository {
	return &txRepo{db: db}
}

func (r *txRepo) WithTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.Error("[WithTx] err Rollback", zap.String("error", rbErr.Error()))
		}
		return err
	}
	return tx.Commit()
}
