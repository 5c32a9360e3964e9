// Package db carries a gorm transaction through context so that writes
// spanning several repositories commit or roll back as one unit. The
// status update and its audit log row, and the ticket delete with its
// comment and log cascade, both depend on this pairing.
package db

import (
	"context"

	"gorm.io/gorm"
)

// txKey keys the active transaction in a context.
type txKey struct{}

// TransactionManager starts transactions on the shared connection.
type TransactionManager struct {
	db *gorm.DB
}

func NewTransactionManager(db *gorm.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// RunInTransaction runs fn inside a transaction. Repositories invoked
// with the derived context join it via GetTxFromContext; any error from
// fn rolls back every write made under that context.
func (tm *TransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txCtx := context.WithValue(ctx, txKey{}, tx)
		return fn(txCtx)
	})
}

// GetTx returns the transaction carried by ctx, or the base handle when
// called outside a transaction.
func (tm *TransactionManager) GetTx(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return tm.db.WithContext(ctx)
}

// GetTxFromContext is the repository-side accessor: it yields the
// transaction in ctx when one is active, falling back to defaultDB so
// single-write operations need no transaction of their own.
func GetTxFromContext(ctx context.Context, defaultDB *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return defaultDB.WithContext(ctx)
}
