package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/stock-ledger/internal/application/inventory"
	"github.com/jhoicas/stock-ledger/internal/domain"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción READ COMMITTED, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
// Con el producto bloqueado (SELECT FOR UPDATE) cada sentencia posterior ve las ventas ya confirmadas.
func (r *TxRunner) Run(ctx context.Context, fn inventory.TxFunc) error {
	return r.run(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// RunReadOnly inicia una transacción REPEATABLE READ de solo lectura (foto consistente).
func (r *TxRunner) RunReadOnly(ctx context.Context, fn inventory.TxFunc) error {
	return r.run(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}, fn)
}

func (r *TxRunner) run(ctx context.Context, opts pgx.TxOptions, fn inventory.TxFunc) error {
	tx, err := r.pool.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewProductRepository(tx), NewPurchaseRepository(tx), NewSaleRepository(tx)); err != nil {
		return mapConflict(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return mapConflict(fmt.Errorf("commit transaction: %w", err))
	}
	return nil
}

// mapConflict traduce errores de serialización a domain.ErrConcurrencyConflict conservando la causa.
func mapConflict(err error) error {
	if isConcurrencyConflict(err) {
		return fmt.Errorf("%w: %v", domain.ErrConcurrencyConflict, err)
	}
	return err
}
