package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/martinmalgor04/sistema-empleados-api/internal/application/procurement"
	"github.com/martinmalgor04/sistema-empleados-api/internal/domain/repository"
)

var _ procurement.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta la persistencia de confirmación dentro de una transacción:
// alta del proveedor nuevo (si corresponde) y cabecera + renglones de la
// compra, todo o nada.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner sobre el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run abre una tx, arma repos atados a ella y ejecuta fn. Commit si fn
// devuelve nil; rollback en caso contrario.
func (t *TxRunner) Run(ctx context.Context, fn func(supplierRepo repository.SupplierRepository, purchaseRepo repository.PurchaseRepository) error) error {
	tx, err := t.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(NewSupplierRepository(tx), NewPurchaseRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
