package memory

import (
	"context"

	"github.com/jhoicas/stock-ledger/internal/application/inventory"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks con semántica serializable sobre el Store.
type TxRunner struct {
	store *Store
}

// NewTxRunner construye el runner sobre store.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// Run toma el lock exclusivo, ejecuta fn sobre una copia y la publica solo si fn no falla (Commit).
func (r *TxRunner) Run(ctx context.Context, fn inventory.TxFunc) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	work := r.store.data.clone()
	tx := &txBackend{st: work}
	if err := fn(&ProductRepo{b: tx}, &PurchaseRepo{b: tx}, &SaleRepo{b: tx}); err != nil {
		return err
	}
	r.store.data = work
	return nil
}

// RunReadOnly ejecuta fn con el lock compartido; las escrituras fallan.
func (r *TxRunner) RunReadOnly(ctx context.Context, fn inventory.TxFunc) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	tx := &txBackend{st: r.store.data, readOnly: true}
	return fn(&ProductRepo{b: tx}, &PurchaseRepo{b: tx}, &SaleRepo{b: tx})
}
