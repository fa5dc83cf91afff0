// Package memory implementa los puertos de persistencia en memoria del proceso.
// Pensado para desarrollo local (STORAGE_DRIVER=memory) y tests; no persiste entre reinicios.
//
// Las transacciones de escritura toman el lock exclusivo del Store y trabajan sobre una
// copia del estado que solo se publica en el Commit, por lo que son serializables.
package memory

import (
	"errors"
	"sync"

	"github.com/jhoicas/stock-ledger/internal/domain/entity"
)

var errReadOnly = errors.New("memory: escritura en transacción de solo lectura")

type state struct {
	products  map[string]entity.Product
	purchases map[string]entity.Purchase
	sales     map[string]entity.Sale
}

func newState() *state {
	return &state{
		products:  make(map[string]entity.Product),
		purchases: make(map[string]entity.Purchase),
		sales:     make(map[string]entity.Sale),
	}
}

func (s *state) clone() *state {
	c := &state{
		products:  make(map[string]entity.Product, len(s.products)),
		purchases: make(map[string]entity.Purchase, len(s.purchases)),
		sales:     make(map[string]entity.Sale, len(s.sales)),
	}
	for k, v := range s.products {
		c.products[k] = v
	}
	for k, v := range s.purchases {
		c.purchases[k] = v
	}
	for k, v := range s.sales {
		c.sales[k] = v
	}
	return c
}

// backend abstrae el acceso al estado: con lock (Store) o dentro de una tx (lock ya tomado).
type backend interface {
	read(fn func(*state) error) error
	write(fn func(*state) error) error
}

// Store almacén en memoria compartido por los repositorios.
type Store struct {
	mu   sync.RWMutex
	data *state
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{data: newState()}
}

func (s *Store) read(fn func(*state) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.data)
}

func (s *Store) write(fn func(*state) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.data)
}

// Products devuelve el repositorio de productos fuera de transacción.
func (s *Store) Products() *ProductRepo { return &ProductRepo{b: s} }

// Purchases devuelve el repositorio de compras fuera de transacción.
func (s *Store) Purchases() *PurchaseRepo { return &PurchaseRepo{b: s} }

// Sales devuelve el repositorio de ventas fuera de transacción.
func (s *Store) Sales() *SaleRepo { return &SaleRepo{b: s} }

// Ping siempre responde ok; existe para el health check.
func (s *Store) Ping() error { return nil }

type txBackend struct {
	st       *state
	readOnly bool
}

func (t *txBackend) read(fn func(*state) error) error { return fn(t.st) }

func (t *txBackend) write(fn func(*state) error) error {
	if t.readOnly {
		return errReadOnly
	}
	return fn(t.st)
}
