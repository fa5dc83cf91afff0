package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrDuplicate           = errors.New("recurso duplicado")
	ErrUnauthorized        = errors.New("no autorizado")
	ErrConflict            = errors.New("conflicto con el estado actual")
	ErrStockExceeded       = errors.New("no se puede exceder la cantidad disponible en stock")
	ErrConcurrencyConflict = errors.New("conflicto de concurrencia, reintente la operación")
	ErrNotConfigured       = errors.New("funcionalidad no configurada")
)

// ValidationError describe un campo de entrada rechazado antes de llegar a la lógica de negocio.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Unwrap permite errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// NewValidationError construye un ValidationError.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// StockExceededError se devuelve cuando una venta dejaría el stock del producto en negativo.
// Shortfall = Requested - Available.
type StockExceededError struct {
	ProductID string
	Requested int64
	Available int64
	Shortfall int64
}

func (e *StockExceededError) Error() string {
	return fmt.Sprintf("%s (producto %s: solicitado %d, disponible %d)",
		ErrStockExceeded.Error(), e.ProductID, e.Requested, e.Available)
}

// Unwrap permite errors.Is(err, ErrStockExceeded).
func (e *StockExceededError) Unwrap() error { return ErrStockExceeded }
