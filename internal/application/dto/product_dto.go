package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name  string          `json:"name" validate:"required,min=1,max=200"`
	Price decimal.Decimal `json:"price" validate:"gte=0"`
}

// UpdateProductRequest entrada para actualizar un producto (campos opcionales).
type UpdateProductRequest struct {
	Name  *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Price *decimal.Decimal `json:"price"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ProductListResponse lista de productos.
type ProductListResponse = ListResponse[ProductResponse]

// StockLevelResponse stock agregado de un producto.
type StockLevelResponse struct {
	ProductID string `json:"product_id"`
	Purchased int64  `json:"purchased"`
	Sold      int64  `json:"sold"`
	Available int64  `json:"available"`
}
