package dto

import "github.com/shopspring/decimal"

// CreateBookRequest entrada para crear un libro. Solo se coercionan los campos numéricos.
type CreateBookRequest struct {
	Title  string      `json:"title"`
	Author string      `json:"author"`
	ISBN   string      `json:"isbn"`
	Pages  FlexInt     `json:"pages"`
	Year   FlexInt     `json:"year"`
	Price  FlexDecimal `json:"price"`
}

// BookResponse salida de un libro.
type BookResponse struct {
	ID     int64           `json:"id"`
	Title  string          `json:"title"`
	Author string          `json:"author"`
	ISBN   string          `json:"isbn"`
	Pages  int             `json:"pages"`
	Year   int             `json:"year"`
	Price  decimal.Decimal `json:"price"`
}

// BookListResponse página del catálogo con sus metadatos.
type BookListResponse struct {
	Books       []BookResponse `json:"books"`
	PerPage     int            `json:"perPage"`
	CurrentPage int            `json:"currentPage"`
	HasNextPage bool           `json:"hasNextPage"`
	TotalPages  int            `json:"totalPages"`
	TotalItems  int            `json:"totalItems"`
}
