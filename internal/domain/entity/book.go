package entity

import "github.com/shopspring/decimal"

// Book representa un libro del catálogo. El ID lo asigna el almacén al insertar
// y nunca se reutiliza; el libro no se modifica después de creado.
type Book struct {
	ID     int64
	Title  string
	Author string
	ISBN   string
	Pages  int
	Year   int
	Price  decimal.Decimal
}
