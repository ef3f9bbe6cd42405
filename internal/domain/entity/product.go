package entity

import "github.com/shopspring/decimal"

// Product representa un producto del inventario. Name es único a nivel de
// almacenamiento; Stock y Price nunca son negativos.
type Product struct {
	ID    int64
	Name  string
	Stock int
	Price decimal.Decimal
}
