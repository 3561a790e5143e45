package entity

import (
	"time"

	"github.com/samber/lo"
)

// Item is a single cart line as the customer entered it.
//
// Quantity and Price already passed coercion when an Item is built from raw
// input; the struct tags re-assert the invariants for whole-struct
// validation.
type Item struct {
	Name     string  `validate:"required"`
	Quantity float64 `validate:"quantity"`
	Price    float64 `validate:"price"`
}

// LineTotal returns the price of the line, quantity times unit price.
func (i Item) LineTotal() float64 {
	return i.Quantity * i.Price
}

// Cart is an ordered collection of items.
type Cart struct {
	Items []Item
}

// Total sums the line totals of every item.
func (c Cart) Total() float64 {
	return lo.SumBy(c.Items, Item.LineTotal)
}

// Quote is the priced outcome of a successful whole-cart check.
type Quote struct {
	ID        int64
	Items     []Item
	Total     float64
	CheckedAt time.Time
}
