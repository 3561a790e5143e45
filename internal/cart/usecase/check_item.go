package usecase

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/cartcheck/internal/cart/entity"
	"github.com/shandysiswandi/cartcheck/internal/pkg/check"
	"github.com/shandysiswandi/cartcheck/internal/pkg/goerror"
)

// CheckItemInput carries one cart line as entered, before any coercion.
// Quantity and Price are deliberately untyped; the validators own the
// coercion rule.
type CheckItemInput struct {
	Name     string
	Quantity any
	Price    any
}

// CheckItemOutput is the validated line.
type CheckItemOutput struct {
	Item entity.Item
}

// CheckItem validates a single cart line.
//
// Malformed quantity or price is an expected user mistake and comes back as
// a validation-type error carrying the field reasons; it is never a panic.
func (s *Usecase) CheckItem(ctx context.Context, in CheckItemInput) (*CheckItemOutput, error) {
	ctx, span := s.startSpan(ctx, "CheckItem")
	defer span.End()

	qty := check.Quantity(in.Quantity)
	price := check.Price(in.Price)

	if !qty.OK() || !price.OK() {
		var kv []string
		if !qty.OK() {
			kv = append(kv, "quantity", qty.Reason())
		}
		if !price.OK() {
			kv = append(kv, "price", price.Reason())
		}
		slog.DebugContext(ctx, "item rejected", "name", in.Name, "fields", kv)
		return nil, goerror.NewInvalidInput(nil, kv...)
	}

	item := entity.Item{Name: in.Name, Quantity: qty.Value(), Price: price.Value()}
	if err := s.validator.Validate(item); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	return &CheckItemOutput{Item: item}, nil
}
