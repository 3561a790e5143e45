package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/samber/lo"
	"github.com/shandysiswandi/cartcheck/internal/cart/entity"
	"github.com/shandysiswandi/cartcheck/internal/pkg/goerror"
	"github.com/shandysiswandi/cartcheck/internal/pkg/goroutine"
)

// CheckCartInput carries every cart line as entered.
type CheckCartInput struct {
	Items []CheckItemInput
}

// CheckCartOutput is the priced quote produced when the whole cart is valid.
type CheckCartOutput struct {
	Quote entity.Quote
}

// CheckCart validates all lines of a cart and prices it.
//
// Lines are checked concurrently; every invalid line is reported, not just
// the first. A cart with no lines is a validation failure, and any invalid
// line fails the whole cart.
func (s *Usecase) CheckCart(ctx context.Context, in CheckCartInput) (*CheckCartOutput, error) {
	ctx, span := s.startSpan(ctx, "CheckCart")
	defer span.End()

	if len(in.Items) == 0 {
		return nil, goerror.NewInvalidInput(nil, "items", "cart must contain at least one item")
	}

	var mu sync.Mutex
	items := make([]entity.Item, len(in.Items))
	fieldErrs := make(map[string]string)

	mgr := goroutine.NewManager(s.maxConcurrent())
	for idx, line := range in.Items {
		mgr.Go(ctx, func(ctx context.Context) error {
			out, err := s.CheckItem(ctx, line)

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				var gerr *goerror.Error
				key := fmt.Sprintf("items[%d]", idx)
				if errors.As(err, &gerr) && len(gerr.Fields()) > 0 {
					for field, reason := range gerr.Fields() {
						fieldErrs[key+"."+field] = reason
					}
				} else {
					fieldErrs[key] = err.Error()
				}
				return nil // collected as field errors, not a task failure
			}

			items[idx] = out.Item
			return nil
		})
	}

	if err := mgr.Wait(); err != nil {
		slog.ErrorContext(ctx, "cart check tasks failed", "error", err)
		return nil, goerror.NewServer(err)
	}

	if len(fieldErrs) > 0 {
		kv := make([]string, 0, len(fieldErrs)*2)
		for _, field := range lo.Keys(fieldErrs) {
			kv = append(kv, field, fieldErrs[field])
		}
		return nil, goerror.NewInvalidInput(nil, kv...)
	}

	quote := entity.Quote{
		ID:        s.uid.Generate(),
		Items:     items,
		Total:     entity.Cart{Items: items}.Total(),
		CheckedAt: s.clock.Now(),
	}

	slog.InfoContext(ctx, "cart checked", "quote_id", quote.ID, "items", len(items), "total", quote.Total)

	return &CheckCartOutput{Quote: quote}, nil
}
