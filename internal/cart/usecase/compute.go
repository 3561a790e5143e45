package usecase

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/cartcheck/internal/pkg/dispatch"
)

// ComputeInput names the operands and the operation to apply to them.
// Operation may be anything dispatch.Calculate accepts.
type ComputeInput struct {
	Operation any
	A         float64
	B         float64
}

// Compute applies the operation to the operands and returns the result
// unchanged. A non-invocable operation is a caller bug and the resulting
// invalid-argument error propagates untouched.
func (s *Usecase) Compute(ctx context.Context, in ComputeInput) (float64, error) {
	ctx, span := s.startSpan(ctx, "Compute")
	defer span.End()

	result, err := dispatch.Calculate(in.Operation, in.A, in.B)
	if err != nil {
		return 0, err
	}

	slog.DebugContext(ctx, "computed", "a", in.A, "b", in.B, "result", result)

	return result, nil
}
