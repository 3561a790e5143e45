package usecase

import (
	"testing"
	"time"

	"github.com/shandysiswandi/cartcheck/internal/pkg/clock"
	"github.com/shandysiswandi/cartcheck/internal/pkg/config"
	"github.com/shandysiswandi/cartcheck/internal/pkg/instrument"
	"github.com/shandysiswandi/cartcheck/internal/pkg/validator"
)

type sequenceID struct {
	next int64
}

func (s *sequenceID) Generate() int64 {
	s.next++
	return s.next
}

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestUsecase(t *testing.T) *Usecase {
	t.Helper()

	v10, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("NewV10Validator() err = %v", err)
	}

	cfg, err := config.NewViperFromBytes("yaml", []byte("cart:\n  max_concurrent_check: 2\n"))
	if err != nil {
		t.Fatalf("NewViperFromBytes() err = %v", err)
	}

	return New(Dependency{
		Validator:  v10,
		Config:     cfg,
		UID:        &sequenceID{},
		Clock:      clock.Fixed{T: fixedNow},
		Instrument: instrument.NewNoop(),
	})
}
