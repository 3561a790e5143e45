// Package goroutine provides a bounded concurrent task runner that collects
// task errors and survives task panics.
package goroutine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
)

// DefaultMaxGoroutine is used when NewManager receives a non-positive limit.
const DefaultMaxGoroutine = 8

// Manager runs functions in goroutines with a configurable concurrency limit.
//
// Errors returned by tasks are collected and reported by Wait.
type Manager struct {
	mu   sync.Mutex
	errs []error
	wg   sync.WaitGroup
	sema chan struct{}
}

// NewManager creates a new Manager with the provided maximum concurrency.
func NewManager(maxGoroutine int) *Manager {
	if maxGoroutine < 1 {
		maxGoroutine = DefaultMaxGoroutine
	}

	return &Manager{sema: make(chan struct{}, maxGoroutine)}
}

// Go schedules f to run in a goroutine, waiting for a free slot when the
// manager is at its concurrency limit. A canceled context releases waiting
// tasks without running them; the cancellation is recorded as an error.
//
// Panics inside f are recovered and recorded so one bad task cannot take
// down the process.
func (m *Manager) Go(ctx context.Context, f func(ctx context.Context) error) {
	if m == nil {
		return
	}

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()

		select {
		case m.sema <- struct{}{}:
		case <-ctx.Done():
			m.record(ctx.Err())
			return
		}

		defer func() {
			<-m.sema

			if rvr := recover(); rvr != nil {
				slog.ErrorContext(ctx, "panic occurred in goroutine", "panic", rvr, "stack", string(debug.Stack()))
				m.record(fmt.Errorf("task panicked: %v", rvr))
			}
		}()

		if err := f(ctx); err != nil {
			m.record(err)
		}
	}()
}

// Wait blocks until all scheduled goroutines finish and returns the joined
// collected errors.
func (m *Manager) Wait() error {
	if m == nil {
		return nil
	}

	m.wg.Wait()

	m.mu.Lock()
	defer m.mu.Unlock()
	return errors.Join(m.errs...)
}

func (m *Manager) record(err error) {
	m.mu.Lock()
	m.errs = append(m.errs, err)
	m.mu.Unlock()
}
