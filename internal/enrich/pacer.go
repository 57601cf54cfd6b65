package enrich

import (
	"context"
	"sync"
	"time"
)

// Pacer runs calls one at a time and waits a fixed interval before every
// dispatch except the first.
type Pacer struct {
	mu         sync.Mutex
	interval   time.Duration
	dispatched bool
	wait       func(ctx context.Context, d time.Duration) error
}

func NewPacer(interval time.Duration) *Pacer {
	return &Pacer{interval: interval, wait: sleep}
}

// Do waits for its slot and runs fn. Only one fn runs at a time.
func (p *Pacer) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.dispatched && p.interval > 0 {
		if err := p.wait(ctx, p.interval); err != nil {
			return err
		}
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	p.dispatched = true
	return fn(ctx)
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
