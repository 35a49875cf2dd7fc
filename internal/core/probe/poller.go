package probe

import (
	"context"
	"sync"
	"time"
)

// Poller re-triggers a Prober at a fixed interval.
type Poller struct {
	mu       sync.Mutex
	prober   *Prober
	interval time.Duration
	running  bool
	stopCh   chan struct{}
}

// NewPoller creates a poller around an existing prober.
func NewPoller(prober *Prober, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Poller{
		prober:   prober,
		interval: interval,
	}
}

// Start begins periodic checking with an immediate first check.
func (poller *Poller) Start(ctx context.Context) {
	poller.mu.Lock()
	if poller.running {
		poller.mu.Unlock()
		return
	}
	poller.running = true
	poller.stopCh = make(chan struct{})
	stopCh := poller.stopCh
	poller.mu.Unlock()

	poller.prober.Check(ctx)
	go poller.loop(ctx, stopCh)
}

// Stop halts periodic checking. Any in-flight check settles normally.
func (poller *Poller) Stop() {
	poller.mu.Lock()
	defer poller.mu.Unlock()
	if !poller.running {
		return
	}
	poller.running = false
	close(poller.stopCh)
}

// Running reports whether the poller loop is active.
func (poller *Poller) Running() bool {
	poller.mu.Lock()
	defer poller.mu.Unlock()
	return poller.running
}

func (poller *Poller) loop(ctx context.Context, stopCh chan struct{}) {
	ticker := time.NewTicker(poller.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			poller.prober.Check(ctx)
		}
	}
}
