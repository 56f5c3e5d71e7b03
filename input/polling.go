package input

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"
)

// Device is a pen device sampled by a PollingBackend.
type Device interface {
	// Info describes the device.
	Info() Info
	// Read appends the events that arrived since the previous call and
	// returns the extended slice. It returns io.EOF once the device will
	// produce no more events.
	Read(dst []Event) ([]Event, error)
}

// PollingBackend samples a Device on its own goroutine at the configured
// rate and queues the events it reads. Input samples are clamped and
// shaped by the pressure curve before they are queued.
type PollingBackend struct {
	dev Device

	mu     sync.Mutex
	status Status
	cfg    Config
	queue  *Queue
	cancel context.CancelFunc
	done   chan struct{}
	err    error
}

// NewPollingBackend creates a disconnected backend for dev.
func NewPollingBackend(dev Device) *PollingBackend {
	return &PollingBackend{
		dev:   dev,
		cfg:   DefaultConfig(),
		queue: NewQueue(DefaultQueueCapacity),
	}
}

// Init implements Backend.
func (b *PollingBackend) Init(cfg Config) error {
	if cfg.PollingRateHz <= 0 {
		return fmt.Errorf("input: invalid polling rate %d Hz", cfg.PollingRateHz)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.cancel != nil {
		return ErrAlreadyStarted
	}
	b.cfg = cfg
	b.queue = NewQueue(cfg.QueueCapacity)
	b.status = StatusConnected
	Logger().Info("input: polling backend initialized",
		"device", b.dev.Info().Name, "rate_hz", cfg.PollingRateHz, "curve", cfg.PressureCurve)
	return nil
}

// Start implements Backend. Polling runs until Stop is called, ctx is
// canceled, or the device reports an error or io.EOF.
func (b *PollingBackend) Start(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.status != StatusConnected {
		return ErrNotInitialized
	}
	if b.cancel != nil {
		return ErrAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)
	b.cancel = cancel
	b.done = make(chan struct{})
	b.err = nil

	interval := time.Second / time.Duration(b.cfg.PollingRateHz)
	go b.run(ctx, interval, b.queue, b.cfg.PressureCurve, b.done)

	Logger().Info("input: polling backend started", "interval", interval)
	return nil
}

func (b *PollingBackend) run(ctx context.Context, interval time.Duration, q *Queue, curve PressureCurve, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var buf []Event
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		var err error
		buf, err = b.dev.Read(buf[:0])
		for _, e := range buf {
			if e.Kind == EventInput {
				p := e.Point.Clamped()
				p.Pressure = curve.Apply(p.Pressure)
				e.Point = p
			}
			q.Push(e)
		}

		if errors.Is(err, io.EOF) {
			Logger().Debug("input: device exhausted")
			return
		}
		if err != nil {
			b.mu.Lock()
			b.status = StatusError
			b.err = err
			b.mu.Unlock()
			q.Push(Event{Kind: EventStatusChanged, Status: StatusError})
			Logger().Warn("input: device read failed", "err", err)
			return
		}
	}
}

// Stop implements Backend. It waits for the polling goroutine to exit.
func (b *PollingBackend) Stop() {
	b.mu.Lock()
	cancel, done, q := b.cancel, b.done, b.queue
	b.cancel = nil
	b.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
	q.Clear()
	Logger().Info("input: polling backend stopped")
}

// Done returns a channel that is closed when the polling goroutine exits.
// It returns nil before Start.
func (b *PollingBackend) Done() <-chan struct{} {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.done
}

// Err returns the device error that stopped polling, if any.
// Cancellation and io.EOF are not errors.
func (b *PollingBackend) Err() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.err
}

// Status implements Backend.
func (b *PollingBackend) Status() Status {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.status
}

// Info implements Backend.
func (b *PollingBackend) Info() (Info, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.status == StatusDisconnected {
		return Info{}, false
	}
	info := b.dev.Info()
	info.Backend = b.Name()
	return info, true
}

// Poll implements Backend.
func (b *PollingBackend) Poll(dst []Event) []Event {
	return b.Queue().Drain(dst)
}

// Queue returns the queue events are delivered to.
func (b *PollingBackend) Queue() *Queue {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.queue
}

// Name implements Backend.
func (b *PollingBackend) Name() string {
	return "Polling"
}
