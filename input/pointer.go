package input

import (
	"context"
	"sync"
	"time"
)

// PointerBackend is an event-pushed backend. The owner of the platform
// event loop calls PushInput for every pointer event; samples are shaped
// by the configured pressure curve and queued for the stroke consumer.
//
// PointerBackend is always available and is the fallback when no
// dedicated tablet backend can be initialized.
type PointerBackend struct {
	mu     sync.Mutex
	status Status
	info   Info
	cfg    Config
	queue  *Queue

	// now is the clock used for timestamps.
	now func() time.Time
}

// NewPointerBackend creates a disconnected pointer backend.
func NewPointerBackend() *PointerBackend {
	return &PointerBackend{
		cfg:   DefaultConfig(),
		queue: NewQueue(DefaultQueueCapacity),
		now:   time.Now,
	}
}

// Init implements Backend.
func (b *PointerBackend) Init(cfg Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.cfg = cfg
	capacity := cfg.QueueCapacity
	if capacity <= 0 {
		capacity = DefaultQueueCapacity
	}
	if capacity != b.queue.Cap() {
		b.queue = NewQueue(cfg.QueueCapacity)
	}
	b.info = Info{
		Name:             "PointerEvent",
		Backend:          b.Name(),
		SupportsPressure: true,
		SupportsTilt:     true,
		PressureRange:    [2]int{0, 1},
	}
	b.status = StatusConnected
	Logger().Info("input: pointer backend initialized", "curve", cfg.PressureCurve)
	return nil
}

// Start implements Backend. Events arrive through PushInput, so Start
// only checks that the backend was initialized.
func (b *PointerBackend) Start(context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.status != StatusConnected {
		return ErrNotInitialized
	}
	Logger().Info("input: pointer backend started")
	return nil
}

// Stop implements Backend.
func (b *PointerBackend) Stop() {
	b.Queue().Clear()
	Logger().Info("input: pointer backend stopped")
}

// Status implements Backend.
func (b *PointerBackend) Status() Status {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.status
}

// Info implements Backend.
func (b *PointerBackend) Info() (Info, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.info, b.status == StatusConnected
}

// Poll implements Backend.
func (b *PointerBackend) Poll(dst []Event) []Event {
	return b.Queue().Drain(dst)
}

// Name implements Backend.
func (b *PointerBackend) Name() string {
	return "PointerEvent"
}

// Queue returns the queue events are pushed to.
func (b *PointerBackend) Queue() *Queue {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.queue
}

// PushInput queues a pointer sample. Pressure passes through the
// configured curve and tilt is clamped to [-90, 90] degrees.
func (b *PointerBackend) PushInput(x, y, pressure, tiltX, tiltY float32) {
	b.mu.Lock()
	curve := b.cfg.PressureCurve
	q := b.queue
	ts := uint64(b.now().UnixMilli())
	b.mu.Unlock()

	p := Point{
		X:         x,
		Y:         y,
		Pressure:  curve.Apply(pressure),
		TiltX:     clamp(tiltX, -90, 90),
		TiltY:     clamp(tiltY, -90, 90),
		Timestamp: ts,
	}
	q.Push(InputEvent(p))
}

// PushProximityEnter queues a proximity-enter event.
func (b *PointerBackend) PushProximityEnter() {
	b.Queue().Push(Event{Kind: EventProximityEnter})
}

// PushProximityLeave queues a proximity-leave event.
func (b *PointerBackend) PushProximityLeave() {
	b.Queue().Push(Event{Kind: EventProximityLeave})
}
