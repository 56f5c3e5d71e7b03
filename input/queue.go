package input

import "sync"

// DefaultQueueCapacity is the queue bound used when none is configured.
const DefaultQueueCapacity = 1024

// Queue is a bounded, order-preserving event queue shared between an input
// producer and the stroke consumer.
//
// Push never blocks: when the queue is full the oldest event is discarded
// and counted in Dropped. All methods are safe for concurrent use.
type Queue struct {
	mu       sync.Mutex
	events   []Event
	capacity int
	dropped  uint64
}

// NewQueue creates a queue holding at most capacity events.
// A capacity <= 0 selects DefaultQueueCapacity.
func NewQueue(capacity int) *Queue {
	if capacity <= 0 {
		capacity = DefaultQueueCapacity
	}
	return &Queue{
		events:   make([]Event, 0, min(capacity, 64)),
		capacity: capacity,
	}
}

// Push appends e. It reports false if an older event had to be dropped
// to make room.
func (q *Queue) Push(e Event) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.events) < q.capacity {
		q.events = append(q.events, e)
		return true
	}

	copy(q.events, q.events[1:])
	q.events[len(q.events)-1] = e
	q.dropped++
	if q.dropped == 1 || q.dropped%100 == 0 {
		Logger().Warn("input: queue full, dropping oldest event",
			"capacity", q.capacity, "dropped", q.dropped)
	}
	return false
}

// Drain appends all queued events to dst in arrival order, empties the
// queue and returns the extended slice.
func (q *Queue) Drain(dst []Event) []Event {
	q.mu.Lock()
	defer q.mu.Unlock()

	dst = append(dst, q.events...)
	clear(q.events)
	q.events = q.events[:0]
	return dst
}

// Clear discards all queued events.
func (q *Queue) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	clear(q.events)
	q.events = q.events[:0]
}

// Len returns the number of queued events.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}

// Cap returns the queue bound.
func (q *Queue) Cap() int {
	return q.capacity
}

// Dropped returns the number of events discarded because the queue was full.
func (q *Queue) Dropped() uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.dropped
}
