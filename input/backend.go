package input

import (
	"context"
	"errors"
)

var (
	// ErrNotInitialized is returned by Start before a successful Init.
	ErrNotInitialized = errors.New("input: backend not initialized")
	// ErrAlreadyStarted is returned by Start on a running backend.
	ErrAlreadyStarted = errors.New("input: backend already started")
)

// Backend is the capability interface shared by all input sources.
//
// Two kinds exist: polling backends sample a Device on their own goroutine
// ([PollingBackend]), and pushed backends receive samples from an event
// loop owned by someone else ([PointerBackend]). Both feed the same
// ordered Queue, so the stroke consumer does not care which is active.
type Backend interface {
	// Init configures the backend and connects to the device.
	Init(cfg Config) error
	// Start begins delivering events. Polling backends stop when ctx is
	// canceled.
	Start(ctx context.Context) error
	// Stop stops event delivery and discards undrained events.
	Stop()
	// Status returns the current connection state.
	Status() Status
	// Info returns device information once connected.
	Info() (Info, bool)
	// Poll appends all pending events to dst and returns the extended slice.
	Poll(dst []Event) []Event
	// Name returns the backend name.
	Name() string
}
