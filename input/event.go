package input

import "fmt"

// EventKind identifies the payload of an Event.
type EventKind uint8

const (
	// EventInput carries a pen sample in Event.Point.
	EventInput EventKind = iota
	// EventProximityEnter reports the pen entering proximity.
	EventProximityEnter
	// EventProximityLeave reports the pen leaving proximity.
	EventProximityLeave
	// EventStatusChanged carries a new backend status in Event.Status.
	EventStatusChanged
)

func (k EventKind) String() string {
	switch k {
	case EventInput:
		return "input"
	case EventProximityEnter:
		return "proximity-enter"
	case EventProximityLeave:
		return "proximity-leave"
	case EventStatusChanged:
		return "status-changed"
	default:
		return fmt.Sprintf("EventKind(%d)", k)
	}
}

// Event is emitted by a Backend.
type Event struct {
	Kind   EventKind
	Point  Point
	Status Status
}

// InputEvent wraps a sample in an Event.
func InputEvent(p Point) Event {
	return Event{Kind: EventInput, Point: p}
}

// Status is the connection state of a Backend.
type Status uint8

const (
	// StatusDisconnected means the backend is not initialized.
	StatusDisconnected Status = iota
	// StatusConnected means the backend is initialized and ready.
	StatusConnected
	// StatusError means the backend failed.
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusDisconnected:
		return "disconnected"
	case StatusConnected:
		return "connected"
	case StatusError:
		return "error"
	default:
		return fmt.Sprintf("Status(%d)", s)
	}
}

// Info describes the device behind a Backend.
type Info struct {
	Name             string
	Backend          string
	SupportsPressure bool
	SupportsTilt     bool
	// PressureRange is the raw device pressure range (min, max).
	PressureRange [2]int
}

// Config configures a Backend.
type Config struct {
	// PollingRateHz is the sampling rate for polling backends.
	PollingRateHz int
	// PressureCurve is applied to every sample before it is queued.
	PressureCurve PressureCurve
	// QueueCapacity bounds the number of undrained events.
	QueueCapacity int
}

// DefaultConfig returns the default backend configuration.
func DefaultConfig() Config {
	return Config{
		PollingRateHz: 200,
		PressureCurve: CurveLinear,
		QueueCapacity: DefaultQueueCapacity,
	}
}
