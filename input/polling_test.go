package input

import (
	"context"
	"errors"
	"testing"
	"time"
)

func fastConfig() Config {
	cfg := DefaultConfig()
	cfg.PollingRateHz = 1000
	return cfg
}

func waitDone(t *testing.T, b *PollingBackend) {
	t.Helper()
	select {
	case <-b.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("polling did not finish")
	}
}

func TestPollingBackendReplay(t *testing.T) {
	points := []Point{
		NewPoint(0, 0, 0.5),
		NewPoint(1, 0, 1),
		NewPoint(2, 0, 1.5),
		{X: 3, Y: 0, Pressure: 0.5, TiltX: 200},
		NewPoint(4, 0, 0),
	}
	replay := NewReplay(points)
	replay.PerRead = 2

	b := NewPollingBackend(replay)
	cfg := fastConfig()
	cfg.PressureCurve = CurveHard
	if err := b.Init(cfg); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	if err := b.Start(t.Context()); err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	waitDone(t, b)

	if err := b.Err(); err != nil {
		t.Errorf("Err() = %v after io.EOF, want nil", err)
	}

	got := b.Poll(nil)
	if len(got) != len(points)+2 {
		t.Fatalf("Poll() returned %d events, want %d", len(got), len(points)+2)
	}
	if got[0].Kind != EventProximityEnter || got[len(got)-1].Kind != EventProximityLeave {
		t.Errorf("missing proximity events: first %v, last %v", got[0].Kind, got[len(got)-1].Kind)
	}

	wantPressure := []float32{0.25, 1, 1, 0.25, 0}
	for i, e := range got[1 : len(got)-1] {
		if e.Kind != EventInput {
			t.Fatalf("event %d kind = %v, want input", i+1, e.Kind)
		}
		if e.Point.X != float32(i) {
			t.Errorf("sample %d x = %v, order not preserved", i, e.Point.X)
		}
		if e.Point.Pressure != wantPressure[i] {
			t.Errorf("sample %d pressure = %v, want %v", i, e.Point.Pressure, wantPressure[i])
		}
	}
	if got[4].Point.TiltX != 90 {
		t.Errorf("tilt = %v, want clamped to 90", got[4].Point.TiltX)
	}

	b.Stop()
}

type failingDevice struct{ err error }

func (d failingDevice) Info() Info { return Info{Name: "failing"} }

func (d failingDevice) Read(dst []Event) ([]Event, error) {
	return append(dst, InputEvent(NewPoint(1, 1, 1))), d.err
}

func TestPollingBackendDeviceError(t *testing.T) {
	boom := errors.New("device unplugged")
	b := NewPollingBackend(failingDevice{err: boom})
	if err := b.Init(fastConfig()); err != nil {
		t.Fatal(err)
	}
	if err := b.Start(t.Context()); err != nil {
		t.Fatal(err)
	}
	waitDone(t, b)

	if !errors.Is(b.Err(), boom) {
		t.Errorf("Err() = %v, want %v", b.Err(), boom)
	}
	if b.Status() != StatusError {
		t.Errorf("Status() = %v, want error", b.Status())
	}

	got := b.Poll(nil)
	if len(got) != 2 {
		t.Fatalf("Poll() returned %d events, want 2", len(got))
	}
	if last := got[1]; last.Kind != EventStatusChanged || last.Status != StatusError {
		t.Errorf("last event = %+v, want error status", last)
	}
}

type idleDevice struct{}

func (idleDevice) Info() Info { return Info{Name: "idle"} }

func (idleDevice) Read(dst []Event) ([]Event, error) { return dst, nil }

func TestPollingBackendStop(t *testing.T) {
	b := NewPollingBackend(idleDevice{})

	// Stop before Start is a no-op.
	b.Stop()

	if err := b.Start(t.Context()); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Start() before Init = %v, want ErrNotInitialized", err)
	}
	if err := b.Init(fastConfig()); err != nil {
		t.Fatal(err)
	}
	if err := b.Start(t.Context()); err != nil {
		t.Fatal(err)
	}
	if err := b.Start(t.Context()); !errors.Is(err, ErrAlreadyStarted) {
		t.Errorf("second Start() = %v, want ErrAlreadyStarted", err)
	}
	if err := b.Init(fastConfig()); !errors.Is(err, ErrAlreadyStarted) {
		t.Errorf("Init() while running = %v, want ErrAlreadyStarted", err)
	}

	done := b.Done()
	b.Stop()
	select {
	case <-done:
	default:
		t.Error("Stop() returned before the polling goroutine exited")
	}

	// Restartable after Stop.
	if err := b.Start(t.Context()); err != nil {
		t.Errorf("Start() after Stop = %v", err)
	}
	b.Stop()
}

func TestPollingBackendContextCancel(t *testing.T) {
	b := NewPollingBackend(idleDevice{})
	if err := b.Init(fastConfig()); err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(t.Context())
	if err := b.Start(ctx); err != nil {
		t.Fatal(err)
	}
	cancel()
	waitDone(t, b)
	if b.Err() != nil {
		t.Errorf("Err() after cancel = %v, want nil", b.Err())
	}
	b.Stop()
}

func TestPollingBackendInit(t *testing.T) {
	b := NewPollingBackend(idleDevice{})
	cfg := DefaultConfig()
	cfg.PollingRateHz = 0
	if err := b.Init(cfg); err == nil {
		t.Error("Init() with a zero rate should fail")
	}
	if _, ok := b.Info(); ok {
		t.Error("Info() reported a device before Init")
	}

	if err := b.Init(DefaultConfig()); err != nil {
		t.Fatal(err)
	}
	info, ok := b.Info()
	if !ok || info.Name != "idle" || info.Backend != "Polling" {
		t.Errorf("Info() = %+v, %v", info, ok)
	}
}
