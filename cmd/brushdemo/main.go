// Command brushdemo paints a recorded or generated pen stroke with a brush
// preset and saves the result as PNG.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/brush"
	"github.com/gogpu/brush/input"
	"github.com/gogpu/brush/preset"
)

func main() {
	var (
		width      = flag.Int("width", 800, "image width")
		height     = flag.Int("height", 600, "image height")
		output     = flag.String("output", "demo.png", "output file")
		presetPath = flag.String("preset", "", "TOML preset library")
		brushName  = flag.String("brush", "", "preset name (default: first in library)")
		replayPath = flag.String("replay", "", "replay recorded samples (JSON lines)")
		recordPath = flag.String("record", "", "write the generated samples to this file")
		rate       = flag.Int("rate", 200, "polling rate in Hz")
		scale      = flag.Float64("scale", 1, "output scale factor")
		colorHex   = flag.String("color", "", "override the preset color (#rrggbb)")
		opacity    = flag.Float64("opacity", -1, "override the preset opacity")
		verbose    = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		brush.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	p, err := loadPreset(*presetPath, *brushName)
	if err != nil {
		log.Fatalf("Failed to load preset: %v", err)
	}
	if *colorHex != "" {
		if p.Color, err = brush.ParseHex(*colorHex); err != nil {
			log.Fatalf("Invalid color: %v", err)
		}
	}
	if *opacity >= 0 {
		p.Opacity = float32(*opacity)
	}

	replay, err := loadSamples(*replayPath, *recordPath, *width, *height)
	if err != nil {
		log.Fatalf("Failed to load samples: %v", err)
	}

	pm := brush.NewPixmap(*width, *height)
	pm.Clear(brush.White, 1)
	s := brush.NewSession(pm, p.SessionOptions()...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg := input.DefaultConfig()
	cfg.PollingRateHz = *rate
	cfg.PressureCurve = p.Curve
	if err := paint(ctx, s, replay, cfg); err != nil {
		log.Fatalf("Painting failed: %v", err)
	}

	if *scale != 1 {
		w := int(math.Round(float64(*width) * *scale))
		h := int(math.Round(float64(*height) * *scale))
		pm = pm.Scale(w, h)
	}
	if err := pm.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Painted %d samples with %q saved to %s (%dx%d)\n",
		replay.Len(), p.Name, *output, pm.Width(), pm.Height())
}

// paint runs a polling backend over the replay device and feeds its events
// into the session until the device is exhausted.
func paint(ctx context.Context, s *brush.Session, dev input.Device, cfg input.Config) error {
	backend := input.NewPollingBackend(dev)
	if err := backend.Init(cfg); err != nil {
		return err
	}
	if err := backend.Start(ctx); err != nil {
		return err
	}
	defer backend.Stop()
	done := backend.Done()

	g, ctx := errgroup.WithContext(ctx)

	// Producer: the polling goroutine owned by the backend.
	g.Go(func() error {
		select {
		case <-done:
			return backend.Err()
		case <-ctx.Done():
			return ctx.Err()
		}
	})

	// Consumer: drains the queue at display rate.
	g.Go(func() error {
		tick := time.NewTicker(time.Second / 60)
		defer tick.Stop()

		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-done:
				s.Poll(backend)
				s.End()
				return nil
			case <-tick.C:
				if r := s.Poll(backend); !r.IsEmpty() {
					log.Printf("Stroke merged into %v, %d tiles to refresh\n", r.Image(), len(s.Invalidated()))
				}
			}
		}
	})

	return g.Wait()
}

func loadPreset(path, name string) (preset.Preset, error) {
	if path == "" {
		p := preset.Default()
		p.Color = brush.RGB{R: 0.15, G: 0.3, B: 0.7}
		p.Flow = 0.4
		p.Opacity = 0.8
		p.Hardness = 0.6
		return p, nil
	}

	lib, err := preset.LoadFile(path)
	if err != nil {
		return preset.Preset{}, err
	}
	if name != "" {
		return lib.Find(name)
	}
	if len(lib) == 0 {
		return preset.Default(), nil
	}
	return lib[0], nil
}

func loadSamples(replayPath, recordPath string, width, height int) (*input.Replay, error) {
	if replayPath != "" {
		f, err := os.Open(replayPath) //nolint:gosec // path is user-provided intentionally
		if err != nil {
			return nil, err
		}
		defer func() {
			_ = f.Close()
		}()
		return input.LoadReplay(f)
	}

	points := generateStrokes(width, height)
	if recordPath != "" {
		f, err := os.Create(recordPath) //nolint:gosec // path is user-provided intentionally
		if err != nil {
			return nil, err
		}
		if err := input.WriteReplay(f, points); err != nil {
			_ = f.Close()
			return nil, err
		}
		if err := f.Close(); err != nil {
			return nil, err
		}
	}
	return input.NewReplay(points), nil
}

// generateStrokes returns two crossing wavy strokes with a pressure swell,
// separated by a pen lift.
func generateStrokes(width, height int) []input.Point {
	var points []input.Point
	ts := uint64(time.Now().UnixMilli())

	w, h := float64(width), float64(height)
	for stroke := range 2 {
		phase := float64(stroke) * math.Pi
		for x := w * 0.1; x <= w*0.9; x += 7 {
			t := (x - w*0.1) / (w * 0.8)
			points = append(points, input.Point{
				X:         float32(x),
				Y:         float32(h/2 + h/4*math.Sin(2*math.Pi*t+phase)),
				Pressure:  float32(0.3 + 0.7*math.Sin(math.Pi*t)),
				TiltX:     float32(30 * math.Cos(2*math.Pi*t)),
				TiltY:     float32(30 * math.Sin(2*math.Pi*t)),
				Timestamp: ts,
			})
			ts += 5
		}
		last := points[len(points)-1]
		last.Pressure = 0
		points = append(points, last)
	}
	return points
}
