// Command plotview renders one chart frame to a PNG file.
//
// The view starts with the origin centred and Y pointing up. An optional
// YAML script of wheel, drag, resize and reset steps is replayed against
// the viewport before the frame is drawn, and an optional TOML file tunes
// the gestures and axes.
//
//	plotview -script zoom.yaml -output frame.png
//	plotview -config chart.toml -start 2024-03-01T00:00:00Z -span 18h
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math"
	"os"
	"strings"
	"time"

	"github.com/gogpu/plotview"
	"github.com/gogpu/plotview/labels"
	"github.com/gogpu/plotview/layers"
	"github.com/gogpu/plotview/recording"
	_ "github.com/gogpu/plotview/recording/backends/raster"
	"github.com/gogpu/plotview/sample"
	"github.com/gogpu/plotview/script"
	"github.com/gogpu/plotview/timeaxis"
)

func main() {
	var (
		width      = flag.Int("width", 800, "image width")
		height     = flag.Int("height", 400, "image height")
		output     = flag.String("output", "plot.png", "output file")
		configPath = flag.String("config", "", "TOML configuration file")
		scriptPath = flag.String("script", "", "YAML interaction script")
		backend    = flag.String("backend", "raster", "playback backend: "+strings.Join(recording.Backends(), ", "))
		function   = flag.String("func", "sin", "function to plot: sin, tan, sinc or none")
		start      = flag.String("start", "2024-01-01T00:00:00Z", "time axis start (RFC 3339)")
		span       = flag.Duration("span", 12*time.Hour, "time axis span")
		verbose    = flag.Bool("v", false, "log view transitions")
	)
	flag.Parse()

	if *verbose {
		plotview.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	size := plotview.Sz(float64(*width), float64(*height))
	opts := cfg.Options()

	var stack []layers.Layer
	if cfg.TimeAxis.Enabled {
		t0, err := time.Parse(time.RFC3339, *start)
		if err != nil {
			log.Fatalf("Invalid -start: %v", err)
		}
		opts = append(opts, plotview.WithTransform(timeView(size, t0, *span)))
		stack, err = timeStack(cfg, t0, *span)
		if err != nil {
			log.Fatalf("Failed to build time axis: %v", err)
		}
	} else {
		opts = append(opts, plotview.WithTransform(plotview.NewMatrix(50, 0, 0, -50, size.Width/2, size.Height/2)))
		fn, err := namedFunc(*function)
		if err != nil {
			log.Fatal(err)
		}
		stack = numericStack(cfg, fn)
	}

	v := plotview.New(size, opts...)
	b, err := recording.NewBackend(*backend)
	if err != nil {
		log.Fatal(err)
	}
	p := layers.NewPainter(b, stack...)
	sched := &plotview.FrameScheduler{}
	detach := layers.Attach(v, sched, p)
	defer detach()

	if *scriptPath != "" {
		s, err := script.LoadFile(*scriptPath)
		if err != nil {
			log.Fatalf("Failed to load script: %v", err)
		}
		if err := s.Run(v); err != nil {
			log.Fatalf("Script failed: %v", err)
		}
	}
	if !sched.Pending() {
		// Nothing changed the view; request the first frame.
		v.Dispatch(plotview.SetTransform{Matrix: v.State().Transform})
	}
	sched.Flush()
	if painted, _ := p.Stats(); painted == 0 {
		log.Fatal("Nothing was painted")
	}

	if err := save(b, *output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Frame saved to %s (%dx%d)\n", *output, *width, *height)
}

func loadConfig(path string) (plotview.Config, error) {
	if path == "" {
		return plotview.DefaultConfig(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return plotview.Config{}, err
	}
	defer f.Close()
	return plotview.LoadConfig(f)
}

func save(b recording.Backend, path string) error {
	wb, ok := b.(recording.WriterBackend)
	if !ok {
		return errors.New("backend cannot write output")
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := wb.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func namedFunc(name string) (sample.Func, error) {
	switch name {
	case "sin":
		return sample.Plain(math.Sin), nil
	case "tan":
		return sample.Plain(math.Tan), nil
	case "sinc":
		return func(x float64) (float64, error) {
			if x == 0 {
				return 1, nil
			}
			return math.Sin(x) / x, nil
		}, nil
	case "none":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown function %q", name)
	}
}

func numericStack(cfg plotview.Config, fn sample.Func) []layers.Layer {
	theme := layers.DefaultTheme()
	grid := layers.NewGrid(theme)
	grid.Density = cfg.Ticks.Density

	stack := []layers.Layer{
		layers.Background{Color: theme.Background},
		grid,
	}
	if fn != nil {
		stack = append(stack, &layers.FunctionPlot{Fn: fn, Color: theme.Function})
	}
	return append(stack,
		&layers.ValueAxis{
			Density:   cfg.Ticks.Density,
			Threshold: cfg.Ticks.LabelThreshold,
			Padding:   layers.DefaultLabelPadding,
			Color:     theme.Label,
		},
		&layers.NumericAxis{
			Density:   cfg.Ticks.Density,
			Threshold: cfg.Ticks.LabelThreshold,
			Padding:   layers.DefaultLabelPadding,
			Color:     theme.Label,
		},
	)
}

// timeView maps [t0, t0+span] across the canvas width and [-1.5, 1.5]
// across its height.
func timeView(size plotview.Size, t0 time.Time, span time.Duration) plotview.Matrix {
	a := size.Width / span.Seconds()
	d := -size.Height / 3
	return plotview.NewMatrix(a, 0, 0, d, -float64(t0.Unix())*a, size.Height/2)
}

func timeStack(cfg plotview.Config, t0 time.Time, span time.Duration) ([]layers.Layer, error) {
	offset, err := parseOffset(cfg.TimeAxis.UTCOffset)
	if err != nil {
		return nil, err
	}
	opts := []timeaxis.AxisOption{timeaxis.WithUTCOffset(offset)}
	if cfg.TimeAxis.Font == "shaped" {
		m, err := labels.NewShaped(labels.DefaultSize)
		if err != nil {
			return nil, err
		}
		opts = append(opts, timeaxis.WithMeasurer(labels.NewCached(m, 0)))
	}

	theme := layers.DefaultTheme()
	grid := layers.NewGrid(theme)
	grid.Density = cfg.Ticks.Density
	return []layers.Layer{
		layers.Background{Color: theme.Background},
		grid,
		&layers.Series{Points: demoSeries(t0, span), Color: theme.Series},
		&layers.ValueAxis{
			Density:   cfg.Ticks.Density,
			Threshold: cfg.Ticks.LabelThreshold,
			Padding:   layers.DefaultLabelPadding,
			Color:     theme.Label,
		},
		layers.NewTimeAxis(timeaxis.NewAxis(opts...), theme),
	}, nil
}

func parseOffset(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	return time.ParseDuration(s)
}

// demoSeries samples a daily cycle every five minutes over the span.
func demoSeries(t0 time.Time, span time.Duration) []plotview.Point {
	const step = 5 * time.Minute
	n := int(span/step) + 1
	pts := make([]plotview.Point, n)
	for i := range pts {
		ts := t0.Add(time.Duration(i) * step)
		phase := 2 * math.Pi * float64(ts.Unix()%86400) / 86400
		pts[i] = plotview.Pt(float64(ts.Unix()), math.Sin(phase)+0.2*math.Sin(7*phase))
	}
	return pts
}
