// Package script replays recorded viewport interactions.
//
// A script is a YAML list of steps, each holding exactly one action:
//
//	name: zoom-in
//	steps:
//	  - wheel: {x: 400, y: 200, delta: -1}
//	    repeat: 10
//	  - drag:
//	      region: plot
//	      button: 0
//	      from: {x: 400, y: 200}
//	      to: {x: 300, y: 150}
//	      moves: 4
//	  - resize: {width: 1024, height: 512}
//	  - reset: true
//
// Positions are element-local pixels, the same space pointer events use.
package script

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/plotview"
)

// ErrInvalidStep is returned for a step with no action or more than one.
var ErrInvalidStep = errors.New("script: invalid step")

// Script is a named sequence of steps.
type Script struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// Step is one scripted action, optionally repeated.
type Step struct {
	Wheel  *Wheel  `yaml:"wheel,omitempty"`
	Drag   *Drag   `yaml:"drag,omitempty"`
	Resize *Resize `yaml:"resize,omitempty"`
	Reset  bool    `yaml:"reset,omitempty"`
	Move   *Point  `yaml:"move,omitempty"`

	// Repeat runs the action this many times. Zero means once.
	Repeat int `yaml:"repeat,omitempty"`
}

// Point is a position in element-local pixels.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (p Point) pt() plotview.Point { return plotview.Pt(p.X, p.Y) }

// Wheel is one wheel tick at a pointer position. A negative delta zooms
// in.
type Wheel struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Delta float64 `yaml:"delta"`
}

// Drag presses a button on a region, moves the pointer in Moves equal
// steps from From to To and releases it.
type Drag struct {
	Region string `yaml:"region"`
	Button int    `yaml:"button"`
	From   Point  `yaml:"from"`
	To     Point  `yaml:"to"`
	Moves  int    `yaml:"moves"`

	// Leave ends the drag with a pointer-leave instead of a release.
	Leave bool `yaml:"leave"`
}

// Resize changes the canvas size.
type Resize struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Load decodes a script from r. Unknown keys are an error.
func Load(r io.Reader) (*Script, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var s Script
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return &s, nil
		}
		return nil, fmt.Errorf("script: decode: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadFile decodes the script stored at path.
func LoadFile(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Validate checks that every step holds exactly one known action.
func (s *Script) Validate() error {
	for i, st := range s.Steps {
		if n := st.actions(); n != 1 {
			return fmt.Errorf("%w: step %d has %d actions", ErrInvalidStep, i, n)
		}
		if st.Repeat < 0 {
			return fmt.Errorf("%w: step %d has negative repeat %d", ErrInvalidStep, i, st.Repeat)
		}
		if st.Drag != nil {
			if _, err := ParseRegion(st.Drag.Region); err != nil {
				return fmt.Errorf("%w: step %d: %v", ErrInvalidStep, i, err)
			}
		}
	}
	return nil
}

func (st Step) actions() int {
	n := 0
	for _, set := range []bool{st.Wheel != nil, st.Drag != nil, st.Resize != nil, st.Reset, st.Move != nil} {
		if set {
			n++
		}
	}
	return n
}

// ParseRegion maps a region name to a plotview.Region. The empty name
// selects the plot area.
func ParseRegion(name string) (plotview.Region, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "plot":
		return plotview.RegionPlot, nil
	case "axis-x", "x":
		return plotview.RegionAxisX, nil
	case "axis-y", "y":
		return plotview.RegionAxisY, nil
	default:
		return 0, fmt.Errorf("unknown region %q", name)
	}
}

// Run replays the script against v. Every step is validated before it
// runs; the first invalid step stops the replay.
func (s *Script) Run(v *plotview.Viewport) error {
	for i, st := range s.Steps {
		if n := st.actions(); n != 1 {
			return fmt.Errorf("%w: step %d has %d actions", ErrInvalidStep, i, n)
		}
		times := max(1, st.Repeat)
		for j := 0; j < times; j++ {
			if err := st.apply(v); err != nil {
				return fmt.Errorf("script: step %d: %w", i, err)
			}
		}
	}
	plotview.Logger().Debug("script: replayed",
		slog.String("name", s.Name),
		slog.Int("steps", len(s.Steps)),
		slog.String("transform", v.State().Transform.String()))
	return nil
}

func (st Step) apply(v *plotview.Viewport) error {
	switch {
	case st.Wheel != nil:
		v.Wheel(plotview.Pt(st.Wheel.X, st.Wheel.Y), st.Wheel.Delta)
	case st.Drag != nil:
		return st.Drag.apply(v)
	case st.Resize != nil:
		v.Resize(plotview.Sz(st.Resize.Width, st.Resize.Height))
	case st.Reset:
		v.Reset()
	case st.Move != nil:
		v.PointerMove(st.Move.pt())
	}
	return nil
}

func (d *Drag) apply(v *plotview.Viewport) error {
	region, err := ParseRegion(d.Region)
	if err != nil {
		return err
	}
	moves := max(1, d.Moves)
	from, to := d.From.pt(), d.To.pt()

	v.PointerDown(region, plotview.Button(d.Button), from)
	for i := 1; i <= moves; i++ {
		v.PointerMove(from.Lerp(to, float64(i)/float64(moves)))
	}
	if d.Leave {
		v.PointerLeave()
	} else {
		v.PointerUp()
	}
	return nil
}
