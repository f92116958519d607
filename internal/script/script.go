package script

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/bitleak/internal/trail"
)

type Kind string

const (
	KindPointerMove Kind = "pointer_move"
	KindTouchMove   Kind = "touch_move"
	KindTouchStart  Kind = "touch_start"
	KindResize      Kind = "resize"
	KindToggle      Kind = "toggle"
)

var (
	ErrUnknownKind  = errors.New("script: unknown event kind")
	ErrOutOfOrder   = errors.New("script: events out of order")
	ErrEmptyTouches = errors.New("script: touch event without touch points")
)

type Event struct {
	At      float64       `yaml:"at"`
	Kind    Kind          `yaml:"kind"`
	X       float64       `yaml:"x,omitempty"`
	Y       float64       `yaml:"y,omitempty"`
	Touches []trail.Point `yaml:"touches,omitempty,flow"`
	Width   float64       `yaml:"width,omitempty"`
	Height  float64       `yaml:"height,omitempty"`
}

type Script struct {
	Name     string      `yaml:"name"`
	Seed     int64       `yaml:"seed"`
	FPS      int         `yaml:"fps"`
	Viewport trail.Point `yaml:"viewport,flow"`
	Events   []Event     `yaml:"events"`
}

func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func Save(path string, s *Script) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (s *Script) Validate() error {
	prev := 0.0
	for i, ev := range s.Events {
		if ev.At < prev {
			return fmt.Errorf("%w: event %d at %.1fms after %.1fms", ErrOutOfOrder, i, ev.At, prev)
		}
		prev = ev.At
		switch ev.Kind {
		case KindPointerMove, KindResize, KindToggle:
		case KindTouchMove, KindTouchStart:
			if len(ev.Touches) == 0 {
				return fmt.Errorf("%w: event %d", ErrEmptyTouches, i)
			}
		default:
			return fmt.Errorf("%w: %q (event %d)", ErrUnknownKind, ev.Kind, i)
		}
	}
	return nil
}

// Duration is the timestamp of the last event.
func (s *Script) Duration() float64 {
	if len(s.Events) == 0 {
		return 0
	}
	return s.Events[len(s.Events)-1].At
}

// Dispatch delivers ev to h. Toggle events are not input and are skipped.
func (ev Event) Dispatch(h trail.InputHandler) {
	switch ev.Kind {
	case KindPointerMove:
		h.PointerMove(trail.Point{X: ev.X, Y: ev.Y})
	case KindTouchMove:
		h.TouchMove(ev.Touches)
	case KindTouchStart:
		h.TouchStart(ev.Touches)
	case KindResize:
		h.Resize(ev.Width, ev.Height)
	}
}
