package script

import (
	"fmt"
	"math"

	"github.com/san-kum/bitleak/internal/trail"
)

// Orbit builds n pointer moves around a circle, one every interval ms.
// Every tenth event is a two-finger touch instead, mirrored across the
// centre.
func Orbit(n int, center trail.Point, radius, interval float64) *Script {
	s := &Script{
		Name:     fmt.Sprintf("orbit-%d", n),
		Seed:     42,
		FPS:      DefaultFPS,
		Viewport: trail.Point{X: center.X * 2, Y: center.Y * 2},
		Events:   make([]Event, 0, n),
	}
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / 120
		x := center.X + radius*math.Cos(angle)
		y := center.Y + radius*math.Sin(angle)
		ev := Event{At: float64(i) * interval, Kind: KindPointerMove, X: x, Y: y}
		if i%10 == 9 {
			ev = Event{
				At:   ev.At,
				Kind: KindTouchMove,
				Touches: []trail.Point{
					{X: x, Y: y},
					{X: 2*center.X - x, Y: 2*center.Y - y},
				},
			}
		}
		s.Events = append(s.Events, ev)
	}
	return s
}
