// Package trail implements the glyph cursor-trail engine.
//
// The package is host agnostic. A host (terminal, window, headless player)
// supplies the platform pieces and the engine does the rest:
//
//   - [InputTracker]: turns pointer and touch input into spawn requests
//   - [ParticleSet]: owns every live [Particle] and its visual [Handle]
//   - [Driver]: frame loop that updates particles and reaps expired ones
//   - [EffectController]: toggles the whole effect on and off
//
// # Example
//
//	queue := trail.NewFrameQueue()
//	fx := trail.New(trail.Options{
//		Tuning:    trail.DefaultTuning(),
//		Random:    trail.NewSource(42),
//		Surface:   surface,
//		Scheduler: queue,
//		Input:     input,
//		Control:   button,
//	})
//	fx.Mount()
//	// once per display refresh:
//	queue.Flush(nowMillis)
//
// # Thread Safety
//
// Nothing in this package is safe for concurrent use. Every call is expected
// on the host's single UI goroutine.
package trail

//go:generate go tool mockgen -destination=mocks/mock_trail.go -package=mocks . Handle,Surface,Control,InputSource
