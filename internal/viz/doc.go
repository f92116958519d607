// Package viz hosts the trail effect in a terminal using Bubble Tea.
//
// The terminal stands in for the page the effect was drawn on:
//
//   - [Surface]: glyph handles drawn onto a character [Canvas]
//   - [MouseInput]: mouse motion, presses and drags as pointer and touch input
//   - [Button]: the clickable toggle in the status bar
//   - [Model]: the Bubble Tea model that ties them to a trail.EffectController
//
// # Key Bindings
//
//	Space/Enter - Toggle the effect
//	S           - Show live particle chart
//	T           - Cycle color themes
//	?           - Show help overlay
//	Q           - Quit
//
// Positions are kept in pixels. A terminal cell covers cell_width by
// cell_height pixels, so motion and drift look the same as in the window host.
package viz
