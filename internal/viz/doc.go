// Package viz animates LCG orbits in the terminal.
//
// The package implements a Bubble Tea model that draws the residue circle on
// a Braille pixel canvas and reveals one trajectory edge per tick, pacing
// the animation with a fixed inter-step delay. Edge brightness follows the
// shared 9-level color ramp so consecutive edges stay distinguishable.
//
// # Key Bindings
//
//	Space - Pause/Resume animation
//	N     - Reveal a single edge while paused
//	R     - Restart the animation
//	+/-   - Halve/double the inter-step delay
//	T     - Cycle color themes
//	Q     - Quit
package viz
