package layout

import "fmt"

// RampLevels is the number of brightness levels in the edge color ramp.
// Consecutive edges cycle through the ramp so long trajectories stay legible.
const RampLevels = 9

// minBrightness is the scale applied at the darkest ramp level.
const minBrightness = 0.3

// RGB is an 8-bit color channel triple.
type RGB struct {
	R, G, B uint8
}

// Hex renders the color as a #rrggbb string for SVG and terminal styling.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// scale multiplies all channels by f, clamping at zero.
func (c RGB) scale(f float64) RGB {
	if f < 0 {
		f = 0
	}
	return RGB{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
	}
}

// Ramp returns the full brightness palette for a base color. Level k
// (1-indexed) scales the base by 1 - (k/RampLevels)*(1-minBrightness),
// a linear fade from near-full brightness down to 30%.
func Ramp(base RGB) [RampLevels]RGB {
	var p [RampLevels]RGB
	for i := 0; i < RampLevels; i++ {
		k := float64(i + 1)
		p[i] = base.scale(1 - k/RampLevels*(1-minBrightness))
	}
	return p
}

// Shade picks the ramp color for a trajectory step index.
func Shade(base RGB, step int) RGB {
	if step < 0 {
		step = -step
	}
	return Ramp(base)[step%RampLevels]
}
