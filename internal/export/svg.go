// Package export renders orbit scenes to SVG.
package export

import (
	"fmt"
	"strings"

	"github.com/mpetriv/lcgviz/internal/orbit"
)

const (
	background  = "#0a0a0a"
	markerFill  = "#1a1a2a"
	markerLine  = "#5588aa"
	labelColor  = "#99bbcc"
	maxLabels   = 128
	labelOffset = 1.8
)

// OrbitSVG renders the scene into a standalone SVG document. Residue
// markers become circles, trajectory edges become ramp-colored lines with
// arrowhead barbs. Value labels are dropped once the modulus is large
// enough that they would overlap into noise.
func OrbitSVG(scene *orbit.Scene, width, height int) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, background))

	r := scene.Config.MarkerRadius
	sb.WriteString(fmt.Sprintf(`<g fill="%s" stroke="%s" stroke-width="1">
`, markerFill, markerLine))
	for _, mk := range scene.Markers {
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, mk.Center.X, mk.Center.Y, r))
	}
	sb.WriteString("</g>\n")

	if scene.Modulus <= maxLabels {
		fontSize := r * 1.1
		sb.WriteString(fmt.Sprintf(`<g fill="%s" font-family="monospace" font-size="%.1f" text-anchor="middle">
`, labelColor, fontSize))
		for _, mk := range scene.Markers {
			// Push the label outward from the circle so edges stay clear.
			lx := scene.Config.CenterX + (mk.Center.X-scene.Config.CenterX)*(1+labelOffset*r/scene.Config.Radius)
			ly := scene.Config.CenterY + (mk.Center.Y-scene.Config.CenterY)*(1+labelOffset*r/scene.Config.Radius)
			sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f">%d</text>
`, lx, ly+fontSize/3, mk.Value))
		}
		sb.WriteString("</g>\n")
	}

	sb.WriteString(`<g stroke-width="1.5" fill="none">
`)
	for _, e := range scene.Edges {
		hex := e.Color.Hex()
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s"/>
`, e.Start.X, e.Start.Y, e.End.X, e.End.Y, hex))
		sb.WriteString(fmt.Sprintf(`<polyline points="%.1f,%.1f %.1f,%.1f %.1f,%.1f" stroke="%s"/>
`, e.BarbA.X, e.BarbA.Y, e.End.X, e.End.Y, e.BarbB.X, e.BarbB.Y, hex))
	}
	sb.WriteString("</g>\n</svg>")

	return sb.String()
}
