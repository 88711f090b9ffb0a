// Package orbit assembles trajectory and layout data into plain drawable
// scenes. Renderers (TUI, SVG) consume the output at their own pace; nothing
// here depends on timing or a drawing surface.
package orbit

import (
	"github.com/mpetriv/lcgviz/internal/lcg"
	"github.com/mpetriv/lcgviz/internal/layout"
)

// MaxDrawableModulus is the largest modulus the drawing shells accept.
// Build allocates one marker per residue, so the TUI and SVG entry points
// refuse anything larger before calling it. The statistics paths carry no
// such limit.
const MaxDrawableModulus = 1 << 14

// Marker is one residue position on the circle.
type Marker struct {
	Value  int64
	Center layout.Point
}

// Edge is one directed trajectory transition, trimmed to marker boundaries,
// with arrowhead barbs and its ramp color. Step is the index of the source
// trajectory step.
type Edge struct {
	Step     int
	From, To int64
	Start    layout.Point
	End      layout.Point
	BarbA    layout.Point
	BarbB    layout.Point
	Color    layout.RGB
}

// Scene is the complete drawable description of one visualization run.
type Scene struct {
	Modulus int64
	Config  layout.Config
	Markers []Marker
	Edges   []Edge
	Cycle   lcg.Cycle
}

// Build lays out every residue of the trajectory's modulus and one edge per
// transition, including the closing edge from the last step back into the
// cycle start.
func Build(traj *lcg.Trajectory, cfg layout.Config, base layout.RGB) *Scene {
	m := traj.Params.Modulus

	markers := make([]Marker, m)
	for v := int64(0); v < m; v++ {
		markers[v] = Marker{
			Value:  v,
			Center: layout.PointForResidue(v, m, cfg),
		}
	}

	edges := make([]Edge, 0, len(traj.Steps))
	for i, s := range traj.Steps {
		var to int64
		if i+1 < len(traj.Steps) {
			to = traj.Steps[i+1].Value
		} else {
			to = traj.Cycle.Start
		}
		edges = append(edges, buildEdge(s, to, m, cfg, base))
	}

	return &Scene{
		Modulus: m,
		Config:  cfg,
		Markers: markers,
		Edges:   edges,
		Cycle:   traj.Cycle,
	}
}

func buildEdge(s lcg.Step, to int64, m int64, cfg layout.Config, base layout.RGB) Edge {
	fromCenter := layout.PointForResidue(s.Value, m, cfg)
	toCenter := layout.PointForResidue(to, m, cfg)

	// Trim each end independently toward the opposite marker center.
	start := layout.EdgePoint(fromCenter, toCenter, cfg.MarkerRadius)
	end := layout.EdgePoint(toCenter, fromCenter, cfg.MarkerRadius)
	barbA, barbB := layout.Arrowhead(end, start, cfg.MarkerRadius)

	return Edge{
		Step:  s.Index,
		From:  s.Value,
		To:    to,
		Start: start,
		End:   end,
		BarbA: barbA,
		BarbB: barbB,
		Color: layout.Shade(base, s.Index),
	}
}

// Frames returns a restartable cursor over the scene's edges in step order.
func (s *Scene) Frames() *Frames {
	return &Frames{scene: s}
}

// Frames walks edges one at a time so an animating shell can pace their
// appearance without touching generation.
type Frames struct {
	scene *Scene
	pos   int
}

// Next returns the next edge, or false once all edges were consumed.
func (f *Frames) Next() (Edge, bool) {
	if f.pos >= len(f.scene.Edges) {
		return Edge{}, false
	}
	e := f.scene.Edges[f.pos]
	f.pos++
	return e, true
}

// Reset rewinds the cursor to the first edge.
func (f *Frames) Reset() { f.pos = 0 }

// Remaining reports how many edges have not been consumed yet.
func (f *Frames) Remaining() int { return len(f.scene.Edges) - f.pos }
