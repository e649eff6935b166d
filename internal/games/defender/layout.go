package defender

import "github.com/vovakirdan/quantum-defender/internal/core"

// Screen layout: two HUD rows, the arena box, one hint row.
const (
	hudRows  = 2
	arenaTop = hudRows // Box top border row
	hintRows = 1
)

// arenaBox returns the arena frame in screen cells.
func (g *Game) arenaBox() core.Rect {
	return core.NewRect(0, arenaTop, g.runtime.ScreenW, g.runtime.ScreenH-arenaTop-hintRows)
}

// interior returns the drawable area inside the arena frame.
func (g *Game) interior() core.Rect {
	box := g.arenaBox()
	return core.NewRect(box.X+1, box.Y+1, core.Max(1, box.W-2), core.Max(1, box.H-2))
}

// toCell maps a world position to the screen cell it falls in, clamped to
// the arena interior so off-arena anomalies show at the edge.
func (g *Game) toCell(p core.Vec2) (int, int) {
	in := g.interior()
	cx := int(p.X / g.cfg.Arena.Width * float64(in.W))
	cy := int(p.Y / g.cfg.Arena.Height * float64(in.H))
	if p.X < 0 {
		cx = 0
	}
	if p.Y < 0 {
		cy = 0
	}
	return in.X + core.Clamp(cx, 0, in.W-1), in.Y + core.Clamp(cy, 0, in.H-1)
}

// toWorld maps a screen cell to the world position at the cell center.
func (g *Game) toWorld(x, y int) core.Vec2 {
	in := g.interior()
	return core.Vec2{
		X: (float64(x-in.X) + 0.5) / float64(in.W) * g.cfg.Arena.Width,
		Y: (float64(y-in.Y) + 0.5) / float64(in.H) * g.cfg.Arena.Height,
	}
}

// applyPointer processes mouse events in arrival order.
func (g *Game) applyPointer(events []core.PointerEvent) {
	for _, ev := range events {
		switch ev.Kind {
		case core.PointerDown:
			g.pointerDown(ev.X, ev.Y)
		case core.PointerMove:
			if g.dragNode != noDrag && g.phase == PhasePlaying {
				g.graph.MoveNode(g.dragNode, g.toWorld(ev.X, ev.Y))
			}
		case core.PointerUp:
			g.dragNode = noDrag
		}
	}
}

// pointerDown destroys a clicked anomaly, or grabs a node for dragging.
func (g *Game) pointerDown(x, y int) {
	if g.phase != PhasePlaying {
		return
	}
	if !g.interior().Contains(x, y) {
		return
	}

	if a := g.anomalyAt(x, y); a != nil {
		g.ClickAnomaly(a.ID)
		return
	}
	if n := g.nodeAt(x, y); n >= 0 {
		g.dragNode = n
	}
}

// ClickAnomaly destroys an anomaly the player clicked. No-op outside of play.
func (g *Game) ClickAnomaly(id string) bool {
	if g.phase != PhasePlaying {
		return false
	}
	if g.anomalyIndex(id) < 0 {
		return false
	}
	g.emit(Event{Kind: EventSound, Sound: SoundClick})
	return g.destroyAnomaly(id)
}

// DragNode moves a node while playing. No-op in any other phase.
func (g *Game) DragNode(i int, pos core.Vec2) {
	if g.phase != PhasePlaying {
		return
	}
	g.graph.MoveNode(i, pos)
}

// anomalyAt returns the anomaly drawn nearest to (x, y), within one cell.
func (g *Game) anomalyAt(x, y int) *Anomaly {
	var best *Anomaly
	bestD := 3
	for _, a := range g.anomalies {
		ax, ay := g.toCell(a.Pos)
		d := core.Abs(ax-x) + core.Abs(ay-y)
		if core.Abs(ax-x) <= 1 && core.Abs(ay-y) <= 1 && d < bestD {
			best, bestD = a, d
		}
	}
	return best
}

// nodeAt returns the index of the node drawn at or next to (x, y), or -1.
func (g *Game) nodeAt(x, y int) int {
	best, bestD := -1, 3
	for _, n := range g.graph.Nodes() {
		nx, ny := g.toCell(n.Pos)
		d := core.Abs(nx-x) + core.Abs(ny-y)
		if core.Abs(nx-x) <= 1 && core.Abs(ny-y) <= 1 && d < bestD {
			best, bestD = n.Index, d
		}
	}
	return best
}

// Dragging returns the index of the node being dragged, or -1.
func (g *Game) Dragging() int { return g.dragNode }

// CellOf exposes the world-to-screen mapping for the platform layer.
func (g *Game) CellOf(p core.Vec2) (int, int) { return g.toCell(p) }
