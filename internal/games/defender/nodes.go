package defender

import (
	"math"
	"sort"

	"github.com/vovakirdan/quantum-defender/internal/core"
)

// NodeCount is the fixed number of defense nodes.
const NodeCount = 6

// nodeLayout holds the initial node positions as percentages of the arena.
var nodeLayout = [NodeCount]core.Vec2{
	{X: 20, Y: 20}, {X: 50, Y: 80}, {X: 80, Y: 20},
	{X: 20, Y: 80}, {X: 80, Y: 80}, {X: 50, Y: 20},
}

// Node is a player-draggable defense node.
type Node struct {
	Index int
	Pos   core.Vec2
}

// Connection is a defense line between two nodes. From is always less than To.
type Connection struct {
	From, To int
	Length   float64 // World units
	Angle    float64 // Degrees, from the From node toward the To node
}

// Key returns the unordered node pair.
func (c Connection) Key() [2]int {
	return [2]int{c.From, c.To}
}

// Graph is the node/connection graph. Connections are derived state: two
// nodes are connected iff their distance is below the threshold.
type Graph struct {
	nodes     [NodeCount]Node
	conns     []Connection
	threshold float64
	width     float64
	height    float64
}

// NewGraph places the nodes at their preset positions scaled to the arena
// and computes the initial connections.
func NewGraph(width, height, threshold float64) *Graph {
	g := &Graph{
		threshold: threshold,
		width:     width,
		height:    height,
	}
	for i, p := range nodeLayout {
		g.nodes[i] = Node{
			Index: i,
			Pos:   core.Vec2{X: p.X / 100 * width, Y: p.Y / 100 * height},
		}
	}
	g.Rebuild()
	return g
}

// Nodes returns a copy of the nodes.
func (g *Graph) Nodes() []Node {
	out := make([]Node, NodeCount)
	copy(out, g.nodes[:])
	return out
}

// Node returns the node at index i.
func (g *Graph) Node(i int) Node {
	return g.nodes[i]
}

// Connections returns the current connections ordered by (From, To).
func (g *Graph) Connections() []Connection {
	out := make([]Connection, len(g.conns))
	copy(out, g.conns)
	return out
}

// Segment returns the endpoints of a connection.
func (g *Graph) Segment(c Connection) (core.Vec2, core.Vec2) {
	return g.nodes[c.From].Pos, g.nodes[c.To].Pos
}

// MoveNode repositions node i, clamped to the arena, then drops every
// connection touching it and rescans it against all other nodes.
// Out-of-range indexes are ignored.
func (g *Graph) MoveNode(i int, pos core.Vec2) {
	if i < 0 || i >= NodeCount {
		return
	}

	g.nodes[i].Pos = core.Vec2{
		X: core.ClampF(pos.X, 0, g.width),
		Y: core.ClampF(pos.Y, 0, g.height),
	}

	kept := g.conns[:0]
	for _, c := range g.conns {
		if c.From != i && c.To != i {
			kept = append(kept, c)
		}
	}
	g.conns = kept

	for j := range g.nodes {
		if j == i {
			continue
		}
		g.connectIfNear(i, j)
	}
	g.sortConnections()
}

// Rebuild recomputes every connection from node positions alone.
func (g *Graph) Rebuild() {
	g.conns = g.conns[:0]
	for i := 0; i < NodeCount; i++ {
		for j := i + 1; j < NodeCount; j++ {
			g.connectIfNear(i, j)
		}
	}
	g.sortConnections()
}

func (g *Graph) connectIfNear(i, j int) {
	from, to := i, j
	if from > to {
		from, to = to, from
	}

	a, b := g.nodes[from].Pos, g.nodes[to].Pos
	length := core.Dist(a, b)
	if length >= g.threshold {
		return
	}

	g.conns = append(g.conns, Connection{
		From:   from,
		To:     to,
		Length: length,
		Angle:  math.Atan2(b.Y-a.Y, b.X-a.X) * 180 / math.Pi,
	})
}

func (g *Graph) sortConnections() {
	sort.Slice(g.conns, func(a, b int) bool {
		if g.conns[a].From != g.conns[b].From {
			return g.conns[a].From < g.conns[b].From
		}
		return g.conns[a].To < g.conns[b].To
	})
}
