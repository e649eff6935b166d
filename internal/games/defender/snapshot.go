package defender

import "math"

// Snapshot contains the simulation state for replays and determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Frame     uint64
	ClockNs   int64
	Phase     int
	Score     int
	Energy    int
	Level     int
	TimeLeft  int
	Destroyed int
	Total     int

	SlowUses   int
	ShieldUses int
	BlastUses  int
	TimeSlowed bool
	Shielded   bool

	// Anomalies in spawn order
	AnomalyIDs  []string
	AnomalyData []float64 // Each anomaly is 4 values: X, Y, Type, Speed

	// Node positions, 2 values each
	NodeData []float64

	// Connections, 2 node indexes each
	ConnectionData []int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	ids := make([]string, len(g.anomalies))
	data := make([]float64, 0, len(g.anomalies)*4)
	for i, a := range g.anomalies {
		ids[i] = a.ID
		data = append(data, a.Pos.X, a.Pos.Y, float64(a.Type), a.Speed)
	}

	nodes := make([]float64, 0, NodeCount*2)
	for _, n := range g.graph.Nodes() {
		nodes = append(nodes, n.Pos.X, n.Pos.Y)
	}

	conns := make([]int, 0, len(g.graph.conns)*2)
	for _, c := range g.graph.Connections() {
		conns = append(conns, c.From, c.To)
	}

	return Snapshot{
		Frame:     g.frame,
		ClockNs:   int64(g.sched.Now()),
		Phase:     int(g.phase),
		Score:     g.score,
		Energy:    g.energy,
		Level:     g.level,
		TimeLeft:  g.timeLeft,
		Destroyed: g.destroyed,
		Total:     g.total,

		SlowUses:   g.powers.SlowTime,
		ShieldUses: g.powers.Shield,
		BlastUses:  g.powers.Blast,
		TimeSlowed: g.timeSlowed,
		Shielded:   g.shieldActive,

		AnomalyIDs:     ids,
		AnomalyData:    data,
		NodeData:       nodes,
		ConnectionData: conns,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Frame
	h = h*31 + uint64(snap.ClockNs) //#nosec G115 -- hash computation
	for _, v := range []int{snap.Phase, snap.Score, snap.Energy, snap.Level, snap.TimeLeft,
		snap.Destroyed, snap.Total, snap.SlowUses, snap.ShieldUses, snap.BlastUses} {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	if snap.TimeSlowed {
		h = h*31 + 1
	}
	if snap.Shielded {
		h = h*31 + 2
	}

	for _, id := range snap.AnomalyIDs {
		for _, r := range id {
			h = h*31 + uint64(r)
		}
	}
	for _, v := range snap.AnomalyData {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range snap.NodeData {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range snap.ConnectionData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}
