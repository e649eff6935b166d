package defender

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/quantum-defender/internal/core"
)

// Visual characters for rendering
const (
	CoreChar       = '@'
	ShieldRingChar = '·'
	FlashChar      = '*'
	SparkChar      = '.'
	RingChar       = 'o'
)

// AnomalyGlyphs by anomaly type (1-based).
var AnomalyGlyphs = [3]rune{'~', '!', '*'}

var anomalyColors = [3]core.Color{core.ColorPink, core.ColorOrange, core.ColorBrightGreen}

// Render draws the current game state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d, have %dx%d", minScreenW, minScreenH, dst.Width(), dst.Height())
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	theme := ThemeFor(g.level)

	g.renderHUD(dst)
	dst.DrawBoxColored(g.arenaBox(), theme.Color)
	g.renderConnections(dst, theme.Color)
	g.renderCore(dst)
	g.renderParticles(dst)
	g.renderNodes(dst)
	g.renderAnomalies(dst)
	g.renderOverlay(dst)
	g.renderHints(dst)
}

func (g *Game) renderHUD(dst *core.Screen) {
	energyColor := core.ColorBrightGreen
	switch {
	case g.energy <= 30:
		energyColor = core.ColorBrightRed
	case g.energy <= 60:
		energyColor = core.ColorYellow
	}

	x := 1
	x = drawStat(dst, x, 0, "ENERGY ", fmt.Sprintf("%d%%", g.energy), energyColor)
	x = drawStat(dst, x, 0, " | SCORE ", fmt.Sprintf("%d", g.score), core.ColorBrightWhite)
	x = drawStat(dst, x, 0, " | LEVEL ", fmt.Sprintf("%d", g.level), ThemeFor(g.level).Color)
	x = drawStat(dst, x, 0, " | ANOMALIES ", fmt.Sprintf("%d/%d", g.destroyed, g.total), core.ColorBrightWhite)
	drawStat(dst, x, 0, " | TIME ", fmt.Sprintf("%ds", g.timeLeft), core.ColorBrightWhite)

	x = 1
	for _, pw := range []Power{PowerSlowTime, PowerShield, PowerBlast} {
		label := fmt.Sprintf("[%d]%s %d ", int(pw)+1, pw, g.powers.Count(pw))
		c := core.ColorCyan
		if g.powers.Count(pw) == 0 || g.phase != PhasePlaying {
			c = core.ColorGray
		}
		dst.DrawTextColored(x, 1, label, c)
		x += len(label)
	}
	if g.timeSlowed {
		dst.DrawTextColored(x, 1, "SLOWED ", core.ColorBrightCyan)
		x += 7
	}
	if g.shieldActive {
		dst.DrawTextColored(x, 1, "SHIELDED ", core.ColorBrightBlue)
	}

	vol := fmt.Sprintf("VOL %d%%", g.volume)
	dst.DrawTextColored(dst.Width()-len(vol)-1, 1, vol, core.ColorGray)
}

// drawStat writes a gray label followed by a colored value and returns the next x.
func drawStat(dst *core.Screen, x, y int, label, value string, c core.Color) int {
	dst.DrawTextColored(x, y, label, core.ColorGray)
	x += len(label)
	dst.DrawTextColored(x, y, value, c)
	return x + len(value)
}

func (g *Game) renderConnections(dst *core.Screen, c core.Color) {
	for _, conn := range g.graph.Connections() {
		from, to := g.graph.Segment(conn)
		x0, y0 := g.toCell(from)
		x1, y1 := g.toCell(to)

		glyph, color := lineGlyph(x1-x0, y1-y0), c
		if g.isFlashing(conn) {
			glyph, color = FlashChar, core.ColorBrightYellow
		}

		steps := core.Max(core.Abs(x1-x0), core.Abs(y1-y0))
		for i := 1; i < steps; i++ {
			t := float64(i) / float64(steps)
			x := x0 + int(math.Round(t*float64(x1-x0)))
			y := y0 + int(math.Round(t*float64(y1-y0)))
			dst.SetColored(x, y, glyph, color)
		}
	}
}

// lineGlyph picks the line character closest to the slope of (dx, dy) in cells.
func lineGlyph(dx, dy int) rune {
	if dx == 0 {
		return '|'
	}
	slope := float64(dy) / float64(dx)
	switch {
	case math.Abs(slope) < 0.4:
		return '-'
	case math.Abs(slope) > 2.5:
		return '|'
	case slope > 0:
		return '\\'
	default:
		return '/'
	}
}

func (g *Game) renderCore(dst *core.Screen) {
	center := g.corePos()
	cx, cy := g.toCell(center)

	if g.shieldActive {
		for i := 0; i < 64; i++ {
			a := float64(i) / 64 * 2 * math.Pi
			p := core.Vec2{
				X: center.X + math.Cos(a)*g.cfg.Arena.CoreRadius,
				Y: center.Y + math.Sin(a)*g.cfg.Arena.CoreRadius,
			}
			x, y := g.toCell(p)
			dst.SetColored(x, y, ShieldRingChar, core.ColorBrightBlue)
		}
		dst.DrawTextColored(cx-1, cy, "(@)", core.ColorBrightCyan)
		return
	}

	dst.SetColored(cx, cy, CoreChar, core.ColorBrightCyan)
}

func (g *Game) renderParticles(dst *core.Screen) {
	for _, p := range g.particles.Particles() {
		switch p.Kind {
		case ParticleShockwave:
			for i := 0; i < 24; i++ {
				a := float64(i) / 24 * 2 * math.Pi
				x, y := g.toCell(core.Vec2{
					X: p.Origin.X + math.Cos(a)*p.Radius,
					Y: p.Origin.Y + math.Sin(a)*p.Radius,
				})
				dst.SetColored(x, y, SparkChar, p.Color)
			}
		case ParticleOrbit:
			x, y := g.toCell(p.Pos)
			dst.SetColored(x, y, RingChar, p.Color)
		default:
			x, y := g.toCell(p.Pos)
			dst.SetColored(x, y, SparkChar, p.Color)
		}
	}
}

func (g *Game) renderNodes(dst *core.Screen) {
	for _, n := range g.graph.Nodes() {
		x, y := g.toCell(n.Pos)
		c := core.ColorBrightWhite
		if n.Index == g.dragNode {
			c = core.ColorBrightYellow
		}
		dst.SetColored(x, y, rune('1'+n.Index), c)
	}
}

func (g *Game) renderAnomalies(dst *core.Screen) {
	for _, a := range g.anomalies {
		x, y := g.toCell(a.Pos)
		t := core.Clamp(a.Type, 1, len(AnomalyGlyphs)) - 1
		dst.SetColored(x, y, AnomalyGlyphs[t], anomalyColors[t])
	}
}

func (g *Game) renderOverlay(dst *core.Screen) {
	in := g.interior()

	if g.phase == PhaseMenu && !g.helpVisible {
		_, cy := in.Center()
		dst.DrawTextCenteredColored(cy+2, " QUANTUM DEFENDER ", core.ColorBrightCyan)
		dst.DrawTextCenteredColored(cy+3, " Press ENTER to start, H for help ", core.ColorGray)
	}

	if g.banner != "" {
		dst.DrawTextCenteredColored(in.Y+1, " "+g.banner+" ", g.bannerColor)
	}

	switch {
	case g.helpVisible:
		g.renderModal(dst, "INSTRUCTIONS", helpLines, core.ColorBrightCyan)
	case g.phase == PhaseGameOver:
		g.renderGameOver(dst)
	}
}

var helpLines = []string{
	"Drag the numbered nodes with the mouse.",
	"Nodes closer than the link range join up.",
	"Links destroy anomalies that cross them.",
	"Click an anomaly to destroy it directly.",
	"Protect the core @ until time runs out",
	"or clear every anomaly in the level.",
	"",
	"1 slow time  2 shield  3 quantum blast",
	"P pause  R restart  +/- volume",
	"",
	"ENTER or H to close",
}

func (g *Game) renderGameOver(dst *core.Screen) {
	title := "MISSION FAILED"
	color := core.ColorBrightRed
	if g.final.Success {
		title, color = "MISSION SUCCESS", core.ColorBrightGreen
	}

	lines := []string{
		fmt.Sprintf("Final score:  %d", g.final.Score),
		fmt.Sprintf("Levels:       %d", g.final.Level),
		fmt.Sprintf("Destroyed:    %d", g.final.Destroyed),
		fmt.Sprintf("Core energy:  %d%%", g.final.Energy),
		"",
		"ENTER play again  Q quit",
	}
	g.renderModal(dst, title, lines, color)
}

// renderModal draws a framed, centered box with a title and body lines.
func (g *Game) renderModal(dst *core.Screen, title string, lines []string, c core.Color) {
	w := len(title) + 4
	for _, l := range lines {
		w = core.Max(w, len([]rune(l))+4)
	}
	w = core.Min(w, dst.Width())
	h := core.Min(len(lines)+4, dst.Height())

	box := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)
	dst.DrawRect(box, ' ')
	dst.DrawBoxColored(box, c)
	dst.DrawTextCenteredColored(box.Y+1, title, c)

	for i, l := range lines {
		y := box.Y + 3 + i
		if y >= box.Bottom()-1 {
			break
		}
		dst.DrawText(box.X+2, y, l)
	}
}

func (g *Game) renderHints(dst *core.Screen) {
	var hints []string
	switch g.phase {
	case PhaseMenu:
		hints = []string{"ENTER start", "H help", "Q quit"}
	case PhasePlaying:
		hints = []string{"drag nodes", "click anomalies", "1/2/3 powers", "P pause", "R restart", "+/- vol"}
	case PhasePaused:
		hints = []string{"P resume", "R restart", "Q quit"}
	case PhaseGameOver:
		hints = []string{"ENTER play again", "Q quit"}
	}
	dst.DrawTextColored(1, dst.Height()-1, strings.Join(hints, "  "), core.ColorGray)
}
