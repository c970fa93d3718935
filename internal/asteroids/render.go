package asteroids

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Visual characters for rendering
const (
	AsteroidChar = '#'
	BulletChar   = '•'
)

// shipGlyphs are indexed by heading in eighths of a turn, starting at +X
// and going clockwise on screen.
var shipGlyphs = []rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

// hudRows is the number of screen rows reserved for the HUD.
const hudRows = 1

// projector maps world coordinates onto the playfield below the HUD.
type projector struct {
	sx, sy float64
	top    int
}

func (g *Game) projector(dst *core.Screen) projector {
	fieldH := max(dst.Height()-hudRows, 1)
	return projector{
		sx:  float64(dst.Width()) / g.cfg.World.Width,
		sy:  float64(fieldH) / g.cfg.World.Height,
		top: hudRows,
	}
}

func (p projector) cell(x, y float64) (int, int) {
	return int(math.Floor(x * p.sx)), p.top + int(math.Floor(y*p.sy))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() < 20 || dst.Height() < 8 {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		return
	}

	proj := g.projector(dst)
	g.renderAsteroids(dst, proj)
	g.renderPowerUps(dst, proj)
	g.renderBullets(dst, proj)
	g.renderShip(dst, proj)
	g.renderHUD(dst)
	g.renderOverlay(dst)
}

// renderAsteroids draws each rock as a polygon outline.
func (g *Game) renderAsteroids(dst *core.Screen, proj projector) {
	for _, a := range g.pool.Asteroids() {
		pose, ok := g.backend.Pose(a.Body)
		if !ok || len(a.Shape) == 0 {
			continue
		}
		n := len(a.Shape)
		for i := range n {
			p0 := core.LocalToWorld(pose, a.Shape[i])
			p1 := core.LocalToWorld(pose, a.Shape[(i+1)%n])
			x0, y0 := proj.cell(p0.X, p0.Y)
			x1, y1 := proj.cell(p1.X, p1.Y)
			if y0 < proj.top && y1 < proj.top {
				continue
			}
			dst.DrawLine(x0, max(y0, proj.top), x1, max(y1, proj.top), AsteroidChar, core.ColorGray)
		}
	}
}

// renderPowerUps draws pickups as colored letters.
func (g *Game) renderPowerUps(dst *core.Screen, proj projector) {
	for _, pu := range g.pool.PowerUps() {
		pose, ok := g.backend.Pose(pu.Body)
		if !ok {
			continue
		}
		x, y := proj.cell(pose.X, pose.Y)
		dst.SetColor(x, y, pu.Kind.Glyph(), pu.Kind.Color())
	}
}

// renderBullets draws live projectiles.
func (g *Game) renderBullets(dst *core.Screen, proj projector) {
	for _, b := range g.pool.Bullets() {
		pose, ok := g.backend.Pose(b.Body)
		if !ok {
			continue
		}
		x, y := proj.cell(pose.X, pose.Y)
		dst.SetColor(x, y, BulletChar, core.ColorBrightYellow)
	}
}

// renderShip draws the ship arrow, red while distressed.
func (g *Game) renderShip(dst *core.Screen, proj projector) {
	pose := g.ctrl.Pose()
	x, y := proj.cell(pose.X, pose.Y)
	color := core.ColorBrightWhite
	if g.state.Distressed(g.now) {
		color = core.ColorBrightRed
	}
	dst.SetColor(x, y, ShipGlyph(pose.Angle), color)
}

// ShipGlyph returns the arrow closest to the heading.
func ShipGlyph(angle float64) rune {
	turn := math.Mod(angle, 2*math.Pi)
	if turn < 0 {
		turn += 2 * math.Pi
	}
	idx := int(math.Round(turn/(math.Pi/4))) % len(shipGlyphs)
	return shipGlyphs[idx]
}

// renderHUD draws score, lives and the held power-up.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.state.Score))
	dst.DrawTextCentered(0, fmt.Sprintf("Lives: %d", g.state.Lives))

	power := "Power: " + g.state.PowerStatus()
	color := core.ColorDefault
	switch {
	case g.state.HasNuke:
		color = core.ColorRed
	case g.state.MultiShotActive:
		color = core.ColorGreen
	}
	dst.DrawTextColor(dst.Width()-len(power)-1, 0, power, color)
}

// renderOverlay draws banners and state boxes.
func (g *Game) renderOverlay(dst *core.Screen) {
	if g.state.BannerVisible(g.now) {
		dst.DrawTextCenteredColor(dst.Height()/2+3, "+1 Life!", core.ColorBrightGreen)
	}

	switch {
	case g.state.GameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.state.Score)
		drawCenteredBox(dst, "GAME OVER", subtitle)
	case g.paused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume")
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawText(box.X+(boxW-len(title))/2, box.Y+1, title)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle)
}
