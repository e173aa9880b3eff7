package rabbit

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tipsy-rabbit/internal/core"
)

// Glyphs
const (
	PlayerGlyph   = '█'
	ObstacleGlyph = '▓'
	RainGlyph     = '╱'
	BorderHoriz   = '─'
)

// hudRows is the number of rows reserved above the playfield.
const hudRows = 2

// themePalette colors obstacles per background theme.
var themePalette = [Themes]core.Color{
	core.ColorGreen,
	core.ColorCyan,
	core.ColorMagenta,
	core.ColorOrange,
	core.ColorBlue,
}

// viewport maps playfield units onto screen cells.
type viewport struct {
	top    int
	rows   int
	cols   int
	scaleX float64
	scaleY float64
	offX   float64 // camera offset in playfield units
	offY   float64
}

func (v viewport) cellRect(r core.Rect) (x, y, w, h int) {
	x0 := int(math.Floor((r.X + v.offX) * v.scaleX))
	y0 := int(math.Floor((r.Y + v.offY) * v.scaleY))
	x1 := int(math.Ceil((r.Right() + v.offX) * v.scaleX))
	y1 := int(math.Ceil((r.Bottom() + v.offY) * v.scaleY))
	w = core.Max(x1-x0, 1)
	h = core.Max(y1-y0, 1)
	return x0, y0 + v.top, w, h
}

// fill paints r clipped to the playfield rows.
func (v viewport) fill(dst *core.Screen, r core.Rect, glyph rune, c core.Color) {
	x0, y0, w, h := v.cellRect(r)
	for y := y0; y < y0+h; y++ {
		if y < v.top || y >= v.top+v.rows {
			continue
		}
		for x := x0; x < x0+w; x++ {
			dst.SetColored(x, y, glyph, c)
		}
	}
}

// Render draws the current state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.Snapshot()

	g.renderHUD(dst, &snap)

	rows := dst.Height() - hudRows
	if rows < 4 || dst.Width() < 20 {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		return
	}

	vp := viewport{
		top:    hudRows,
		rows:   rows,
		cols:   dst.Width(),
		scaleX: float64(dst.Width()) / g.cfg.Playfield.Width,
		scaleY: float64(rows) / g.cfg.Playfield.Height,
		offX:   snap.WobbleX,
		offY:   snap.WobbleY,
	}
	if snap.Jitter > 0 {
		jx, jy := jitter(snap.Tick, snap.Jitter)
		vp.offX += jx
		vp.offY += jy
	}

	if snap.Raining {
		renderRain(dst, vp, snap.Tick)
	}
	g.renderField(dst, vp, &snap)

	switch snap.Session {
	case SessionNotStarted:
		g.renderStart(dst)
	case SessionGameOver:
		g.renderGameOver(dst, &snap)
	default:
		if snap.Paused {
			renderBox(dst, []string{"Paused", "Press P to continue"}, core.ColorWhite)
		} else if snap.NewHighTicks > 0 {
			dst.SetPen(core.ColorBrightYellow)
			dst.DrawTextCentered(hudRows+1, "NEW HIGH SCORE!")
			dst.SetPen(core.ColorDefault)
		}
	}
}

// renderHUD draws the score line and the active power-up line.
func (g *Game) renderHUD(dst *core.Screen, snap *Snapshot) {
	scoreColor := core.ColorWhite
	if snap.NearHigh {
		scoreColor = core.ColorRed
	}
	dst.SetPen(scoreColor)
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", snap.Score))

	dst.SetPen(core.ColorYellow)
	high := fmt.Sprintf("High: %d", snap.HighScore)
	dst.DrawText(dst.Width()-len(high)-1, 0, high)

	var effects []string
	if snap.Invincible {
		effects = append(effects, fmt.Sprintf("%c shield %s", PickupShield.Glyph(), bar(snap.InvincibleLeft)))
	}
	if snap.Tipsy {
		effects = append(effects, fmt.Sprintf("%c tipsy %s", PickupBrew.Glyph(), bar(snap.TipsyLeft)))
	}
	if snap.SpareLife {
		effects = append(effects, fmt.Sprintf("%c spare life", PickupOneUp.Glyph()))
	}
	dst.SetPen(core.ColorCyan)
	if len(effects) > 0 {
		dst.DrawTextCentered(0, strings.Join(effects, "  "))
	}

	sep := core.ColorGray
	if snap.Strike {
		sep = core.ColorBrightWhite
	}
	dst.SetPen(sep)
	dst.DrawHLine(0, 1, dst.Width(), BorderHoriz)
	dst.SetPen(core.ColorDefault)
}

// renderField draws obstacles, pickups and the player.
func (g *Game) renderField(dst *core.Screen, vp viewport, snap *Snapshot) {
	fieldH := g.cfg.Playfield.Height

	obstacleColor := themePalette[snap.Theme]
	if snap.Strike {
		obstacleColor = core.ColorBrightWhite
	}
	for _, o := range snap.Obstacles {
		vp.fill(dst, o.Top(), ObstacleGlyph, obstacleColor)
		vp.fill(dst, o.Bottom(fieldH), ObstacleGlyph, obstacleColor)
	}

	pickups := []struct {
		kind  PickupKind
		rects []core.Rect
		color core.Color
	}{
		{PickupCoin, snap.Coins, core.ColorBrightYellow},
		{PickupShield, snap.Shields, core.ColorCyan},
		{PickupBrew, snap.Brews, core.ColorOrange},
		{PickupOneUp, snap.OneUps, core.ColorRed},
	}
	for _, p := range pickups {
		for _, r := range p.rects {
			vp.fill(dst, r, p.kind.Glyph(), p.color)
		}
	}

	playerColor := core.ColorWhite
	switch {
	case snap.Invincible:
		playerColor = core.ColorCyan
	case snap.Tipsy:
		playerColor = core.ColorMagenta
	}
	vp.fill(dst, snap.Player, PlayerGlyph, playerColor)
}

func (g *Game) renderStart(dst *core.Screen) {
	renderBox(dst, []string{
		g.Title(),
		"",
		"Space: start / jump",
		"P: pause   Q: quit",
		"",
		fmt.Sprintf("%c coin +%d", PickupCoin.Glyph(), g.cfg.Scoring.Coin),
		fmt.Sprintf("%c shield", PickupShield.Glyph()),
		fmt.Sprintf("%c brew: soft crashes, -%d", PickupBrew.Glyph(), g.cfg.Scoring.Penalty),
		fmt.Sprintf("%c spare life", PickupOneUp.Glyph()),
	}, core.ColorWhite)
}

func (g *Game) renderGameOver(dst *core.Screen, snap *Snapshot) {
	lines := []string{
		"GAME OVER",
		"",
		fmt.Sprintf("Score: %d", snap.Score),
		fmt.Sprintf("High:  %d", snap.HighScore),
	}
	if len(snap.History) > 0 {
		lines = append(lines, "", "Last scores:")
		// Newest first
		for i := len(snap.History) - 1; i >= 0; i-- {
			lines = append(lines, fmt.Sprintf("%2d. %d", len(snap.History)-i, snap.History[i]))
		}
	}
	lines = append(lines, "", "Space or R to restart")
	renderBox(dst, lines, core.ColorBrightRed)
}

// renderBox draws lines centred in a bordered box.
func renderBox(dst *core.Screen, lines []string, border core.Color) {
	maxLen := 0
	for _, l := range lines {
		maxLen = core.Max(maxLen, len([]rune(l)))
	}
	boxW := maxLen + 4
	boxH := len(lines) + 2
	x0 := (dst.Width() - boxW) / 2
	y0 := (dst.Height() - boxH) / 2

	dst.SetPen(core.ColorDefault)
	dst.FillRect(x0, y0, boxW, boxH, ' ')
	dst.SetPen(border)
	dst.DrawBox(x0, y0, boxW, boxH)
	dst.SetPen(core.ColorWhite)
	for i, l := range lines {
		dst.DrawTextCentered(y0+1+i, l)
	}
	dst.SetPen(core.ColorDefault)
}

// renderRain draws diagonal streaks drifting with the tick.
func renderRain(dst *core.Screen, vp viewport, tick uint64) {
	for y := vp.top; y < vp.top+vp.rows; y++ {
		for x := 0; x < vp.cols; x++ {
			if hash(uint64(x)+tick, uint64(y)-tick/2)%23 == 0 { //#nosec G115 -- cell coordinates are non-negative
				dst.SetColored(x, y, RainGlyph, core.ColorGray)
			}
		}
	}
}

// jitter returns a pseudo-random offset in [-bound, bound] on each axis,
// derived from the tick so rendering stays deterministic.
func jitter(tick uint64, bound float64) (float64, float64) {
	h := hash(tick, 0x9e3779b9)
	fx := float64(h&0xffff)/0xffff*2 - 1
	fy := float64((h>>16)&0xffff)/0xffff*2 - 1
	return fx * bound, fy * bound
}

func hash(a, b uint64) uint64 {
	h := a*0x9e3779b97f4a7c15 ^ b*0xc2b2ae3d27d4eb4f
	h ^= h >> 29
	h *= 0xbf58476d1ce4e5b9
	h ^= h >> 32
	return h
}

// bar renders a fraction as a five-cell gauge.
func bar(f float64) string {
	n := int(math.Ceil(f * 5))
	n = core.Clamp(n, 0, 5)
	return strings.Repeat("▮", n) + strings.Repeat("▯", 5-n)
}
