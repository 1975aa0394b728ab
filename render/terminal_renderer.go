// Package render draws game snapshots onto a tcell screen
package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/junie-fighter/components"
	"github.com/lixenwraith/junie-fighter/constants"
	"github.com/lixenwraith/junie-fighter/engine"
	"github.com/lixenwraith/junie-fighter/game"
	"github.com/lixenwraith/junie-fighter/status"
)

// hudRows is the number of terminal rows above the play field
const hudRows = 1

// Sprite glyphs
const (
	glyphFighter     = '█'
	glyphBullet      = '•'
	glyphEnemy       = '▓'
	glyphEnemyBullet = '*'
	glyphBoss        = '█'
	glyphBossBar     = '■'
)

var explosionGlyphs = [constants.ExplosionFrameCount]rune{'✶', '+'}

// TerminalRenderer scales the fixed logical viewport onto the terminal grid
// Row 0 is the HUD; the remainder is the play field
type TerminalRenderer struct {
	screen    tcell.Screen
	stats     *status.Registry
	showStats bool

	// Recomputed per frame from the current terminal size
	fieldW, fieldH int
	scaleX, scaleY float64
}

// NewTerminalRenderer creates a renderer; stats may be nil when the overlay is unused
func NewTerminalRenderer(screen tcell.Screen, stats *status.Registry, showStats bool) *TerminalRenderer {
	return &TerminalRenderer{
		screen:    screen,
		stats:     stats,
		showStats: showStats && stats != nil,
	}
}

// ToggleStats flips the metrics overlay
func (r *TerminalRenderer) ToggleStats() {
	r.showStats = !r.showStats && r.stats != nil
}

// ShowStats reports whether the overlay is drawn
func (r *TerminalRenderer) ShowStats() bool {
	return r.showStats
}

// RenderFrame draws a full frame from a snapshot
func (r *TerminalRenderer) RenderFrame(s game.Snapshot) {
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)
	r.screen.Fill(' ', defaultStyle)

	w, h := r.screen.Size()
	r.layout(w, h, s.Width, s.Height)

	switch s.Phase {
	case engine.PhaseTitle:
		r.drawTitle(s, defaultStyle)
	case engine.PhasePlaying:
		r.drawField(s, defaultStyle)
		r.drawHUD(s, defaultStyle)
	case engine.PhaseGameOver:
		r.drawField(s, defaultStyle)
		r.drawHUD(s, defaultStyle)
		r.drawGameOver(s, defaultStyle)
	}

	if r.showStats {
		r.drawStats(defaultStyle)
	}

	r.screen.Show()
}

func (r *TerminalRenderer) layout(w, h int, viewW, viewH float64) {
	r.fieldW = max(1, w)
	r.fieldH = max(1, h-hudRows)
	if viewW <= 0 || viewH <= 0 {
		viewW, viewH = constants.ViewportWidth, constants.ViewportHeight
	}
	r.scaleX = float64(r.fieldW) / viewW
	r.scaleY = float64(r.fieldH) / viewH
}

// cell maps a world point to a screen cell
func (r *TerminalRenderer) cell(x, y float64) (int, int) {
	return int(math.Floor(x * r.scaleX)), hudRows + int(math.Floor(y*r.scaleY))
}

// setField writes a rune only inside the play field
func (r *TerminalRenderer) setField(sx, sy int, ch rune, style tcell.Style) {
	if sx < 0 || sx >= r.fieldW || sy < hudRows || sy >= hudRows+r.fieldH {
		return
	}
	r.screen.SetContent(sx, sy, ch, nil, style)
}

// fillBox covers every cell the box overlaps, at least one
func (r *TerminalRenderer) fillBox(x, y, width, height float64, ch rune, style tcell.Style) {
	x0, y0 := r.cell(x, y)
	x1 := int(math.Ceil((x+width)*r.scaleX)) - 1
	y1 := hudRows + int(math.Ceil((y+height)*r.scaleY)) - 1
	x1 = max(x1, x0)
	y1 = max(y1, y0)

	for sy := y0; sy <= y1; sy++ {
		for sx := x0; sx <= x1; sx++ {
			r.setField(sx, sy, ch, style)
		}
	}
}

// drawPoint draws a round projectile as one cell at its center
func (r *TerminalRenderer) drawPoint(x, y float64, ch rune, style tcell.Style) {
	sx, sy := r.cell(x, y)
	r.setField(sx, sy, ch, style)
}

func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) {
	w, h := r.screen.Size()
	if y < 0 || y >= h {
		return
	}
	for _, ch := range text {
		if x >= w {
			return
		}
		if x >= 0 {
			r.screen.SetContent(x, y, ch, nil, style)
		}
		x++
	}
}

func (r *TerminalRenderer) drawCentered(y int, text string, style tcell.Style) {
	w, _ := r.screen.Size()
	r.drawText((w-len([]rune(text)))/2, y, text, style)
}

// drawField draws the live round, or only the lingering explosions once it ended
func (r *TerminalRenderer) drawField(s game.Snapshot, defaultStyle tcell.Style) {
	if s.Phase == engine.PhasePlaying {
		r.drawRound(s, defaultStyle)
	}
	for _, e := range s.Explosions {
		r.drawExplosion(e, defaultStyle)
	}
}

func (r *TerminalRenderer) drawRound(s game.Snapshot, defaultStyle tcell.Style) {
	fb := s.Fighter.Bounds()
	r.fillBox(fb.X, fb.Y, fb.Width, fb.Height, glyphFighter, defaultStyle.Foreground(RgbFighter))

	bulletStyle := defaultStyle.Foreground(RgbBullet)
	for _, b := range s.Bullets {
		r.drawPoint(b.X, b.Y, glyphBullet, bulletStyle)
	}

	enemyStyle := defaultStyle.Foreground(RgbEnemy)
	for _, e := range s.Enemies {
		r.fillBox(e.X, e.Y, e.Width, e.Height, glyphEnemy, enemyStyle)
	}

	if s.BossPresent {
		r.drawBoss(s.Boss, defaultStyle)
	}

	shotStyle := defaultStyle.Foreground(RgbEnemyBullet)
	for _, b := range s.EnemyBullets {
		r.drawPoint(b.X, b.Y, glyphEnemyBullet, shotStyle)
	}
}

func (r *TerminalRenderer) drawBoss(b components.Boss, defaultStyle tcell.Style) {
	color := RgbBoss
	if b.State == components.BossWaiting {
		color = RgbBossWaiting
	}
	r.fillBox(b.X, b.Y, b.Width, b.Height, glyphBoss, defaultStyle.Foreground(color))
}

func (r *TerminalRenderer) drawExplosion(e components.Explosion, defaultStyle tcell.Style) {
	color := RgbExplosionHot
	if e.Frame == 1 {
		color = RgbExplosionDim
	}
	ch := explosionGlyphs[e.Frame%constants.ExplosionFrameCount]
	r.fillBox(e.X, e.Y, e.Width, e.Height, ch, defaultStyle.Foreground(color))
}

// drawHUD draws the score and, while a boss is live, its remaining hits
func (r *TerminalRenderer) drawHUD(s game.Snapshot, defaultStyle tcell.Style) {
	w, _ := r.screen.Size()
	textStyle := defaultStyle.Foreground(RgbStatusText)
	r.drawText(0, 0, fmt.Sprintf("SCORE %05d", s.Score), textStyle)

	if !s.BossPresent {
		return
	}

	remaining := constants.BossDefeatHits - s.Boss.Hits
	label := "BOSS "
	startX := w - len(label) - constants.BossDefeatHits
	r.drawText(startX, 0, label, textStyle)

	barColor := GetBossBarColor(float64(s.Boss.Hits) / constants.BossDefeatHits)
	for i := 0; i < constants.BossDefeatHits; i++ {
		style := defaultStyle.Foreground(RgbBossBarBg)
		if i < remaining {
			style = defaultStyle.Foreground(barColor)
		}
		x := startX + len(label) + i
		if x >= 0 && x < w {
			r.screen.SetContent(x, 0, glyphBossBar, nil, style)
		}
	}
}

func (r *TerminalRenderer) drawTitle(s game.Snapshot, defaultStyle tcell.Style) {
	_, h := r.screen.Size()
	mid := h / 2

	r.drawCentered(mid-3, "JUNIE FIGHTER", defaultStyle.Foreground(RgbTitle).Bold(true))
	if !s.Title.Transitioning {
		r.drawCentered(mid-1, "press SPACE or ENTER to start", defaultStyle.Foreground(RgbHint))
	}

	tf := s.Title
	r.fillBox(tf.X, tf.Y, constants.FighterWidth, constants.FighterHeight, glyphFighter, defaultStyle.Foreground(RgbFighter))
}

func (r *TerminalRenderer) drawGameOver(s game.Snapshot, defaultStyle tcell.Style) {
	_, h := r.screen.Size()
	mid := h / 2

	r.drawCentered(mid-1, "GAME OVER", defaultStyle.Foreground(RgbGameOver).Bold(true))
	r.drawCentered(mid, fmt.Sprintf("score %d", s.Score), defaultStyle.Foreground(RgbStatusText))

	hint := "press ENTER to continue"
	if s.RestartInMs > 0 {
		hint = fmt.Sprintf("continue in %.1fs", float64(s.RestartInMs)/1000)
	}
	r.drawCentered(mid+2, hint, defaultStyle.Foreground(RgbHint))
}

// drawStats lists registry metrics bottom-up from the last row
func (r *TerminalRenderer) drawStats(defaultStyle tcell.Style) {
	_, h := r.screen.Size()
	style := defaultStyle.Foreground(RgbStats)

	lines := r.stats.Lines()
	for i, line := range lines {
		y := h - len(lines) + i
		if y < hudRows {
			continue
		}
		r.drawText(0, y, line, style)
	}
}
