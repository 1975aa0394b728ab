package render

import "github.com/gdamore/tcell/v2"

// RGB palette for the play field and HUD
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38) // Tokyo Night background

	RgbFighter      = tcell.NewRGBColor(0, 200, 200)   // Vibrant Cyan
	RgbBullet       = tcell.NewRGBColor(255, 255, 0)   // Bright Yellow
	RgbEnemy        = tcell.NewRGBColor(255, 80, 80)   // Normal Red
	RgbEnemyBullet  = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbBoss         = tcell.NewRGBColor(200, 80, 220)  // Violet
	RgbBossWaiting  = tcell.NewRGBColor(255, 120, 120) // Bright Red while holding at the edge
	RgbExplosionHot = tcell.NewRGBColor(255, 255, 200) // Yellow-white flash
	RgbExplosionDim = tcell.NewRGBColor(255, 120, 0)   // Dark Orange

	RgbStatusText = tcell.NewRGBColor(255, 255, 255) // White
	RgbHint       = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbTitle      = tcell.NewRGBColor(100, 150, 255) // Normal Blue
	RgbGameOver   = tcell.NewRGBColor(255, 0, 0)     // Error Red
	RgbBossBar    = tcell.NewRGBColor(200, 80, 220)
	RgbBossBarBg  = tcell.NewRGBColor(60, 20, 70)
	RgbStats      = tcell.NewRGBColor(140, 190, 255) // Bright Blue
)

// GetBossBarColor shades the boss health bar from violet to red as hits accumulate
// progress is hits/defeatHits in 0..1
func GetBossBarColor(progress float64) tcell.Color {
	if progress <= 0 {
		return RgbBossBar
	}
	if progress > 1 {
		progress = 1
	}
	r := int32(200 + (255-200)*progress)
	g := int32(80 - 80*progress)
	b := int32(220 - 220*progress)
	return tcell.NewRGBColor(r, g, b)
}
