package game

import (
	"math"
	"time"

	"github.com/lixenwraith/junie-fighter/constants"
)

// TitleFighter is the decorative craft on the title screen
type TitleFighter struct {
	X, Y          float64
	VX            float64
	Transitioning bool // Exit animation running
}

func newTitleFighter(width, height float64) TitleFighter {
	return TitleFighter{
		X: width / 2,
		Y: height/2 + constants.TitleFighterYOffset,
	}
}

// start begins the exit animation and reports whether it was not already running
func (t *TitleFighter) start() bool {
	if t.Transitioning {
		return false
	}
	t.Transitioning = true
	return true
}

// advance bobs while idle and accelerates right while exiting
// Returns true once the fighter is past width + margin
func (t *TitleFighter) advance(dt float64, now time.Time, width float64) bool {
	if !t.Transitioning {
		t.Y += math.Sin(float64(now.UnixMilli())/constants.TitleBobPeriodMs) * constants.TitleBobAmplitude
		return false
	}

	t.VX += constants.TitleExitAcceleration * dt
	t.X += t.VX * dt
	return t.X > width+constants.TitleExitMargin
}
