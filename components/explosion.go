package components

import "github.com/lixenwraith/junie-fighter/constants"

// Explosion is a two-frame flip animation with a fixed lifetime
type Explosion struct {
	X, Y          float64
	Width, Height float64
	Time          float64
	Duration      float64
	Frame         int
	FrameTime     float64
	IsBoss        bool
}

// NewExplosion creates an explosion covering the given box
func NewExplosion(x, y, width, height float64, isBoss bool) Explosion {
	return Explosion{
		X:        x,
		Y:        y,
		Width:    width,
		Height:   height,
		Duration: constants.ExplosionDuration,
		IsBoss:   isBoss,
	}
}

// Advance accumulates local time and flips the frame once per interval
// Remainder carries over so the flip count tracks floor(Time / interval)
func (e *Explosion) Advance(dt float64) {
	e.Time += dt
	e.FrameTime += dt

	for e.FrameTime >= constants.ExplosionFrameInterval-constants.TimeEpsilon {
		e.Frame = (e.Frame + 1) % constants.ExplosionFrameCount
		e.FrameTime -= constants.ExplosionFrameInterval
	}
}

// Finished reports whether the lifetime elapsed
func (e *Explosion) Finished() bool {
	return e.Time >= e.Duration-constants.TimeEpsilon
}
