package engine

//go:generate go tool mockgen -destination=./mocks/system_mock.go -package=mocks . System

// System is one stage of the PLAYING tick
type System interface {
	Update(w *World, dt float64)
	Priority() int // Lower values run first
}
