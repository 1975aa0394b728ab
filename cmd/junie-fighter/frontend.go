package main

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/junie-fighter/audio"
	"github.com/lixenwraith/junie-fighter/constants"
	"github.com/lixenwraith/junie-fighter/core"
	"github.com/lixenwraith/junie-fighter/engine"
	"github.com/lixenwraith/junie-fighter/events"
	"github.com/lixenwraith/junie-fighter/game"
	"github.com/lixenwraith/junie-fighter/input"
	"github.com/lixenwraith/junie-fighter/render"
)

// errQuit ends the group when the player quits
var errQuit = errors.New("quit")

// frontend wires the tick loop, input and rendering goroutines
type frontend struct {
	game      *game.Game
	screen    tcell.Screen
	renderer  *render.TerminalRenderer
	mapper    *input.Mapper
	router    *events.Router
	sound     *audio.SoundManager
	scheduler *engine.ClockScheduler
	logger    zerolog.Logger
	statMuted *atomic.Bool
}

// run blocks until the player quits or a loop fails
func (fe *frontend) run() error {
	fe.logger = fe.logger.With().Str("component", "frontend").Logger()
	fe.scheduler.SetCrashHandler(core.HandleCrash)

	grp, ctx := errgroup.WithContext(context.Background())

	// PollEvent unblocks only on Fini, so the poller lives outside the group
	termEvents := make(chan tcell.Event, 64)
	core.Go(func() { fe.pollEvents(ctx, termEvents) })

	grp.Go(core.Guard(func() error {
		return fe.scheduler.Run(ctx)
	}))
	grp.Go(core.Guard(func() error {
		return fe.frameLoop(ctx, termEvents)
	}))

	err := grp.Wait()
	fe.mapper.ReleaseAll()
	fe.logger.Info().Uint64("ticks", fe.scheduler.TickCount()).Msg("Stopped")
	if errors.Is(err, errQuit) {
		return nil
	}
	return err
}

func (fe *frontend) pollEvents(ctx context.Context, out chan<- tcell.Event) {
	for {
		ev := fe.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// frameLoop handles keys, routes core events and renders at the frame interval
func (fe *frontend) frameLoop(ctx context.Context, termEvents <-chan tcell.Event) error {
	ticker := time.NewTicker(constants.FrameUpdateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-termEvents:
			if err := fe.handleIntent(fe.mapper.HandleEvent(ev)); err != nil {
				return err
			}

		case <-ticker.C:
			fe.mapper.Expire()
			fe.router.Dispatch(fe.game.DrainEvents())
			fe.renderer.RenderFrame(fe.game.Snapshot())
		}
	}
}

func (fe *frontend) handleIntent(intent input.IntentType) error {
	switch intent {
	case input.IntentQuit:
		fe.logger.Info().Msg("Quit requested")
		return errQuit
	case input.IntentToggleStats:
		fe.renderer.ToggleStats()
	case input.IntentToggleMute:
		muted := fe.sound.ToggleMute()
		fe.statMuted.Store(muted)
		fe.logger.Debug().Bool("muted", muted).Msg("Audio mute toggled")
	case input.IntentResize:
		fe.screen.Sync()
	}
	return nil
}
