package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/junie-fighter/audio"
	"github.com/lixenwraith/junie-fighter/config"
	"github.com/lixenwraith/junie-fighter/engine"
	"github.com/lixenwraith/junie-fighter/events"
	"github.com/lixenwraith/junie-fighter/game"
	"github.com/lixenwraith/junie-fighter/input"
	"github.com/lixenwraith/junie-fighter/logging"
	"github.com/lixenwraith/junie-fighter/render"
	"github.com/lixenwraith/junie-fighter/status"
	"github.com/lixenwraith/junie-fighter/vmath/vmathtest"
)

func TestResolveLogging_DisabledByDefault(t *testing.T) {
	level, path := resolveLogging(config.Config{LogLevel: "info"}, false)
	if level != "info" || path != "" {
		t.Errorf("Expected info with no file, got %q %q", level, path)
	}
}

func TestResolveLogging_DebugForcesFile(t *testing.T) {
	level, path := resolveLogging(config.Config{LogLevel: "warn"}, true)
	if level != "debug" || path != logging.DebugFile {
		t.Errorf("Expected debug to %s, got %q %q", logging.DebugFile, level, path)
	}

	// An explicit file wins over the debug default
	_, path = resolveLogging(config.Config{LogFile: "custom.log"}, true)
	if path != "custom.log" {
		t.Errorf("Expected configured file, got %q", path)
	}
}

func TestResolveSeed(t *testing.T) {
	now := time.Unix(0, 12345)
	if s := resolveSeed(7, 9, now); s != 7 {
		t.Errorf("Flag seed should win, got %d", s)
	}
	if s := resolveSeed(0, 9, now); s != 9 {
		t.Errorf("Config seed should win over clock, got %d", s)
	}
	if s := resolveSeed(0, 0, now); s != 12345 {
		t.Errorf("Expected clock seed, got %d", s)
	}
}

func TestAudioConfigMapping(t *testing.T) {
	ac := audioConfig(config.AudioConfig{Enabled: false, Volume: 0.25})
	if ac.Enabled || ac.MasterVolume != 0.25 {
		t.Errorf("Unexpected audio config %+v", ac)
	}
}

func TestKeyTableRejectsBadBinding(t *testing.T) {
	if _, err := keyTable(map[string][]string{"teleport": {"t"}}); err == nil {
		t.Error("Expected error for unknown action")
	}
}

func newTestFrontend(t *testing.T) (*frontend, *engine.MockTimeProvider) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(60, 31)
	t.Cleanup(screen.Fini)

	clock := engine.NewMockTimeProvider(time.Unix(1000, 0))
	reg := status.NewRegistry()
	g, err := game.New(game.Options{Clock: clock, Rand: vmathtest.ConstRand{Float: 1}, Status: reg})
	if err != nil {
		t.Fatalf("game.New failed: %v", err)
	}

	sound := audio.NewSoundManager(nil, zerolog.Nop())
	router := events.NewRouter()
	router.Register(sound)

	return &frontend{
		game:      g,
		screen:    screen,
		renderer:  render.NewTerminalRenderer(screen, reg, false),
		mapper:    input.NewMapper(g, clock, 0, nil),
		router:    router,
		sound:     sound,
		scheduler: engine.NewClockScheduler(g, clock, time.Millisecond, reg),
		logger:    zerolog.Nop(),
		statMuted: reg.Bools.Get("audio.muted"),
	}, clock
}

// TestFrameLoopQuit verifies a quit key ends the loop with errQuit
func TestFrameLoopQuit(t *testing.T) {
	fe, _ := newTestFrontend(t)
	termEvents := make(chan tcell.Event, 1)
	termEvents <- tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)

	done := make(chan error, 1)
	go func() { done <- fe.frameLoop(context.Background(), termEvents) }()

	select {
	case err := <-done:
		if !errors.Is(err, errQuit) {
			t.Errorf("Expected errQuit, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Frame loop did not stop on quit")
	}
}

// TestFrameLoopContextCancel verifies cancellation stops the loop cleanly
func TestFrameLoopContextCancel(t *testing.T) {
	fe, _ := newTestFrontend(t)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- fe.frameLoop(ctx, make(chan tcell.Event)) }()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Expected nil on cancel, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Frame loop ignored cancellation")
	}
}

// TestFrameLoopConfirmReachesGame verifies Enter starts the title exit
func TestFrameLoopConfirmReachesGame(t *testing.T) {
	fe, clock := newTestFrontend(t)
	termEvents := make(chan tcell.Event, 1)
	termEvents <- tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- fe.frameLoop(ctx, termEvents) }()

	deadline := time.Now().Add(2 * time.Second)
	for !fe.game.Snapshot().Title.Transitioning && time.Now().Before(deadline) {
		clock.AdvanceSeconds(1.0 / 60)
		fe.game.AdvanceTick(1.0 / 60)
		time.Sleep(time.Millisecond)
	}
	cancel()
	<-done

	if !fe.game.Snapshot().Title.Transitioning {
		t.Error("CONFIRM did not reach the game")
	}
}

// TestHandleIntentToggles verifies stats and mute toggles take effect without ending the loop
func TestHandleIntentToggles(t *testing.T) {
	fe, _ := newTestFrontend(t)

	if err := fe.handleIntent(input.IntentToggleStats); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !fe.renderer.ShowStats() {
		t.Error("Stats overlay not toggled")
	}
	if err := fe.handleIntent(input.IntentToggleMute); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !fe.game.Status().Bools.Get("audio.muted").Load() {
		t.Error("audio.muted not published after mute")
	}
	if err := fe.handleIntent(input.IntentResize); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := fe.handleIntent(input.IntentQuit); !errors.Is(err, errQuit) {
		t.Errorf("Expected errQuit, got %v", err)
	}
}
