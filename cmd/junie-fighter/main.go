package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/junie-fighter/audio"
	"github.com/lixenwraith/junie-fighter/config"
	"github.com/lixenwraith/junie-fighter/core"
	"github.com/lixenwraith/junie-fighter/engine"
	"github.com/lixenwraith/junie-fighter/events"
	"github.com/lixenwraith/junie-fighter/game"
	"github.com/lixenwraith/junie-fighter/input"
	"github.com/lixenwraith/junie-fighter/logging"
	"github.com/lixenwraith/junie-fighter/render"
	"github.com/lixenwraith/junie-fighter/status"
	"github.com/lixenwraith/junie-fighter/vmath"
)

var (
	configFlag = flag.String("config", "", "Config file path (json, yaml or toml)")
	debugFlag  = flag.Bool("debug", false, "Enable debug logging to "+logging.DebugFile)
	seedFlag   = flag.Uint64("seed", 0, "Random seed, 0 takes config or clock")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if err := run(*configFlag, *debugFlag, *seedFlag); err != nil {
		fmt.Fprintf(os.Stderr, "junie-fighter: %v\n", err)
		os.Exit(1)
	}
}

// resolveLogging applies the -debug override to the configured sink
func resolveLogging(cfg config.Config, debug bool) (level, path string) {
	level, path = cfg.LogLevel, cfg.LogFile
	if debug {
		level = "debug"
		if path == "" {
			path = logging.DebugFile
		}
	}
	return level, path
}

// resolveSeed prefers the flag, then config, then the clock
func resolveSeed(flagSeed, cfgSeed uint64, now time.Time) uint64 {
	switch {
	case flagSeed != 0:
		return flagSeed
	case cfgSeed != 0:
		return cfgSeed
	default:
		return uint64(now.UnixNano())
	}
}

func audioConfig(cfg config.AudioConfig) *audio.AudioConfig {
	ac := audio.DefaultAudioConfig()
	ac.Enabled = cfg.Enabled
	ac.MasterVolume = cfg.Volume
	return ac
}

func keyTable(bindings map[string][]string) (*input.KeyTable, error) {
	table := input.DefaultKeyTable()
	override, err := input.LoadKeyBindings(bindings)
	if err != nil {
		return nil, err
	}
	table.Merge(override)
	return table, nil
}

func run(configPath string, debug bool, seed uint64) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	level, logPath := resolveLogging(cfg, debug)
	logger, logCloser, err := logging.Setup(level, logPath)
	if err != nil {
		return err
	}
	defer logCloser.Close()
	core.SetCrashLogger(logger)

	clock := engine.NewMonotonicTimeProvider()
	seed = resolveSeed(seed, cfg.Seed, clock.Now())
	logger.Info().Uint64("seed", seed).Int("tick_rate", cfg.TickRate).Msg("Starting")

	reg := status.NewRegistry()
	g, err := game.New(game.Options{
		Clock:  clock,
		Rand:   vmath.NewFastRand(seed),
		Logger: &logger,
		Status: reg,
	})
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	table, err := keyTable(cfg.Input.Bindings)
	if err != nil {
		return err
	}

	// Initialize terminal
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()
	core.SetCrashScreen(screen)
	screen.HideCursor()

	// Audio failure is not fatal; the game runs silent
	sound := audio.NewSoundManager(audioConfig(cfg.Audio), logger)
	if err := sound.Initialize(); err != nil {
		logger.Warn().Err(err).Msg("Audio disabled")
	}
	defer sound.Cleanup()

	router := events.NewRouter()
	router.Register(sound)
	router.Register(game.NewEventLogger(logger))

	fe := &frontend{
		game:      g,
		screen:    screen,
		renderer:  render.NewTerminalRenderer(screen, reg, cfg.Render.ShowStats),
		mapper:    input.NewMapper(g, clock, cfg.Input.HoldWindow, table),
		router:    router,
		sound:     sound,
		scheduler: engine.NewClockScheduler(g, clock, cfg.TickInterval(), reg),
		logger:    logger,
		statMuted: reg.Bools.Get("audio.muted"),
	}
	return fe.run()
}
