package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/tilerunner/audio"
	"github.com/lixenwraith/tilerunner/config"
	"github.com/lixenwraith/tilerunner/core"
	"github.com/lixenwraith/tilerunner/engine"
	"github.com/lixenwraith/tilerunner/input"
	"github.com/lixenwraith/tilerunner/level"
	"github.com/lixenwraith/tilerunner/logger"
	"github.com/lixenwraith/tilerunner/render"
	"github.com/lixenwraith/tilerunner/service"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var (
	configFlag = flag.String("config", "", "TOML config file")
	levelFlag  = flag.String("level", "", "ASCII level file, overrides game.level")
	seedFlag   = flag.Uint64("seed", 0, "simulation seed, overrides game.seed")
	logFlag    = flag.String("log", "", "log file; empty discards logs")
)

func main() {
	flag.Parse()

	logFile, err := setupLogging(*logFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(); err != nil {
		logger.Component("sandbox").WithError(err).Error("sandbox failed")
		fmt.Fprintf(os.Stderr, "platform-sandbox: %v\n", err)
		os.Exit(1)
	}
}

// setupLogging sends logs to path, or discards them when path is empty
// The screen owns stdout and stderr while the sandbox runs
func setupLogging(path string) (*os.File, error) {
	if path == "" {
		logger.Init(io.Discard)
		return nil, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, errors.Wrap(err, "open log file")
	}
	logger.Init(f)
	return f, nil
}

// loadConfig applies flag overrides to the loaded config
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return nil, err
	}
	if *levelFlag != "" {
		cfg.Game.Level = *levelFlag
	}
	if *seedFlag != 0 {
		cfg.Game.Seed = *seedFlag
	}
	if cfg.Game.Seed == 0 {
		cfg.Game.Seed = uint64(time.Now().UnixNano())
	}
	return cfg, nil
}

// loadLayout reads the level file, or the built-in level when path is empty
func loadLayout(path string) (*level.Layout, error) {
	if path == "" {
		return level.Parse(strings.NewReader(builtinLevel))
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open level")
	}
	defer f.Close()

	lay, err := level.Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "level %s", path)
	}
	return lay, nil
}

func run() (err error) {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	lay, err := loadLayout(cfg.Game.Level)
	if err != nil {
		return err
	}
	mapper, err := input.NewMapper(cfg.Keys.Bindings(), cfg.Game.HoldTicks)
	if err != nil {
		return errors.Wrap(err, "key bindings")
	}

	hub := service.NewHub()
	audioSvc := audio.NewService()
	screenSvc := render.NewScreenService(nil)
	for _, svc := range []service.Service{audioSvc, screenSvc} {
		if err := hub.Register(svc); err != nil {
			return err
		}
	}
	if err := hub.InitAll(map[string][]any{
		audioSvc.Name(): {cfg.Audio.Muted, cfg.Audio.Volume},
	}); err != nil {
		return err
	}
	if err := hub.StartAll(); err != nil {
		return err
	}
	defer hub.StopAll()

	// Restore the terminal before reporting a crash
	defer func() {
		if r := recover(); r != nil {
			hub.StopAll()
			err = errors.Errorf("crashed: %v\n%s", r, debug.Stack())
		}
	}()

	s := &sandbox{
		cfg:      cfg,
		layout:   lay,
		mapper:   mapper,
		audio:    audioSvc,
		screen:   screenSvc.Screen(),
		renderer: render.New(screenSvc.Screen()),
		clock:    engine.NewClock(engine.NewMonotonicTimeProvider(), cfg.Game.TickRate),
		log:      logger.Component("sandbox"),
	}
	s.restart()
	s.log.WithFields(logrus.Fields{
		"seed":     cfg.Game.Seed,
		"level":    cfg.Game.Level,
		"services": hub.Names(),
	}).Info("sandbox started")
	s.loop()
	return nil
}

type sandbox struct {
	cfg      *config.Config
	layout   *level.Layout
	mapper   *input.Mapper
	audio    *audio.AudioService
	screen   tcell.Screen
	renderer *render.Renderer
	clock    *engine.Clock
	log      *logrus.Entry

	level   *engine.Level
	pending string
	runs    uint64
}

// restart builds a fresh level from the layout
// Each run gets its own seed derived from the configured one
func (s *sandbox) restart() {
	s.pending = ""
	hooks := core.Hooks{
		PlaySound:  s.audio.Hook(),
		Transition: func(target string) { s.pending = target },
	}
	s.level = s.layout.Build(engine.Options{Seed: s.cfg.Game.Seed + s.runs, Hooks: hooks})
	s.runs++
	s.mapper.Release()
}

func (s *sandbox) loop() {
	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)
	go s.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(s.clock.Interval())
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			if ev == nil {
				return
			}
			if !s.handle(ev) {
				return
			}
		case <-ticker.C:
			s.step()
		}
	}
}

// handle reacts to one event; false ends the loop
func (s *sandbox) handle(ev tcell.Event) bool {
	switch s.mapper.Handle(ev) {
	case input.IntentQuit:
		return false
	case input.IntentPause:
		if s.clock.IsPaused() {
			s.clock.Resume()
			s.renderer.SetStatus("")
		} else {
			s.clock.Pause()
			s.mapper.Release()
			s.renderer.SetStatus("PAUSED")
		}
	case input.IntentToggleMute:
		muted := s.audio.Manager().ToggleMute()
		s.log.WithField("muted", muted).Info("mute toggled")
	case input.IntentResize:
		s.screen.Sync()
	}
	return true
}

// step advances one frame of wall time and redraws
func (s *sandbox) step() {
	tick := s.clock.Tick()
	if tick > 0 {
		s.mapper.Advance(tick)
		s.level.Player().SetInput(s.mapper.Input())
		s.level.Update(tick)
	}

	switch {
	case s.pending != "":
		s.log.WithField("target", s.pending).Info("door taken, restarting")
		s.restart()
	case s.level.PlayerDead():
		s.log.WithField("score", s.level.Stats().Score).Info("player died, restarting")
		s.restart()
	}

	s.renderer.Frame(s.level)
}
