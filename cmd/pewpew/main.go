package main

import (
	"embed"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/pewpew/internal/application/game"
	"github.com/younwookim/pewpew/internal/application/scene/showcase"
	"github.com/younwookim/pewpew/internal/application/system"
	"github.com/younwookim/pewpew/internal/ecs"
	"github.com/younwookim/pewpew/internal/infrastructure/config"
	"github.com/younwookim/pewpew/internal/infrastructure/content"
	"github.com/younwookim/pewpew/internal/infrastructure/device"
	"github.com/younwookim/pewpew/internal/infrastructure/logging"
)

//go:embed configs
var configFS embed.FS

// setup is everything loaded before the window opens
type setup struct {
	cfg    *config.GameConfig
	assets fs.FS
	// dir is the config base path the loader resolved
	dir string
	// watchDir is the on-disk assets dir, empty for embedded configs
	watchDir string
}

// loadSetup reads the configs from dir, or from the embedded copy when dir
// is empty.
func loadSetup(dir string) (*setup, error) {
	if dir == "" {
		fsys, err := fs.Sub(configFS, "configs")
		if err != nil {
			return nil, fmt.Errorf("failed to get config subfs: %w", err)
		}
		loader := config.NewFSLoader(fsys, "configs")
		cfg, err := loader.LoadAll()
		if err != nil {
			return nil, err
		}
		assets, err := fs.Sub(fsys, cfg.Settings.Assets.Dir)
		if err != nil {
			return nil, fmt.Errorf("failed to get assets subfs: %w", err)
		}
		return &setup{cfg: cfg, assets: assets, dir: loader.BasePath()}, nil
	}

	loader := config.NewLoader(dir)
	cfg, err := loader.LoadAll()
	if err != nil {
		return nil, err
	}
	assetsDir := loader.AssetsPath(cfg.Settings)
	s := &setup{cfg: cfg, assets: os.DirFS(assetsDir), dir: loader.BasePath()}
	if cfg.Settings.Assets.HotReload {
		s.watchDir = assetsDir
	}
	return s, nil
}

func run(configDir, logLevel string) error {
	s, err := loadSetup(configDir)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	settings := s.cfg.Settings

	if logLevel == "" {
		logLevel = settings.Logging.Level
	}
	logger, err := logging.New(os.Stderr, logLevel)
	if err != nil {
		return err
	}

	logger.Info("config loaded", "dir", s.dir, "hotReload", s.watchDir != "")

	cm := content.NewManager(s.assets, logger.WithPrefix("content"))
	defer cm.Close()
	if s.watchDir != "" {
		if err := cm.Watch(s.watchDir); err != nil {
			logger.Warn("hot reload disabled", "dir", s.watchDir, "err", err)
		}
	}

	world := ecs.NewWorld()
	if _, err := system.LoadSprites(world, s.cfg.Sprites, cm); err != nil {
		return fmt.Errorf("failed to load sprites: %w", err)
	}
	logger.Info("sprites loaded", "count", world.CountSprites(), "sheets", cm.Len())

	poller := device.NewPoller(settings.Input.StickDeadzone)
	in := system.NewInputSystem(poller, poller, settings.Input)

	display := settings.Display
	sc := showcase.New(world, s.cfg.Sprites, in, display.Background.RGBA())
	g := game.New(sc, display.ScreenWidth, display.ScreenHeight,
		game.WithTPS(display.Framerate),
		game.WithContent(cm),
		game.WithLogger(logger),
	)

	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle(display.Title)
	ebiten.SetTPS(display.Framerate)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	logger.Info("bye")
	return nil
}

func main() {
	configDir := flag.String("config", "", "Config directory (default: embedded configs)")
	logLevel := flag.String("log-level", "", "Override the configured log level (debug, info, warn, error)")
	flag.Parse()

	if err := run(*configDir, *logLevel); err != nil {
		log.Fatal(err)
	}
}
