package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/mlai-aus/arcade/internal/assets"
	"github.com/mlai-aus/arcade/internal/audio"
	"github.com/mlai-aus/arcade/internal/config"
	"github.com/mlai-aus/arcade/internal/content"
	"github.com/mlai-aus/arcade/internal/core"
	"github.com/mlai-aus/arcade/internal/games/shooter"
	"github.com/mlai-aus/arcade/internal/games/tetris"
	"github.com/mlai-aus/arcade/internal/storage"
)

// assetLoadTimeout bounds the image preload at mount.
const assetLoadTimeout = 10 * time.Second

// newLogger writes to stderr, which the alt screen leaves untouched.
func newLogger(prefix string) *log.Logger {
	level := log.WarnLevel
	if flagVerbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
}

// runtimeConfig sizes the screen from the terminal, falling back to 80x24.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// configureGames applies the difficulty preset to every game and, when
// gameID is set, a custom config file to that game only. Every config the
// games will load is checked first, so a broken file is reported instead
// of replaced by defaults.
func configureGames(gameID, configPath string) error {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	if err := checkConfigs(gameID, configPath); err != nil {
		return err
	}
	shooter.SetDifficultyPreset(preset)
	tetris.SetDifficultyPreset(preset)

	switch gameID {
	case "shooter":
		shooter.SetConfigPath(configPath)
	case "tetris":
		tetris.SetConfigPath(configPath)
	}
	return nil
}

// checkConfigs loads each game's config the way the game will.
func checkConfigs(gameID, configPath string) error {
	pathFor := func(id string) string {
		if id == gameID {
			return configPath
		}
		return ""
	}
	if _, err := config.LoadShooter(pathFor("shooter")); err != nil {
		return err
	}
	if _, err := config.LoadTetris(pathFor("tetris")); err != nil {
		return err
	}
	return nil
}

func loadContent(logger *log.Logger) content.Library {
	lib, err := content.Load(flagContent)
	if err != nil {
		logger.Warn("using built-in content", "error", err)
		return content.Default()
	}
	return lib
}

// loadAssets preloads every image the library references. A nil cache is
// returned when no asset directory was given.
func loadAssets(ctx context.Context, lib content.Library, logger *log.Logger) *assets.Cache {
	if flagAssets == "" {
		return nil
	}
	cache := assets.NewCache(os.DirFS(flagAssets), logger)
	reloadAssets(ctx, cache, lib, logger)
	return cache
}

func reloadAssets(ctx context.Context, cache *assets.Cache, lib content.Library, logger *log.Logger) {
	if cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, assetLoadTimeout)
	defer cancel()

	n, err := cache.Load(ctx, lib.ImagePaths())
	if err != nil {
		logger.Warn("asset loading stopped early", "error", err)
	}
	logger.Debug("assets loaded", "new", n, "cached", cache.Len())
}

// watchContent starts a content watcher when --watch is set. Each reload
// refreshes the asset cache and is then handed to publish.
func watchContent(ctx context.Context, cache *assets.Cache, logger *log.Logger, publish func(content.Library)) (*content.Watcher, error) {
	if !flagWatch {
		return nil, nil
	}
	if flagContent == "" {
		return nil, errors.New("--watch needs --content")
	}

	w := content.NewWatcher(flagContent, func(lib content.Library) {
		reloadAssets(ctx, cache, lib, logger)
		publish(lib)
	}, logger)
	if err := w.Start(ctx); err != nil {
		return nil, err
	}
	return w, nil
}

// openStore opens the scores database; the games still run without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		return nil
	}
	return store
}

// newPlayer returns an initialised sound player, or nil when sound is off
// or unavailable.
func newPlayer(logger *log.Logger) *audio.Player {
	if flagVolume <= 0 {
		return nil
	}
	p := audio.NewPlayer(flagVolume, logger)
	if !p.Init() {
		return nil
	}
	return p
}

// exitErr prints an error in the CLI's format and exits.
func exitErr(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// host bundles the services shared by the interactive commands.
type host struct {
	logger  *log.Logger
	lib     content.Library
	cache   *assets.Cache
	store   *storage.Store
	player  *audio.Player
	watcher *content.Watcher
	updates chan content.Library
	cancel  context.CancelFunc
}

// newHost loads content and assets, opens the store and starts the
// optional watcher and sound player.
func newHost(prefix string) (*host, error) {
	ctx, cancel := context.WithCancel(context.Background())
	logger := newLogger(prefix)

	h := &host{
		logger:  logger,
		lib:     loadContent(logger),
		store:   openStore(logger),
		player:  newPlayer(logger),
		updates: make(chan content.Library, 1),
		cancel:  cancel,
	}
	h.cache = loadAssets(ctx, h.lib, logger)

	w, err := watchContent(ctx, h.cache, logger, h.publish)
	if err != nil {
		h.Close()
		return nil, err
	}
	h.watcher = w
	return h, nil
}

// publish replaces any undelivered library with lib.
func (h *host) publish(lib content.Library) {
	select {
	case <-h.updates:
	default:
	}
	h.updates <- lib
}

func (h *host) lookup() assets.Lookup {
	return lookupOf(h.cache)
}

// lookupOf avoids handing out a non-nil interface holding a nil cache.
func lookupOf(cache *assets.Cache) assets.Lookup {
	if cache == nil {
		return nil
	}
	return cache
}

// contentUpdates is nil unless a watcher is running.
func (h *host) contentUpdates() <-chan content.Library {
	if h.watcher == nil {
		return nil
	}
	return h.updates
}

// Close stops the watcher and releases every service.
func (h *host) Close() {
	h.cancel()
	if h.watcher != nil {
		h.watcher.Stop()
	}
	if h.player != nil {
		h.player.Close()
	}
	if h.store != nil {
		h.store.Close()
	}
	if h.cache != nil {
		h.cache.Clear()
	}
}
