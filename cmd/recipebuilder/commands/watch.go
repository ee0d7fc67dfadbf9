package commands

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/cltkitchen/recipebuilder/internal/config"
	"github.com/cltkitchen/recipebuilder/internal/logfields"
	"github.com/cltkitchen/recipebuilder/internal/site"
)

// WatchCmd rebuilds the whole site whenever a recipe document changes.
// Every rebuild is a full, fresh run; there is no incremental mode.
type WatchCmd struct {
	Debounce time.Duration `help:"Quiet period before a rebuild after a change" default:"300ms"`
}

func (w *WatchCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return err
	}

	builder, err := site.New(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initial build so the site exists before the first change.
	if report, err := builder.Build(ctx); err != nil {
		slog.Error("Initial build failed", logfields.Error(err))
	} else {
		slog.Info("Initial build complete", logfields.BuildID(report.BuildID))
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(cfg.Recipes.Directory); err != nil {
		return err
	}
	slog.Info("Watching for changes", logfields.Path(cfg.Recipes.Directory))

	var timer *time.Timer
	rebuild := make(chan struct{}, 1)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			slog.Debug("Change detected", logfields.Path(event.Name))
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.Debounce, func() {
				select {
				case rebuild <- struct{}{}:
				default:
				}
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("Watcher error", logfields.Error(err))
		case <-rebuild:
			report, err := builder.Build(ctx)
			if err != nil {
				// Keep watching; the author fixes the document and saves again.
				slog.Error("Rebuild failed", logfields.Error(err))
				continue
			}
			slog.Info("Rebuilt site",
				logfields.BuildID(report.BuildID),
				logfields.Count(report.Recipes))
		}
	}
}
