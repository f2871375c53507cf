package cli

import (
	"context"
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/segmint-labs/featselect-cli/internal/logger"
)

// rebuildDelay coalesces the burst of filesystem events an editor
// emits while saving a document.
const rebuildDelay = 500 * time.Millisecond

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the source document and rebuild on change",
	Long: `Watches the feature dictionary document and re-parses, re-caches
and re-indexes it whenever it changes. Runs until interrupted.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	if err := ensureServices(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := catalogService.Load(ctx); err != nil {
		return fmt.Errorf("initial load failed: %w", err)
	}
	cmd.Printf("Indexed %d feature records. Watching %s\n",
		catalogService.IndexSize(), resolvedSource)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory, not the file: editors replace files on
	// save, which would drop a file-level watch.
	dir := filepath.Dir(resolvedSource)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	target := filepath.Clean(resolvedSource)
	for {
		var fire <-chan time.Time
		if timer != nil {
			fire = timer.C
		}

		select {
		case <-ctx.Done():
			cmd.Println("Stopping.")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			logger.Debug("Source changed (%s), scheduling rebuild", event.Op)
			if timer == nil {
				timer = time.NewTimer(rebuildDelay)
			} else {
				timer.Reset(rebuildDelay)
			}

		case <-fire:
			timer = nil
			if err := catalogService.Rebuild(ctx); err != nil {
				logger.Warn("Rebuild failed: %v", err)
				continue
			}
			cmd.Printf("Rebuilt index: %d feature records.\n", catalogService.IndexSize())

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error: %v", err)
		}
	}
}
