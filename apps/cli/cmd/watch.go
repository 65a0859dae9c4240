package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/abdul-hamid-achik/expect/packages/core/config"
	"github.com/abdul-hamid-achik/expect/packages/generator"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// watchSet returns the source directories of a report and the files it
// generated, which must not trigger a rerun themselves.
func watchSet(report *generator.Report) ([]string, map[string]bool) {
	seen := map[string]bool{}
	generated := map[string]bool{}
	var dirs []string
	for _, r := range report.Results {
		if r.Path != "" {
			generated[filepath.Clean(r.Path)] = true
		}
		if r.SourceDir != "" && !seen[r.SourceDir] {
			seen[r.SourceDir] = true
			dirs = append(dirs, r.SourceDir)
		}
	}
	return dirs, generated
}

// watchSources calls rerun once per burst of changes to Go files in dirs,
// until ctx is done.
func watchSources(ctx context.Context, log *zap.Logger, dirs []string, generated map[string]bool, debounce time.Duration, rerun func(changed string)) error {
	if debounce <= 0 {
		debounce = config.DefaultDebounce * time.Millisecond
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		log.Debug("watching", zap.String("dir", dir))
	}

	timer := time.NewTimer(debounce)
	timer.Stop()
	var changed string

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isSourceChange(event, generated) {
				continue
			}
			changed = event.Name
			timer.Reset(debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("watch error", zap.Error(err))

		case <-timer.C:
			rerun(changed)
		}
	}
}

func isSourceChange(event fsnotify.Event, generated map[string]bool) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}
	name := event.Name
	if !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
		return false
	}
	return !generated[filepath.Clean(name)]
}
