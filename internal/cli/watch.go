// SPDX-FileCopyrightText: 2026 swaggen
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/swaggen/swaggen/internal/scanner"
)

var watchDebounce int

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch for file changes and regenerate the documents",
	Long: `Watch the source directory and regenerate every document when a service
definition changes.

Documents are generated once on start. Changes are debounced so that saving
several files triggers a single regeneration. Directories created while
watching, such as a new service, are watched as well. A failed regeneration
is reported and watching continues.

Example:
  swaggen watch -V 1.0.0                  # Watch src/main/spec
  swaggen watch -s spec -t build -V 1.0.0 # Explicit directories
  swaggen watch -V 1.0.0 --debounce 1000  # Wait 1s before regenerating`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().IntVar(&watchDebounce, "debounce", 0, "debounce duration in milliseconds (default: watch.debounce from config)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, gen, err := newGenerator()
	if err != nil {
		return err
	}

	// Apply command-line overrides
	if watchDebounce > 0 {
		cfg.Watch.Debounce = watchDebounce
	}

	printVerbose("Watch configuration:")
	printVerbose("  Debounce: %dms", cfg.Watch.Debounce)
	printVerbose("  Source: %s", cfg.Source)
	printVerbose("  Output: %s", cfg.Output)

	regenerate := func() error {
		start := time.Now()
		_, written, err := gen.Run()
		if err != nil {
			return fmt.Errorf("generation failed: %w", err)
		}
		printInfo("Regenerated %d files in %s", len(written), time.Since(start).Round(time.Millisecond))
		return nil
	}

	// A missing source directory cannot be watched.
	if err := regenerate(); err != nil {
		if _, statErr := os.Stat(cfg.Source); statErr != nil {
			return err
		}
		printError("%v", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	tree := scanner.New(scanner.Config{
		IncludePatterns: cfg.Documents.Include,
		ExcludePatterns: cfg.Documents.Exclude,
	})

	addTree := func(root string) error {
		dirs, err := tree.Tree(root)
		if err != nil {
			return err
		}
		for _, dir := range dirs {
			if err := watcher.Add(dir); err != nil {
				return fmt.Errorf("failed to watch %s: %w", dir, err)
			}
			printVerbose("Watching %s", dir)
		}
		return nil
	}

	if err := addTree(cfg.Source); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	printInfo("Watching for changes in: %s", cfg.Source)
	printInfo("Press Ctrl+C to stop")

	loop := &watchLoop{
		debounce:   time.Duration(cfg.Watch.Debounce) * time.Millisecond,
		regenerate: regenerate,
		addDir:     addTree,
		ignore:     ignoreEvent(tree, cfg.Output),
	}
	return loop.run(ctx, watcher.Events, watcher.Errors)
}

// watchLoop debounces file system events into regenerations.
type watchLoop struct {
	debounce   time.Duration
	regenerate func() error

	// addDir is called for every created directory
	addDir func(path string) error

	// ignore reports paths whose events never trigger a regeneration
	ignore func(path string) bool
}

// run consumes events until ctx is done or the event channel is closed.
// Regeneration errors are reported and do not stop the loop.
func (l *watchLoop) run(ctx context.Context, events <-chan fsnotify.Event, errs <-chan error) error {
	var timer *time.Timer
	var fire <-chan time.Time

	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-events:
			if !ok {
				return nil
			}
			if event.Op == fsnotify.Chmod {
				continue
			}
			if l.ignore != nil && l.ignore(event.Name) {
				continue
			}
			printVerbose("Changed: %s (%s)", event.Name, event.Op)

			if event.Has(fsnotify.Create) && l.addDir != nil {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := l.addDir(event.Name); err != nil {
						printError("%v", err)
					}
				}
			}

			if timer == nil {
				timer = time.NewTimer(l.debounce)
			} else {
				timer.Reset(l.debounce)
			}
			fire = timer.C

		case err, ok := <-errs:
			if !ok {
				return nil
			}
			printError("watch: %v", err)

		case <-fire:
			fire = nil
			if err := l.regenerate(); err != nil {
				printError("%v", err)
			}
		}
	}
}

// ignoreEvent skips events below the output directory and events for
// existing regular files that are not documents, such as editor swap files.
// Removed paths cannot be inspected and always pass.
func ignoreEvent(s *scanner.Scanner, output string) func(string) bool {
	inOutput := underDir(output)
	return func(path string) bool {
		if inOutput(path) {
			return true
		}
		info, err := os.Stat(path)
		return err == nil && info.Mode().IsRegular() && !s.Matches(path)
	}
}

// underDir returns a predicate matching dir and every path below it.
func underDir(dir string) func(string) bool {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return func(string) bool { return false }
	}
	return func(path string) bool {
		p, err := filepath.Abs(path)
		if err != nil {
			return false
		}
		return p == abs || strings.HasPrefix(p, abs+string(filepath.Separator))
	}
}
