// SPDX-FileCopyrightText: 2026 swaggen
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swaggen/swaggen/internal/scanner"
)

// startLoop runs l in the background and returns its event channel and a
// channel receiving the result of run.
func startLoop(t *testing.T, ctx context.Context, l *watchLoop) (chan fsnotify.Event, chan error, <-chan error) {
	t.Helper()
	events := make(chan fsnotify.Event)
	errs := make(chan error)
	done := make(chan error, 1)
	go func() {
		done <- l.run(ctx, events, errs)
	}()
	return events, errs, done
}

func waitDone(t *testing.T, done <-chan error) {
	t.Helper()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watch loop did not stop")
	}
}

func TestWatchLoop_Debounce(t *testing.T) {
	var runs atomic.Int32
	regenerated := make(chan struct{}, 10)

	l := &watchLoop{
		debounce: 50 * time.Millisecond,
		regenerate: func() error {
			runs.Add(1)
			regenerated <- struct{}{}
			return nil
		},
	}
	events, _, done := startLoop(t, context.Background(), l)

	for _, name := range []string{"a.yml", "b.yml", "c.yml"} {
		events <- fsnotify.Event{Name: name, Op: fsnotify.Write}
	}

	select {
	case <-regenerated:
	case <-time.After(2 * time.Second):
		t.Fatal("no regeneration")
	}

	// A burst of events regenerates once
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, int32(1), runs.Load())

	events <- fsnotify.Event{Name: "d.yml", Op: fsnotify.Remove}
	select {
	case <-regenerated:
	case <-time.After(2 * time.Second):
		t.Fatal("no second regeneration")
	}
	assert.Equal(t, int32(2), runs.Load())

	close(events)
	waitDone(t, done)
}

func TestWatchLoop_IgnoresChmodAndIgnoredPaths(t *testing.T) {
	var runs atomic.Int32
	l := &watchLoop{
		debounce: 10 * time.Millisecond,
		regenerate: func() error {
			runs.Add(1)
			return nil
		},
		ignore: func(path string) bool {
			return path == "out/swagger_docs.yml"
		},
	}
	events, _, done := startLoop(t, context.Background(), l)

	events <- fsnotify.Event{Name: "a.yml", Op: fsnotify.Chmod}
	events <- fsnotify.Event{Name: "out/swagger_docs.yml", Op: fsnotify.Write}
	time.Sleep(100 * time.Millisecond)

	close(events)
	waitDone(t, done)
	assert.Equal(t, int32(0), runs.Load())
}

func TestWatchLoop_AddsCreatedDirectories(t *testing.T) {
	dir := t.TempDir()
	newService := filepath.Join(dir, "billing")
	require.NoError(t, os.Mkdir(newService, 0755))
	file := filepath.Join(dir, "info.yml")
	require.NoError(t, os.WriteFile(file, []byte("title: x\n"), 0644))

	var added []string
	l := &watchLoop{
		debounce:   time.Hour,
		regenerate: func() error { return nil },
		addDir: func(path string) error {
			added = append(added, path)
			return nil
		},
	}
	events, _, done := startLoop(t, context.Background(), l)

	events <- fsnotify.Event{Name: newService, Op: fsnotify.Create}
	events <- fsnotify.Event{Name: file, Op: fsnotify.Create}

	close(events)
	waitDone(t, done)
	assert.Equal(t, []string{newService}, added)
}

func TestWatchLoop_ContinuesAfterErrors(t *testing.T) {
	regenerated := make(chan struct{}, 10)
	l := &watchLoop{
		debounce: 10 * time.Millisecond,
		regenerate: func() error {
			regenerated <- struct{}{}
			return errors.New("broken action")
		},
	}
	events, errs, done := startLoop(t, context.Background(), l)

	errs <- errors.New("watcher overflow")

	for i := 0; i < 2; i++ {
		events <- fsnotify.Event{Name: "a.yml", Op: fsnotify.Write}
		select {
		case <-regenerated:
		case <-time.After(2 * time.Second):
			t.Fatal("no regeneration")
		}
	}

	close(events)
	waitDone(t, done)
}

func TestWatchLoop_StopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	l := &watchLoop{
		debounce:   time.Hour,
		regenerate: func() error { return nil },
	}
	events, _, done := startLoop(t, ctx, l)

	events <- fsnotify.Event{Name: "a.yml", Op: fsnotify.Write}
	cancel()

	waitDone(t, done)
}

func TestUnderDir(t *testing.T) {
	dir := t.TempDir()
	under := underDir(filepath.Join(dir, "out"))

	assert.True(t, under(filepath.Join(dir, "out")))
	assert.True(t, under(filepath.Join(dir, "out", "swagger_docs.yml")))
	assert.False(t, under(filepath.Join(dir, "output", "swagger_docs.yml")))
	assert.False(t, under(filepath.Join(dir, "billing", "actions", "charge.yml")))
}

func TestIgnoreEvent(t *testing.T) {
	dir := t.TempDir()
	actions := filepath.Join(dir, "billing", "actions")
	require.NoError(t, os.MkdirAll(actions, 0o755))
	for _, name := range []string{"charge.yml", "charge.yml.swp", ".hidden.yml"} {
		require.NoError(t, os.WriteFile(filepath.Join(actions, name), []byte("x: 1\n"), 0o644))
	}

	tree := scanner.New(scanner.Config{
		IncludePatterns: []string{"*.yml"},
		ExcludePatterns: []string{".*"},
	})
	ignore := ignoreEvent(tree, filepath.Join(dir, "out"))

	assert.False(t, ignore(filepath.Join(actions, "charge.yml")))
	assert.False(t, ignore(actions), "directories always pass")
	assert.False(t, ignore(filepath.Join(actions, "removed.txt")), "removed paths always pass")
	assert.True(t, ignore(filepath.Join(actions, "charge.yml.swp")))
	assert.True(t, ignore(filepath.Join(actions, ".hidden.yml")))
	assert.True(t, ignore(filepath.Join(dir, "out", "swagger_docs.yml")))
}

func TestWatchCommand_MissingSource(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := executeCommand(rootCmd, "watch", "-q", "-s", "does-not-exist", "-V", "1.0.0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does-not-exist")
}
