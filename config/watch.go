// SPDX-License-Identifier: MIT
// Package: bfsviz/config
//
// watch.go - reload-on-change for a single config file.

package config

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce is how long the watcher waits for a burst of writes to settle.
const DefaultDebounce = 100 * time.Millisecond

// ReloadHandler receives the reloaded config, or the error that prevented it.
type ReloadHandler func(cfg *Config, err error)

// Watcher reloads one config file whenever it changes.
//
// The parent directory is watched rather than the file itself, so editors
// that save by rename keep triggering reloads. Events for other files in the
// directory are ignored. The handler runs on the watcher goroutine.
type Watcher struct {
	path     string
	handler  ReloadHandler
	debounce time.Duration
	log      *zap.Logger

	watcher  *fsnotify.Watcher
	done     chan struct{}
	stopOnce sync.Once
}

// WatchOption configures a Watcher.
type WatchOption func(*Watcher)

// WithDebounce sets the settle window. Panics on d <= 0.
func WithDebounce(d time.Duration) WatchOption {
	if d <= 0 {
		panic("config: WithDebounce(d<=0)")
	}
	return func(w *Watcher) { w.debounce = d }
}

// WithWatchLogger sets the watcher logger.
func WithWatchLogger(l *zap.Logger) WatchOption {
	return func(w *Watcher) {
		if l != nil {
			w.log = l
		}
	}
}

// Watch starts a Watcher on path that calls fn after each settled change.
// It stops when ctx ends or Stop is called.
func Watch(ctx context.Context, path string, fn ReloadHandler, opts ...WatchOption) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("Watch: %w", err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("Watch: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("Watch: %w", err)
	}

	w := &Watcher{
		path:     abs,
		handler:  fn,
		debounce: DefaultDebounce,
		log:      zap.NewNop(),
		watcher:  fw,
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	go w.loop(ctx)

	return w, nil
}

// Stop ends watching. Safe to call more than once.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.done)
		w.watcher.Close()
	})
}

func (w *Watcher) loop(ctx context.Context) {
	defer w.Stop()

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.done:
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("config watch error", zap.Error(err))
		case <-fire:
			fire = nil
			cfg, err := Load(w.path)
			if err != nil {
				w.log.Warn("config reload failed", zap.String("path", w.path), zap.Error(err))
			} else {
				w.log.Info("config reloaded", zap.String("path", w.path))
			}
			w.handler(cfg, err)
		}
	}
}
