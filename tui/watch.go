// SPDX-License-Identifier: MIT

package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/katalvlaran/bfsviz/config"
	"go.uber.org/zap"
)

// Watch forwards reloads of the config file at path to send as
// GraphReloadedMsg values. Pass (*tea.Program).Send.
func Watch(ctx context.Context, path string, send func(tea.Msg), log *zap.Logger) (*config.Watcher, error) {
	return config.Watch(ctx, path, func(cfg *config.Config, err error) {
		send(GraphReloadedMsg{Config: cfg, Err: err})
	}, config.WithWatchLogger(log))
}
