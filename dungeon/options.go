package dungeon

import (
	"context"
	"log/slog"
)

// runConfig holds knobs that do not change the generated dungeon.
type runConfig struct {
	logger *slog.Logger
}

// Option configures a Generate call. Options never affect the output, only
// how the run is observed.
type Option func(*runConfig)

// WithLogger routes stage summaries to l at Debug level and the run summary
// at Info level. A nil logger keeps the default, which discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(rc *runConfig) {
		if l != nil {
			rc.logger = l
		}
	}
}

// newRunConfig applies opts in order; last wins.
func newRunConfig(opts ...Option) runConfig {
	rc := runConfig{logger: slog.New(discardHandler{})}
	for _, opt := range opts {
		opt(&rc)
	}

	return rc
}

// discardHandler drops every record.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (h discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h discardHandler) WithGroup(string) slog.Handler           { return h }
