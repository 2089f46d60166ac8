package signals

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

var discardLogger = slog.New(slog.DiscardHandler)

type config struct {
	name   string
	logger *slog.Logger
}

type Option func(*config)

// WithName sets the name reported in log records. Unnamed signals get a
// random UUID.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// WithLogger enables debug logging of attach and detach events.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

func newLogger(opts []Option) *slog.Logger {
	c := config{}
	for _, opt := range opts {
		opt(&c)
	}
	if c.logger == nil {
		return discardLogger
	}
	if c.name == "" {
		c.name = uuid.NewString()
	}
	return c.logger.With(slog.String("signal", c.name))
}

func slotAttr(id ulid.ULID) slog.Attr {
	return slog.String("slot", id.String())
}

func countAttr(key string, n int) slog.Attr {
	return slog.Int(key, n)
}
