package logging

import (
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	once sync.Once
	base zerolog.Logger
)

// Configure initialises the global logger exactly once. The level comes from
// the argument, falling back to the LOG_LEVEL environment variable, falling
// back to info.
func Configure(level string) {
	once.Do(func() {
		parsed := zerolog.InfoLevel
		if level == "" {
			level = os.Getenv("LOG_LEVEL")
		}
		if level != "" {
			if l, err := zerolog.ParseLevel(level); err == nil {
				parsed = l
			}
		}
		zerolog.SetGlobalLevel(parsed)
		zerolog.TimeFieldFormat = time.RFC3339

		base = zerolog.New(os.Stderr).With().
			Timestamp().
			Str("service", "presentation-gallery").
			Logger()
	})
}

// L returns the global logger.
func L() zerolog.Logger {
	Configure("")
	return base
}
