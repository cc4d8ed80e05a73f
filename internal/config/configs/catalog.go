package configs

import (
	"errors"
	"fmt"
	"time"
)

// Catalog sources.
const (
	SourcePostgres = "postgres"
	SourceFile     = "file"
)

// Catalog selects where campaigns, products and profiles come from and how
// often the in-memory snapshot is refreshed.
type Catalog struct {
	// Source is "postgres" or "file".
	Source string `env:"SOURCE" envDefault:"postgres"`
	// Path is the YAML catalog read by the file source.
	Path string `env:"PATH"`
	// Watch reloads the file source when the file changes.
	Watch bool `env:"WATCH" envDefault:"true"`
	// WatchDebounce is how long writes must settle before a reload.
	WatchDebounce time.Duration `env:"WATCH_DEBOUNCE" envDefault:"250ms"`
	// RefreshSchedule is a cron expression or descriptor such as
	// "@every 30s". Empty disables periodic refresh.
	RefreshSchedule string `env:"REFRESH_SCHEDULE" envDefault:"@every 30s"`
}

// Validate reports an unknown source or a file source without a path.
func (c Catalog) Validate() error {
	switch c.Source {
	case SourcePostgres:
		return nil
	case SourceFile:
		if c.Path == "" {
			return errors.New("catalog: CATALOG_PATH is required for the file source")
		}
		return nil
	default:
		return fmt.Errorf("catalog: unknown source %q", c.Source)
	}
}
