package arrange

import (
	"log"
	"os"
	"runtime"
)

// Option configures a Driver before it runs an arrangement.
type Option func(cfg *config)

type config struct {
	workers int
	logger  *log.Logger
}

func defaultConfig() *config {
	return &config{
		workers: runtime.GOMAXPROCS(0),
		logger:  log.New(os.Stderr, "arrange: ", log.LstdFlags),
	}
}

// WithWorkers sets the number of fragmentation worker goroutines. Values
// less than 1 are treated as 1.
func WithWorkers(n int) Option {
	return func(cfg *config) {
		if n < 1 {
			n = 1
		}
		cfg.workers = n
	}
}

// WithLogger overrides the diagnostic logger used for the connected-
// component-count sanity check; a nil logger is ignored.
func WithLogger(l *log.Logger) Option {
	return func(cfg *config) {
		if l != nil {
			cfg.logger = l
		}
	}
}
