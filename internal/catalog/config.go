package catalog

import (
	"strings"
	"time"
)

type Config struct {
	// Source is a local directory or an http(s) base URL.
	Source string
	// Timeout bounds each HTTP fetch. Zero means DefaultTimeout.
	Timeout time.Duration
}

// DefaultTimeout bounds remote fetches when Config.Timeout is unset.
const DefaultTimeout = 10 * time.Second

func (config Config) isRemote() bool {
	return strings.HasPrefix(config.Source, "http://") || strings.HasPrefix(config.Source, "https://")
}

func (config Config) timeout() time.Duration {
	if config.Timeout <= 0 {
		return DefaultTimeout
	}
	return config.Timeout
}
