package config

import (
	"runtime"
	"time"

	"github.com/strand-web/strand/http/mime"
)

// Config holds the per-server tunables consumed by the dispatch core and the
// transport underneath it.
//
// You must ALWAYS modify defaults (returned via Default()) and NEVER try to
// initialize the config manually, as zero values are not meaningful.
type Config struct {
	// Server is the identity announced in the seeded Server response header.
	Server string
	// ContentType seeds the default Content-Type response header. Handlers
	// and filters may override it, but cannot prevent its initial presence.
	ContentType mime.MIME
	// Workers sizes the worker pool servicing connection callbacks.
	Workers int
	// KeepAlive tells the transport whether finished connections may be
	// reused.
	KeepAlive bool
	// Timeout bounds how long a connection may sit between readiness events
	// before the transport forcibly closes it.
	Timeout time.Duration
	// MaxSockets caps the number of concurrently served connections.
	MaxSockets int
	// DefaultHeaders are seeded into every response before any filter or
	// handler runs.
	DefaultHeaders map[string]string
}

// Default returns a well-balanced default config.
func Default() *Config {
	return &Config{
		Server:      "strand",
		ContentType: mime.Plain,
		Workers:     DefaultWorkers(),
		KeepAlive:   true,
		// generous, most clients give up earlier anyway
		Timeout:        90 * time.Second,
		MaxSockets:     4096,
		DefaultHeaders: make(map[string]string),
	}
}

// DefaultWorkers sizes the pool to roughly 1.25x the available cores.
func DefaultWorkers() int {
	workers := runtime.NumCPU() * 5 / 4
	if workers < 1 {
		return 1
	}

	return workers
}
