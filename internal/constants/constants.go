package constants

import "time"

// Environment variables
const (
	// DebugEnvKey selects the debuglog level (trace, debug, info, warn, error, off).
	DebugEnvKey = "FYNEKIT_DEBUG"
)

// Network constants
const (
	DefaultSTUNServer = "stun.l.google.com:19302"
)

// DefaultProbeAddrs are the endpoints tried by connectivity.Online, in order.
// Public resolvers are used because they answer on stable anycast addresses.
var DefaultProbeAddrs = []string{
	"1.1.1.1:443",
	"8.8.8.8:53",
}

// UI timing
const (
	DefaultToastDuration = 2 * time.Second
)

// Logging
const (
	// MaxLogFileSize is the size at which debuglog.OpenRotated rotates a log file (10 MB).
	MaxLogFileSize = 10 * 1024 * 1024
)
