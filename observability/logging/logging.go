// Package logging provides slog-based component loggers for the node.
package logging

import (
	"fmt"
	"log/slog"
	"os"
	"time"
)

// Component names used as the "component" attribute on log lines.
const (
	CompNode       = "node"
	CompChain      = "chain"
	CompForkchoice = "forkchoice"
	CompNetwork    = "network"
	CompGossip     = "gossip"
	CompSync       = "sync"
	CompValidator  = "validator"
)

var root = slog.New(slog.NewTextHandler(os.Stderr, nil))

// SetLevel replaces the root handler with one filtering at the given level.
func SetLevel(level slog.Level) {
	root = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NewComponentLogger returns a logger tagged with the component name.
func NewComponentLogger(component string) *slog.Logger {
	return root.With("component", component)
}

// ShortHash renders the first 4 bytes of a 32-byte root for log lines.
func ShortHash(root [32]byte) string {
	return fmt.Sprintf("%x", root[:4])
}

// TimeSince renders elapsed time with millisecond precision.
func TimeSince(start time.Time) string {
	return time.Since(start).Round(time.Millisecond).String()
}
