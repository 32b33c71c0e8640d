// Package timeouts defines shared timeout constants for the console process.
// Keeping them in one place keeps the HTTP server and shutdown paths in step.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Write caps how long a response may take to write.
const Write = 15 * time.Second

// Idle limits how long keep-alive connections stay open between requests.
const Idle = 60 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// TelemetryShutdown limits how long pending spans may take to flush.
const TelemetryShutdown = 5 * time.Second
