// Package server runs the HTTP transport of soul-scribe.
//
// It owns the listener lifecycle: startup, OS signal handling and graceful
// shutdown that lets in-flight requests, including pending upstream chat
// calls, finish within a bounded grace period.
package server
