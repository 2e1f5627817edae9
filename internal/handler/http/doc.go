// Package http implements the REST transport of soul-scribe.
//
// Routes live under /api. Every request passes through trace-id, access
// logging and panic recovery middleware; authenticated routes additionally
// resolve the bearer credential into a models.User stored in the request
// context, and the chat route is rate limited per user when a limiter is
// configured. Handlers decode JSON, call exactly one service method and map
// returned sentinel errors to a status code and a fixed client message.
package http
