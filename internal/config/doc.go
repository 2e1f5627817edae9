// Package config provides configuration loading, merging, and validation
// facilities for the soul-scribe server.
//
// Configuration is assembled from multiple sources. For every field the
// first source that sets a non-zero value wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file (path from CONFIG or -c/-config)
//
// Defaults are applied to whatever is still unset, and the result is
// validated. The entry point is [GetStructuredConfig].
package config
