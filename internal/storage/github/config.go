package github

import "time"

// Config holds settings for the remote document medium.
type Config struct {
	// APIURL is the base URL of the contents API (e.g., https://api.github.com)
	APIURL string

	// RepoPath is the document path under the API base,
	// e.g. repos/someone/roster-data/contents/roster.json
	RepoPath string

	// Token is the bearer credential sent with write requests
	Token string

	// Timeout bounds each HTTP round-trip
	Timeout time.Duration
}

// DefaultConfig returns sensible defaults for the remote document store
func DefaultConfig() Config {
	return Config{
		APIURL:  "https://api.github.com",
		Timeout: 30 * time.Second,
	}
}
