//go:build dev

package client

// DefaultBaseURL targets a backend running on the local machine.
const DefaultBaseURL = "http://localhost"
