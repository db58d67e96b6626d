// Package domain contains the core data types for the goal tracker.
// This package has zero external dependencies and is imported by every other
// internal package (repo, service, handler, client).
package domain

// Goal is a short piece of text the user wants to keep track of.
// ID is generated by the store on creation and is opaque to every other layer:
// callers must not assume it is numeric, sortable, or of any fixed format.
// Neither field changes after creation; there is no update operation.
type Goal struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}
