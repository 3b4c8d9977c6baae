// Package video defines the domain models and interfaces for song discovery and audio retrieval.
package video

// Source defines the required capabilities for a track search engine.
type Source interface {
	// Name returns the unique identifier for the search source.
	Name() string

	// ID returns the unique identifier of the source.
	ID() string

	// Search executes a query against the source to discover matching tracks.
	Search(query string) ([]*Track, error)
}
