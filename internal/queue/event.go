// Package queue defines message payloads exchanged over the message broker.
package queue

// ScreeningsPublishedEvent is emitted when the ingest pipeline republishes
// screening documents.  Consumers use it to drop the affected cache
// entries so the new documents become visible before their TTL lapses;
// it carries enough context to log what changed without querying the store.
type ScreeningsPublishedEvent struct {
	CollectionBase string `json:"collection_base"`
	AllMovies      bool   `json:"all_movies"`
	Date           string `json:"date,omitempty"`
	MovieCount     int    `json:"movie_count,omitempty"`
	PublishedAt    string `json:"published_at"`
}
