package config

import (
	"os"
	"strconv"
	"time"
)

// CacheConfig defines the read-through cache collaborator.  Each fetch
// namespace has its own revalidation interval; staleness up to that
// interval is acceptable by design, listings do not need strong
// consistency.  When Enabled is false or no Redis client is configured,
// every read goes straight to the store.
type CacheConfig struct {
	Enabled     bool
	Prefix      string
	DayMovies   time.Duration // per-day screening lists
	SearchIndex time.Duration // extra-docs search index
	MovieList   time.Duration // reduced movie-list index
	SingleMovie time.Duration // per-movie documents
	Reviews     time.Duration // all-reviews document
}

// LoadCacheConfig reads environment variables to build a CacheConfig.
// Defaults match how often the ingest pipeline republishes each document
// family: the search index moves fastest, the reduced list slowest.
func LoadCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled:     getenvDefault("CACHE_ENABLED", "true") == "true",
		Prefix:      getenvDefault("CACHE_PREFIX", "cache"),
		DayMovies:   envSeconds("CACHE_DAY_MOVIES_SECONDS", 60),
		SearchIndex: envSeconds("CACHE_SEARCH_INDEX_SECONDS", 10),
		MovieList:   envSeconds("CACHE_MOVIE_LIST_SECONDS", 180),
		SingleMovie: envSeconds("CACHE_SINGLE_MOVIE_SECONDS", 60),
		Reviews:     envSeconds("CACHE_REVIEWS_SECONDS", 60),
	}
}

func envSeconds(key string, def int) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Second
		}
	}
	return time.Duration(def) * time.Second
}
