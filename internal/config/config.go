package config // package config loads application configuration from environment variables

import (
	"log" // log is used to report configuration errors and halt execution
	"os"  // os provides access to environment variables
)

// Config holds all runtime configuration values.  Each field corresponds
// to an environment variable.  The store is a document database; the
// collection names default to the ones the ingest pipeline publishes to
// and only need overriding for per-city deployments.
type Config struct {
	Env                 string // application environment (e.g. "dev", "prod")
	Port                string // HTTP port to listen on
	MongoURI            string // document store connection string
	MongoDB             string // document store database name
	CollectionBase      string // base name of the per-day screenings collections
	MovieCollection     string // collection of per-movie screening documents
	ExtraCollection     string // collection of extra documents (search index, all-reviews)
	MovieListCollection string // collection of reduced movie-list documents
}

// Load reads configuration values from environment variables and returns
// a Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.
func Load() Config {
	return Config{
		Env:                 must("APP_ENV"),   // environment (dev/test/prod)
		Port:                must("APP_PORT"),  // port to bind the HTTP server
		MongoURI:            must("MONGO_URI"), // store connection string
		MongoDB:             must("MONGO_DB"),  // store database name
		CollectionBase:      getenvDefault("SCREENINGS_COLLECTION_BASE", "website-by-date-screenings"),
		MovieCollection:     getenvDefault("MOVIE_COLLECTION", "website-by-movie-screenings"),
		ExtraCollection:     getenvDefault("EXTRA_COLLECTION", "website-extra-docs"),
		MovieListCollection: getenvDefault("MOVIE_LIST_COLLECTION", "website-movie-list"),
	}
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// getenvDefault returns the variable's value, or def when unset or empty.
func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
