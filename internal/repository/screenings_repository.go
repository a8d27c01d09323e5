// Package repository contains the read-only data access layer over the
// document store.  Every query is an equality-filtered read; the service
// performs no writes.  Reads go through the redis cache collaborator with
// a per-namespace revalidation interval, so results may be stale up to
// that interval by design.
package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cineretro/cine-calendrier/internal/cache"
	"github.com/cineretro/cine-calendrier/internal/config"
	"github.com/cineretro/cine-calendrier/internal/database"
	"github.com/cineretro/cine-calendrier/internal/model"
)

// Cache namespaces.  Each is invalidated as a unit when the ingest
// pipeline republishes the corresponding document family.
const (
	NamespaceDayMovies   = "day-movies"
	NamespaceSearchIndex = "search-index"
	NamespaceMovieList   = "movie-list"
	NamespaceSingleMovie = "single-movie"
	NamespaceReviews     = "reviewed-movies"
)

// ScreeningsRepo reads screening and index documents from the store.
type ScreeningsRepo struct {
	db    *database.Mongo
	cache *cache.Store
	cfg   config.Config
	ttl   config.CacheConfig
}

// NewScreeningsRepo constructs a ScreeningsRepo.  cacheStore may wrap a
// nil redis client, in which case every read hits the store directly.
func NewScreeningsRepo(db *database.Mongo, cacheStore *cache.Store, cfg config.Config, ttl config.CacheConfig) *ScreeningsRepo {
	return &ScreeningsRepo{db: db, cache: cacheStore, cfg: cfg, ttl: ttl}
}

// CollectionName applies the screenings collection selection rule: the
// base name, with "-all" appended for the uncurated variant.  An empty
// base selects the configured default.
func (r *ScreeningsRepo) CollectionName(base string, allMovies bool) string {
	if base == "" {
		base = r.cfg.CollectionBase
	}
	if allMovies {
		return base + "-all"
	}
	return base
}

// MoviesByDate returns the concatenation of the movies arrays of every
// document whose date field equals dayKey.  Entries are not merged by id:
// if the store splits one movie across two documents for a day, both
// entries survive here and collapse later in the week pivot.
func (r *ScreeningsRepo) MoviesByDate(ctx context.Context, dayKey string, allMovies bool, collectionBase string) ([]model.MovieWithScreeningsOneDay, error) {
	coll := r.CollectionName(collectionBase, allMovies)
	cacheKey := coll + ":" + dayKey

	var movies []model.MovieWithScreeningsOneDay
	if r.cache.GetJSON(ctx, NamespaceDayMovies, cacheKey, &movies) {
		return movies, nil
	}

	cur, err := r.db.Collection(coll).Find(ctx, bson.M{"date": dayKey})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	movies = []model.MovieWithScreeningsOneDay{}
	for cur.Next(ctx) {
		var doc model.DayScreeningsDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		movies = append(movies, doc.Movies...)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}

	r.cache.SetJSON(ctx, NamespaceDayMovies, cacheKey, movies, r.ttl.DayMovies)
	return movies, nil
}

// MovieByID returns the per-movie screenings document for one id, or
// ErrMovieNotFound when no document matches.
func (r *ScreeningsRepo) MovieByID(ctx context.Context, id string) (*model.MovieWithScreeningsSeveralDays, error) {
	var movie model.MovieWithScreeningsSeveralDays
	if r.cache.GetJSON(ctx, NamespaceSingleMovie, id, &movie) {
		return &movie, nil
	}

	err := r.db.Collection(r.cfg.MovieCollection).FindOne(ctx, bson.M{"id": id}).Decode(&movie)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrMovieNotFound
	}
	if err != nil {
		return nil, err
	}

	r.cache.SetJSON(ctx, NamespaceSingleMovie, id, movie, r.ttl.SingleMovie)
	return &movie, nil
}

// searchIndexDoc is one extra-docs document carrying a slice of the
// search index.
type searchIndexDoc struct {
	Elements []model.SearchMovie `bson:"elements"`
}

// SearchIndex returns the flat search index: the flattened elements of
// every extra-docs document flagged with search == true.
func (r *ScreeningsRepo) SearchIndex(ctx context.Context) ([]model.SearchMovie, error) {
	var index []model.SearchMovie
	if r.cache.GetJSON(ctx, NamespaceSearchIndex, "all", &index) {
		return index, nil
	}

	cur, err := r.db.Collection(r.cfg.ExtraCollection).Find(ctx, bson.M{"search": true})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	index = []model.SearchMovie{}
	for cur.Next(ctx) {
		var doc searchIndexDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		index = append(index, doc.Elements...)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}

	r.cache.SetJSON(ctx, NamespaceSearchIndex, "all", index, r.ttl.SearchIndex)
	return index, nil
}

// movieListDoc is one reduced movie-list document: a selection flag plus
// compressed records.
type movieListDoc struct {
	Elements []model.ReducedMovie `bson:"e"`
}

// MovieList returns the search index built from the reduced movie-list
// collection, expanding the one-letter wire fields.  It revalidates much
// more slowly than SearchIndex and serves the full-catalog variant.
func (r *ScreeningsRepo) MovieList(ctx context.Context) ([]model.SearchMovie, error) {
	var index []model.SearchMovie
	if r.cache.GetJSON(ctx, NamespaceMovieList, "all", &index) {
		return index, nil
	}

	cur, err := r.db.Collection(r.cfg.MovieListCollection).Find(ctx, bson.M{"s": true})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	index = []model.SearchMovie{}
	for cur.Next(ctx) {
		var doc movieListDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		for _, reduced := range doc.Elements {
			index = append(index, reduced.Expand())
		}
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}

	r.cache.SetJSON(ctx, NamespaceMovieList, "all", index, r.ttl.MovieList)
	return index, nil
}

// reviewsDoc is the single all-reviews document of the extra collection.
type reviewsDoc struct {
	Elements []model.Review `bson:"elements"`
}

// ReviewedMovies returns the site's reviewed movies from the all-reviews
// document.
func (r *ScreeningsRepo) ReviewedMovies(ctx context.Context) ([]model.Review, error) {
	var reviews []model.Review
	if r.cache.GetJSON(ctx, NamespaceReviews, "all", &reviews) {
		return reviews, nil
	}

	var doc reviewsDoc
	err := r.db.Collection(r.cfg.ExtraCollection).FindOne(ctx, bson.M{"_id": "all-reviews"}).Decode(&doc)
	if err != nil {
		return nil, err
	}
	reviews = doc.Elements

	r.cache.SetJSON(ctx, NamespaceReviews, "all", reviews, r.ttl.Reviews)
	return reviews, nil
}
