// Package repository defines error types that are reused across the data
// access layer.  These sentinel values let handlers distinguish an absent
// document from an upstream failure without inspecting driver errors.
package repository

import "errors"

// ErrMovieNotFound is returned when a movie id query yields no document.
// It is an absent result, not a failure; handlers translate it into an
// HTTP 404 response.
var ErrMovieNotFound = errors.New("movie not found")
