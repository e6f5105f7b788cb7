//go:build !re2

// Package re2 adapts github.com/wasilibs/go-re2 behind the "re2" build tag.
// In default builds the package compiles to nothing and the backend is not
// registered; engine.Open("re2") reports it unknown.
package re2
