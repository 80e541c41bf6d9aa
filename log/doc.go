// Package log provides the leveled logger used by the search packages and
// the ringsolve command.
//
// Searches never require a logger. When none is supplied they trace through
// NoOpLogger, so tracing costs a predictable interface call and nothing else.
//
// Usage
//
//	logger := log.New(log.LogLevelDebug)
//	res, err := astar.Search(g, start, isGoal, h, astar.WithLogger(logger))
//
// An existing *golog.Logger can be wrapped with NewGologLogger to share its
// output, prefix and time format with the rest of an application.
package log
