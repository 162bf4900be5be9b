// Package utils provides shared helpers for the fixresx application.
// It currently holds the line reader used by the designer indexer and the
// resx reconciler, which needs to know each file's line terminator.
package utils
