// Package server holds the HTTP server configuration.
//
// The `serve` command runs reconciliations on request. This package only
// defines the settings it needs: the listen port, the API key checked by the
// auth middleware, and the body size limit for posted files.
//
// # Usage
//
// This package is embedded by core/config and read by cmd/serve.go.
package server
