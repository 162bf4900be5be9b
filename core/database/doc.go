// Package database handles the connection to the optional run history database.
//
// It wraps GORM and supports two drivers: MySQL for a shared history server
// and SQLite (a local file, or ":memory:" in tests).
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
package database
