//go:build cgo_sqlite

package storage

import (
	_ "github.com/mattn/go-sqlite3" // cgo SQLite driver
)

const (
	// DriverName is the database/sql driver used in this build mode.
	DriverName = "sqlite3"

	// BuildMode identifies the active SQLite backend.
	BuildMode = "cgo"
)
