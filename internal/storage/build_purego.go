//go:build !cgo_sqlite

package storage

import (
	_ "modernc.org/sqlite" // pure Go SQLite driver
)

const (
	// DriverName is the database/sql driver used in this build mode.
	DriverName = "sqlite"

	// BuildMode identifies the active SQLite backend.
	BuildMode = "purego"
)
