// Package database provides SQLite-based storage for diagnostics data.
//
// The Store keeps two kinds of records that the built-in reporters read:
//   - Log records written by the application's logger
//   - Persisted key/value settings, the user-defaults equivalent
//
// SQLite is provided by modernc.org/sqlite, which needs no cgo and keeps
// everything in a single file next to the application's other data.
// Setting values are encoded with msgpack so that their Go types survive a
// round trip (strings, numbers, booleans, lists and maps).
package database
