// Package store provides SQLite-backed local persistence for notes.
//
// The whole application is offline: a single database file on the device,
// no server, no sync. The store owns note CRUD plus search; syllable
// analysis never touches it (the engine is pure and recomputes from text
// on every query).
//
// # Database Configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait for locks up to 5 seconds
//   - foreign_keys=ON: enforce referential integrity
//
// Schema changes go through PRAGMA user_version migrations applied on Open.
// Listing queries order by updated_at DESC, id ASC so results are stable
// across runs.
package store
