// Package kv provides durable string key-value storage for recetario.
//
// Store is backed by SQLite. Every value is TEXT; callers own the encoding
// of what they store. Writes are upserts, so saving a key twice simply
// replaces the value.
//
// # Database Configuration
//
//   - WAL mode: readers never block the single writer
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait for locks up to 5 seconds
//
// Memory is an in-process twin with the same contract, used where a file
// database is unnecessary.
package kv
