// Package statestore provides remote progress.Backend implementations so
// several machines can share one learner's progress blob.
//
// Redis keeps the blob under a single key. Postgres keeps it in a
// key/value table that is created on first use.
package statestore
