// Package kvstore provides the small string-keyed blob stores that back
// snapshot persistence.
//
// Three backends share the Store interface: SQLite (a single kv table in a
// WAL database), FileStore (one file per key, guarded by an advisory lock so
// concurrent multitube processes do not interleave writes) and Memory. Open
// picks one from the storage section of the configuration.
package kvstore
