// Package snapshot persists the group list under a single key of a kvstore
// and restores it at startup.
//
// Persistence is best-effort. Read and decode failures fall back to an empty
// list, write failures are logged and dropped, and neither is ever surfaced
// to the user.
package snapshot
