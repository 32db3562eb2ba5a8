// Package channels holds the view state of a multitube session: the channel
// groups, which group is on screen, whether the user is managing groups or
// watching them, and the single channel allowed to play audio.
//
// Store is the single source of truth. Every mutation runs under the store's
// lock and commits a fresh State; registered Listeners then receive a Change
// carrying the before and after snapshots. The store performs no I/O of its
// own, so persistence and player remote control live in listeners
// (see packages snapshot and player).
//
// Within the active group at most one channel has Muted == false. Operations
// that touch mute state maintain that invariant; everything else leaves mute
// flags alone.
package channels
