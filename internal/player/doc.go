// Package player drives embedded video players over their remote-control
// message protocol.
//
// A Reactor listens to the view-state store and translates each committed
// change of the active group into play, pause, mute and unmute commands.
// Commands are encoded as JSON messages and handed to a Sink, which stands in
// for the embed's message channel. Delivery is fire-and-forget: failures are
// logged and never retried.
package player
