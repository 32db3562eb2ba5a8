// Package youtube turns free-text YouTube links into channel records and
// canonical embeddable player addresses.
//
// Parsing is forgiving: a segment that carries no recognizable video ID is
// dropped rather than reported, because input arrives from a multi-URL text
// field where partial success is the expected outcome.
package youtube
