// Package bridge reconstructs blackjack round state by watching the
// wire, with no access to the server's internals, and republishes it to
// web consumers over HTTP.
//
// The protocol carries no round-boundary or card-ownership tag, so the
// bridge infers both from hand sizes and a phase variable alone. The
// inference rules live in Session.apply; their ordering is load-bearing
// and mirrors the frame sequences the server actually produces.
package bridge
