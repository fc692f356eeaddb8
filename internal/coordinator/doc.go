// Package coordinator drives bounded-time purchase and balance flows against
// the remote game-coordination service.
//
// A Session is one strictly serial state machine bound to one account
// identity. Suspension happens only at network waits, each raced against the
// operation deadline; a single settle guard ensures every operation resolves
// exactly once and that cleanup runs on every exit path. The network
// transport and the authentication protocol are external: callers supply an
// Authenticator, which yields a Conn.
package coordinator
