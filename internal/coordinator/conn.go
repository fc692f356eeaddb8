package coordinator

import "context"

// Message is one coordinator-channel message. Body bytes beyond the fields
// the extractors consume are opaque.
type Message struct {
	Type uint32
	Body []byte
}

// Conn is an authenticated connection to the coordination service. The
// transport behind it is external to this module.
//
// Messages and Errors must stay readable until Close returns; senders are
// expected to drop, not block, once the reader is gone.
type Conn interface {
	// JoinApp enters the fixed application context.
	JoinApp(ctx context.Context, appID uint32) error

	// Send writes one message on the coordinator channel.
	Send(msgType uint32, body []byte) error

	// Messages delivers coordinator messages in arrival order.
	Messages() <-chan Message

	// Errors delivers fatal connection errors, including remote disconnects.
	Errors() <-chan error

	// QuitApp signals "not playing" to the remote service.
	QuitApp() error

	Close() error
}

// Authenticator runs the authentication protocol against the service and
// yields a live Conn. Implementations should return ErrInvalidCredential or
// ErrConcurrentSession (wrapped or bare) where the remote says so; anything
// else is folded into ErrAuthFailure by the session.
type Authenticator interface {
	Authenticate(ctx context.Context, accountID, token string) (Conn, error)
}
