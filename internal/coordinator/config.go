package coordinator

import (
	"errors"
	"time"
)

var (
	ErrInvalidDeadline    = errors.New("coordinator: invalid deadline")
	ErrInvalidMessageType = errors.New("coordinator: message type ids must be distinct and nonzero")
)

// Config carries the externally fixed wire constants and the time bounds of
// one session. The core treats every id here as an opaque number agreed with
// the remote service.
type Config struct {
	// AppID is the fixed application context joined after authentication.
	AppID uint32

	// HelloType/WelcomeType drive the coordinator channel handshake. Hello
	// is re-sent every HelloInterval until a welcome arrives.
	HelloType   uint32
	WelcomeType uint32

	// PurchaseRequestType tags the outbound purchase body;
	// PurchaseReplyType tags the reply the purchase flow waits for.
	PurchaseRequestType uint32
	PurchaseReplyType   uint32

	// BalanceBroadcastType tags the unsolicited cache broadcast a balance is
	// extracted from.
	BalanceBroadcastType uint32

	// Deadline bounds one whole operation regardless of its current state.
	Deadline time.Duration

	// BalanceWait bounds how long ReadBalance waits for the broadcast after
	// the connection is up. Expiry is "balance unknown", not failure.
	BalanceWait time.Duration

	// HelloInterval is the hello re-send period during the handshake.
	HelloInterval time.Duration
}

func DefaultConfig() Config {
	return Config{
		AppID:                570,
		HelloType:            4006,
		WelcomeType:          4004,
		PurchaseRequestType:  1090,
		PurchaseReplyType:    1091,
		BalanceBroadcastType: 24,
		Deadline:             30 * time.Second,
		BalanceWait:          10 * time.Second,
		HelloInterval:        2 * time.Second,
	}
}

func (c Config) Validate() error {
	if c.Deadline <= 0 || c.BalanceWait <= 0 || c.HelloInterval <= 0 {
		return ErrInvalidDeadline
	}
	ids := []uint32{
		c.HelloType, c.WelcomeType,
		c.PurchaseRequestType, c.PurchaseReplyType,
		c.BalanceBroadcastType,
	}
	seen := make(map[uint32]struct{}, len(ids))
	for _, id := range ids {
		if id == 0 {
			return ErrInvalidMessageType
		}
		if _, dup := seen[id]; dup {
			return ErrInvalidMessageType
		}
		seen[id] = struct{}{}
	}
	return nil
}
