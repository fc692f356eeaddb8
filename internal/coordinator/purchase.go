package coordinator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/danmuck/coordctl/internal/econ"
	"github.com/danmuck/coordctl/internal/observability"
)

// PurchaseResult is a settled purchase. NewBalance is the caller-computed
// remainder (currentBalance - price); the server's own balance is never
// re-verified here.
type PurchaseResult struct {
	Item       econ.Item
	NewBalance uint64
}

// Purchase runs the full purchase flow: resolve credential, authenticate,
// join the application context, complete the coordinator handshake, send the
// purchase body and await the tagged reply. One wall-clock deadline bounds
// the whole operation regardless of state.
//
// price <= currentBalance is the caller's responsibility. At most one
// purchase may be in flight per session; starting a second before the first
// settles is caller misuse and is not guarded here.
//
// ErrTimeout and ErrParseError outcomes are ambiguous: the server may
// already have applied the purchase. Teardown runs on every exit path.
func (s *Session) Purchase(ctx context.Context, targetID, currentBalance, price uint64) (PurchaseResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Deadline)
	defer cancel()

	s.settled = false
	started := time.Now()
	var res PurchaseResult
	err := s.runPurchase(ctx, &res, targetID, currentBalance, price)
	s.disconnect()
	observability.RecordPurchase(outcomeLabel(err), time.Since(started))
	if err != nil {
		s.log.Warn().Err(err).Uint64("target", targetID).Msg("purchase failed")
		return PurchaseResult{}, err
	}
	s.log.Info().Uint64("target", targetID).Uint64("new_balance", res.NewBalance).Msg("purchase settled")
	return res, nil
}

func (s *Session) runPurchase(ctx context.Context, res *PurchaseResult, targetID, currentBalance, price uint64) error {
	if err := s.connect(ctx); err != nil {
		if errors.Is(err, ErrTimeout) {
			return ambiguous(ErrTimeout)
		}
		return err
	}
	conn := s.conn

	if err := s.handshake(ctx, conn); err != nil {
		return err
	}
	s.transition(StateReady)

	body := econ.EncodePurchaseRequest(targetID, currentBalance, price)
	if err := conn.Send(s.cfg.PurchaseRequestType, body); err != nil {
		return fmt.Errorf("coordinator: send purchase request: %w", err)
	}
	s.transition(StatePurchaseInFlight)

	// The reply listener exists only inside this window. There is no
	// request-id correlation: any matching-type message seen here belongs to
	// the in-flight purchase, and none can be observed outside the window.
	for {
		select {
		case <-ctx.Done():
			if !s.settle() {
				continue
			}
			return ambiguous(ErrTimeout)
		case msg := <-conn.Messages():
			if msg.Type != s.cfg.PurchaseReplyType {
				continue
			}
			if !s.settle() {
				continue
			}
			item, ok := econ.FindItem(msg.Body)
			if !ok {
				return ambiguous(ErrParseError)
			}
			res.Item = item
			res.NewBalance = currentBalance - price
			s.observeBalance(int(res.NewBalance))
			s.transition(StatePurchaseSettled)
			return nil
		case err := <-conn.Errors():
			if !s.settle() {
				continue
			}
			return s.mapConnErr(err)
		}
	}
}

// handshake sends hello until a welcome arrives, re-sending on a short poll
// interval.
func (s *Session) handshake(ctx context.Context, conn Conn) error {
	s.transition(StateCoordinatorHandshaking)
	if err := conn.Send(s.cfg.HelloType, nil); err != nil {
		return fmt.Errorf("coordinator: send hello: %w", err)
	}
	hello := time.NewTicker(s.cfg.HelloInterval)
	defer hello.Stop()
	for {
		select {
		case <-ctx.Done():
			return ambiguous(ErrTimeout)
		case <-hello.C:
			if err := conn.Send(s.cfg.HelloType, nil); err != nil {
				return fmt.Errorf("coordinator: re-send hello: %w", err)
			}
		case msg := <-conn.Messages():
			if msg.Type == s.cfg.WelcomeType {
				return nil
			}
		case err := <-conn.Errors():
			return s.mapConnErr(err)
		}
	}
}

func (s *Session) mapConnErr(err error) error {
	if errors.Is(err, ErrConcurrentSession) || errors.Is(err, ErrInvalidCredential) {
		return err
	}
	return fmt.Errorf("coordinator: connection failed: %w", err)
}
