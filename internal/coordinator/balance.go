package coordinator

import (
	"context"
	"time"

	"github.com/danmuck/coordctl/internal/econ"
	"github.com/danmuck/coordctl/internal/observability"
)

// ReadBalance connects and waits for the unsolicited broadcast carrying the
// account balance. The handshake runs in parallel with the wait: a broadcast
// arriving before the welcome still counts.
//
// The broadcast may simply never come. That is reported as ok=false with a
// nil error, distinct from connection failure; callers must not treat an
// unknown balance as zero.
func (s *Session) ReadBalance(ctx context.Context) (balance int, ok bool, err error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Deadline)
	defer cancel()

	s.settled = false
	started := time.Now()
	balance, ok, err = s.runReadBalance(ctx)
	s.disconnect()
	switch {
	case err != nil:
		observability.RecordBalanceRead(outcomeLabel(err), time.Since(started))
		s.log.Warn().Err(err).Msg("balance read failed")
	case !ok:
		observability.RecordBalanceRead("unknown", time.Since(started))
		s.log.Info().Msg("balance unknown: broadcast did not arrive in window")
	default:
		observability.RecordBalanceRead("ok", time.Since(started))
		s.log.Info().Int("balance", balance).Msg("balance read")
	}
	return balance, ok, err
}

func (s *Session) runReadBalance(ctx context.Context) (int, bool, error) {
	if err := s.connect(ctx); err != nil {
		return 0, false, err
	}
	conn := s.conn

	s.transition(StateCoordinatorHandshaking)
	if err := conn.Send(s.cfg.HelloType, nil); err != nil {
		return 0, false, s.mapConnErr(err)
	}

	hello := time.NewTicker(s.cfg.HelloInterval)
	defer hello.Stop()
	window := time.NewTimer(s.cfg.BalanceWait)
	defer window.Stop()

	welcomed := false
	for {
		select {
		case <-ctx.Done():
			if !s.settle() {
				continue
			}
			return 0, false, ErrTimeout
		case <-window.C:
			if !s.settle() {
				continue
			}
			return 0, false, nil
		case <-hello.C:
			if welcomed {
				continue
			}
			if err := conn.Send(s.cfg.HelloType, nil); err != nil {
				if !s.settle() {
					continue
				}
				return 0, false, s.mapConnErr(err)
			}
		case msg := <-conn.Messages():
			switch msg.Type {
			case s.cfg.WelcomeType:
				welcomed = true
				s.transition(StateReady)
			case s.cfg.BalanceBroadcastType:
				bal, found := econ.FindBalanceInCache(msg.Body)
				if !found {
					// Not every broadcast carries the balance container;
					// keep waiting for the next one.
					continue
				}
				if !s.settle() {
					continue
				}
				s.observeBalance(bal)
				return bal, true, nil
			}
		case err := <-conn.Errors():
			if !s.settle() {
				continue
			}
			return 0, false, s.mapConnErr(err)
		}
	}
}
