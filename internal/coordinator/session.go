package coordinator

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/danmuck/coordctl/internal/credstore"
)

// State is the session lifecycle position. Any state may transition directly
// to StateDisconnected on error or timeout.
type State int

const (
	StateIdle State = iota
	StateAuthenticating
	StateServiceConnected
	StateJoiningAppContext
	StateCoordinatorHandshaking
	StateReady
	StatePurchaseInFlight
	StatePurchaseSettled
	StateDisconnected
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAuthenticating:
		return "authenticating"
	case StateServiceConnected:
		return "service_connected"
	case StateJoiningAppContext:
		return "joining_app_context"
	case StateCoordinatorHandshaking:
		return "coordinator_handshaking"
	case StateReady:
		return "ready"
	case StatePurchaseInFlight:
		return "purchase_in_flight"
	case StatePurchaseSettled:
		return "purchase_settled"
	case StateDisconnected:
		return "disconnected"
	default:
		return "unknown"
	}
}

// Session is one serial state machine bound to one account identity.
//
// A Session is exclusively owned by its creator: operations must not run
// concurrently on the same Session, and running two sessions against the
// same account identity is misuse the remote may reject with
// ErrConcurrentSession. Independent sessions share no mutable state.
type Session struct {
	cfg   Config
	store credstore.Store
	auth  Authenticator
	log   zerolog.Logger

	accountID string
	conn      Conn
	settled   bool

	// mu guards only the observer-visible fields below; the flows
	// themselves stay single-threaded.
	mu          sync.Mutex
	state       State
	lastBalance int
	haveBalance bool
	startedAt   time.Time
}

// Snapshot is a read-only view of a session for status surfaces.
type Snapshot struct {
	AccountID   string    `json:"account_id"`
	State       string    `json:"state"`
	LastBalance int       `json:"last_balance"`
	HasBalance  bool      `json:"has_balance"`
	StartedAt   time.Time `json:"started_at"`
}

func NewSession(cfg Config, store credstore.Store, auth Authenticator, accountID string) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if store == nil || auth == nil {
		return nil, errors.New("coordinator: store and authenticator are required")
	}
	return &Session{
		cfg:       cfg,
		store:     store,
		auth:      auth,
		accountID: accountID,
		log:       log.With().Str("component", "coordinator").Str("account", accountID).Logger(),
		state:     StateIdle,
		startedAt: time.Now(),
	}, nil
}

func (s *Session) AccountID() string { return s.accountID }

// LastBalance returns the most recent balance observed on this session, if
// any was observed at all.
func (s *Session) LastBalance() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastBalance, s.haveBalance
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		AccountID:   s.accountID,
		State:       s.state.String(),
		LastBalance: s.lastBalance,
		HasBalance:  s.haveBalance,
		StartedAt:   s.startedAt,
	}
}

func (s *Session) transition(next State) {
	s.mu.Lock()
	prev := s.state
	s.state = next
	s.mu.Unlock()
	s.log.Debug().Stringer("from", prev).Stringer("to", next).Msg("state transition")
}

func (s *Session) observeBalance(balance int) {
	s.mu.Lock()
	s.lastBalance = balance
	s.haveBalance = true
	s.mu.Unlock()
}

// settle marks the current operation decided. It returns false if a decision
// was already taken; late events must be discarded by the caller when it does.
func (s *Session) settle() bool {
	if s.settled {
		return false
	}
	s.settled = true
	return true
}

// connect resolves the stored credential, authenticates and joins the
// application context. On success the session holds a live conn.
func (s *Session) connect(ctx context.Context) error {
	token, err := s.store.Get(s.accountID)
	if err != nil {
		if errors.Is(err, credstore.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrSessionNotFound, s.accountID)
		}
		return fmt.Errorf("coordinator: credential lookup: %w", err)
	}

	s.transition(StateAuthenticating)
	conn, err := s.auth.Authenticate(ctx, s.accountID, token)
	if err != nil {
		if ctx.Err() != nil {
			return ErrTimeout
		}
		return classifyAuthErr(err)
	}
	s.conn = conn
	s.transition(StateServiceConnected)

	s.transition(StateJoiningAppContext)
	if err := conn.JoinApp(ctx, s.cfg.AppID); err != nil {
		if ctx.Err() != nil {
			return ErrTimeout
		}
		return fmt.Errorf("coordinator: join app %d: %w", s.cfg.AppID, err)
	}
	return nil
}

// disconnect tears the session down: signal "not playing", close the
// connection, land in StateDisconnected. Idempotent and callable from any
// state; failures are logged and swallowed so they never mask the primary
// outcome.
func (s *Session) disconnect() {
	conn := s.conn
	s.conn = nil
	if conn != nil {
		if err := conn.QuitApp(); err != nil {
			s.log.Debug().Err(err).Msg("quit app during teardown")
		}
		if err := conn.Close(); err != nil {
			s.log.Debug().Err(err).Msg("close during teardown")
		}
	}
	s.transition(StateDisconnected)
}
