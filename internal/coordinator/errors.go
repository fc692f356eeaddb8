package coordinator

import (
	"errors"
	"fmt"
)

// Error taxonomy surfaced to callers. Retry, invalidate and abort policy
// differs per kind, so each is a distinct inspectable sentinel. Decode
// failures never appear here; the wire layer absorbs them as "no field".
var (
	// ErrSessionNotFound means no credential is stored for the account.
	ErrSessionNotFound = errors.New("coordinator: no stored session for account")

	// ErrAuthFailure is a generic authentication failure.
	ErrAuthFailure = errors.New("coordinator: authentication failed")

	// ErrInvalidCredential means the stored credential was rejected; callers
	// should invalidate it before retrying.
	ErrInvalidCredential = errors.New("coordinator: stored credential rejected")

	// ErrConcurrentSession means the remote reports the identity active on
	// another session. Blind retry will bounce the other session; do not.
	ErrConcurrentSession = errors.New("coordinator: identity active on another session")

	// ErrTimeout is the whole-operation deadline expiring.
	ErrTimeout = errors.New("coordinator: operation deadline exceeded")

	// ErrParseError means a matching reply arrived but no valid record could
	// be extracted from it.
	ErrParseError = errors.New("coordinator: reply parse failed")
)

// ambiguous marks outcomes where the server may already have applied a
// balance-affecting effect. The uncertainty is surfaced, never resolved
// in-band.
func ambiguous(sentinel error) error {
	return fmt.Errorf("%w (the purchase may already have been applied server-side)", sentinel)
}

// classifyAuthErr passes taxonomy errors through and folds everything else
// into ErrAuthFailure.
func classifyAuthErr(err error) error {
	if errors.Is(err, ErrInvalidCredential) || errors.Is(err, ErrConcurrentSession) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrAuthFailure, err)
}
