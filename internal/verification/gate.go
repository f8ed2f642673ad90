// Package verification manages the one-time-token protocol that gates
// the instance-admin privilege. The raw token is generated and logged by
// the external authority; this service only ever sees an opaque handle
// and the value the operator types back in.
package verification

import (
	"context"
	"errors"
	"fmt"

	"dashboard-user-import/internal/domain"
)

// ErrCodeRequired is returned when Verify is called without an
// operator-entered value.
var ErrCodeRequired = errors.New("verification code is required")

// ErrAlreadyVerified is returned when Verify is called after the user has
// already been verified; re-verification is blocked.
var ErrAlreadyVerified = errors.New("user is already verified")

// TokenAuthority is the slice of the authority the gate needs.
type TokenAuthority interface {
	GenerateToken(ctx context.Context, username string) (string, error)
	VerifyToken(ctx context.Context, username, code string) (bool, string, error)
}

// Gate drives the verification state machine for one user at a time:
// unattempted -> pending -> verified|failed, with failed -> pending on
// re-submission and verified terminal.
type Gate struct {
	authority TokenAuthority
}

// NewGate creates a new Gate.
func NewGate(authority TokenAuthority) *Gate {
	return &Gate{authority: authority}
}

// EnsureToken generates a token the first time the verification step
// becomes current for a user. It is a no-op when a token handle already
// exists.
func (g *Gate) EnsureToken(ctx context.Context, username string, state *domain.VerificationState) error {
	if state.TokenHandle != "" {
		return nil
	}
	handle, err := g.authority.GenerateToken(ctx, username)
	if err != nil {
		return fmt.Errorf("ensure verification token: %w", err)
	}
	state.TokenHandle = handle
	return nil
}

// Regenerate replaces the token and resets the protocol: status back to
// unattempted, stored error cleared. The previously entered code is
// discarded since it can no longer match.
func (g *Gate) Regenerate(ctx context.Context, username string, state *domain.VerificationState) error {
	handle, err := g.authority.GenerateToken(ctx, username)
	if err != nil {
		return fmt.Errorf("regenerate verification token: %w", err)
	}
	state.TokenHandle = handle
	state.Status = domain.VerificationUnattempted
	state.Error = ""
	state.EnteredCode = ""
	return nil
}

// Verify submits the operator-entered code. On success the status becomes
// verified (terminal); on rejection it becomes failed, the authority's
// reason is stored, and the entered value is kept visible so the operator
// can correct it rather than retype from scratch.
func (g *Gate) Verify(ctx context.Context, username, code string, state *domain.VerificationState) error {
	if state.Status == domain.VerificationVerified {
		return ErrAlreadyVerified
	}
	if code == "" {
		return ErrCodeRequired
	}

	state.Status = domain.VerificationPending
	state.EnteredCode = code

	ok, reason, err := g.authority.VerifyToken(ctx, username, code)
	if err != nil {
		state.Status = domain.VerificationFailed
		state.Error = fmt.Sprintf("verification failed: %v", err)
		return nil
	}
	if !ok {
		if reason == "" {
			reason = "verification rejected"
		}
		state.Status = domain.VerificationFailed
		state.Error = reason
		return nil
	}

	state.Status = domain.VerificationVerified
	state.Error = ""
	return nil
}

// Granted applies the default-deny rule for the elevated role: the
// privilege is granted iff the record requested it, the step was not
// skipped, and verification succeeded. Any missing leg silently demotes
// the account.
func Granted(requested, skipped bool, status domain.VerificationStatus) bool {
	return requested && !skipped && status == domain.VerificationVerified
}
