package verification

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dashboard-user-import/internal/domain"
)

type fakeAuthority struct {
	handles   []string
	generated int
	verifyOK  bool
	reason    string
	err       error
	lastCode  string
}

func (f *fakeAuthority) GenerateToken(_ context.Context, _ string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	handle := f.handles[f.generated%len(f.handles)]
	f.generated++
	return handle, nil
}

func (f *fakeAuthority) VerifyToken(_ context.Context, _ string, code string) (bool, string, error) {
	f.lastCode = code
	if f.err != nil {
		return false, "", f.err
	}
	return f.verifyOK, f.reason, nil
}

func newState() *domain.VerificationState {
	return &domain.VerificationState{Status: domain.VerificationUnattempted}
}

func TestGate_EnsureToken(t *testing.T) {
	t.Run("generates on first entry", func(t *testing.T) {
		auth := &fakeAuthority{handles: []string{"tok-1"}}
		gate := NewGate(auth)
		state := newState()

		require.NoError(t, gate.EnsureToken(context.Background(), "alice", state))
		assert.Equal(t, "tok-1", state.TokenHandle)
		assert.Equal(t, 1, auth.generated)
	})

	t.Run("no-op when token exists", func(t *testing.T) {
		auth := &fakeAuthority{handles: []string{"tok-2"}}
		gate := NewGate(auth)
		state := newState()
		state.TokenHandle = "tok-1"

		require.NoError(t, gate.EnsureToken(context.Background(), "alice", state))
		assert.Equal(t, "tok-1", state.TokenHandle)
		assert.Equal(t, 0, auth.generated)
	})

	t.Run("propagates authority failure", func(t *testing.T) {
		auth := &fakeAuthority{err: errors.New("boom")}
		gate := NewGate(auth)

		err := gate.EnsureToken(context.Background(), "alice", newState())
		require.Error(t, err)
	})
}

func TestGate_Regenerate(t *testing.T) {
	auth := &fakeAuthority{handles: []string{"tok-1", "tok-2"}}
	gate := NewGate(auth)
	state := newState()

	require.NoError(t, gate.EnsureToken(context.Background(), "alice", state))

	// Fail a verification attempt first.
	auth.verifyOK = false
	auth.reason = "token mismatch"
	require.NoError(t, gate.Verify(context.Background(), "alice", "wrong", state))
	assert.Equal(t, domain.VerificationFailed, state.Status)
	assert.Equal(t, "token mismatch", state.Error)
	assert.Equal(t, "wrong", state.EnteredCode)

	require.NoError(t, gate.Regenerate(context.Background(), "alice", state))
	assert.Equal(t, "tok-2", state.TokenHandle)
	assert.Equal(t, domain.VerificationUnattempted, state.Status)
	assert.Empty(t, state.Error)
	assert.Empty(t, state.EnteredCode)
}

func TestGate_Verify(t *testing.T) {
	t.Run("success is terminal", func(t *testing.T) {
		auth := &fakeAuthority{handles: []string{"tok-1"}, verifyOK: true}
		gate := NewGate(auth)
		state := newState()

		require.NoError(t, gate.Verify(context.Background(), "alice", "123456", state))
		assert.Equal(t, domain.VerificationVerified, state.Status)
		assert.Empty(t, state.Error)

		// Re-verification is blocked once verified.
		err := gate.Verify(context.Background(), "alice", "123456", state)
		assert.ErrorIs(t, err, ErrAlreadyVerified)
	})

	t.Run("rejection keeps entered code", func(t *testing.T) {
		auth := &fakeAuthority{handles: []string{"tok-1"}, verifyOK: false, reason: "token mismatch"}
		gate := NewGate(auth)
		state := newState()

		require.NoError(t, gate.Verify(context.Background(), "alice", "999999", state))
		assert.Equal(t, domain.VerificationFailed, state.Status)
		assert.Equal(t, "token mismatch", state.Error)
		assert.Equal(t, "999999", state.EnteredCode)
	})

	t.Run("failed to pending on re-submission", func(t *testing.T) {
		auth := &fakeAuthority{handles: []string{"tok-1"}, verifyOK: false, reason: "token mismatch"}
		gate := NewGate(auth)
		state := newState()

		require.NoError(t, gate.Verify(context.Background(), "alice", "111111", state))
		require.Equal(t, domain.VerificationFailed, state.Status)

		auth.verifyOK = true
		require.NoError(t, gate.Verify(context.Background(), "alice", "222222", state))
		assert.Equal(t, domain.VerificationVerified, state.Status)
		assert.Equal(t, "222222", auth.lastCode)
	})

	t.Run("empty code rejected locally", func(t *testing.T) {
		gate := NewGate(&fakeAuthority{handles: []string{"tok-1"}})
		err := gate.Verify(context.Background(), "alice", "", newState())
		assert.ErrorIs(t, err, ErrCodeRequired)
	})

	t.Run("transport error folds into failed status", func(t *testing.T) {
		auth := &fakeAuthority{err: errors.New("connection refused")}
		gate := NewGate(auth)
		state := newState()

		require.NoError(t, gate.Verify(context.Background(), "alice", "123456", state))
		assert.Equal(t, domain.VerificationFailed, state.Status)
		assert.Contains(t, state.Error, "connection refused")
	})
}

func TestGranted(t *testing.T) {
	tests := []struct {
		name      string
		requested bool
		skipped   bool
		status    domain.VerificationStatus
		want      bool
	}{
		{"all three hold", true, false, domain.VerificationVerified, true},
		{"not requested", false, false, domain.VerificationVerified, false},
		{"step skipped", true, true, domain.VerificationVerified, false},
		{"unattempted", true, false, domain.VerificationUnattempted, false},
		{"failed", true, false, domain.VerificationFailed, false},
		{"pending", true, false, domain.VerificationPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Granted(tt.requested, tt.skipped, tt.status))
		})
	}
}
