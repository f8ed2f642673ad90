package session

import (
	"context"

	"dashboard-user-import/internal/domain"
)

// Authority is everything the session service needs from the external
// dashboard backend. The concrete implementation lives in
// internal/authority; mocks are generated for tests.
type Authority interface {
	// UserExists reports whether a username is already taken.
	UserExists(ctx context.Context, username string) (bool, error)
	// GenerateToken mints (or re-mints) a verification token and returns
	// an opaque handle. The raw token is logged server-side only.
	GenerateToken(ctx context.Context, username string) (string, error)
	// VerifyToken checks an operator-entered value against the token.
	VerifyToken(ctx context.Context, username, code string) (bool, string, error)
	// ValidatePortainer checks one Portainer instance's credentials.
	ValidatePortainer(ctx context.Context, cred domain.PortainerCredential) (bool, string, error)
	// ValidateDockerHub checks the Docker Hub username/token pair.
	ValidateDockerHub(ctx context.Context, cred domain.DockerHubCredential) (bool, string, error)
	// ValidateDiscord checks one Discord webhook.
	ValidateDiscord(ctx context.Context, hook domain.DiscordWebhook) (bool, string, error)
	// CommitUser creates the user with the full per-user payload.
	CommitUser(ctx context.Context, req domain.CommitRequest) (domain.CommitOutcome, error)
}

// ServiceInterface defines the operations the HTTP layer drives.
// Used for dependency injection and mocking in tests.
type ServiceInterface interface {
	// Create parses and pre-checks an import file and opens a session.
	Create(ctx context.Context, data []byte) (*View, error)
	// Get returns the current snapshot of a session.
	Get(id string) (*View, error)
	// Next validates the current step and advances on success.
	Next(ctx context.Context, id string, input StepInput) (*View, error)
	// Skip records a skip for the current step and advances.
	Skip(ctx context.Context, id string) (*View, error)
	// Back moves to the previous step, crossing user boundaries.
	Back(id string) (*View, error)
	// RegenerateToken replaces the verification token for the current user.
	RegenerateToken(ctx context.Context, id string) (*View, error)
	// Cancel discards a session and all its in-memory state.
	Cancel(id string) error
	// Close stops the expiry sweeper and drops all sessions.
	Close()
}
