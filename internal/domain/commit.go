package domain

import "fmt"

// CommitRequest is the full per-user payload sent to the authority's user
// creation endpoint. Credential arrays are restricted to non-skipped
// steps; InstanceAdmin carries the gated value, not the requested one.
type CommitRequest struct {
	Username      string `json:"username"`
	Password      string `json:"password"`
	Email         string `json:"email,omitempty"`
	Role          string `json:"role"`
	InstanceAdmin bool   `json:"instanceAdmin"`

	PortainerInstances []PortainerCredential `json:"portainerInstances,omitempty"`
	DockerHub          *DockerHubCredential  `json:"dockerHubCredentials,omitempty"`
	DiscordWebhooks    []DiscordWebhook      `json:"discordWebhooks,omitempty"`
	TrackedApps        []TrackedApp          `json:"trackedApps,omitempty"`
	TrackedImages      []TrackedImage        `json:"trackedImages,omitempty"`

	SkippedSteps []Step `json:"skippedSteps,omitempty"`

	// VerificationToken is the opaque handle of the token generated for
	// this user, if any, so the authority can correlate it instead of
	// minting a second one.
	VerificationToken string `json:"verificationToken,omitempty"`
}

// CommitStatus is the authority's verdict on one user creation call.
type CommitStatus string

const (
	CommitCreated       CommitStatus = "created"
	CommitAlreadyExists CommitStatus = "already_exists"
	CommitFailed        CommitStatus = "failed"
)

// CommitOutcome is the result of one user commit call.
type CommitOutcome struct {
	Status CommitStatus
	Reason string
}

// BatchSummary is the final result of an import session.
type BatchSummary struct {
	CreatedCount      int      `json:"createdCount"`
	ImportedUsernames []string `json:"importedUsernames"`
	Errors            []string `json:"errors,omitempty"`
	Message           string   `json:"message"`
}

// NewBatchSummary builds the operator-facing summary line from the
// aggregated results.
func NewBatchSummary(imported []string, errors []string) BatchSummary {
	msg := fmt.Sprintf("Imported %d user(s)", len(imported))
	if len(errors) > 0 {
		msg += fmt.Sprintf(", %d error(s)", len(errors))
	}
	return BatchSummary{
		CreatedCount:      len(imported),
		ImportedUsernames: imported,
		Errors:            errors,
		Message:           msg,
	}
}
