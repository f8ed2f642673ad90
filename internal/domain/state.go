package domain

// VerificationStatus tracks the instance-admin token protocol for one user.
type VerificationStatus string

const (
	VerificationUnattempted VerificationStatus = "unattempted"
	VerificationPending     VerificationStatus = "pending"
	VerificationVerified    VerificationStatus = "verified"
	VerificationFailed      VerificationStatus = "failed"
)

// VerificationState holds the ephemeral token-protocol state for one user.
// TokenHandle is an opaque reference returned by the authority; the raw
// token value never reaches this service. EnteredCode is kept after a
// failed attempt so the operator can correct it in place.
type VerificationState struct {
	Status      VerificationStatus
	TokenHandle string
	EnteredCode string
	Error       string
}

// PortainerCredential is one Portainer instance entry of the credential
// bundle: identifying fields seeded from the import record, secret fields
// filled in by the operator.
type PortainerCredential struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	AuthMode string `json:"authMode"`
	APIKey   string `json:"apiKey,omitempty"`
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
}

// DockerHubCredential is the Docker Hub entry of the credential bundle.
type DockerHubCredential struct {
	Username string `json:"username"`
	Token    string `json:"token"`
}

// DiscordWebhook is one webhook entry of the credential bundle. The URL
// itself is the secret.
type DiscordWebhook struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// CredentialBundle is the per-user collection of third-party secrets
// collected during the import flow.
type CredentialBundle struct {
	PortainerInstances []PortainerCredential
	DockerHub          *DockerHubCredential
	DiscordWebhooks    []DiscordWebhook
}

// NewCredentialBundle seeds a bundle skeleton from an import record:
// identifying fields are copied, secret fields start empty.
func NewCredentialBundle(record UserImportRecord) CredentialBundle {
	bundle := CredentialBundle{}
	for _, inst := range record.PortainerInstances {
		bundle.PortainerInstances = append(bundle.PortainerInstances, PortainerCredential{
			Name:     inst.Name,
			URL:      inst.URL,
			AuthMode: inst.AuthMode,
		})
	}
	if record.DockerHub != nil {
		bundle.DockerHub = &DockerHubCredential{Username: record.DockerHub.Username}
	}
	for _, hook := range record.DiscordWebhooks {
		bundle.DiscordWebhooks = append(bundle.DiscordWebhooks, DiscordWebhook{
			Name: hook.Name,
			URL:  hook.URL,
		})
	}
	return bundle
}

// UserState is the mutable per-user progress of an import session. It is
// created when the user becomes current and finalized (password and token
// state cleared) right after the commit call resolves.
type UserState struct {
	Plan      StepPlan
	StepIndex int
	Skipped   map[Step]bool
	Errors    FieldErrors

	Verification VerificationState

	// Password is transient: held between the password step and commit,
	// cleared as soon as the commit call resolves.
	Password string

	Bundle CredentialBundle

	Committed bool
}

// NewUserState builds the initial state for a record using the given plan.
func NewUserState(record UserImportRecord, plan StepPlan) *UserState {
	return &UserState{
		Plan:         plan,
		Skipped:      map[Step]bool{},
		Errors:       FieldErrors{},
		Verification: VerificationState{Status: VerificationUnattempted},
		Bundle:       NewCredentialBundle(record),
	}
}

// CurrentStep returns the step the operator is editing.
func (s *UserState) CurrentStep() Step {
	return s.Plan[s.StepIndex]
}

// OnLastStep reports whether the current step is the final one of the plan.
func (s *UserState) OnLastStep() bool {
	return s.StepIndex == len(s.Plan)-1
}

// Finalize clears the ephemeral secrets once the user's commit call has
// resolved, regardless of outcome.
func (s *UserState) Finalize() {
	s.Password = ""
	s.Verification.TokenHandle = ""
	s.Verification.EnteredCode = ""
	s.Committed = true
}
