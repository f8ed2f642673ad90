// Package session hosts in-memory import sessions and the controller
// state machine that drives one operator through a batch, one step at a
// time. Nothing here is ever persisted: a session is created when the
// operator confirms a parsed file and discarded on cancel, completion
// sweep, or idle expiry.
package session

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"dashboard-user-import/internal/domain"
)

// Sentinel errors surfaced to the HTTP layer.
var (
	ErrNotFound            = errors.New("import session not found")
	ErrCompleted           = errors.New("import session already completed")
	ErrStepNotSkippable    = errors.New("this step cannot be skipped")
	ErrNotVerificationStep = errors.New("current step is not the verification step")
	ErrBatchTooLarge       = errors.New("import file exceeds the maximum batch size")
)

// DuplicateUserError aborts an import before it starts: one of the
// planned usernames already exists on the dashboard.
type DuplicateUserError struct {
	Username string
}

func (e *DuplicateUserError) Error() string {
	return fmt.Sprintf("user %q already exists; import aborted", e.Username)
}

// InvalidFileError wraps every parse or normalization failure so the
// HTTP layer can map the whole class to a client error.
type InvalidFileError struct {
	Err error
}

func (e *InvalidFileError) Error() string { return e.Err.Error() }

func (e *InvalidFileError) Unwrap() error { return e.Err }

// Session is the whole batch state for one operator. All mutations
// happen inside the service's transition handlers while holding mu.
type Session struct {
	ID string

	mu         sync.Mutex
	records    []domain.UserImportRecord
	userIdx    int
	users      map[string]*domain.UserState
	imported   []string
	importErrs []string
	completed  bool
	summary    *domain.BatchSummary
	lastActive time.Time
}

// currentRecord returns the record of the user the operator is editing.
// Callers must hold mu and have checked completed.
func (s *Session) currentRecord() domain.UserImportRecord {
	return s.records[s.userIdx]
}

// currentState returns the mutable state of the current user.
func (s *Session) currentState() *domain.UserState {
	return s.users[s.records[s.userIdx].Username]
}

func (s *Session) touch() {
	s.lastActive = time.Now()
}

// StepInput carries the operator-entered values for the current step.
// Only the fields relevant to that step are consulted.
type StepInput struct {
	Password         string `json:"password,omitempty"`
	PasswordConfirm  string `json:"passwordConfirm,omitempty"`
	VerificationCode string `json:"verificationCode,omitempty"`

	PortainerInstances []PortainerInput `json:"portainerInstances,omitempty"`
	DockerHub          *DockerHubInput  `json:"dockerHub,omitempty"`
	DiscordWebhooks    []DiscordInput   `json:"discordWebhooks,omitempty"`
}

// PortainerInput sets the secret fields of the instance at Index.
type PortainerInput struct {
	Index    int    `json:"index"`
	APIKey   string `json:"apiKey,omitempty"`
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
}

// DockerHubInput sets the Docker Hub credential pair.
type DockerHubInput struct {
	Username string `json:"username"`
	Token    string `json:"token"`
}

// DiscordInput corrects the webhook URL at Index.
type DiscordInput struct {
	Index int    `json:"index"`
	URL   string `json:"url"`
}

// FieldErrorView is one field-level validation message in API responses.
type FieldErrorView struct {
	Step    domain.Step `json:"step"`
	Index   int         `json:"index"`
	Field   string      `json:"field"`
	Message string      `json:"message"`
}

// VerificationView exposes the verification protocol state without the
// token handle itself.
type VerificationView struct {
	Status      domain.VerificationStatus `json:"status"`
	TokenIssued bool                      `json:"tokenIssued"`
	EnteredCode string                    `json:"enteredCode,omitempty"`
	Error       string                    `json:"error,omitempty"`
}

// View is the operator-facing snapshot of a session.
type View struct {
	ID         string `json:"id"`
	Status     string `json:"status"`
	TotalUsers int    `json:"totalUsers"`

	UserIndex   int           `json:"userIndex"`
	Username    string        `json:"username,omitempty"`
	Plan        []domain.Step `json:"plan,omitempty"`
	StepIndex   int           `json:"stepIndex"`
	CurrentStep domain.Step   `json:"currentStep,omitempty"`

	SkippedSteps []domain.Step     `json:"skippedSteps,omitempty"`
	Errors       []FieldErrorView  `json:"errors,omitempty"`
	Verification *VerificationView `json:"verification,omitempty"`

	ImportedUsernames []string             `json:"importedUsernames,omitempty"`
	ImportErrors      []string             `json:"importErrors,omitempty"`
	Summary           *domain.BatchSummary `json:"summary,omitempty"`
}

// Session statuses exposed in views.
const (
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// view renders a snapshot. Callers must hold mu.
func (s *Session) view() *View {
	v := &View{
		ID:                s.ID,
		Status:            StatusInProgress,
		TotalUsers:        len(s.records),
		UserIndex:         s.userIdx,
		ImportedUsernames: append([]string(nil), s.imported...),
		ImportErrors:      append([]string(nil), s.importErrs...),
	}

	if s.completed {
		v.Status = StatusCompleted
		v.Summary = s.summary
		return v
	}

	record := s.currentRecord()
	state := s.currentState()
	v.Username = record.Username
	v.Plan = append([]domain.Step(nil), state.Plan...)
	v.StepIndex = state.StepIndex
	v.CurrentStep = state.CurrentStep()

	for _, step := range state.Plan {
		if state.Skipped[step] {
			v.SkippedSteps = append(v.SkippedSteps, step)
		}
	}

	for key, msg := range state.Errors {
		v.Errors = append(v.Errors, FieldErrorView{
			Step:    key.Step,
			Index:   key.Index,
			Field:   key.Field,
			Message: msg,
		})
	}
	sort.Slice(v.Errors, func(i, j int) bool {
		a, b := v.Errors[i], v.Errors[j]
		if a.Step != b.Step {
			return a.Step < b.Step
		}
		if a.Index != b.Index {
			return a.Index < b.Index
		}
		return a.Field < b.Field
	})

	if state.Plan.Contains(domain.StepInstanceAdminVerification) {
		v.Verification = &VerificationView{
			Status:      state.Verification.Status,
			TokenIssued: state.Verification.TokenHandle != "",
			EnteredCode: state.Verification.EnteredCode,
			Error:       state.Verification.Error,
		}
	}

	return v
}
