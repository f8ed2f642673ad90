package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"dashboard-user-import/internal/domain"
	"dashboard-user-import/internal/importfile"
	"dashboard-user-import/internal/logger"
	"dashboard-user-import/internal/metrics"
	"dashboard-user-import/internal/planner"
	"dashboard-user-import/internal/remote"
	"dashboard-user-import/internal/validator"
	"dashboard-user-import/internal/verification"
)

// Service owns every live import session and applies all state
// transitions. One reducer-style handler per operator action; derived
// values (plan, current step) are always computed from the single
// session state, never duplicated.
type Service struct {
	authority Authority
	validator *validator.StepValidator
	remote    *remote.Validator
	gate      *verification.Gate

	maxBatchSize int
	idleTTL      time.Duration

	mu       sync.RWMutex
	sessions map[string]*Session

	stopChan chan struct{}
	wg       sync.WaitGroup
	closed   bool
}

// NewService creates a Service and starts the idle-session sweeper.
func NewService(authority Authority, maxBatchSize int, idleTTL, sweepInterval time.Duration) *Service {
	s := &Service{
		authority:    authority,
		validator:    validator.NewStepValidator(),
		remote:       remote.NewValidator(authority),
		gate:         verification.NewGate(authority),
		maxBatchSize: maxBatchSize,
		idleTTL:      idleTTL,
		sessions:     make(map[string]*Session),
		stopChan:     make(chan struct{}),
	}

	s.wg.Add(1)
	go s.sweeper(sweepInterval)

	return s
}

// Close stops the sweeper and drops all sessions.
func (s *Service) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.mu.Unlock()

	close(s.stopChan)
	s.wg.Wait()

	s.mu.Lock()
	for id := range s.sessions {
		delete(s.sessions, id)
		metrics.SessionRemoved()
	}
	s.mu.Unlock()
}

func (s *Service) sweeper(interval time.Duration) {
	defer s.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stopChan:
			return
		}
	}
}

func (s *Service) sweep() {
	cutoff := time.Now().Add(-s.idleTTL)

	s.mu.Lock()
	defer s.mu.Unlock()
	for id, sess := range s.sessions {
		sess.mu.Lock()
		idle := sess.lastActive.Before(cutoff)
		completed := sess.completed
		sess.mu.Unlock()

		if !idle {
			continue
		}
		delete(s.sessions, id)
		metrics.SessionRemoved()
		if !completed {
			metrics.SessionFinished("expired")
			logger.WithSessionID(id).Warn("Discarded idle import session")
		}
	}
}

// Create normalizes the import file, runs the duplicate pre-check against
// the dashboard, and opens a session positioned at the first user's first
// step. The first already-existing username aborts the whole import.
func (s *Service) Create(ctx context.Context, data []byte) (*View, error) {
	records, err := importfile.Normalize(data)
	if err != nil {
		return nil, &InvalidFileError{Err: err}
	}
	if len(records) > s.maxBatchSize {
		return nil, fmt.Errorf("%w: %d users, limit %d", ErrBatchTooLarge, len(records), s.maxBatchSize)
	}

	for _, record := range records {
		exists, err := s.authority.UserExists(ctx, record.Username)
		if err != nil {
			return nil, fmt.Errorf("duplicate pre-check: %w", err)
		}
		if exists {
			return nil, &DuplicateUserError{Username: record.Username}
		}
	}

	sess := &Session{
		ID:      uuid.New().String(),
		records: records,
		users:   make(map[string]*domain.UserState, len(records)),
	}
	sess.touch()

	sess.mu.Lock()
	s.initCurrentUser(ctx, sess)
	view := sess.view()
	sess.mu.Unlock()

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, fmt.Errorf("import service is shutting down")
	}
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	metrics.SessionStarted()
	logger.WithSessionID(sess.ID).Info("Import session created",
		slog.Int("users", len(records)))

	return view, nil
}

// Get returns the current snapshot of a session.
func (s *Service) Get(id string) (*View, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.touch()
	return sess.view(), nil
}

// Next applies the operator's input to the current step, validates it,
// and advances on success. On the last step of a user's plan it commits
// the user and moves to the next one.
func (s *Service) Next(ctx context.Context, id string, input StepInput) (*View, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.touch()

	if sess.completed {
		return nil, ErrCompleted
	}

	record := sess.currentRecord()
	state := sess.currentState()
	step := state.CurrentStep()

	applyInput(state, step, input)

	if step == domain.StepInstanceAdminVerification {
		if !s.verifyCurrent(ctx, sess, record, state, input.VerificationCode) {
			metrics.ObserveStepAction(string(step), "next", "blocked")
			return sess.view(), nil
		}
	} else {
		errs := s.validator.ValidateStep(step, state, input.PasswordConfirm)
		if len(errs) > 0 {
			state.Errors.ClearStep(step)
			for k, msg := range errs {
				state.Errors[k] = msg
			}
			metrics.ObserveStepAction(string(step), "next", "blocked")
			return sess.view(), nil
		}

		if step.RemotelyValidated() && !state.Skipped[step] {
			result := s.remote.ValidateStep(ctx, step, state.Bundle)
			if !result.OK {
				state.Errors.ClearStep(step)
				state.Errors[domain.StepField(step, "remote")] = result.Message
				metrics.ObserveStepAction(string(step), "next", "blocked")
				return sess.view(), nil
			}
		}
	}

	state.Errors.ClearStep(step)
	metrics.ObserveStepAction(string(step), "next", "advanced")
	s.advance(ctx, sess, state)

	return sess.view(), nil
}

// Skip records a skip for the current step and advances without running
// any validator. The password step can never be skipped.
func (s *Service) Skip(ctx context.Context, id string) (*View, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.touch()

	if sess.completed {
		return nil, ErrCompleted
	}

	state := sess.currentState()
	step := state.CurrentStep()
	if !step.Skippable() {
		return nil, ErrStepNotSkippable
	}

	state.Skipped[step] = true
	state.Errors.ClearStep(step)
	metrics.ObserveStepAction(string(step), "skip", "advanced")
	s.advance(ctx, sess, state)

	return sess.view(), nil
}

// Back moves one step backwards, crossing into the previous user's last
// step when already at the first step. It is a no-op at the very first
// step of the very first user.
func (s *Service) Back(id string) (*View, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.touch()

	if sess.completed {
		return nil, ErrCompleted
	}

	state := sess.currentState()
	switch {
	case state.StepIndex > 0:
		state.StepIndex--
	case sess.userIdx > 0:
		sess.userIdx--
		prev := sess.currentRecord()
		prevState := sess.users[prev.Username]
		// The plan is re-derivable from the immutable record; recompute
		// it rather than trusting the stored copy.
		prevState.Plan = planner.Build(prev)
		prevState.StepIndex = len(prevState.Plan) - 1
	}

	return sess.view(), nil
}

// RegenerateToken replaces the current user's verification token and
// resets the verification state.
func (s *Service) RegenerateToken(ctx context.Context, id string) (*View, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.touch()

	if sess.completed {
		return nil, ErrCompleted
	}

	record := sess.currentRecord()
	state := sess.currentState()
	if state.CurrentStep() != domain.StepInstanceAdminVerification {
		return nil, ErrNotVerificationStep
	}

	if err := s.gate.Regenerate(ctx, record.Username, &state.Verification); err != nil {
		state.Errors[domain.StepField(domain.StepInstanceAdminVerification, "token")] = err.Error()
		return sess.view(), nil
	}
	state.Errors.ClearStep(domain.StepInstanceAdminVerification)

	logger.WithSessionID(sess.ID).Info("Verification token regenerated",
		slog.String("username", record.Username))

	return sess.view(), nil
}

// Cancel discards a session. No partial commit has occurred for the
// in-progress user.
func (s *Service) Cancel(id string) error {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	if ok {
		delete(s.sessions, id)
	}
	s.mu.Unlock()

	if !ok {
		return ErrNotFound
	}

	sess.mu.Lock()
	completed := sess.completed
	sess.mu.Unlock()

	metrics.SessionRemoved()
	if !completed {
		metrics.SessionFinished("cancelled")
	}
	logger.WithSessionID(id).Info("Import session discarded")
	return nil
}

func (s *Service) lookup(id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return sess, nil
}

// verifyCurrent runs the token verification for the current user and
// reports whether the controller may advance past the step.
func (s *Service) verifyCurrent(ctx context.Context, sess *Session, record domain.UserImportRecord, state *domain.UserState, code string) bool {
	err := s.gate.Verify(ctx, record.Username, code, &state.Verification)
	switch {
	case errors.Is(err, verification.ErrAlreadyVerified):
		return true
	case errors.Is(err, verification.ErrCodeRequired):
		state.Errors[domain.StepField(domain.StepInstanceAdminVerification, "code")] = err.Error()
		return false
	case err != nil:
		state.Errors[domain.StepField(domain.StepInstanceAdminVerification, "code")] = err.Error()
		return false
	}

	if state.Verification.Status != domain.VerificationVerified {
		logger.WithSessionID(sess.ID).Warn("Verification attempt rejected",
			slog.String("username", record.Username))
		return false
	}
	return true
}

// advance moves past a successfully handled step: commit on the last
// step, otherwise step forward and prepare the newly current step.
func (s *Service) advance(ctx context.Context, sess *Session, state *domain.UserState) {
	if state.OnLastStep() {
		s.commitCurrentUser(ctx, sess)
		return
	}
	state.StepIndex++
	s.enterStep(ctx, sess, state)
}

// enterStep performs on-entry work for the newly current step. The only
// such work is minting the verification token the first time the
// verification step becomes current.
func (s *Service) enterStep(ctx context.Context, sess *Session, state *domain.UserState) {
	if state.CurrentStep() != domain.StepInstanceAdminVerification {
		return
	}
	record := sess.currentRecord()
	if err := s.gate.EnsureToken(ctx, record.Username, &state.Verification); err != nil {
		// The operator can retry via regenerate; record the failure
		// against the step instead of failing the whole action.
		state.Errors[domain.StepField(domain.StepInstanceAdminVerification, "token")] = err.Error()
		logger.WithSessionID(sess.ID).Error("Failed to generate verification token",
			slog.String("username", record.Username),
			slog.String("error", err.Error()))
	}
}

// initCurrentUser builds (or reuses) the state for the user at userIdx
// and runs on-entry work for their first step.
func (s *Service) initCurrentUser(ctx context.Context, sess *Session) {
	record := sess.currentRecord()
	if _, ok := sess.users[record.Username]; !ok {
		sess.users[record.Username] = domain.NewUserState(record, planner.Build(record))
	}
	s.enterStep(ctx, sess, sess.users[record.Username])
}

// commitCurrentUser issues the single creation call for the current user,
// folds the outcome into the aggregate, clears the user's ephemeral
// secrets, and advances to the next user or finishes the batch.
func (s *Service) commitCurrentUser(ctx context.Context, sess *Session) {
	record := sess.currentRecord()
	state := sess.currentState()
	log := logger.WithSessionID(sess.ID)

	req := buildCommitRequest(record, state)

	outcome, err := s.authority.CommitUser(ctx, req)
	if err != nil {
		// Transport failures take the same shape as a rejection: the
		// user fails, the batch continues.
		outcome = domain.CommitOutcome{
			Status: domain.CommitFailed,
			Reason: fmt.Sprintf("commit failed: %v", err),
		}
	}

	metrics.ObserveCommit(string(outcome.Status))
	sess.recordOutcome(record.Username, outcome)

	switch outcome.Status {
	case domain.CommitCreated:
		log.Info("User created", slog.String("username", record.Username))
	case domain.CommitAlreadyExists:
		log.Warn("User already exists, skipped", slog.String("username", record.Username))
	default:
		log.Error("User commit failed",
			slog.String("username", record.Username),
			slog.String("reason", outcome.Reason))
	}

	state.Finalize()

	if sess.userIdx+1 < len(sess.records) {
		sess.userIdx++
		s.initCurrentUser(ctx, sess)
		return
	}

	summary := domain.NewBatchSummary(sess.imported, sess.importErrs)
	sess.summary = &summary
	sess.completed = true
	metrics.SessionFinished("completed")
	log.Info("Import session completed",
		slog.Int("created", summary.CreatedCount),
		slog.Int("errors", len(summary.Errors)))
}

// recordOutcome aggregates one commit verdict. Callers must hold mu.
func (s *Session) recordOutcome(username string, outcome domain.CommitOutcome) {
	switch outcome.Status {
	case domain.CommitCreated:
		s.imported = append(s.imported, username)
	case domain.CommitAlreadyExists:
		s.importErrs = append(s.importErrs, fmt.Sprintf("%s: already exists, skipped", username))
	default:
		s.importErrs = append(s.importErrs, fmt.Sprintf("%s: %s", username, outcome.Reason))
	}
}

// applyInput copies the operator-entered values for the current step into
// the user's state. Fields belonging to other steps are ignored.
func applyInput(state *domain.UserState, step domain.Step, input StepInput) {
	switch step {
	case domain.StepPassword:
		state.Password = input.Password
	case domain.StepPortainer:
		for _, in := range input.PortainerInstances {
			if in.Index < 0 || in.Index >= len(state.Bundle.PortainerInstances) {
				continue
			}
			inst := &state.Bundle.PortainerInstances[in.Index]
			inst.APIKey = in.APIKey
			inst.Username = in.Username
			inst.Password = in.Password
		}
	case domain.StepDockerHub:
		if input.DockerHub != nil {
			if state.Bundle.DockerHub == nil {
				state.Bundle.DockerHub = &domain.DockerHubCredential{}
			}
			state.Bundle.DockerHub.Username = input.DockerHub.Username
			state.Bundle.DockerHub.Token = input.DockerHub.Token
		}
	case domain.StepDiscord:
		for _, in := range input.DiscordWebhooks {
			if in.Index < 0 || in.Index >= len(state.Bundle.DiscordWebhooks) {
				continue
			}
			state.Bundle.DiscordWebhooks[in.Index].URL = in.URL
		}
	}
}

// buildCommitRequest assembles the per-user payload: credential bundle
// restricted to non-skipped steps, skipped step identifiers, and the
// gated instance-admin flag.
func buildCommitRequest(record domain.UserImportRecord, state *domain.UserState) domain.CommitRequest {
	req := domain.CommitRequest{
		Username:      record.Username,
		Password:      state.Password,
		Email:         record.Email,
		Role:          record.Role,
		TrackedApps:   record.TrackedApps,
		TrackedImages: record.TrackedImages,
	}

	req.InstanceAdmin = verification.Granted(
		record.InstanceAdmin,
		state.Skipped[domain.StepInstanceAdminVerification],
		state.Verification.Status,
	)
	req.VerificationToken = state.Verification.TokenHandle

	if !state.Skipped[domain.StepPortainer] && len(state.Bundle.PortainerInstances) > 0 {
		req.PortainerInstances = state.Bundle.PortainerInstances
	}
	if !state.Skipped[domain.StepDockerHub] && state.Bundle.DockerHub != nil &&
		state.Bundle.DockerHub.Username != "" && state.Bundle.DockerHub.Token != "" {
		req.DockerHub = state.Bundle.DockerHub
	}
	if !state.Skipped[domain.StepDiscord] && len(state.Bundle.DiscordWebhooks) > 0 {
		req.DiscordWebhooks = state.Bundle.DiscordWebhooks
	}

	for _, step := range state.Plan {
		if state.Skipped[step] {
			req.SkippedSteps = append(req.SkippedSteps, step)
		}
	}

	return req
}
