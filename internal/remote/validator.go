// Package remote dispatches credential checks to the external authority,
// one call per configured item, and reduces the joined results to a
// single verdict for the step.
package remote

import (
	"context"
	"fmt"
	"sync"
	"time"

	"dashboard-user-import/internal/domain"
	"dashboard-user-import/internal/metrics"
)

// CredentialChecker is the slice of the authority the remote validator
// needs: one pass/fail/reason call per credential kind.
type CredentialChecker interface {
	ValidatePortainer(ctx context.Context, cred domain.PortainerCredential) (bool, string, error)
	ValidateDockerHub(ctx context.Context, cred domain.DockerHubCredential) (bool, string, error)
	ValidateDiscord(ctx context.Context, hook domain.DiscordWebhook) (bool, string, error)
}

// Result is the reduced verdict for one step.
type Result struct {
	OK      bool
	Message string
}

// Validator fans out per-item credential checks and joins them.
type Validator struct {
	checker CredentialChecker
}

// NewValidator creates a new remote Validator.
func NewValidator(checker CredentialChecker) *Validator {
	return &Validator{checker: checker}
}

// item is one dispatchable check with its operator-facing label.
type item struct {
	label string
	check func(ctx context.Context) (bool, string, error)
}

// ValidateStep validates every item of the step concurrently and waits
// for all of them. The verdict is the failure with the lowest original
// index, annotated with that item's label; transport errors take the
// same shape as an authority rejection. Steps with no items pass.
func (v *Validator) ValidateStep(ctx context.Context, step domain.Step, bundle domain.CredentialBundle) Result {
	items := v.itemsFor(step, bundle)
	if len(items) == 0 {
		return Result{OK: true}
	}

	start := time.Now()
	results := make([]Result, len(items))

	var wg sync.WaitGroup
	for i, it := range items {
		wg.Add(1)
		go func(i int, it item) {
			defer wg.Done()
			ok, reason, err := it.check(ctx)
			switch {
			case err != nil:
				results[i] = Result{Message: fmt.Sprintf("%s: validation failed: %v", it.label, err)}
			case !ok:
				if reason == "" {
					reason = "credentials rejected"
				}
				results[i] = Result{Message: fmt.Sprintf("%s: %s", it.label, reason)}
			default:
				results[i] = Result{OK: true}
			}
		}(i, it)
	}
	wg.Wait()

	verdict := Result{OK: true}
	for _, r := range results {
		if !r.OK {
			verdict = r
			break
		}
	}

	outcome := "pass"
	if !verdict.OK {
		outcome = "fail"
	}
	metrics.ObserveRemoteValidation(string(step), outcome, time.Since(start).Seconds())

	return verdict
}

func (v *Validator) itemsFor(step domain.Step, bundle domain.CredentialBundle) []item {
	var items []item
	switch step {
	case domain.StepPortainer:
		for _, cred := range bundle.PortainerInstances {
			cred := cred
			label := cred.Name
			if label == "" {
				label = cred.URL
			}
			items = append(items, item{
				label: label,
				check: func(ctx context.Context) (bool, string, error) {
					return v.checker.ValidatePortainer(ctx, cred)
				},
			})
		}
	case domain.StepDockerHub:
		if bundle.DockerHub != nil && (bundle.DockerHub.Username != "" || bundle.DockerHub.Token != "") {
			cred := *bundle.DockerHub
			items = append(items, item{
				label: "Docker Hub (" + cred.Username + ")",
				check: func(ctx context.Context) (bool, string, error) {
					return v.checker.ValidateDockerHub(ctx, cred)
				},
			})
		}
	case domain.StepDiscord:
		for _, hook := range bundle.DiscordWebhooks {
			hook := hook
			label := hook.Name
			if label == "" {
				label = hook.URL
			}
			items = append(items, item{
				label: label,
				check: func(ctx context.Context) (bool, string, error) {
					return v.checker.ValidateDiscord(ctx, hook)
				},
			})
		}
	}
	return items
}
