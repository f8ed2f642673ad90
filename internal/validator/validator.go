// Package validator implements the synchronous, field-level checks run
// before a step may advance. All checks are pure: the same input always
// produces the same error map.
package validator

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"dashboard-user-import/internal/domain"
)

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 8

// webhookURLRegex matches Discord webhook URLs, including the legacy
// discordapp.com host.
var webhookURLRegex = regexp.MustCompile(`^https://(\w+\.)?discord(app)?\.com/api/webhooks/\d+/[\w-]+$`)

// StepValidator provides local validation for each step type.
type StepValidator struct{}

// NewStepValidator creates a new StepValidator instance.
func NewStepValidator() *StepValidator {
	return &StepValidator{}
}

// ValidateStep runs the local checks for the given step against the
// user's current state. The confirm argument is the operator-entered
// password confirmation; it is compared locally and never leaves this
// process.
func (v *StepValidator) ValidateStep(step domain.Step, state *domain.UserState, confirm string) domain.FieldErrors {
	switch step {
	case domain.StepPassword:
		return v.ValidatePassword(state.Password, confirm)
	case domain.StepPortainer:
		return v.ValidatePortainer(state.Bundle.PortainerInstances)
	case domain.StepDockerHub:
		return v.ValidateDockerHub(state.Bundle.DockerHub)
	case domain.StepDiscord:
		return v.ValidateDiscord(state.Bundle.DiscordWebhooks)
	}
	return domain.FieldErrors{}
}

// ValidatePassword checks the password step fields.
func (v *StepValidator) ValidatePassword(password, confirm string) domain.FieldErrors {
	errs := domain.FieldErrors{}

	if err := validation.Validate(password,
		validation.Required.Error("password is required"),
		validation.Length(MinPasswordLength, 0).Error("password must be at least 8 characters"),
	); err != nil {
		errs[domain.StepField(domain.StepPassword, "password")] = err.Error()
		return errs
	}

	if confirm != password {
		errs[domain.StepField(domain.StepPassword, "passwordConfirm")] = "passwords do not match"
	}
	return errs
}

// ValidatePortainer checks each instance entry according to its auth
// mode. An empty instance list is always valid.
func (v *StepValidator) ValidatePortainer(instances []domain.PortainerCredential) domain.FieldErrors {
	errs := domain.FieldErrors{}
	for i, inst := range instances {
		switch inst.AuthMode {
		case domain.PortainerAuthAPIKey:
			if err := validation.Validate(inst.APIKey,
				validation.Required.Error("API key is required"),
			); err != nil {
				errs[domain.ItemField(domain.StepPortainer, i, "apiKey")] = err.Error()
			}
		case domain.PortainerAuthCredentials:
			if err := validation.Validate(inst.Username,
				validation.Required.Error("username is required"),
			); err != nil {
				errs[domain.ItemField(domain.StepPortainer, i, "username")] = err.Error()
			}
			if err := validation.Validate(inst.Password,
				validation.Required.Error("password is required"),
			); err != nil {
				errs[domain.ItemField(domain.StepPortainer, i, "password")] = err.Error()
			}
		default:
			errs[domain.ItemField(domain.StepPortainer, i, "authMode")] = "unknown auth mode"
		}
	}
	return errs
}

// ValidateDockerHub applies the all-or-nothing rule: both fields empty is
// an intentionally unset credential and passes; one filled requires the
// other.
func (v *StepValidator) ValidateDockerHub(cred *domain.DockerHubCredential) domain.FieldErrors {
	errs := domain.FieldErrors{}
	if cred == nil {
		return errs
	}
	if cred.Username == "" && cred.Token == "" {
		return errs
	}
	if cred.Username == "" {
		errs[domain.StepField(domain.StepDockerHub, "username")] = "username is required when a token is set"
	}
	if cred.Token == "" {
		errs[domain.StepField(domain.StepDockerHub, "token")] = "access token is required when a username is set"
	}
	return errs
}

// ValidateDiscord checks each configured webhook URL against the Discord
// webhook pattern. An empty list is always valid.
func (v *StepValidator) ValidateDiscord(hooks []domain.DiscordWebhook) domain.FieldErrors {
	errs := domain.FieldErrors{}
	for i, hook := range hooks {
		if err := validation.Validate(hook.URL,
			validation.Required.Error("webhook URL is required"),
			validation.Match(webhookURLRegex).Error("not a valid Discord webhook URL"),
		); err != nil {
			errs[domain.ItemField(domain.StepDiscord, i, "url")] = err.Error()
		}
	}
	return errs
}
