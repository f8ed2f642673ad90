package domain

import (
	"testing"
)

func TestIsValidRole(t *testing.T) {
	tests := []struct {
		role string
		want bool
	}{
		{"admin", true},
		{"user", true},
		{"instance-admin", true},
		{"superuser", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			if got := IsValidRole(tt.role); got != tt.want {
				t.Errorf("IsValidRole(%q) = %v, want %v", tt.role, got, tt.want)
			}
		})
	}
}

func TestStepSkippable(t *testing.T) {
	if StepPassword.Skippable() {
		t.Error("password step must not be skippable")
	}
	for _, step := range []Step{StepInstanceAdminVerification, StepPortainer, StepDockerHub, StepDiscord} {
		if !step.Skippable() {
			t.Errorf("step %s should be skippable", step)
		}
	}
}

func TestStepRemotelyValidated(t *testing.T) {
	remote := []Step{StepPortainer, StepDockerHub, StepDiscord}
	for _, step := range remote {
		if !step.RemotelyValidated() {
			t.Errorf("step %s should be remotely validated", step)
		}
	}
	if StepPassword.RemotelyValidated() {
		t.Error("password step must never be remotely validated")
	}
	if StepInstanceAdminVerification.RemotelyValidated() {
		t.Error("verification step must never be remotely validated")
	}
}

func TestNewCredentialBundle(t *testing.T) {
	record := UserImportRecord{
		Username: "ops",
		PortainerInstances: []PortainerInstanceConfig{
			{Name: "prod", URL: "https://portainer.example.com", AuthMode: PortainerAuthAPIKey},
		},
		DockerHub: &DockerHubConfig{Username: "opsbot"},
		DiscordWebhooks: []DiscordWebhookConfig{
			{Name: "alerts", URL: "https://discord.com/api/webhooks/1/abc"},
		},
	}

	bundle := NewCredentialBundle(record)

	if len(bundle.PortainerInstances) != 1 {
		t.Fatalf("expected 1 portainer entry, got %d", len(bundle.PortainerInstances))
	}
	inst := bundle.PortainerInstances[0]
	if inst.Name != "prod" || inst.URL != "https://portainer.example.com" {
		t.Errorf("identifying fields not seeded: %+v", inst)
	}
	if inst.APIKey != "" || inst.Username != "" || inst.Password != "" {
		t.Errorf("secret fields must start empty: %+v", inst)
	}
	if bundle.DockerHub == nil || bundle.DockerHub.Username != "opsbot" {
		t.Errorf("docker hub entry not seeded: %+v", bundle.DockerHub)
	}
	if bundle.DockerHub.Token != "" {
		t.Error("docker hub token must start empty")
	}
	if len(bundle.DiscordWebhooks) != 1 || bundle.DiscordWebhooks[0].URL != "https://discord.com/api/webhooks/1/abc" {
		t.Errorf("discord entry not seeded: %+v", bundle.DiscordWebhooks)
	}
}

func TestUserStateFinalize(t *testing.T) {
	record := UserImportRecord{Username: "ops", InstanceAdmin: true}
	state := NewUserState(record, StepPlan{StepInstanceAdminVerification, StepPassword})
	state.Password = "hunter2secret"
	state.Verification.TokenHandle = "tok-123"
	state.Verification.EnteredCode = "999999"
	state.Verification.Status = VerificationVerified

	state.Finalize()

	if state.Password != "" {
		t.Error("password must be cleared on finalize")
	}
	if state.Verification.TokenHandle != "" || state.Verification.EnteredCode != "" {
		t.Error("token state must be cleared on finalize")
	}
	if state.Verification.Status != VerificationVerified {
		t.Error("verification status itself must survive finalize")
	}
	if !state.Committed {
		t.Error("finalize must mark the state committed")
	}
}

func TestFieldErrorsClearStep(t *testing.T) {
	errs := FieldErrors{
		ItemField(StepPortainer, 0, "apiKey"): "API key is required",
		ItemField(StepPortainer, 1, "apiKey"): "API key is required",
		StepField(StepPassword, "password"):   "password is required",
		ItemField(StepDiscord, 0, "url"):      "invalid webhook URL",
	}

	errs.ClearStep(StepPortainer)

	if len(errs) != 2 {
		t.Fatalf("expected 2 remaining errors, got %d", len(errs))
	}
	if len(errs.ForStep(StepPortainer)) != 0 {
		t.Error("portainer errors should be gone")
	}
	if len(errs.ForStep(StepDiscord)) != 1 {
		t.Error("discord error should remain")
	}
}

func TestNewBatchSummary(t *testing.T) {
	t.Run("no errors", func(t *testing.T) {
		s := NewBatchSummary([]string{"a", "b"}, nil)
		if s.CreatedCount != 2 {
			t.Errorf("CreatedCount = %d, want 2", s.CreatedCount)
		}
		if s.Message != "Imported 2 user(s)" {
			t.Errorf("Message = %q", s.Message)
		}
	})

	t.Run("with errors", func(t *testing.T) {
		s := NewBatchSummary([]string{"a"}, []string{"b: already exists"})
		if s.Message != "Imported 1 user(s), 1 error(s)" {
			t.Errorf("Message = %q", s.Message)
		}
	})
}
