package importfile

import (
	"errors"
	"testing"

	"dashboard-user-import/internal/domain"
)

func TestNormalize_UsersArray(t *testing.T) {
	data := []byte(`{
		"users": [
			{"username": "alice", "email": "alice@example.com", "instanceAdmin": true},
			{"username": "bob", "role": "user"}
		]
	}`)

	records, err := Normalize(data)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	if records[0].Username != "alice" || !records[0].InstanceAdmin {
		t.Errorf("first record = %+v", records[0])
	}
	if records[0].Role != domain.RoleAdmin {
		t.Errorf("role should default to admin, got %q", records[0].Role)
	}
	if records[1].Username != "bob" || records[1].Role != domain.RoleUser {
		t.Errorf("second record = %+v", records[1])
	}
}

func TestNormalize_SingleUserObject(t *testing.T) {
	data := []byte(`{
		"user": {"username": "carol", "email": "carol@example.com"},
		"portainerInstances": [{"name": "prod", "url": "https://p.example.com", "authMode": "api-key"}],
		"dockerHubCredentials": {"username": "carolhub"},
		"discordWebhooks": [{"name": "ops", "url": "https://discord.com/api/webhooks/1/a"}],
		"trackedApps": [{"name": "docked"}]
	}`)

	records, err := Normalize(data)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}

	r := records[0]
	if r.Username != "carol" {
		t.Errorf("Username = %q", r.Username)
	}
	if len(r.PortainerInstances) != 1 || r.PortainerInstances[0].Name != "prod" {
		t.Errorf("sibling portainerInstances not merged: %+v", r.PortainerInstances)
	}
	if r.DockerHub == nil || r.DockerHub.Username != "carolhub" {
		t.Errorf("sibling dockerHubCredentials not merged: %+v", r.DockerHub)
	}
	if len(r.DiscordWebhooks) != 1 {
		t.Errorf("sibling discordWebhooks not merged: %+v", r.DiscordWebhooks)
	}
	if len(r.TrackedApps) != 1 {
		t.Errorf("sibling trackedApps not merged: %+v", r.TrackedApps)
	}
}

func TestNormalize_SingleUserNestedWinsOverSibling(t *testing.T) {
	data := []byte(`{
		"user": {
			"username": "carol",
			"portainerInstances": [{"name": "nested", "url": "https://n.example.com", "authMode": "api-key"}]
		},
		"portainerInstances": [{"name": "sibling", "url": "https://s.example.com", "authMode": "api-key"}]
	}`)

	records, err := Normalize(data)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if got := records[0].PortainerInstances[0].Name; got != "nested" {
		t.Errorf("nested config should win over sibling, got %q", got)
	}
}

func TestNormalize_BareArray(t *testing.T) {
	data := []byte(`[{"username": "dave"}, {"username": "erin", "isInstanceAdmin": true}]`)

	records, err := Normalize(data)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if !records[1].InstanceAdmin {
		t.Error("isInstanceAdmin alias should set InstanceAdmin")
	}
}

func TestNormalize_InstanceAdminPrecedence(t *testing.T) {
	data := []byte(`[{"username": "frank", "instanceAdmin": false, "isInstanceAdmin": true}]`)

	records, err := Normalize(data)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if records[0].InstanceAdmin {
		t.Error("instanceAdmin=false must win over isInstanceAdmin=true")
	}
}

func TestNormalize_StructuralErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty object", `{}`},
		{"wrong key", `{"accounts": []}`},
		{"scalar", `42`},
		{"empty input", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize([]byte(tt.data))
			if !errors.Is(err, ErrStructure) {
				t.Errorf("expected ErrStructure, got %v", err)
			}
		})
	}
}

func TestNormalize_RejectsWholeFile(t *testing.T) {
	t.Run("missing username", func(t *testing.T) {
		data := []byte(`{"users": [{"username": "ok"}, {"email": "nobody@example.com"}]}`)
		_, err := Normalize(data)
		if err == nil {
			t.Fatal("expected error for record without username")
		}
	})

	t.Run("duplicate username in file", func(t *testing.T) {
		data := []byte(`{"users": [{"username": "twin"}, {"username": "twin"}]}`)
		_, err := Normalize(data)
		if err == nil {
			t.Fatal("expected error for duplicate username")
		}
	})

	t.Run("invalid role", func(t *testing.T) {
		data := []byte(`{"users": [{"username": "gwen", "role": "root"}]}`)
		_, err := Normalize(data)
		if err == nil {
			t.Fatal("expected error for invalid role")
		}
	})

	t.Run("no users", func(t *testing.T) {
		data := []byte(`{"users": []}`)
		_, err := Normalize(data)
		if err == nil {
			t.Fatal("expected error for empty users array")
		}
	})
}

func TestNormalize_MalformedJSON(t *testing.T) {
	_, err := Normalize([]byte(`{"users": [`))
	if err == nil {
		t.Fatal("expected parse error")
	}
}
