// Package importfile parses the heterogeneous import-file shapes into one
// canonical list of user records. The whole file is accepted or rejected;
// a single malformed record rejects everything.
package importfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"dashboard-user-import/internal/domain"
)

// ErrStructure is returned when the payload matches none of the accepted
// shapes.
var ErrStructure = errors.New("import file must have a `users` array or a `user` object")

// rawRecord mirrors one user entry as it appears on disk. Boolean flags
// are pointers so presence can be told apart from an explicit false.
type rawRecord struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Role            string `json:"role"`
	InstanceAdmin   *bool  `json:"instanceAdmin"`
	IsInstanceAdmin *bool  `json:"isInstanceAdmin"`

	PortainerInstances []domain.PortainerInstanceConfig `json:"portainerInstances"`
	DockerHub          *domain.DockerHubConfig          `json:"dockerHubCredentials"`
	DiscordWebhooks    []domain.DiscordWebhookConfig    `json:"discordWebhooks"`
	TrackedApps        []domain.TrackedApp              `json:"trackedApps"`
	TrackedImages      []domain.TrackedImage            `json:"trackedImages"`
}

// rawFile covers the two object shapes: a `users` array, or a single
// `user` object with sibling configuration arrays.
type rawFile struct {
	Users []rawRecord `json:"users"`
	User  *rawRecord  `json:"user"`

	PortainerInstances []domain.PortainerInstanceConfig `json:"portainerInstances"`
	DockerHub          *domain.DockerHubConfig          `json:"dockerHubCredentials"`
	DiscordWebhooks    []domain.DiscordWebhookConfig    `json:"discordWebhooks"`
	TrackedApps        []domain.TrackedApp              `json:"trackedApps"`
	TrackedImages      []domain.TrackedImage            `json:"trackedImages"`
}

// Normalize parses raw import-file content and returns the canonical
// record list. Shape precedence: `users` array, then `user` object with
// sibling arrays, then a bare top-level array.
func Normalize(data []byte) ([]domain.UserImportRecord, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return nil, ErrStructure
	}

	var raws []rawRecord
	switch trimmed[0] {
	case '{':
		var file rawFile
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse import file: %w", err)
		}
		switch {
		case file.Users != nil:
			raws = file.Users
		case file.User != nil:
			raws = []rawRecord{mergeSingleUser(file)}
		default:
			return nil, ErrStructure
		}
	case '[':
		if err := json.Unmarshal(data, &raws); err != nil {
			return nil, fmt.Errorf("parse import file: %w", err)
		}
	default:
		return nil, ErrStructure
	}

	if len(raws) == 0 {
		return nil, fmt.Errorf("import file contains no users")
	}

	records := make([]domain.UserImportRecord, 0, len(raws))
	seen := make(map[string]bool, len(raws))
	for i, raw := range raws {
		record, err := raw.toRecord()
		if err != nil {
			return nil, fmt.Errorf("user at index %d: %w", i, err)
		}
		if seen[record.Username] {
			return nil, fmt.Errorf("duplicate username %q in import file", record.Username)
		}
		seen[record.Username] = true
		records = append(records, record)
	}

	return records, nil
}

// mergeSingleUser folds the sibling configuration arrays of the `user`
// shape into the record. A value nested inside `user` wins over the same
// value at top level.
func mergeSingleUser(file rawFile) rawRecord {
	record := *file.User
	if record.PortainerInstances == nil {
		record.PortainerInstances = file.PortainerInstances
	}
	if record.DockerHub == nil {
		record.DockerHub = file.DockerHub
	}
	if record.DiscordWebhooks == nil {
		record.DiscordWebhooks = file.DiscordWebhooks
	}
	if record.TrackedApps == nil {
		record.TrackedApps = file.TrackedApps
	}
	if record.TrackedImages == nil {
		record.TrackedImages = file.TrackedImages
	}
	return record
}

func (r rawRecord) toRecord() (domain.UserImportRecord, error) {
	username := strings.TrimSpace(r.Username)
	if username == "" {
		return domain.UserImportRecord{}, fmt.Errorf("username is required")
	}

	role := strings.TrimSpace(r.Role)
	if role == "" {
		role = domain.RoleAdmin
	}
	if !domain.IsValidRole(role) {
		return domain.UserImportRecord{}, fmt.Errorf("invalid role %q", role)
	}

	// instanceAdmin wins over the legacy isInstanceAdmin alias when both
	// are present.
	instanceAdmin := false
	switch {
	case r.InstanceAdmin != nil:
		instanceAdmin = *r.InstanceAdmin
	case r.IsInstanceAdmin != nil:
		instanceAdmin = *r.IsInstanceAdmin
	}

	return domain.UserImportRecord{
		Username:           username,
		Email:              strings.TrimSpace(r.Email),
		Role:               role,
		InstanceAdmin:      instanceAdmin,
		PortainerInstances: r.PortainerInstances,
		DockerHub:          r.DockerHub,
		DiscordWebhooks:    r.DiscordWebhooks,
		TrackedApps:        r.TrackedApps,
		TrackedImages:      r.TrackedImages,
	}, nil
}
