package domain

// Valid user roles. RoleInstanceAdmin is the elevated tier that requires
// token verification before it is granted.
const (
	RoleAdmin         = "admin"
	RoleUser          = "user"
	RoleInstanceAdmin = "instance-admin"
)

// ValidRoles contains all roles accepted in an import file.
var ValidRoles = []string{RoleAdmin, RoleUser, RoleInstanceAdmin}

// IsValidRole checks if a role is valid.
func IsValidRole(role string) bool {
	for _, r := range ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}

// Portainer authentication modes.
const (
	PortainerAuthAPIKey      = "api-key"
	PortainerAuthCredentials = "credentials"
)

// PortainerInstanceConfig identifies a Portainer instance attached to an
// import record. Secret material is collected later, during the import
// flow, never from the file.
type PortainerInstanceConfig struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	AuthMode string `json:"authMode"`
}

// DockerHubConfig identifies the Docker Hub account attached to an
// import record.
type DockerHubConfig struct {
	Username string `json:"username"`
}

// DiscordWebhookConfig identifies a Discord webhook attached to an
// import record.
type DiscordWebhookConfig struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// TrackedApp is a repository the created user will follow on the dashboard.
type TrackedApp struct {
	Name     string `json:"name"`
	Provider string `json:"provider,omitempty"`
	Repo     string `json:"repo,omitempty"`
}

// TrackedImage is a container image the created user will follow.
type TrackedImage struct {
	Name string `json:"name"`
	Tag  string `json:"tag,omitempty"`
}

// UserImportRecord is one canonical user entry produced by the import
// file normalizer. It is immutable once the batch starts; all mutable
// per-user progress lives in UserState.
type UserImportRecord struct {
	Username      string
	Email         string
	Role          string
	InstanceAdmin bool

	PortainerInstances []PortainerInstanceConfig
	DockerHub          *DockerHubConfig
	DiscordWebhooks    []DiscordWebhookConfig
	TrackedApps        []TrackedApp
	TrackedImages      []TrackedImage
}
