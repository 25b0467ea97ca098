// ABOUTME: Durable credential record surviving process restarts
// ABOUTME: Stores the auth token and user as JSON in the XDG config directory

package session

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jmercadier/finflow/internal/client"
)

// Credentials persists the bearer token and user between runs. The in-memory
// session is a cache of this record: written on every transition to
// authenticated, erased on every transition to unauthenticated.
type Credentials struct {
	configDir string
}

type credentialData struct {
	AuthToken string       `json:"auth_token"`
	User      *client.User `json:"user,omitempty"`
}

// NewCredentials creates a credential store rooted at the given config directory
func NewCredentials(configDir string) *Credentials {
	return &Credentials{configDir: configDir}
}

// DefaultConfigDir returns the default config directory following XDG spec
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "finflow")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "finflow")
}

// credentialFile returns the path to the persisted credential JSON
func (c *Credentials) credentialFile() string {
	return filepath.Join(c.configDir, "credentials.json")
}

// Load reads the persisted token and user from disk. A missing file means no
// stored session. An unparseable file is treated the same way, logged, so a
// corrupted record never blocks startup.
func (c *Credentials) Load() (string, *client.User) {
	data, err := os.ReadFile(c.credentialFile())
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		slog.Warn("Failed to read stored credentials", "error", err)
		return "", nil
	}

	var record credentialData
	if err := json.Unmarshal(data, &record); err != nil {
		slog.Warn("Stored credentials are not parseable, ignoring", "error", err)
		return "", nil
	}

	return record.AuthToken, record.User
}

// Save writes the token and user to disk. The file carries owner-only
// permissions since it holds a live credential.
func (c *Credentials) Save(token string, user *client.User) error {
	if err := os.MkdirAll(c.configDir, 0700); err != nil {
		return err
	}

	data, err := json.MarshalIndent(credentialData{AuthToken: token, User: user}, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(c.credentialFile(), data, 0600)
}

// Clear removes the persisted record. A record that never existed is not an error.
func (c *Credentials) Clear() error {
	err := os.Remove(c.credentialFile())
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
