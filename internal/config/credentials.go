package config

import (
	"encoding/json"
	"os"
	"time"
)

// Credentials is the saved remote login. Token issuance and verification
// happen on the service; locally it is an opaque bearer value with an
// expiry.
type Credentials struct {
	Email     string    `json:"email"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Valid reports whether a usable credential is present.
func (c *Credentials) Valid() bool {
	if c == nil || c.Token == "" {
		return false
	}
	return c.ExpiresAt.IsZero() || time.Now().Before(c.ExpiresAt)
}

// LoadCredentials reads the credential file. A missing or unreadable file
// means no credential (nil, nil).
func LoadCredentials(path string) (*Credentials, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		// Corrupted file reads as no credential.
		return nil, nil
	}
	return &creds, nil
}

// SaveCredentials writes the credential file with owner-only permissions.
func SaveCredentials(path string, creds *Credentials) error {
	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// DeleteCredentials removes the credential file. Missing is not an error.
func DeleteCredentials(path string) error {
	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
