package cli

import (
	"fmt"

	"github.com/99designs/keyring"
)

const (
	keyringServiceName = "taskboard"
	tokenKey           = "api-token"
)

// TokenStore persists the session token between CLI invocations.
type TokenStore interface {
	Load() (string, error)
	Save(token string) error
	Delete() error
}

// KeyringTokenStore keeps the token in the system keyring.
type KeyringTokenStore struct{}

// NewKeyringTokenStore creates a token store backed by the system keyring.
func NewKeyringTokenStore() *KeyringTokenStore {
	return &KeyringTokenStore{}
}

func openKeyring() (keyring.Keyring, error) {
	ring, err := keyring.Open(keyring.Config{
		ServiceName: keyringServiceName,
		AllowedBackends: []keyring.BackendType{
			keyring.KeychainBackend,
			keyring.SecretServiceBackend,
			keyring.WinCredBackend,
			keyring.PassBackend,
			keyring.FileBackend,
		},
		FileDir:                  "~/.config/taskboard/credentials",
		FilePasswordFunc:         keyring.FixedStringPrompt("taskboard-file-key"),
		KeychainTrustApplication: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening keyring: %w", err)
	}
	return ring, nil
}

// Load retrieves the stored session token. Returns an empty string when no
// token has been saved.
func (s *KeyringTokenStore) Load() (string, error) {
	ring, err := openKeyring()
	if err != nil {
		return "", err
	}

	item, err := ring.Get(tokenKey)
	if err != nil {
		if err == keyring.ErrKeyNotFound {
			return "", nil
		}
		return "", fmt.Errorf("getting session token: %w", err)
	}

	return string(item.Data), nil
}

// Save stores the session token in the system keyring.
func (s *KeyringTokenStore) Save(token string) error {
	ring, err := openKeyring()
	if err != nil {
		return err
	}

	err = ring.Set(keyring.Item{
		Key:  tokenKey,
		Data: []byte(token),
	})
	if err != nil {
		return fmt.Errorf("saving session token: %w", err)
	}

	return nil
}

// Delete removes the stored session token. Deleting a token that was never
// saved is not an error.
func (s *KeyringTokenStore) Delete() error {
	ring, err := openKeyring()
	if err != nil {
		return err
	}

	err = ring.Remove(tokenKey)
	if err != nil && err != keyring.ErrKeyNotFound {
		return fmt.Errorf("deleting session token: %w", err)
	}

	return nil
}

// MemoryTokenStore keeps the token in memory, used in tests.
type MemoryTokenStore struct {
	token string
}

// NewMemoryTokenStore creates an in-memory token store.
func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{}
}

// Load returns the stored token.
func (s *MemoryTokenStore) Load() (string, error) {
	return s.token, nil
}

// Save stores the token.
func (s *MemoryTokenStore) Save(token string) error {
	s.token = token
	return nil
}

// Delete clears the stored token.
func (s *MemoryTokenStore) Delete() error {
	s.token = ""
	return nil
}
