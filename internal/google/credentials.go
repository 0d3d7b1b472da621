package google

import (
	"context"
	"sync"

	"golang.org/x/oauth2"
)

// CredentialsProvider supplies OAuth2 token sources for Google API clients.
// This abstraction allows different credential sources (key files, in-memory
// keys, test fakes) to be plugged in without the API clients knowing where
// the credentials come from.
type CredentialsProvider interface {
	// TokenSource returns a token source authorized for the given scopes.
	TokenSource(ctx context.Context, scopes ...string) (oauth2.TokenSource, error)
}

// KeyFileCredentials provides credentials from a service account key file on
// disk. The file is read and validated once on first use and the parsed key
// is cached for subsequent calls.
type KeyFileCredentials struct {
	Path string

	mu  sync.Mutex
	key *ServiceAccountKey
}

// NewKeyFileCredentials creates a provider backed by the key file at path.
// The file is not read until the first TokenSource call.
func NewKeyFileCredentials(path string) *KeyFileCredentials {
	return &KeyFileCredentials{Path: path}
}

// TokenSource loads the key file if needed and returns a token source for it.
func (c *KeyFileCredentials) TokenSource(ctx context.Context, scopes ...string) (oauth2.TokenSource, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.key == nil {
		key, err := LoadServiceAccountKey(c.Path)
		if err != nil {
			return nil, err
		}
		c.key = key
	}

	return c.key.TokenSource(ctx, scopes...)
}
