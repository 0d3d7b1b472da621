package google

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
)

// ServiceAccountKey represents the structure of a service account JSON key file
// as downloaded from the Google Cloud console.
type ServiceAccountKey struct {
	Type                    string `json:"type"`
	ProjectID               string `json:"project_id"`
	PrivateKeyID            string `json:"private_key_id"`
	PrivateKey              string `json:"private_key"`
	ClientEmail             string `json:"client_email"`
	ClientID                string `json:"client_id"`
	AuthURI                 string `json:"auth_uri"`
	TokenURI                string `json:"token_uri"`
	AuthProviderX509CertURL string `json:"auth_provider_x509_cert_url"`
	ClientX509CertURL       string `json:"client_x509_cert_url"`
}

// ParseServiceAccountKey parses and validates service account key JSON data.
func ParseServiceAccountKey(jsonData []byte) (*ServiceAccountKey, error) {
	var key ServiceAccountKey
	if err := json.Unmarshal(jsonData, &key); err != nil {
		return nil, fmt.Errorf("failed to parse service account JSON: %w", err)
	}

	if key.Type != "service_account" {
		return nil, fmt.Errorf("invalid key type: %s (expected: service_account)", key.Type)
	}

	if key.ClientEmail == "" || key.PrivateKey == "" {
		return nil, fmt.Errorf("missing required fields in service account key")
	}

	return &key, nil
}

// LoadServiceAccountKey reads and parses a service account key file from disk.
func LoadServiceAccountKey(path string) (*ServiceAccountKey, error) {
	jsonData, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read service account key file: %w", err)
	}
	return ParseServiceAccountKey(jsonData)
}

// TokenSource returns an OAuth2 token source that authenticates by signing
// JWT assertions with the key's private key. If no scopes are given,
// DefaultScopes is used.
func (k *ServiceAccountKey) TokenSource(ctx context.Context, scopes ...string) (oauth2.TokenSource, error) {
	if len(scopes) == 0 {
		scopes = DefaultScopes
	}

	jwtConfig := &jwt.Config{
		Email:      k.ClientEmail,
		PrivateKey: []byte(k.PrivateKey),
		Scopes:     scopes,
		TokenURL:   google.JWTTokenURL,
	}
	if k.TokenURI != "" {
		jwtConfig.TokenURL = k.TokenURI
	}

	return jwtConfig.TokenSource(ctx), nil
}
