package secrets

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/zalando/go-keyring"
)

const (
	// "Service" groups the app's secrets in the OS keychain.
	KeyringService = "econgrads"

	// EnrichAccount is the keyring account for the enrichment API token.
	EnrichAccount = "econgrads:enrich:token"

	// EnvToken overrides the keyring when set; handy for headless boxes.
	EnvToken = "ECONGRADS_ENRICH_TOKEN"
)

// GetEnrichToken returns the enrichment API token, preferring the
// environment (including a .env file in the working directory) over
// the OS keychain.
func GetEnrichToken() (string, error) {
	_ = godotenv.Load()
	if tok := strings.TrimSpace(os.Getenv(EnvToken)); tok != "" {
		return tok, nil
	}
	tok, err := keyring.Get(KeyringService, EnrichAccount)
	if err == nil && strings.TrimSpace(tok) != "" {
		return tok, nil
	}
	return "", errors.New("enrichment token not found (set it in keychain or via " + EnvToken + ")")
}

func SetEnrichToken(token string) error {
	if strings.TrimSpace(token) == "" {
		return errors.New("token is empty")
	}
	return keyring.Set(KeyringService, EnrichAccount, token)
}

func DeleteEnrichToken() error {
	return keyring.Delete(KeyringService, EnrichAccount)
}
