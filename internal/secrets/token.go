package secrets

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/zalando/go-keyring"
	"golang.org/x/oauth2"
)

const (
	// “Service” groups this app’s secrets in the OS keychain.
	KeyringService = "leetcrawl"
)

// SheetsKeyringAccount names the keychain entry for a given OAuth client, so
// switching credential files doesn't reuse the wrong token.
func SheetsKeyringAccount(credentialsPath string) string {
	return "leetcrawl:sheets:" + filepath.Base(credentialsPath)
}

// LoadToken reads a cached OAuth token: keychain first, then the fallback
// file for headless machines without one.
func LoadToken(account, fallbackPath string) (*oauth2.Token, error) {
	if strings.TrimSpace(account) != "" {
		if raw, err := keyring.Get(KeyringService, account); err == nil && strings.TrimSpace(raw) != "" {
			var tok oauth2.Token
			if err := json.Unmarshal([]byte(raw), &tok); err == nil {
				return &tok, nil
			}
		}
	}

	if strings.TrimSpace(fallbackPath) != "" {
		b, err := os.ReadFile(fallbackPath)
		if err == nil {
			var tok oauth2.Token
			if err := json.Unmarshal(b, &tok); err == nil {
				return &tok, nil
			}
		}
	}

	return nil, errors.New("no cached sheets token (run with --sheets once to authorize)")
}

// SaveToken caches the token in the keychain, falling back to a 0600 file
// when no keychain is available.
func SaveToken(account, fallbackPath string, tok *oauth2.Token) error {
	b, err := json.Marshal(tok)
	if err != nil {
		return err
	}

	if strings.TrimSpace(account) != "" {
		if err := keyring.Set(KeyringService, account, string(b)); err == nil {
			return nil
		}
	}

	if strings.TrimSpace(fallbackPath) == "" {
		return errors.New("no token path configured and keychain unavailable")
	}
	return os.WriteFile(fallbackPath, b, 0o600)
}

func DeleteToken(account, fallbackPath string) error {
	var kerr error
	if strings.TrimSpace(account) != "" {
		kerr = keyring.Delete(KeyringService, account)
	}
	if strings.TrimSpace(fallbackPath) != "" {
		if err := os.Remove(fallbackPath); err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}
	if kerr != nil && !errors.Is(kerr, keyring.ErrNotFound) {
		return kerr
	}
	return nil
}
