package secrets

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const spreadsheetsScope = "https://www.googleapis.com/auth/spreadsheets"

// SheetsTokenSource builds the credential handle the sheets exporter needs.
// The OAuth client secret file is supplied out-of-band; the bearer token is
// cached across runs (keychain or token file). Without a cached token this
// runs the installed-app flow on the terminal: print the URL, paste the code.
func SheetsTokenSource(ctx context.Context, credentialsPath, tokenPath string) (oauth2.TokenSource, error) {
	b, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("read oauth client secret: %w", err)
	}
	conf, err := google.ConfigFromJSON(b, spreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("parse oauth client secret: %w", err)
	}

	account := SheetsKeyringAccount(credentialsPath)

	tok, err := LoadToken(account, tokenPath)
	if err != nil {
		tok, err = authorize(ctx, conf)
		if err != nil {
			return nil, err
		}
		if err := SaveToken(account, tokenPath, tok); err != nil {
			return nil, fmt.Errorf("cache sheets token: %w", err)
		}
	}

	return conf.TokenSource(ctx, tok), nil
}

func authorize(ctx context.Context, conf *oauth2.Config) (*oauth2.Token, error) {
	url := conf.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Printf("Open this link in your browser, then paste the authorization code:\n%s\n> ", url)

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		return nil, fmt.Errorf("read authorization code: %w", err)
	}

	tok, err := conf.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchange authorization code: %w", err)
	}
	return tok, nil
}
