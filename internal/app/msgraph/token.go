package msgraph

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

const defaultLoginBase = "https://login.microsoftonline.com"

// tokenResponse is the OAuth2 client-credentials grant response.
type tokenResponse struct {
	AccessToken      string `json:"access_token"`
	ExpiresIn        int    `json:"expires_in"`
	Error            string `json:"error,omitempty"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// TokenSource acquires Graph application tokens with the client
// credentials grant. No user interaction is needed: the app registration
// holds the workbook permission itself. Tokens are cached until shortly
// before expiry.
type TokenSource struct {
	clientID     string
	clientSecret string
	tenantID     string
	loginBase    string
	client       *http.Client

	mu     sync.Mutex
	token  string
	expiry time.Time
}

// NewTokenSource creates a token source for a tenant's app registration.
func NewTokenSource(clientID, clientSecret, tenantID string, client *http.Client) *TokenSource {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &TokenSource{
		clientID:     clientID,
		clientSecret: clientSecret,
		tenantID:     tenantID,
		loginBase:    defaultLoginBase,
		client:       client,
	}
}

// Token returns a valid application token, refreshing when needed.
func (ts *TokenSource) Token(ctx context.Context) (string, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if ts.token != "" && time.Now().Before(ts.expiry) {
		return ts.token, nil
	}

	form := url.Values{}
	form.Set("client_id", ts.clientID)
	form.Set("client_secret", ts.clientSecret)
	form.Set("scope", "https://graph.microsoft.com/.default")
	form.Set("grant_type", "client_credentials")

	endpoint := fmt.Sprintf("%s/%s/oauth2/v2.0/token", ts.loginBase, ts.tenantID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := ts.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("token request failed: %w", err)
	}
	defer resp.Body.Close()

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}

	if tr.AccessToken == "" {
		desc := tr.ErrorDescription
		if desc == "" {
			desc = "unknown error"
		}
		return "", fmt.Errorf("token failed: %s", desc)
	}

	ts.token = tr.AccessToken
	// Refresh a minute early so in-flight requests never carry a token
	// that expires mid-call.
	ts.expiry = time.Now().Add(time.Duration(tr.ExpiresIn)*time.Second - time.Minute)

	return ts.token, nil
}

// SetLoginBase overrides the login endpoint. Used by tests.
func (ts *TokenSource) SetLoginBase(base string) {
	ts.loginBase = strings.TrimRight(base, "/")
}
