// Package sfdc is the Salesforce REST collaborator: session handshake,
// object metadata, SOQL execution, record creation and file upload.
package sfdc

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/colinp85/simpler-salesforce/internal/config"
)

// Client is an authenticated REST client bound to one Salesforce instance.
type Client struct {
	http        *http.Client
	instanceURL string
	token       string
	apiVersion  string
	log         *zap.SugaredLogger
}

type tokenResponse struct {
	AccessToken      string `json:"access_token"`
	InstanceURL      string `json:"instance_url"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// Connect performs the OAuth client-credentials handshake against the
// configured token endpoint and returns an authenticated client. Nothing
// downstream can function without a session, so callers should treat an
// error here as fatal.
func Connect(ctx context.Context, auth config.Auth, apiVersion string, log *zap.SugaredLogger) (*Client, error) {
	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {auth.ConsumerKey},
		"client_secret": {auth.ConsumerSecret},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, auth.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("building token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	hc := &http.Client{Timeout: 30 * time.Second}
	resp, err := hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting access token: %w", err)
	}
	defer resp.Body.Close()

	var tok tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return nil, fmt.Errorf("decoding token response: %w", err)
	}
	if tok.AccessToken == "" || tok.InstanceURL == "" {
		return nil, fmt.Errorf("token endpoint refused credentials: %s %s", tok.Error, tok.ErrorDescription)
	}

	log.Info("connected to Salesforce")
	return &Client{
		http:        hc,
		instanceURL: strings.TrimRight(tok.InstanceURL, "/"),
		token:       tok.AccessToken,
		apiVersion:  apiVersion,
		log:         log,
	}, nil
}
