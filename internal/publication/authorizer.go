package publication

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"listpub/internal/artefact"
	"listpub/internal/config"
)

// UserContext identifies the caller of a retrieval. System callers bypass
// the external authorization check entirely.
type UserContext struct {
	UserID string
	System bool
}

// Authorizer is the external check consulted before a non-public artefact
// is returned to a non-system caller.
type Authorizer interface {
	CanView(ctx context.Context, user UserContext, meta artefact.Metadata) (bool, error)
}

// NewAuthorizer builds the account-service authorizer, or a deny-all one
// when no endpoint is configured. Public artefacts never reach the
// authorizer, so deny-all simply confines an unconfigured deployment to
// public data.
func NewAuthorizer(cfg *config.Config) Authorizer {
	endpoint := strings.TrimSpace(cfg.Authorization.Endpoint)
	if endpoint == "" {
		return denyAll{}
	}
	timeout := time.Duration(cfg.Authorization.RequestTimeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &httpAuthorizer{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

type httpAuthorizer struct {
	endpoint string
	client   *http.Client
}

type authRequest struct {
	UserID      string `json:"userId"`
	ListType    string `json:"listType"`
	Sensitivity string `json:"sensitivity"`
}

type authResponse struct {
	Authorised bool `json:"authorised"`
}

func (a *httpAuthorizer) CanView(ctx context.Context, user UserContext, meta artefact.Metadata) (bool, error) {
	body, err := json.Marshal(authRequest{
		UserID:      user.UserID,
		ListType:    string(meta.ListType),
		Sensitivity: string(meta.Sensitivity),
	})
	if err != nil {
		return false, fmt.Errorf("encode authorization request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint, strings.NewReader(string(body)))
	if err != nil {
		return false, fmt.Errorf("build authorization request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("authorization check: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("authorization check: status %d", resp.StatusCode)
	}
	var decoded authResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&decoded); err != nil {
		return false, fmt.Errorf("decode authorization response: %w", err)
	}
	return decoded.Authorised, nil
}

type denyAll struct{}

func (denyAll) CanView(context.Context, UserContext, artefact.Metadata) (bool, error) {
	return false, nil
}
