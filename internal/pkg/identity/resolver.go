package identity

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"ai-session-be/internal/pkg/logger"
)

// SessionCookieName is the inbound credential cookie, forwarded verbatim to
// the identity endpoint.
const SessionCookieName = "R_SESS"

type Config struct {
	BaseURL string
	Timeout time.Duration
	// InsecureSkipVerify is a local-development opt-out. Verification is on
	// by default.
	InsecureSkipVerify bool
}

// Resolver asks the external identity API who the caller is. One call per
// request, bounded timeout, no retries and no caching.
type Resolver struct {
	baseURL    string
	httpClient *http.Client
	log        logger.ILogger
}

func NewResolver(cfg Config, log logger.ILogger) *Resolver {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	client := &http.Client{Timeout: timeout}
	if cfg.InsecureSkipVerify {
		client.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}

	return &Resolver{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: client,
		log:        log,
	}
}

type usersResponse struct {
	Data []struct {
		Id string `json:"id"`
	} `json:"data"`
}

// Resolve returns the user id behind the credential. Every failure mode,
// transport error, timeout, non-2xx, malformed payload, empty record list,
// comes back as a non-nil error; callers branch only on resolved-vs-not and
// the reason stays in the logs.
func (r *Resolver) Resolve(ctx context.Context, token string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"/v3/users?me=true", nil)
	if err != nil {
		return "", r.unresolved(fmt.Errorf("build identity request: %w", err))
	}
	// Forwarded even when empty; the identity endpoint rejects it.
	req.Header.Set("Cookie", SessionCookieName+"="+token)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return "", r.unresolved(fmt.Errorf("identity request: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", r.unresolved(fmt.Errorf("identity endpoint returned %s", resp.Status))
	}

	var payload usersResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", r.unresolved(fmt.Errorf("decode identity response: %w", err))
	}
	if len(payload.Data) == 0 || payload.Data[0].Id == "" {
		return "", r.unresolved(fmt.Errorf("identity response contained no user records"))
	}

	userId := payload.Data[0].Id
	r.log.Info("IDENTITY", "resolved user", map[string]interface{}{
		"status":  resp.StatusCode,
		"user_id": userId,
	})
	return userId, nil
}

func (r *Resolver) unresolved(err error) error {
	r.log.Warn("IDENTITY", "identity resolution failed", map[string]interface{}{
		"error": err.Error(),
	})
	return err
}
