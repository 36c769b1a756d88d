package profanity

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// remoteChecker implements Checker against a purgomalum-style web service.
// The service answers GET <base>/containsprofanity?text=... with a plain
// "true" or "false" body.
type remoteChecker struct {
	baseURL string
	client  *http.Client
	logger  zerolog.Logger
}

// RemoteConfig holds configuration for the remote profanity checker.
type RemoteConfig struct {
	// BaseURL is the service endpoint, e.g. "https://www.purgomalum.com/service".
	BaseURL string

	// Timeout bounds each check call.
	Timeout time.Duration
}

// DefaultRemoteConfig returns the default remote checker configuration.
func DefaultRemoteConfig() *RemoteConfig {
	return &RemoteConfig{
		BaseURL: "https://www.purgomalum.com/service",
		Timeout: 5 * time.Second,
	}
}

// NewRemoteChecker creates a Checker backed by an external web service.
func NewRemoteChecker(config *RemoteConfig, logger zerolog.Logger) Checker {
	if config == nil {
		config = DefaultRemoteConfig()
	}

	return &remoteChecker{
		baseURL: strings.TrimRight(config.BaseURL, "/"),
		client:  &http.Client{Timeout: config.Timeout},
		logger:  logger.With().Str("component", "remote-checker").Logger(),
	}
}

// ContainsProfanity calls the external service and parses its boolean reply.
func (c *remoteChecker) ContainsProfanity(ctx context.Context, text string) (bool, error) {
	endpoint := fmt.Sprintf("%s/containsprofanity?text=%s", c.baseURL, url.QueryEscape(text))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, fmt.Errorf("failed to build profanity check request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Msg("profanity check call failed")
		return false, fmt.Errorf("profanity check call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error().
			Int("status", resp.StatusCode).
			Msg("profanity check returned unexpected status")
		return false, fmt.Errorf("profanity check returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64))
	if err != nil {
		return false, fmt.Errorf("failed to read profanity check response: %w", err)
	}

	contains, err := strconv.ParseBool(strings.TrimSpace(string(body)))
	if err != nil {
		c.logger.Error().
			Str("body", string(body)).
			Msg("profanity check returned unparseable body")
		return false, fmt.Errorf("unparseable profanity check response %q: %w", string(body), err)
	}

	return contains, nil
}

// Close releases resources held by the checker.
func (c *remoteChecker) Close() error {
	c.client.CloseIdleConnections()
	return nil
}
