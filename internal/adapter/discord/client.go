// Package discord publishes bulletin chunks to a Discord channel over the
// REST API. No gateway connection is held: a one-way publisher only needs
// channel create-message calls.
package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"
)

const defaultBaseURL = "https://discord.com/api/v10"

// ErrMissingAccess marks a request rejected by channel permissions: the bot
// is not in the guild, cannot view the channel, or lacks Send Messages.
var ErrMissingAccess = errors.New("missing access to channel")

// StatusError is a non-success Discord API response.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("discord API error: status %d: %s", e.Status, e.Body)
}

// Client sends messages to one fixed channel.
type Client struct {
	token      string
	channelID  string
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// NewClient creates a publisher for the given bot token and channel.
func NewClient(token, channelID string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		token:      token,
		channelID:  channelID,
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    defaultBaseURL,
		logger:     logger,
	}
}

// VerifyAccess checks that the token can see the destination channel. Used
// as the startup readiness gate before the bulletin loop begins.
func (c *Client) VerifyAccess(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/channels/"+c.channelID, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("channel lookup: %w", err)
	}
	defer resp.Body.Close()

	return c.checkStatus(resp)
}

// PublishChunks sends each chunk as one discrete message, in order, and
// stops at the first failure so partial bulletins stay contiguous.
func (c *Client) PublishChunks(ctx context.Context, chunks []string) error {
	for i, chunk := range chunks {
		if err := c.sendMessage(ctx, chunk); err != nil {
			return fmt.Errorf("send chunk %d/%d: %w", i+1, len(chunks), err)
		}
	}
	return nil
}

func (c *Client) sendMessage(ctx context.Context, content string) error {
	sent, err := c.postMessage(ctx, content)
	if err != nil || sent {
		return err
	}
	// Rate limited once: honor the Retry-After hint, then try one more time.
	sent, err = c.postMessage(ctx, content)
	if err != nil {
		return err
	}
	if !sent {
		return &StatusError{Status: http.StatusTooManyRequests, Body: "rate limited twice"}
	}
	return nil
}

// postMessage attempts one create-message call. It returns (false, nil) when
// Discord rate-limited the call and the Retry-After wait has elapsed.
func (c *Client) postMessage(ctx context.Context, content string) (bool, error) {
	payload, err := json.Marshal(map[string]string{"content": content})
	if err != nil {
		return false, fmt.Errorf("encode message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/channels/"+c.channelID+"/messages", bytes.NewReader(payload))
	if err != nil {
		return false, fmt.Errorf("create request: %w", err)
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("send message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		wait := retryAfter(resp)
		c.logger.Warn("discord rate limited", "channel", c.channelID, "retry_after", wait)
		if err := sleepContext(ctx, wait); err != nil {
			return false, err
		}
		return false, nil
	}

	return true, c.checkStatus(resp)
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bot "+c.token)
	req.Header.Set("User-Agent", "DiscordBot (github.com/couchcryptid/weather-net-bot, 1.0)")
}

func (c *Client) checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	if resp.StatusCode == http.StatusForbidden || resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("channel %s: %w: status %d: %s", c.channelID, ErrMissingAccess, resp.StatusCode, body)
	}
	return &StatusError{Status: resp.StatusCode, Body: string(body)}
}

// retryAfter reads the Retry-After header (seconds, possibly fractional),
// clamped to keep a misbehaving response from stalling the cycle.
func retryAfter(resp *http.Response) time.Duration {
	const fallback = time.Second
	const maxWait = 10 * time.Second

	secs, err := strconv.ParseFloat(resp.Header.Get("Retry-After"), 64)
	if err != nil || secs < 0 {
		return fallback
	}
	wait := time.Duration(secs * float64(time.Second))
	if wait > maxWait {
		return maxWait
	}
	return wait
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
