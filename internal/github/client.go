// Package github is a thin client for the pieces of the GitHub REST API the
// importer needs: user metadata and avatar bytes. It holds no cache; caching
// is layered on by the pipeline.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/nixcon/pretix-github-badge-import/internal/httpx"
)

const DefaultBaseURL = "https://api.github.com"

// MissingFieldError reports a JSON field the service was expected to return
// but did not.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("response is missing field %q", e.Field)
}

// UserMetadata is the subset of the user profile the importer reads.
type UserMetadata struct {
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url"`
	Name      string `json:"name"`
}

type Client struct {
	http    *http.Client
	baseURL string
}

// New builds a client. httpClient should come from httpx.NewClient; pass an
// unauthenticated one for anonymous (rate-limited) access.
func New(httpClient *http.Client, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{http: httpClient, baseURL: baseURL}
}

func (c *Client) UserMetadata(ctx context.Context, username string) (UserMetadata, error) {
	var meta UserMetadata

	u := c.baseURL + "/users/" + url.PathEscape(username)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return meta, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return meta, fmt.Errorf("fetch user %q: %w", username, err)
	}
	defer resp.Body.Close()

	if err := httpx.CheckResponse(resp); err != nil {
		return meta, fmt.Errorf("fetch user %q: %w", username, err)
	}
	if err := json.NewDecoder(resp.Body).Decode(&meta); err != nil {
		return meta, fmt.Errorf("decode user %q: %w", username, err)
	}
	return meta, nil
}

// AvatarURL resolves the avatar location for a username. An absent or empty
// avatar_url field is an error, not a soft miss.
func (c *Client) AvatarURL(ctx context.Context, username string) (string, error) {
	meta, err := c.UserMetadata(ctx, username)
	if err != nil {
		return "", err
	}
	if meta.AvatarURL == "" {
		return "", &MissingFieldError{Field: "avatar_url"}
	}
	return meta.AvatarURL, nil
}

// DownloadAvatar fetches the raw image bytes behind an avatar location,
// following redirects.
func (c *Client) DownloadAvatar(ctx context.Context, avatarURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, avatarURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download avatar: %w", err)
	}
	defer resp.Body.Close()

	if err := httpx.CheckResponse(resp); err != nil {
		return nil, fmt.Errorf("download avatar: %w", err)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("download avatar: %w", err)
	}
	return data, nil
}
