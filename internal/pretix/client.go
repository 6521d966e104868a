// Package pretix is a client for the pretix REST API surface the importer
// touches: listing orders, patching one order position, and uploading media.
package pretix

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/nixcon/pretix-github-badge-import/internal/domain"
	"github.com/nixcon/pretix-github-badge-import/internal/httpx"
)

const DefaultBaseURL = "https://pretix.eu/api/v1"

// Defaults for avatar uploads, matching what the badge layout expects.
const (
	DefaultContentType        = "image/png"
	DefaultContentDisposition = `attachment; filename="avatar.png"`
)

type Client struct {
	http      *http.Client
	baseURL   string
	organizer string
	event     string
}

func New(httpClient *http.Client, baseURL, organizer, event string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		http:      httpClient,
		baseURL:   baseURL,
		organizer: organizer,
		event:     event,
	}
}

func (c *Client) eventURL() string {
	return fmt.Sprintf("%s/organizers/%s/events/%s",
		c.baseURL, url.PathEscape(c.organizer), url.PathEscape(c.event))
}

// PatchPosition issues a partial update of one order position. Two payload
// adjustments are required by the service: an explicitly null country is
// rejected, so the key is dropped, and a flat attendee_name may not be sent
// alongside non-empty structured name parts.
func (c *Client) PatchPosition(ctx context.Context, positionID int64, pos domain.Position) error {
	payload, err := positionPayload(pos)
	if err != nil {
		return err
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	u := fmt.Sprintf("%s/orderpositions/%d/", c.eventURL(), positionID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, u, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("patch position %d: %w", positionID, err)
	}
	defer resp.Body.Close()

	if err := httpx.CheckResponse(resp); err != nil {
		return fmt.Errorf("patch position %d: %w", positionID, err)
	}
	return nil
}

func positionPayload(pos domain.Position) (map[string]any, error) {
	raw, err := json.Marshal(pos)
	if err != nil {
		return nil, err
	}
	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, err
	}

	if payload["country"] == nil {
		delete(payload, "country")
	}
	if parts, ok := payload["attendee_name_parts"].(map[string]any); ok && len(parts) > 0 {
		delete(payload, "attendee_name")
	}
	return payload, nil
}

// UploadMedia posts binary content to the generic upload endpoint and
// returns the opaque file id referencing it.
func (c *Client) UploadMedia(ctx context.Context, data []byte, contentType, contentDisposition string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload", bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Content-Disposition", contentDisposition)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload media: %w", err)
	}
	defer resp.Body.Close()

	if err := httpx.CheckResponse(resp); err != nil {
		return "", fmt.Errorf("upload media: %w", err)
	}

	var out struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode upload response: %w", err)
	}
	if out.ID == "" {
		return "", errors.New("upload response missing id")
	}
	return out.ID, nil
}
