// Package bible is a thin client for the rest.api.bible service. Every call
// is a synchronous GET carrying the api-key header, and the upstream JSON
// body is relayed verbatim – including upstream error payloads.
package bible

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Client calls one fixed Bible edition on the upstream API.
type Client struct {
	baseURL string
	bibleID string
	apiKey  string
	hc      *http.Client
}

// New creates a Client for the given API base URL, Bible edition id and key.
func New(baseURL, bibleID, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		bibleID: bibleID,
		apiKey:  apiKey,
		hc:      http.DefaultClient,
	}
}

// GetChapter fetches a chapter by book code and chapter number,
// e.g. ("GEN", "1") → reference "GEN.1".
func (c *Client) GetChapter(ctx context.Context, book, chapter string) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("/bibles/%s/chapters/%s.%s", c.bibleID, book, chapter))
}

// GetChapterVerses fetches all verses of a chapter by raw reference, e.g. "GEN.1".
func (c *Client) GetChapterVerses(ctx context.Context, chapterID string) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("/bibles/%s/chapters/%s/verses", c.bibleID, chapterID))
}

// GetVerse fetches a single verse by raw reference, e.g. "GEN.1.1".
func (c *Client) GetVerse(ctx context.Context, verseID string) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("/bibles/%s/verses/%s", c.bibleID, verseID))
}

// GetBooks fetches the book listing for the edition.
func (c *Client) GetBooks(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("/bibles/%s/books", c.bibleID))
}

func (c *Client) get(ctx context.Context, path string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("api-key", c.apiKey)

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	// Upstream errors come back as JSON too and are relayed as-is.
	if !json.Valid(body) {
		return nil, fmt.Errorf("bible api: GET %s: %s: non-JSON response", path, resp.Status)
	}
	return json.RawMessage(body), nil
}
