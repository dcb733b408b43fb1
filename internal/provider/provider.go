// Package provider fetches champion ability data from the public game-data
// CDNs: Meraki Analytics (primary) and Riot's Data Dragon (secondary).
package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

var (
	ErrNotFound    = errors.New("champion not found")
	ErrUnavailable = errors.New("provider unavailable")
	ErrIncomplete  = errors.New("incomplete ability data")
)

// NewHTTPClient returns the client shared by providers. Every call is bounded
// by timeout; a timeout surfaces as ErrUnavailable like any transport error.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

func fetch(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrUnavailable, url, err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusForbidden:
		// The CDNs answer 403 for unknown object keys.
		return nil, fmt.Errorf("%w: %s: status %d", ErrNotFound, url, resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, fmt.Errorf("%w: %s: status %d", ErrUnavailable, url, resp.StatusCode)
	}
	return body, nil
}

func fetchJSON(ctx context.Context, client *http.Client, url string, v any) error {
	body, err := fetch(ctx, client, url)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: parse %s: %w", ErrUnavailable, url, err)
	}
	return nil
}

// objectKeys returns the keys of a JSON object in document order. Catalog
// order decides fuzzy-match ties, so decoding into a map is not an option.
func objectKeys(raw []byte) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected object, got %v", tok)
	}

	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", tok)
		}
		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, nil
}
