package palettestore

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// HTTPStore is a Store implementation that talks to a remote palette store
// server over HTTP. Connection errors are wrapped with "palette store
// unreachable" so callers can detect and surface them gracefully.
type HTTPStore struct {
	baseURL string
	client  *http.Client
}

var _ Store = (*HTTPStore)(nil)

// NewHTTPStore creates a new HTTPStore client pointing at baseURL.
// The underlying http.Client has a 5-second timeout.
func NewHTTPStore(baseURL string) *HTTPStore {
	return &HTTPStore{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

func (s *HTTPStore) listURL() string {
	return s.baseURL + "/v1/palettes"
}

func (s *HTTPStore) itemURL(name string) string {
	return fmt.Sprintf("%s/v1/palettes/%s", s.baseURL, url.PathEscape(name))
}

// do executes an HTTP request, wrapping connection errors with
// "palette store unreachable".
func (s *HTTPStore) do(req *http.Request) (*http.Response, error) {
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("palette store unreachable: %w", err)
	}
	return resp, nil
}

// decodeError reads an error response body and returns an error wrapping the
// sentinel that matches the status code.
func decodeError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	msg := fmt.Sprintf("unexpected status %d", resp.StatusCode)
	var errResp struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(body, &errResp) == nil && errResp.Error != "" {
		msg = errResp.Error
	}

	switch resp.StatusCode {
	case http.StatusNotFound:
		return fmt.Errorf("palette store: %w (%s)", ErrNotFound, msg)
	case http.StatusConflict:
		return fmt.Errorf("palette store: %w (%s)", ErrExists, msg)
	case http.StatusBadRequest:
		if strings.HasPrefix(msg, ErrInvalidName.Error()) {
			return fmt.Errorf("palette store: %w (%s)", ErrInvalidName, msg)
		}
		return fmt.Errorf("palette store: %w (%s)", ErrInvalidPalette, msg)
	default:
		return fmt.Errorf("palette store: %s (status %d)", msg, resp.StatusCode)
	}
}

// Create adds a new palette to the remote store.
func (s *HTTPStore) Create(p SavedPalette) error {
	body, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("palette store: marshal palette: %w", err)
	}
	req, err := http.NewRequest(http.MethodPost, s.listURL(), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("palette store: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.do(req)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusCreated {
		return decodeError(resp)
	}
	resp.Body.Close()
	return nil
}

// Get retrieves a single palette by name.
func (s *HTTPStore) Get(name string) (SavedPalette, error) {
	req, err := http.NewRequest(http.MethodGet, s.itemURL(name), nil)
	if err != nil {
		return SavedPalette{}, fmt.Errorf("palette store: build request: %w", err)
	}

	resp, err := s.do(req)
	if err != nil {
		return SavedPalette{}, err
	}
	if resp.StatusCode != http.StatusOK {
		return SavedPalette{}, decodeError(resp)
	}
	defer resp.Body.Close()

	var p SavedPalette
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return SavedPalette{}, fmt.Errorf("palette store: decode response: %w", err)
	}
	return p, nil
}

// List returns every palette in the remote store.
func (s *HTTPStore) List() ([]SavedPalette, error) {
	req, err := http.NewRequest(http.MethodGet, s.listURL(), nil)
	if err != nil {
		return nil, fmt.Errorf("palette store: build request: %w", err)
	}

	resp, err := s.do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, decodeError(resp)
	}
	defer resp.Body.Close()

	var palettes []SavedPalette
	if err := json.NewDecoder(resp.Body).Decode(&palettes); err != nil {
		return nil, fmt.Errorf("palette store: decode response: %w", err)
	}
	return palettes, nil
}

// Delete removes a palette by name.
func (s *HTTPStore) Delete(name string) error {
	req, err := http.NewRequest(http.MethodDelete, s.itemURL(name), nil)
	if err != nil {
		return fmt.Errorf("palette store: build request: %w", err)
	}

	resp, err := s.do(req)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusNoContent {
		return decodeError(resp)
	}
	resp.Body.Close()
	return nil
}

// Ping checks that the server is reachable and its store is healthy.
func (s *HTTPStore) Ping() error {
	req, err := http.NewRequest(http.MethodGet, s.baseURL+"/v1/ping", nil)
	if err != nil {
		return fmt.Errorf("palette store: build request: %w", err)
	}

	resp, err := s.do(req)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return decodeError(resp)
	}
	resp.Body.Close()
	return nil
}

// Close is a no-op; the HTTP client holds no resources that need releasing.
func (s *HTTPStore) Close() error {
	return nil
}
