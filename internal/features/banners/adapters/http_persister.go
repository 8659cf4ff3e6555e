package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"

	"memorial-banner/internal/features/banners/domain"
)

// APIClient talks to the banner API on behalf of one memorial page.
// The anti-forgery token travels in the client's transport (see httpclient.NewClientWithHeaders).
type APIClient struct {
	client     *http.Client
	baseURL    string
	memorialID string
}

// NewAPIClient creates a client for memorialID on the API at baseURL.
func NewAPIClient(client *http.Client, baseURL, memorialID string) *APIClient {
	return &APIClient{
		client:     client,
		baseURL:    baseURL,
		memorialID: memorialID,
	}
}

// Persist implements ports.Persister.
// It posts banner_type and the option's storage value as multipart form data.
func (a *APIClient) Persist(ctx context.Context, option domain.Option) error {
	state := domain.StateOf(option)

	body := &bytes.Buffer{}
	form := multipart.NewWriter(body)
	if err := form.WriteField("banner_type", string(state.Kind)); err != nil {
		return domain.NewPersistenceError(err)
	}
	if err := form.WriteField("banner_value", state.Value); err != nil {
		return domain.NewPersistenceError(err)
	}
	if err := form.Close(); err != nil {
		return domain.NewPersistenceError(err)
	}

	endpoint := fmt.Sprintf("%s/memorials/%s/update-banner/", a.baseURL, url.PathEscape(a.memorialID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return domain.NewPersistenceError(fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Content-Type", form.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return domain.NewPersistenceError(&domain.TransportError{Err: err})
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domain.NewPersistenceError(&domain.ServerRejection{StatusCode: resp.StatusCode})
	}

	var ack map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&ack); err != nil {
		return domain.NewPersistenceError(fmt.Errorf("invalid response body: %w", err))
	}
	return nil
}

// Settings fetches the stored banner of the memorial.
func (a *APIClient) Settings(ctx context.Context) (*domain.Settings, error) {
	endpoint := fmt.Sprintf("%s/memorials/%s/banner", a.baseURL, url.PathEscape(a.memorialID))

	var settings domain.Settings
	if err := a.getJSON(ctx, endpoint, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// CSRFToken asks the server for an anti-forgery token. The matching cookie
// lands in the client's jar, so the client must have one.
func (a *APIClient) CSRFToken(ctx context.Context) (string, error) {
	var resp struct {
		Token string `json:"csrf_token"`
	}
	if err := a.getJSON(ctx, a.baseURL+"/csrf", &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", fmt.Errorf("server returned an empty csrf token")
	}
	return resp.Token, nil
}

func (a *APIClient) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("banner API returned status: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
