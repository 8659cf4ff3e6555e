package adapters

import (
	"context"
	"errors"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"
	"time"

	"memorial-banner/internal/core/httpclient"
	"memorial-banner/internal/features/banners/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	path   string
	token  string
	fields map[string]string
}

func persistenceServer(t *testing.T, status int, body string) (*httptest.Server, *capturedRequest) {
	t.Helper()

	captured := &capturedRequest{}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.path = r.URL.Path
		captured.token = r.Header.Get("X-CSRFToken")
		if err := r.ParseMultipartForm(1 << 20); err == nil {
			captured.fields = map[string]string{
				"banner_type":  r.FormValue("banner_type"),
				"banner_value": r.FormValue("banner_value"),
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(ts.Close)

	return ts, captured
}

func tokenClient() *http.Client {
	headers := http.Header{}
	headers.Set("X-CSRFToken", "tok")
	return httpclient.NewClientWithHeaders(time.Second, headers)
}

func TestAPIClient_Persist(t *testing.T) {
	t.Run("ImageSendsRelativePath", func(t *testing.T) {
		ts, captured := persistenceServer(t, http.StatusOK, `{"status":"success"}`)
		client := NewAPIClient(tokenClient(), ts.URL, "42")

		err := client.Persist(context.Background(), domain.ImageOption{Path: "banners/sea.jpg"})
		require.NoError(t, err)

		assert.Equal(t, "/memorials/42/update-banner/", captured.path)
		assert.Equal(t, "tok", captured.token)
		assert.Equal(t, "image", captured.fields["banner_type"])
		assert.Equal(t, "banners/sea.jpg", captured.fields["banner_value"])
	})

	t.Run("ColorSendsDisplayValue", func(t *testing.T) {
		ts, captured := persistenceServer(t, http.StatusCreated, `{}`)
		client := NewAPIClient(tokenClient(), ts.URL, "42")

		require.NoError(t, client.Persist(context.Background(), domain.ColorOption{Color: "rgb(17, 34, 51)"}))
		assert.Equal(t, "color", captured.fields["banner_type"])
		assert.Equal(t, "rgb(17, 34, 51)", captured.fields["banner_value"])
	})

	t.Run("ServerRejection", func(t *testing.T) {
		ts, _ := persistenceServer(t, http.StatusInternalServerError, `{"error":"boom"}`)
		client := NewAPIClient(tokenClient(), ts.URL, "42")

		err := client.Persist(context.Background(), domain.ColorOption{Color: "red"})

		var pe *domain.PersistenceError
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, "Server responded with 500", pe.Message)

		var rejection *domain.ServerRejection
		require.True(t, errors.As(err, &rejection))
		assert.Equal(t, http.StatusInternalServerError, rejection.StatusCode)
	})

	t.Run("Forbidden", func(t *testing.T) {
		ts, _ := persistenceServer(t, http.StatusForbidden, `{}`)
		client := NewAPIClient(tokenClient(), ts.URL, "42")

		err := client.Persist(context.Background(), domain.ColorOption{Color: "red"})
		assert.EqualError(t, err, "Server responded with 403")
	})

	t.Run("TransportError", func(t *testing.T) {
		ts, _ := persistenceServer(t, http.StatusOK, `{}`)
		url := ts.URL
		ts.Close()

		client := NewAPIClient(tokenClient(), url, "42")
		err := client.Persist(context.Background(), domain.ColorOption{Color: "red"})

		var transport *domain.TransportError
		require.True(t, errors.As(err, &transport))
		var pe *domain.PersistenceError
		require.True(t, errors.As(err, &pe))
		assert.NotEmpty(t, pe.Message)
	})

	t.Run("NonJSONSuccess", func(t *testing.T) {
		ts, _ := persistenceServer(t, http.StatusOK, `<html>`)
		client := NewAPIClient(tokenClient(), ts.URL, "42")

		err := client.Persist(context.Background(), domain.ColorOption{Color: "red"})
		var pe *domain.PersistenceError
		require.True(t, errors.As(err, &pe))
		assert.Contains(t, pe.Message, "invalid response body")
	})
}

func TestAPIClient_Settings(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/memorials/42/banner" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(`{"memorial_id":"42","banner_type":"image","banner_value":"banners/sea.jpg"}`))
	}))
	defer ts.Close()

	settings, err := NewAPIClient(httpclient.NewClient(time.Second), ts.URL, "42").Settings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.KindImage, settings.Kind)
	assert.Equal(t, "banners/sea.jpg", settings.Value)

	_, err = NewAPIClient(httpclient.NewClient(time.Second), ts.URL, "7").Settings(context.Background())
	assert.ErrorContains(t, err, "status: 404")
}

func TestAPIClient_CSRFToken(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "csrftoken", Value: "abc", Path: "/"})
		w.Write([]byte(`{"csrf_token":"abc","header":"X-CSRFToken"}`))
	}))
	defer ts.Close()

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	client := httpclient.NewClient(time.Second)
	client.Jar = jar

	token, err := NewAPIClient(client, ts.URL, "42").CSRFToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "abc", token)

	req, _ := http.NewRequest(http.MethodGet, ts.URL, nil)
	require.Len(t, jar.Cookies(req.URL), 1)
}
