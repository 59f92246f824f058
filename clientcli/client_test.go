package clientcli_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagarc03/pawtrait/clientcli"
)

func TestNew(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		cfg := &clientcli.Config{
			Endpoint: "http://localhost:8080",
			FamilyID: "family-smith",
		}

		client, err := clientcli.New(cfg)
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("nil config", func(t *testing.T) {
		_, err := clientcli.New(nil)
		assert.ErrorIs(t, err, clientcli.ErrConfigRequired)
	})

	t.Run("empty endpoint uses default", func(t *testing.T) {
		cfg := &clientcli.Config{FamilyID: "family-smith"}

		client, err := clientcli.New(cfg)
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("trailing slash removed", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/health", r.URL.Path)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client, err := clientcli.New(&clientcli.Config{Endpoint: server.URL + "/"})
		require.NoError(t, err)

		require.NoError(t, client.Health(context.Background()))
	})
}

func TestClient_Health(t *testing.T) {
	t.Run("healthy server", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/health", r.URL.Path)
			assert.Empty(t, r.Header.Get(clientcli.FamilyHeader), "health must not send a family id")
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client, err := clientcli.New(&clientcli.Config{Endpoint: server.URL})
		require.NoError(t, err)

		assert.NoError(t, client.Health(context.Background()))
	})

	t.Run("unhealthy server", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client, err := clientcli.New(&clientcli.Config{Endpoint: server.URL})
		require.NoError(t, err)

		assert.Error(t, client.Health(context.Background()))
	})
}

func TestClient_RequestUpload(t *testing.T) {
	t.Run("successful grant", func(t *testing.T) {
		expiresAt := time.Now().Add(15 * time.Minute).UTC().Truncate(time.Second)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/photos/upload-url", r.URL.Path)
			assert.Equal(t, "family-smith", r.Header.Get(clientcli.FamilyHeader))

			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "image/jpeg", body["contentType"])
			assert.Equal(t, "Beach day", body["title"])

			resp := map[string]any{
				"photoId":          "p1",
				"objectKey":        "photos/family-smith/p1.jpg",
				"uploadUrl":        "https://bucket.s3.amazonaws.com/photos/family-smith/p1.jpg?sig",
				"contentType":      "image/jpeg",
				"title":            "Beach day",
				"expiresAt":        expiresAt.Format(time.RFC3339),
				"expiresInSeconds": 900,
			}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(resp)
		}))
		defer server.Close()

		client, err := clientcli.New(&clientcli.Config{Endpoint: server.URL, FamilyID: "family-smith"})
		require.NoError(t, err)

		grant, err := client.RequestUpload(context.Background(), "image/jpeg", "Beach day")
		require.NoError(t, err)
		assert.Equal(t, "p1", grant.PhotoID)
		assert.Equal(t, "photos/family-smith/p1.jpg", grant.ObjectKey)
		assert.Contains(t, grant.UploadURL, "https://")
		assert.Equal(t, int64(900), grant.ExpiresIn)
	})

	t.Run("missing family id", func(t *testing.T) {
		client, err := clientcli.New(&clientcli.Config{Endpoint: "http://localhost:8080"})
		require.NoError(t, err)

		_, err = client.RequestUpload(context.Background(), "image/jpeg", "")
		assert.ErrorIs(t, err, clientcli.ErrFamilyIDRequired)
	})

	t.Run("forbidden family", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"error":"family_not_allowed","message":"family id is not allow-listed"}`))
		}))
		defer server.Close()

		client, err := clientcli.New(&clientcli.Config{Endpoint: server.URL, FamilyID: "stranger"})
		require.NoError(t, err)

		_, err = client.RequestUpload(context.Background(), "", "")
		assert.ErrorIs(t, err, clientcli.ErrForbidden)
	})
}

func TestClient_Record(t *testing.T) {
	t.Run("successful record", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/photos", r.URL.Path)
			assert.Equal(t, "family-smith", r.Header.Get(clientcli.FamilyHeader))

			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "p1", body["photoId"])

			resp := map[string]any{
				"familyId":   "family-smith",
				"photoId":    "p1",
				"objectKey":  "photos/family-smith/p1.jpg",
				"uploadedAt": time.Now().UTC().Format(time.RFC3339),
				"title":      "Beach day",
			}
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(resp)
		}))
		defer server.Close()

		client, err := clientcli.New(&clientcli.Config{Endpoint: server.URL, FamilyID: "family-smith"})
		require.NoError(t, err)

		photo, err := client.Record(context.Background(), "p1", "photos/family-smith/p1.jpg", "image/jpeg", "Beach day", "", "")
		require.NoError(t, err)
		assert.Equal(t, "p1", photo.PhotoID)
		assert.Equal(t, "family-smith", photo.FamilyID)
	})

	t.Run("empty photo id rejected locally", func(t *testing.T) {
		client, err := clientcli.New(&clientcli.Config{Endpoint: "http://localhost:8080", FamilyID: "family-smith"})
		require.NoError(t, err)

		_, err = client.Record(context.Background(), "", "", "", "", "", "")
		assert.ErrorIs(t, err, clientcli.ErrEmptyPhotoID)
	})

	t.Run("server rejects record", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"missing_photo_id","message":"photoId is required"}`))
		}))
		defer server.Close()

		client, err := clientcli.New(&clientcli.Config{Endpoint: server.URL, FamilyID: "family-smith"})
		require.NoError(t, err)

		_, err = client.Record(context.Background(), "p1", "", "", "", "", "")
		assert.ErrorIs(t, err, clientcli.ErrBadRequest)
	})
}

func TestClient_List(t *testing.T) {
	t.Run("returns photos", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/photos", r.URL.Path)
			assert.Equal(t, "family-smith", r.Header.Get(clientcli.FamilyHeader))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"items":[
				{"familyId":"family-smith","photoId":"p2","objectKey":"photos/family-smith/p2.jpg","uploadedAt":"2026-08-02T10:00:00Z"},
				{"familyId":"family-smith","photoId":"p1","objectKey":"photos/family-smith/p1.jpg","uploadedAt":"2026-08-01T10:00:00Z"}
			]}`))
		}))
		defer server.Close()

		client, err := clientcli.New(&clientcli.Config{Endpoint: server.URL, FamilyID: "family-smith"})
		require.NoError(t, err)

		photos, err := client.List(context.Background())
		require.NoError(t, err)
		require.Len(t, photos, 2)
		assert.Equal(t, "p2", photos[0].PhotoID)
		assert.Equal(t, "p1", photos[1].PhotoID)
	})

	t.Run("empty list", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"items":[]}`))
		}))
		defer server.Close()

		client, err := clientcli.New(&clientcli.Config{Endpoint: server.URL, FamilyID: "family-smith"})
		require.NoError(t, err)

		photos, err := client.List(context.Background())
		require.NoError(t, err)
		assert.Empty(t, photos)
	})
}

func TestClient_ContentURL(t *testing.T) {
	t.Run("captures redirect", func(t *testing.T) {
		const signed = "https://bucket.s3.amazonaws.com/photos/family-smith/p1.jpg?sig"
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/photos/p1/content", r.URL.Path)
			assert.Equal(t, "family-smith", r.Header.Get(clientcli.FamilyHeader))

			w.Header().Set("Location", signed)
			w.WriteHeader(http.StatusFound)
		}))
		defer server.Close()

		client, err := clientcli.New(&clientcli.Config{Endpoint: server.URL, FamilyID: "family-smith"})
		require.NoError(t, err)

		url, err := client.ContentURL(context.Background(), "p1")
		require.NoError(t, err)
		assert.Equal(t, signed, url)
	})

	t.Run("not found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"not_found","message":"photo not found"}`))
		}))
		defer server.Close()

		client, err := clientcli.New(&clientcli.Config{Endpoint: server.URL, FamilyID: "family-smith"})
		require.NoError(t, err)

		_, err = client.ContentURL(context.Background(), "nope")
		assert.ErrorIs(t, err, clientcli.ErrNotFound)

		var apiErr *clientcli.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.True(t, apiErr.IsNotFound())
	})

	t.Run("empty photo id rejected locally", func(t *testing.T) {
		client, err := clientcli.New(&clientcli.Config{Endpoint: "http://localhost:8080", FamilyID: "family-smith"})
		require.NoError(t, err)

		_, err = client.ContentURL(context.Background(), "")
		assert.ErrorIs(t, err, clientcli.ErrEmptyPhotoID)
	})
}

func TestClient_Upload(t *testing.T) {
	t.Run("full flow", func(t *testing.T) {
		var putBody []byte
		mux := http.NewServeMux()
		var serverURL string

		mux.HandleFunc("POST /photos/upload-url", func(w http.ResponseWriter, r *http.Request) {
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "image/jpeg", body["contentType"])

			resp := map[string]any{
				"photoId":          "p1",
				"objectKey":        "photos/family-smith/p1.jpg",
				"uploadUrl":        serverURL + "/bucket/photos/family-smith/p1.jpg?sig",
				"contentType":      "image/jpeg",
				"expiresAt":        time.Now().Add(15 * time.Minute).UTC().Format(time.RFC3339),
				"expiresInSeconds": 900,
			}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(resp)
		})
		mux.HandleFunc("PUT /bucket/photos/family-smith/p1.jpg", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "image/jpeg", r.Header.Get("Content-Type"))
			var err error
			putBody, err = io.ReadAll(r.Body)
			require.NoError(t, err)
			w.WriteHeader(http.StatusOK)
		})
		mux.HandleFunc("POST /photos", func(w http.ResponseWriter, r *http.Request) {
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "p1", body["photoId"])
			assert.Equal(t, "photos/family-smith/p1.jpg", body["objectKey"])

			resp := map[string]any{
				"familyId":    "family-smith",
				"photoId":     "p1",
				"objectKey":   "photos/family-smith/p1.jpg",
				"uploadedAt":  time.Now().UTC().Format(time.RFC3339),
				"contentType": "image/jpeg",
				"title":       "Beach day",
			}
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(resp)
		})

		server := httptest.NewServer(mux)
		defer server.Close()
		serverURL = server.URL

		tmpDir := t.TempDir()
		localPath := filepath.Join(tmpDir, "beach.jpg")
		require.NoError(t, os.WriteFile(localPath, []byte("jpeg bytes"), 0o600))

		client, err := clientcli.New(&clientcli.Config{Endpoint: server.URL, FamilyID: "family-smith"})
		require.NoError(t, err)

		result, err := client.Upload(context.Background(), clientcli.UploadOptions{
			LocalPath: localPath,
			Title:     "Beach day",
		})
		require.NoError(t, err)
		assert.Equal(t, "p1", result.PhotoID)
		assert.Equal(t, "photos/family-smith/p1.jpg", result.ObjectKey)
		assert.Equal(t, int64(len("jpeg bytes")), result.Size)
		assert.Equal(t, "jpeg bytes", string(putBody))
	})

	t.Run("missing path", func(t *testing.T) {
		client, err := clientcli.New(&clientcli.Config{Endpoint: "http://localhost:8080", FamilyID: "family-smith"})
		require.NoError(t, err)

		_, err = client.Upload(context.Background(), clientcli.UploadOptions{})
		assert.ErrorIs(t, err, clientcli.ErrEmptyPath)
	})

	t.Run("storage failure surfaces", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte(`{"error":"storage_error","message":"could not sign upload url"}`))
		}))
		defer server.Close()

		tmpDir := t.TempDir()
		localPath := filepath.Join(tmpDir, "beach.jpg")
		require.NoError(t, os.WriteFile(localPath, []byte("jpeg bytes"), 0o600))

		client, err := clientcli.New(&clientcli.Config{Endpoint: server.URL, FamilyID: "family-smith"})
		require.NoError(t, err)

		_, err = client.Upload(context.Background(), clientcli.UploadOptions{LocalPath: localPath})
		assert.ErrorIs(t, err, clientcli.ErrStorageUnavailable)
	})
}

func TestAPIError(t *testing.T) {
	err := &clientcli.APIError{StatusCode: http.StatusNotFound, Body: `{"error":"not_found"}`}

	assert.ErrorIs(t, err, clientcli.ErrNotFound)
	assert.NotErrorIs(t, err, clientcli.ErrForbidden)
	assert.Contains(t, err.Error(), "404")
	assert.False(t, errors.Is(errors.New("other"), clientcli.ErrNotFound))
}
