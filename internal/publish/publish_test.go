package publish

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"slate/internal/services"
)

func writeArtifact(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "diagram.txt")
	if err := os.WriteFile(path, []byte("card"), 0o644); err != nil {
		t.Fatalf("write artifact: %v", err)
	}
	return path
}

func TestPostImagePublishes(t *testing.T) {
	var gotCaption string
	var gotMediaIDs []string

	upload := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
		}
		if _, _, err := r.FormFile("media"); err != nil {
			t.Errorf("missing media part: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"media_id_string": "media-1"})
	}))
	defer upload.Close()

	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Text  string `json:"text"`
			Media struct {
				MediaIDs []string `json:"media_ids"`
			} `json:"media"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		gotCaption = payload.Text
		gotMediaIDs = payload.Media.MediaIDs
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{"data": map[string]string{"id": "post-77"}})
	}))
	defer api.Close()

	poster := &twitterPoster{
		platform:    "twitter",
		accessToken: "token",
		client:      &http.Client{Timeout: 5 * time.Second},
		baseURL:     api.URL,
		uploadURL:   upload.URL,
	}

	post, err := poster.PostImage(context.Background(), writeArtifact(t), "quiz time")
	if err != nil {
		t.Fatalf("PostImage failed: %v", err)
	}
	if post.ID != "post-77" {
		t.Fatalf("unexpected post id %s", post.ID)
	}
	if gotCaption != "quiz time" {
		t.Fatalf("caption mismatch: %q", gotCaption)
	}
	if len(gotMediaIDs) != 1 || gotMediaIDs[0] != "media-1" {
		t.Fatalf("media ids mismatch: %v", gotMediaIDs)
	}
}

func TestPostImageSurfacesAPIError(t *testing.T) {
	upload := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"errors":[{"message":"bad media"}]}`, http.StatusBadRequest)
	}))
	defer upload.Close()

	poster := &twitterPoster{
		platform:    "twitter",
		accessToken: "token",
		client:      &http.Client{Timeout: 5 * time.Second},
		baseURL:     "http://unused.invalid",
		uploadURL:   upload.URL,
	}

	if _, err := poster.PostImage(context.Background(), writeArtifact(t), "caption"); err == nil {
		t.Fatal("expected error from failed upload")
	}
}

func TestNotConfiguredPosterFails(t *testing.T) {
	poster := notConfiguredPoster{platform: "twitter"}
	_, err := poster.PostImage(context.Background(), "unused", "unused")
	if !services.IsConfiguration(err) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}
