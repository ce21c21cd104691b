package publish

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"slate/internal/config"
	"slate/internal/services"
)

const userAgent = "Slate-Go/0.1.0"

// Post identifies a published platform post.
type Post struct {
	ID  string
	URL string
}

// Poster publishes an image with a caption to one platform.
type Poster interface {
	// Platform reports the platform this poster serves.
	Platform() string
	// PostImage uploads the artifact and publishes it with the caption.
	PostImage(ctx context.Context, imagePath, caption string) (Post, error)
}

// NewPoster builds the configured platform poster. When credentials are
// missing a poster is still returned; every publish attempt fails with a
// configuration error so schedules surface the problem instead of silently
// stalling.
func NewPoster(cfg *config.Config) Poster {
	if !cfg.PublishConfigured() {
		return notConfiguredPoster{platform: cfg.Publish.Platform}
	}

	timeout := time.Duration(cfg.Publish.RequestTimeout) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &twitterPoster{
		platform:    cfg.Publish.Platform,
		accessToken: cfg.Publish.AccessToken,
		client:      &http.Client{Timeout: timeout},
		baseURL:     "https://api.twitter.com/2",
		uploadURL:   "https://upload.twitter.com/1.1/media/upload.json",
	}
}

type notConfiguredPoster struct {
	platform string
}

func (p notConfiguredPoster) Platform() string { return p.platform }

func (p notConfiguredPoster) PostImage(context.Context, string, string) (Post, error) {
	return Post{}, services.Wrap(services.ErrConfiguration, "publish", "post",
		"platform credentials are not configured", nil)
}

// twitterPoster publishes via the platform's media upload + tweet create
// endpoints using a user-context access token.
type twitterPoster struct {
	platform    string
	accessToken string
	client      *http.Client
	baseURL     string
	uploadURL   string
}

func (p *twitterPoster) Platform() string { return p.platform }

func (p *twitterPoster) PostImage(ctx context.Context, imagePath, caption string) (Post, error) {
	mediaID, err := p.uploadMedia(ctx, imagePath)
	if err != nil {
		return Post{}, err
	}
	return p.createPost(ctx, caption, mediaID)
}

func (p *twitterPoster) uploadMedia(ctx context.Context, imagePath string) (string, error) {
	f, err := os.Open(imagePath)
	if err != nil {
		return "", services.Wrap(services.ErrValidation, "publish", "upload", "open artifact", err)
	}
	defer f.Close()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("media", filepath.Base(imagePath))
	if err != nil {
		return "", services.Wrap(services.ErrCollaborator, "publish", "upload", "build form", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return "", services.Wrap(services.ErrCollaborator, "publish", "upload", "read artifact", err)
	}
	if err := writer.Close(); err != nil {
		return "", services.Wrap(services.ErrCollaborator, "publish", "upload", "finish form", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.uploadURL, &body)
	if err != nil {
		return "", services.Wrap(services.ErrCollaborator, "publish", "upload", "build request", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	p.authorize(req)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", services.Wrap(services.ErrTransient, "publish", "upload", "send media", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", p.statusError("upload", resp)
	}

	var decoded struct {
		MediaIDString string `json:"media_id_string"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", services.Wrap(services.ErrCollaborator, "publish", "upload", "decode response", err)
	}
	if decoded.MediaIDString == "" {
		return "", services.Wrap(services.ErrCollaborator, "publish", "upload", "response missing media id", nil)
	}
	return decoded.MediaIDString, nil
}

func (p *twitterPoster) createPost(ctx context.Context, caption, mediaID string) (Post, error) {
	payload := map[string]any{
		"text": caption,
		"media": map[string]any{
			"media_ids": []string{mediaID},
		},
	}
	encoded, err := json.Marshal(payload)
	if err != nil {
		return Post{}, services.Wrap(services.ErrCollaborator, "publish", "post", "encode payload", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/tweets", bytes.NewReader(encoded))
	if err != nil {
		return Post{}, services.Wrap(services.ErrCollaborator, "publish", "post", "build request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	p.authorize(req)

	resp, err := p.client.Do(req)
	if err != nil {
		return Post{}, services.Wrap(services.ErrTransient, "publish", "post", "send post", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Post{}, p.statusError("post", resp)
	}

	var decoded struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return Post{}, services.Wrap(services.ErrCollaborator, "publish", "post", "decode response", err)
	}
	if decoded.Data.ID == "" {
		return Post{}, services.Wrap(services.ErrCollaborator, "publish", "post", "response missing post id", nil)
	}
	return Post{
		ID:  decoded.Data.ID,
		URL: fmt.Sprintf("https://twitter.com/i/status/%s", decoded.Data.ID),
	}, nil
}

func (p *twitterPoster) authorize(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+p.accessToken)
	req.Header.Set("User-Agent", userAgent)
}

func (p *twitterPoster) statusError(operation string, resp *http.Response) error {
	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	detail := strings.TrimSpace(string(snippet))
	if detail == "" {
		detail = resp.Status
	}
	marker := services.ErrCollaborator
	if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
		marker = services.ErrTransient
	}
	return services.Wrap(marker, "publish", operation,
		fmt.Sprintf("platform returned %d: %s", resp.StatusCode, detail), nil)
}
