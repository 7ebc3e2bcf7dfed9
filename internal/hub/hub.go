package hub

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// OnnxModelFiles are the files needed to run generation with an exported model.
var OnnxModelFiles = []string{"config.json", "tokenizer.json", "model.onnx"}

// Client downloads model files from a Hugging Face compatible hub.
type Client struct {
	client *resty.Client
}

func NewClient(endpoint, token string) *Client {
	client := resty.New().
		SetBaseURL(strings.TrimSuffix(endpoint, "/")).
		SetTimeout(30 * time.Minute)
	if token != "" {
		client.SetAuthToken(token)
	}
	return &Client{client: client}
}

func resolvePath(repo, revision, file string) string {
	return fmt.Sprintf("/%s/resolve/%s/%s", repo, url.PathEscape(revision), file)
}

// Download fetches files from repo at revision into dest. Files already present
// in dest are kept. A partially written file is removed if its download fails.
func (c *Client) Download(ctx context.Context, repo, revision string, files []string, dest string) error {
	if err := os.MkdirAll(dest, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create model directory %s: %w", dest, err)
	}

	for _, file := range files {
		target := filepath.Join(dest, filepath.FromSlash(file))
		if _, err := os.Stat(target); err == nil {
			slog.Info("model file already present", "repo", repo, "file", file)
			continue
		}

		if err := os.MkdirAll(filepath.Dir(target), os.ModePerm); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", target, err)
		}

		if err := c.downloadFile(ctx, resolvePath(repo, revision, file), target); err != nil {
			return fmt.Errorf("error downloading %s from %s@%s: %w", file, repo, revision, err)
		}
		slog.Info("downloaded model file", "repo", repo, "revision", revision, "file", file)
	}

	return nil
}

func (c *Client) downloadFile(ctx context.Context, endpoint, target string) error {
	partial := target + ".partial"

	res, err := c.client.R().
		SetContext(ctx).
		SetOutput(partial).
		Get(endpoint)
	if err != nil {
		os.Remove(partial)
		return err
	}

	if !res.IsSuccess() {
		os.Remove(partial)
		return fmt.Errorf("hub returned status %d", res.StatusCode())
	}

	if err := os.Rename(partial, target); err != nil {
		os.Remove(partial)
		return fmt.Errorf("failed to move %s into place: %w", target, err)
	}
	return nil
}
