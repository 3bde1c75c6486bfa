package uploader

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/reelkit/reels-ms-go/internal/logger"
	"github.com/reelkit/reels-ms-go/internal/model"
	"github.com/reelkit/reels-ms-go/internal/port"
)

// Client sequences a complete upload: local validation, signed-slot request,
// direct binary transfer to the storage gateway, duration probe, then the
// authenticated metadata write. The steps run strictly in order; any failure
// aborts the remaining steps with no retry and no rollback of prior steps (an
// orphaned partial write is left to the reclaim sweep).
type Client struct {
	baseURL string
	httpc   *http.Client
	tokens  port.TokenSource
	probe   DurationProber
}

func New(baseURL string, httpc *http.Client, tokens port.TokenSource, probe DurationProber) *Client {
	if httpc == nil {
		httpc = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   httpc,
		tokens:  tokens,
		probe:   probe,
	}
}

type UploadInput struct {
	FilePath  string
	Caption   string
	CreatorID string
}

// Upload produces exactly one durable video record, or fails with no record
// created.
func (c *Client) Upload(ctx context.Context, in UploadInput) (*model.Video, error) {
	info, err := os.Stat(in.FilePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFileMissing, err)
	}
	if info.Size() > MaxFileSize {
		return nil, ErrFileTooLarge
	}
	contentType, ok := contentTypeForExt[strings.ToLower(filepath.Ext(in.FilePath))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedType, filepath.Ext(in.FilePath))
	}

	slot, err := c.requestSlot(ctx, filepath.Base(in.FilePath), contentType)
	if err != nil {
		return nil, err
	}

	if err := c.transfer(ctx, slot.UploadURL, in.FilePath, contentType, info.Size()); err != nil {
		return nil, err
	}

	duration := c.probeDuration(ctx, in.FilePath)

	token, err := c.tokens.AccessToken(ctx)
	if err != nil || token == "" {
		return nil, ErrNotAuthenticated
	}

	return c.createRecord(ctx, token, in, slot.PublicURL, duration)
}

func (c *Client) requestSlot(ctx context.Context, filename, contentType string) (port.GenerateUploadSlotOutput, error) {
	body, err := json.Marshal(map[string]string{
		"filename":    filename,
		"contentType": contentType,
	})
	if err != nil {
		return port.GenerateUploadSlotOutput{}, fmt.Errorf("%w: %v", ErrSlotRequest, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload-slot", bytes.NewReader(body))
	if err != nil {
		return port.GenerateUploadSlotOutput{}, fmt.Errorf("%w: %v", ErrSlotRequest, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return port.GenerateUploadSlotOutput{}, fmt.Errorf("%w: %v", ErrSlotRequest, err)
	}
	defer closeBody(resp)

	if resp.StatusCode != http.StatusOK {
		return port.GenerateUploadSlotOutput{}, fmt.Errorf("%w: status %d", ErrSlotRequest, resp.StatusCode)
	}

	var slot port.GenerateUploadSlotOutput
	if err := json.NewDecoder(resp.Body).Decode(&slot); err != nil {
		return port.GenerateUploadSlotOutput{}, fmt.Errorf("%w: %v", ErrSlotRequest, err)
	}
	return slot, nil
}

// transfer PUTs the raw file bytes straight to the signed write URL,
// bypassing the application server entirely.
func (c *Client) transfer(ctx context.Context, uploadURL, path, contentType string, size int64) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransferFailed, err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.Warnf(ctx, "failed to close file %q: %v", path, err)
		}
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, uploadURL, file)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransferFailed, err)
	}
	req.Header.Set("Content-Type", contentType)
	req.ContentLength = size

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransferFailed, err)
	}
	defer closeBody(resp)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: status %d", ErrTransferFailed, resp.StatusCode)
	}
	return nil
}

// probeDuration is best-effort: a probe failure or timeout yields a nil
// duration rather than aborting the pipeline.
func (c *Client) probeDuration(ctx context.Context, path string) *int {
	pctx, cancel := context.WithTimeout(ctx, ProbeTimeout)
	defer cancel()

	d, err := c.probe.Duration(pctx, path)
	if err != nil {
		logger.Warnf(ctx, "⚠️  Duration probe failed for %q: %v", path, err)
		return nil
	}
	return &d
}

type createRecordRequest struct {
	CreatorID   string  `json:"creator_id"`
	VideoURL    string  `json:"video_url"`
	Description *string `json:"description"`
	AspectRatio string  `json:"aspect_ratio"`
	Duration    *int    `json:"duration"`
}

func (c *Client) createRecord(ctx context.Context, token string, in UploadInput, publicURL string, duration *int) (*model.Video, error) {
	payload := createRecordRequest{
		CreatorID:   in.CreatorID,
		VideoURL:    publicURL,
		AspectRatio: model.AspectRatioPortrait,
		Duration:    duration,
	}
	if in.Caption != "" {
		payload.Description = &in.Caption
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/videos", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistFailed, err)
	}
	defer closeBody(resp)

	if resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("%w: status %d", ErrPersistFailed, resp.StatusCode)
	}

	var created model.Video
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistFailed, err)
	}
	return &created, nil
}

func closeBody(resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		logger.Warnf(context.Background(), "failed to close response body: %v", err)
	}
}
