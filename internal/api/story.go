package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"

	"github.com/go-playground/validator/v10"

	"cofau/internal/domain"
)

var (
	// ErrInvalidUpload wraps the validator failure on story upload input.
	ErrInvalidUpload = errors.New("invalid story upload")

	validate = validator.New(validator.WithRequiredStructEnabled())
)

// UploadStory posts media plus caption as multipart form data. The upload is
// validated locally first; an over-limit caption never reaches the backend.
func (c *Client) UploadStory(ctx context.Context, media io.Reader, up domain.StoryUpload) (domain.Story, error) {
	if err := validate.Struct(up); err != nil {
		return domain.Story{}, errors.Join(ErrInvalidUpload, err)
	}

	body := new(bytes.Buffer)
	w := multipart.NewWriter(body)

	part, err := w.CreateFormFile("media", filepath.Base(up.Filename))
	if err != nil {
		return domain.Story{}, err
	}
	if _, err := io.Copy(part, media); err != nil {
		return domain.Story{}, err
	}
	if err := w.WriteField("caption", up.Caption); err != nil {
		return domain.Story{}, err
	}
	if err := w.Close(); err != nil {
		return domain.Story{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Base+"/api/stories/upload", body)
	if err != nil {
		return domain.Story{}, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.do(req)
	if err != nil {
		return domain.Story{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return domain.Story{}, fmt.Errorf("cofau post /api/stories/upload: %s", resp.Status)
	}

	var story domain.Story
	if err := decodeJSON(resp.Body, &story); err != nil {
		return domain.Story{}, err
	}
	story.MediaURL = NormalizeMediaURL(c.Base, story.MediaURL)
	return story, nil
}
