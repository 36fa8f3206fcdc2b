package storefrontapi

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
)

// MediaKind selects the upload endpoint.
type MediaKind string

const (
	MediaLogo    MediaKind = "logo"
	MediaFavicon MediaKind = "favicon"
	MediaImage   MediaKind = "media"
)

// MaxUploadBytes bounds a single upload.
const MaxUploadBytes = 10 << 20

// ErrUploadTooLarge is returned when the payload exceeds MaxUploadBytes.
var ErrUploadTooLarge = errors.New("upload exceeds size limit")

// Upload sends a file as multipart form data and returns the persisted URL.
// The returned URL is what replaces a pending local asset before a layout save.
func (c *Client) Upload(ctx context.Context, storeID string, kind MediaKind, filename string, r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxUploadBytes+1))
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if len(data) > MaxUploadBytes {
		return "", ErrUploadTooLarge
	}

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	field := string(kind)
	if kind == MediaImage {
		field = "file"
	}
	part, err := form.CreateFormFile(field, filepath.Base(filename))
	if err != nil {
		return "", err
	}
	if _, err := part.Write(data); err != nil {
		return "", err
	}
	if err := form.Close(); err != nil {
		return "", err
	}

	req, err := c.newRequest(ctx, http.MethodPost, c.endpoint("manage", "stores", storeID, string(kind)), &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	var resp uploadResponse
	if err := c.do(req, "upload "+string(kind), &resp); err != nil {
		return "", err
	}
	if resp.URL == "" {
		return "", fmt.Errorf("upload %s: response has no url", kind)
	}
	return resp.URL, nil
}
