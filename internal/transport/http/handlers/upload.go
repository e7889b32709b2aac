package handlers

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/placeshare/places-service/internal/domain"
)

// ImageStore is the slice of the object store the handlers need.
type ImageStore interface {
	Put(ctx context.Context, key string, data io.Reader, contentType string, size int64) error
	Release(ctx context.Context, key string) error
	PublicURL(key string) string
}

var imageExtByMIME = map[string]string{
	"image/png":  "png",
	"image/jpeg": "jpeg",
	"image/jpg":  "jpg",
}

// readImageUpload pulls the named file part out of an already-parsed
// multipart form, checks type and size, and uploads it under a fresh key.
// Returns the stored key, or "" when the part is absent and required is
// false.
func readImageUpload(ctx context.Context, r *http.Request, store ImageStore, field string, maxBytes int64, required bool) (string, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			if required {
				return "", domain.ErrMissingField(field)
			}
			return "", nil
		}
		return "", domain.ErrInvalidField(field, "unreadable file part")
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	ext, ok := imageExtByMIME[contentType]
	if !ok {
		return "", domain.ErrInvalidField(field, "only png and jpeg images are accepted")
	}

	if maxBytes > 0 && header.Size > maxBytes {
		return "", domain.ErrInvalidField(field, "file too large")
	}

	// buffer so the exact size reaches the store
	var src io.Reader = file
	if maxBytes > 0 {
		src = io.LimitReader(file, maxBytes+1)
	}
	data, err := io.ReadAll(src)
	if err != nil {
		return "", domain.ErrStorage(err)
	}
	if maxBytes > 0 && int64(len(data)) > maxBytes {
		return "", domain.ErrInvalidField(field, "file too large")
	}

	key := "images/" + uuid.NewString() + "." + ext
	if err := store.Put(ctx, key, bytes.NewReader(data), contentType, int64(len(data))); err != nil {
		return "", err
	}
	return key, nil
}
