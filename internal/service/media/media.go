package media

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"time"

	"github.com/google/uuid"
)

// ObjectStore is the slice of the S3 client the media flows need.
type ObjectStore interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) error
	PublicURL(key string) string
	PresignDownload(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}

var reUnsafe = regexp.MustCompile(`[^A-Za-z0-9.-]`)

// SanitizeFilename replaces every character outside [A-Za-z0-9.-] with an
// underscore so device-supplied names are safe as object key segments.
func SanitizeFilename(name string) string {
	return reUnsafe.ReplaceAllString(name, "_")
}

// ObjectKey builds the storage key for an upload:
// "{prefix}/{patientID}/{epochMillis}-{sanitizedName}".
func ObjectKey(prefix string, patientID uuid.UUID, filename string, now time.Time) string {
	return fmt.Sprintf("%s/%s/%d-%s", prefix, patientID, now.UnixMilli(), SanitizeFilename(filename))
}

// Uploader runs the upload-then-insert flow with a compensating delete when
// the insert fails.
type Uploader struct {
	store ObjectStore
	log   *slog.Logger
}

func NewUploader(store ObjectStore, log *slog.Logger) *Uploader {
	if log == nil {
		log = slog.Default()
	}
	return &Uploader{store: store, log: log}
}

// Put uploads body under the computed key, then calls insert with the public
// URL and key. If insert fails, the uploaded object is deleted best-effort:
// a failed delete is logged and the insert error is returned untouched.
func (u *Uploader) Put(
	ctx context.Context,
	prefix string,
	patientID uuid.UUID,
	filename string,
	body []byte,
	contentType string,
	insert func(url, key string) error,
) (url, key string, err error) {
	key = ObjectKey(prefix, patientID, filename, time.Now())

	if err := u.store.Upload(ctx, key, contentType, bytes.NewReader(body), int64(len(body))); err != nil {
		return "", "", fmt.Errorf("upload object: %w", err)
	}
	url = u.store.PublicURL(key)

	if err := insert(url, key); err != nil {
		if delErr := u.store.Delete(ctx, key); delErr != nil {
			u.log.Error("compensating delete failed, object orphaned",
				"key", key, "error", delErr)
		}
		return "", "", err
	}

	return url, key, nil
}
