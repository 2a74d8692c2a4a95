package record

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/google/uuid"
)

// fakeKeySource serves canned lookups so the signing flow can be tested
// without a database.
type fakeKeySource struct {
	key string
	err error
}

func (f *fakeKeySource) fileKeyFor(context.Context, uuid.UUID, uuid.UUID) (string, error) {
	return f.key, f.err
}

// fakeSigner implements media.ObjectStore; only PresignDownload matters here.
type fakeSigner struct {
	signErr error
	signed  []string
}

func (f *fakeSigner) Upload(context.Context, string, string, io.Reader, int64) error { return nil }
func (f *fakeSigner) PublicURL(key string) string                                    { return "https://cdn.test/" + key }
func (f *fakeSigner) Delete(context.Context, string) error                           { return nil }

func (f *fakeSigner) PresignDownload(_ context.Context, key string) (string, error) {
	if f.signErr != nil {
		return "", f.signErr
	}
	f.signed = append(f.signed, key)
	return "https://cdn.test/signed/" + key, nil
}

func TestDownloadURLSignsStoredKey(t *testing.T) {
	src := &fakeKeySource{key: "health_records/p/1-scan.pdf"}
	store := &fakeSigner{}

	url, err := downloadURL(context.Background(), src, store, uuid.Must(uuid.NewV7()), uuid.Must(uuid.NewV7()))
	if err != nil {
		t.Fatalf("downloadURL() error = %v", err)
	}
	if want := "https://cdn.test/signed/health_records/p/1-scan.pdf"; url != want {
		t.Errorf("url = %q, want %q", url, want)
	}
	if len(store.signed) != 1 || store.signed[0] != src.key {
		t.Errorf("signed keys = %v, want [%q]", store.signed, src.key)
	}
}

func TestDownloadURLMissingRecord(t *testing.T) {
	src := &fakeKeySource{err: ErrNotFound}
	store := &fakeSigner{}

	_, err := downloadURL(context.Background(), src, store, uuid.Must(uuid.NewV7()), uuid.Must(uuid.NewV7()))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("downloadURL() error = %v, want ErrNotFound", err)
	}
	if len(store.signed) != 0 {
		t.Errorf("signed keys = %v, want none", store.signed)
	}
}

func TestDownloadURLSignerFailure(t *testing.T) {
	src := &fakeKeySource{key: "health_records/p/1-scan.pdf"}
	store := &fakeSigner{signErr: errors.New("presign: credentials expired")}

	_, err := downloadURL(context.Background(), src, store, uuid.Must(uuid.NewV7()), uuid.Must(uuid.NewV7()))
	if err == nil {
		t.Fatal("downloadURL() error = nil, want presign failure")
	}
}
