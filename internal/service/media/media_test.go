package media

import (
	"context"
	"errors"
	"io"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"clean name untouched", "photo-1.jpg", "photo-1.jpg"},
		{"spaces replaced", "my photo.jpg", "my_photo.jpg"},
		{"unicode replaced", "фото.png", "____.png"},
		{"path separators replaced", "../../etc/passwd", ".._.._etc_passwd"},
		{"dots and dashes kept", "a.b-c.pdf", "a.b-c.pdf"},
		{"empty stays empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeFilename(tt.in); got != tt.want {
				t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestObjectKey(t *testing.T) {
	pid := uuid.Must(uuid.NewV7())
	now := time.UnixMilli(1700000000000)

	key := ObjectKey("known_people", pid, "grandma photo.jpg", now)
	want := "known_people/" + pid.String() + "/1700000000000-grandma_photo.jpg"
	if key != want {
		t.Errorf("ObjectKey() = %q, want %q", key, want)
	}
}

// fakeStore records calls so the compensation contract can be asserted.
type fakeStore struct {
	uploadErr error
	deleteErr error

	uploads []string
	deletes []string
}

func (f *fakeStore) Upload(_ context.Context, key, _ string, _ io.Reader, _ int64) error {
	if f.uploadErr != nil {
		return f.uploadErr
	}
	f.uploads = append(f.uploads, key)
	return nil
}

func (f *fakeStore) PublicURL(key string) string { return "https://cdn.test/" + key }

func (f *fakeStore) PresignDownload(_ context.Context, key string) (string, error) {
	return "https://cdn.test/signed/" + key, nil
}

func (f *fakeStore) Delete(_ context.Context, key string) error {
	f.deletes = append(f.deletes, key)
	return f.deleteErr
}

func TestUploaderPut(t *testing.T) {
	pid := uuid.Must(uuid.NewV7())
	ctx := context.Background()

	t.Run("success inserts with public url", func(t *testing.T) {
		store := &fakeStore{}
		up := NewUploader(store, nil)

		var gotURL, gotKey string
		url, key, err := up.Put(ctx, "health_records", pid, "scan.pdf", []byte("data"), "application/pdf",
			func(u, k string) error {
				gotURL, gotKey = u, k
				return nil
			})
		if err != nil {
			t.Fatalf("Put() error = %v", err)
		}
		if !strings.HasPrefix(key, "health_records/"+pid.String()+"/") {
			t.Errorf("key = %q, want health_records/{patient}/ prefix", key)
		}
		if url != "https://cdn.test/"+key {
			t.Errorf("url = %q, want public url for key", url)
		}
		if gotURL != url || gotKey != key {
			t.Error("insert callback did not receive the final url/key")
		}
		if len(store.deletes) != 0 {
			t.Errorf("deletes = %v, want none on success", store.deletes)
		}
	})

	t.Run("upload failure skips insert", func(t *testing.T) {
		store := &fakeStore{uploadErr: errors.New("boom")}
		up := NewUploader(store, nil)

		inserted := false
		_, _, err := up.Put(ctx, "p", pid, "f.jpg", nil, "image/jpeg",
			func(string, string) error { inserted = true; return nil })
		if err == nil {
			t.Fatal("Put() error = nil, want upload error")
		}
		if inserted {
			t.Error("insert ran despite upload failure")
		}
		if len(store.deletes) != 0 {
			t.Errorf("deletes = %v, want none when nothing was uploaded", store.deletes)
		}
	})

	t.Run("insert failure triggers exactly one compensating delete", func(t *testing.T) {
		store := &fakeStore{}
		up := NewUploader(store, nil)

		insertErr := errors.New("constraint violation")
		_, _, err := up.Put(ctx, "p", pid, "f.jpg", []byte("x"), "image/jpeg",
			func(string, string) error { return insertErr })
		if !errors.Is(err, insertErr) {
			t.Errorf("Put() error = %v, want the insert error unchanged", err)
		}
		if len(store.deletes) != 1 {
			t.Fatalf("deletes = %d, want exactly 1", len(store.deletes))
		}
		if store.deletes[0] != store.uploads[0] {
			t.Errorf("deleted key %q, want uploaded key %q", store.deletes[0], store.uploads[0])
		}
	})

	t.Run("delete failure is swallowed, insert error preserved", func(t *testing.T) {
		store := &fakeStore{deleteErr: errors.New("storage down")}
		up := NewUploader(store, nil)

		insertErr := errors.New("insert failed")
		_, _, err := up.Put(ctx, "p", pid, "f.jpg", []byte("x"), "image/jpeg",
			func(string, string) error { return insertErr })
		if !errors.Is(err, insertErr) {
			t.Errorf("Put() error = %v, want insert error even when delete fails", err)
		}
		// Still only one delete attempt, never retried.
		if len(store.deletes) != 1 {
			t.Errorf("deletes = %d, want 1 (no retries)", len(store.deletes))
		}
	})
}

func TestObjectKeyMillisOrdering(t *testing.T) {
	pid := uuid.Must(uuid.NewV7())
	k1 := ObjectKey("p", pid, "a.jpg", time.UnixMilli(1000))
	k2 := ObjectKey("p", pid, "a.jpg", time.UnixMilli(2000))
	if k1 == k2 {
		t.Error("keys for different timestamps collide")
	}
	// epochMillis segment is numeric
	seg := strings.Split(k1, "/")[2]
	millis := strings.SplitN(seg, "-", 2)[0]
	if _, err := strconv.ParseInt(millis, 10, 64); err != nil {
		t.Errorf("millis segment %q not numeric: %v", millis, err)
	}
}
