package analytics

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeKV is an in-memory KV for exercising the import flow.
type fakeKV struct {
	data map[string]string
	sets int
}

func newFakeKV() *fakeKV { return &fakeKV{data: map[string]string{}} }

func (f *fakeKV) Get(_ context.Context, key string) (string, error) {
	v, ok := f.data[key]
	if !ok {
		return "", ErrNoData
	}
	return v, nil
}

func (f *fakeKV) Set(_ context.Context, key, value string) error {
	f.data[key] = value
	f.sets++
	return nil
}

func newTestService(kv KV) Service {
	return New(kv, "patients:", nil, nil, nil)
}

func TestImportRejectsNonJSONFilename(t *testing.T) {
	kv := newFakeKV()
	svc := newTestService(kv)
	pid := uuid.Must(uuid.NewV7())

	err := svc.Import(context.Background(), pid, "export.csv", []byte(`{}`))
	assert.ErrorIs(t, err, ErrNotJSONFile)
	assert.Zero(t, kv.sets, "nothing should be written for a rejected filename")
}

func TestImportRejectsMalformedJSON(t *testing.T) {
	kv := newFakeKV()
	svc := newTestService(kv)
	pid := uuid.Must(uuid.NewV7())
	ctx := context.Background()

	// Seed good data, then fail an import over it.
	require.NoError(t, svc.Import(ctx, pid, "good.json", []byte(`{"notes": [1, 2]}`)))

	err := svc.Import(ctx, pid, "bad.json", []byte(`{"notes": [1, 2`))
	assert.ErrorIs(t, err, ErrInvalidJSON)

	// Existing data survives the failed import untouched.
	counts, err := svc.DataCounts(ctx, pid)
	require.NoError(t, err)
	assert.Equal(t, 2, counts["notes"])
}

func TestImportOverwritesWholeBlob(t *testing.T) {
	kv := newFakeKV()
	svc := newTestService(kv)
	pid := uuid.Must(uuid.NewV7())
	ctx := context.Background()

	require.NoError(t, svc.Import(ctx, pid, "first.json", []byte(`{"notes": [1], "patients": [1, 2]}`)))
	require.NoError(t, svc.Import(ctx, pid, "second.json", []byte(`{"notes": [1, 2, 3]}`)))

	counts, err := svc.DataCounts(ctx, pid)
	require.NoError(t, err)
	assert.Equal(t, 3, counts["notes"])
	// The replacement dropped the old patients key entirely.
	assert.Equal(t, 0, counts["patients"])
}

func TestImportFilenameCaseInsensitive(t *testing.T) {
	kv := newFakeKV()
	svc := newTestService(kv)
	pid := uuid.Must(uuid.NewV7())

	err := svc.Import(context.Background(), pid, "EXPORT.JSON", []byte(`{}`))
	assert.NoError(t, err)
}

func TestDataCountsWithoutImport(t *testing.T) {
	svc := newTestService(newFakeKV())
	pid := uuid.Must(uuid.NewV7())

	counts, err := svc.DataCounts(context.Background(), pid)
	require.NoError(t, err)
	assert.Len(t, counts, len(Categories))
	for name, n := range counts {
		assert.Zero(t, n, "category %s should be zero before any import", name)
	}
}

func TestRawWithoutImport(t *testing.T) {
	svc := newTestService(newFakeKV())
	pid := uuid.Must(uuid.NewV7())

	_, err := svc.Raw(context.Background(), pid)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestKeyIsolationBetweenPatients(t *testing.T) {
	kv := newFakeKV()
	svc := newTestService(kv)
	ctx := context.Background()

	p1 := uuid.Must(uuid.NewV7())
	p2 := uuid.Must(uuid.NewV7())

	require.NoError(t, svc.Import(ctx, p1, "a.json", []byte(`{"notes": [1, 2]}`)))

	counts, err := svc.DataCounts(ctx, p2)
	require.NoError(t, err)
	assert.Zero(t, counts["notes"], "second patient must not see first patient's data")
}
