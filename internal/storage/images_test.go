package storage

import (
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *ImageStore {
	t.Helper()
	store, err := NewImageStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestSaveOpenRoundTrip(t *testing.T) {
	store := newTestStore(t)
	payload := []byte("jpeg bytes")

	key, err := store.Save(BucketBefore, "drill.jpg", bytes.NewReader(payload))
	require.NoError(t, err)
	assert.Equal(t, "drill.jpg", key)

	r, err := store.Open(BucketBefore, "drill.jpg")
	require.NoError(t, err)
	defer r.Close()
	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, payload, got)

	ok, size, err := store.Exists(BucketBefore, "drill.jpg")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(len(payload)), size)
}

func TestBucketsAreIsolated(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Save(BucketBefore, "drill.jpg", bytes.NewReader([]byte("x")))
	require.NoError(t, err)

	ok, _, err := store.Exists(BucketAfter, "drill.jpg")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDeleteIsIdempotent(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Save(BucketAfter, "1_drill_return_100.jpg", bytes.NewReader([]byte("x")))
	require.NoError(t, err)

	require.NoError(t, store.Delete(BucketAfter, "1_drill_return_100.jpg"))
	ok, _, err := store.Exists(BucketAfter, "1_drill_return_100.jpg")
	require.NoError(t, err)
	assert.False(t, ok)

	// Missing blob: still no error.
	assert.NoError(t, store.Delete(BucketAfter, "1_drill_return_100.jpg"))
}

func TestRejectsEscapingKeys(t *testing.T) {
	store := newTestStore(t)

	for _, key := range []string{"", "../escape.jpg", "sub/dir.jpg", "/etc/passwd"} {
		_, err := store.Save(BucketBefore, key, bytes.NewReader(nil))
		assert.Error(t, err, "key %q", key)
	}

	_, err := store.Save("uploads", "ok.jpg", bytes.NewReader(nil))
	assert.Error(t, err, "unknown bucket")
}

func TestListAfter(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Save(BucketAfter, "1_drill_return_100.jpg", bytes.NewReader([]byte("a")))
	require.NoError(t, err)
	_, err = store.Save(BucketAfter, "2_saw_return_200.jpg", bytes.NewReader([]byte("b")))
	require.NoError(t, err)
	_, err = store.Save(BucketBefore, "drill.jpg", bytes.NewReader([]byte("c")))
	require.NoError(t, err)

	listing, err := store.ListAfter()
	require.NoError(t, err)
	require.Len(t, listing, 2)
	assert.Contains(t, listing, "1_drill_return_100.jpg")
	assert.Contains(t, listing, "2_saw_return_200.jpg")
	for _, modTime := range listing {
		assert.WithinDuration(t, time.Now(), modTime, time.Minute)
	}
}

func TestKeyBuilders(t *testing.T) {
	assert.Equal(t, "drill.jpg", BeforeKey("drill", ".jpg"))

	at := time.Unix(1700000000, 0)
	assert.Equal(t, "3_angle-grinder_return_1700000000.png", AfterKey(3, "angle-grinder", at, ".png"))
}
