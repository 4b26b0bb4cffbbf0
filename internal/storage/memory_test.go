package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	require.NoError(t, s.Put(ctx, "inspections/a/p1.jpg", strings.NewReader("jpeg-bytes"), 10, "image/jpeg"))
	assert.Equal(t, 1, s.Len())

	t.Run("get", func(t *testing.T) {
		rc, obj, err := s.Get(ctx, "inspections/a/p1.jpg")
		require.NoError(t, err)
		defer rc.Close()

		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, "jpeg-bytes", string(data))
		assert.Equal(t, "image/jpeg", obj.ContentType)
		assert.Equal(t, int64(10), obj.Size)
	})

	t.Run("missing", func(t *testing.T) {
		_, _, err := s.Get(ctx, "nope")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("size mismatch", func(t *testing.T) {
		err := s.Put(ctx, "short", strings.NewReader("abc"), 5, "image/png")
		assert.Error(t, err)
		assert.Equal(t, 1, s.Len())
	})

	t.Run("unknown size", func(t *testing.T) {
		require.NoError(t, s.Put(ctx, "any", strings.NewReader("abc"), -1, "image/png"))
		require.NoError(t, s.Delete(ctx, "any"))
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		require.NoError(t, s.Delete(ctx, "inspections/a/p1.jpg"))
		require.NoError(t, s.Delete(ctx, "inspections/a/p1.jpg"))
		assert.Zero(t, s.Len())
	})
}
