package images

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelocatorMove(t *testing.T) {
	t.Parallel()

	live := t.TempDir()
	archive := t.TempDir()

	name := filepath.Join("owner-1", "event-1", "banner.png")
	src := filepath.Join(live, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(src), 0o755))
	require.NoError(t, os.WriteFile(src, []byte("png"), 0o644))

	r := NewRelocator(live, archive)

	dst, err := r.Move(name)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(archive, name), dst)

	b, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "png", string(b))

	_, err = os.Stat(src)
	assert.True(t, os.IsNotExist(err))
}

func TestRelocatorMoveMissingSource(t *testing.T) {
	t.Parallel()

	r := NewRelocator(t.TempDir(), t.TempDir())

	_, err := r.Move("missing/banner.png")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRelocatorRejectsEscapingPaths(t *testing.T) {
	t.Parallel()

	r := NewRelocator(t.TempDir(), t.TempDir())

	for _, name := range []string{"../secret.png", "/etc/passwd", ""} {
		_, err := r.Move(name)
		assert.ErrorIs(t, err, ErrInvalidPath, name)
	}
}
