package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeeker(t *testing.T) {
	r := NewBytesReader([]byte{0, 1})
	s, err := NewSeeker(r)
	require.NoError(t, err)

	// Test that ReadAt doesn't affect the offset.
	b := make([]byte, 3)
	n, err := s.ReadAt(b, 1)
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, 1, n)
	assert.EqualValues(t, 1, b[0])
	n64, err := s.Seek(0, io.SeekCurrent)
	assert.NoError(t, err)
	assert.EqualValues(t, 0, n64)

	// Test Read followed by Seek to the beginning.
	for i := 0; i < 3; i++ {
		n, err = s.Read(b)
		assert.NoError(t, err)
		assert.Equal(t, 2, n)
		assert.EqualValues(t, 0, b[0])
		assert.EqualValues(t, 1, b[1])
		n64, err = s.Seek(0, io.SeekStart)
		assert.NoError(t, err)
		assert.EqualValues(t, 0, n64)
	}
}

func TestFileSystemGet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data")
	require.NoError(t, os.WriteFile(path, []byte("contents"), 0o644))
	engine := NewLocalEngine()
	u, err := ParseURI(path)
	require.NoError(t, err)
	b, err := Get(context.Background(), engine, u)
	require.NoError(t, err)
	assert.Equal(t, "contents", string(b))
	size, err := engine.Size(context.Background(), u)
	require.NoError(t, err)
	assert.EqualValues(t, len("contents"), size)
	ok, err := engine.Exists(context.Background(), u)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestFileSystemNotFound(t *testing.T) {
	engine := NewLocalEngine()
	u, err := ParseURI(filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)
	_, err = engine.Get(context.Background(), u)
	assert.ErrorIs(t, err, ErrNotFound)
	ok, err := engine.Exists(context.Background(), u)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRouterUnknownScheme(t *testing.T) {
	router := NewRemoteEngine()
	u := MustParseURI("file:///tmp/whatever")
	_, err := router.Get(context.Background(), u)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not enabled")
}
