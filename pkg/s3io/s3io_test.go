package s3io

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePath(t *testing.T) {
	bucket, key, err := parsePath("s3://mybucket/a/b/c")
	require.NoError(t, err)
	assert.Equal(t, "mybucket", bucket)
	assert.Equal(t, "a/b/c", key)
}

func TestParsePathInvalid(t *testing.T) {
	_, _, err := parsePath("file:///a/b")
	assert.ErrorIs(t, err, ErrInvalidS3Path)
}

func TestIsS3Path(t *testing.T) {
	assert.True(t, IsS3Path("s3://bucket/key"))
	assert.False(t, IsS3Path("/local/path"))
	assert.False(t, IsS3Path("https://host/key"))
}
