package filearg_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/brimdata/zarr/filearg"
	"github.com/brimdata/zarr/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBytes(t *testing.T) {
	h, err := filearg.Prepare(context.Background(), filearg.Bytes([]byte("hello")), filearg.Options{})
	require.NoError(t, err)
	defer h.Close()
	assert.True(t, h.Materialized())
	assert.Equal(t, "bytes", h.Origin())
	r, err := h.Open(context.Background())
	require.NoError(t, err)
	b, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(b))
}

func TestEmptyBytes(t *testing.T) {
	_, err := filearg.Prepare(context.Background(), filearg.Bytes(nil), filearg.Options{CheckEmpty: true})
	var empty *filearg.EmptyDataError
	require.ErrorAs(t, err, &empty)
	assert.Equal(t, "bytes", empty.Context)
	assert.NotContains(t, err.Error(), "buffer position")
}

func TestEmptyBytesAllowed(t *testing.T) {
	h, err := filearg.Prepare(context.Background(), filearg.Bytes(nil), filearg.Options{})
	require.NoError(t, err)
	h.Close()
}

func TestConsumedBufferHint(t *testing.T) {
	// A pre-read buffer yields an emptiness error that reports the read
	// cursor so the caller knows to rewind.
	r := bytes.NewReader([]byte("data"))
	_, err := io.ReadAll(r)
	require.NoError(t, err)
	_, err = filearg.Prepare(context.Background(), filearg.Buffer(r), filearg.Options{CheckEmpty: true})
	var empty *filearg.EmptyDataError
	require.ErrorAs(t, err, &empty)
	assert.Equal(t, "buffer", empty.Context)
	assert.EqualValues(t, 4, empty.ReadPosition)
	assert.Contains(t, err.Error(), "buffer position = 4")
}

func TestBuffer(t *testing.T) {
	h, err := filearg.Prepare(context.Background(), filearg.Buffer(bytes.NewReader([]byte("abc"))), filearg.Options{CheckEmpty: true})
	require.NoError(t, err)
	defer h.Close()
	assert.True(t, h.Materialized())
	r, err := h.Open(context.Background())
	require.NoError(t, err)
	b, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "abc", string(b))
}

func TestPathIsLazy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b\n1,2\n"), 0o644))
	h, err := filearg.Prepare(context.Background(), filearg.Path(path), filearg.Options{CheckEmpty: true})
	require.NoError(t, err)
	defer h.Close()
	assert.False(t, h.Materialized())
	assert.Equal(t, path, h.Path())
	r, err := h.Open(context.Background())
	require.NoError(t, err)
	defer r.Close()
	b, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "a,b\n1,2\n", string(b))
}

func TestPathRecodedToUTF8(t *testing.T) {
	// "café" in ISO-8859-1.
	path := filepath.Join(t.TempDir(), "latin1.csv")
	require.NoError(t, os.WriteFile(path, []byte{'c', 'a', 'f', 0xe9}, 0o644))
	h, err := filearg.Prepare(context.Background(), filearg.Path(path), filearg.Options{Encoding: "ISO-8859-1"})
	require.NoError(t, err)
	defer h.Close()
	assert.True(t, h.Materialized())
	r, err := h.Open(context.Background())
	require.NoError(t, err)
	b, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "café", string(b))
}

func TestBytesRecodedToUTF8(t *testing.T) {
	h, err := filearg.Prepare(context.Background(), filearg.Bytes([]byte{0xe9}), filearg.Options{Encoding: "ISO-8859-1"})
	require.NoError(t, err)
	defer h.Close()
	r, err := h.Open(context.Background())
	require.NoError(t, err)
	b, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "é", string(b))
}

func TestUnsupportedEncoding(t *testing.T) {
	_, err := filearg.Prepare(context.Background(), filearg.Bytes([]byte("x")), filearg.Options{Encoding: "no-such-encoding"})
	var encErr *filearg.EncodingError
	require.ErrorAs(t, err, &encErr)
	assert.Equal(t, "no-such-encoding", encErr.Encoding)
}

func TestURLFetchedEagerly(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("remote data"))
	}))
	defer srv.Close()
	h, err := filearg.Prepare(context.Background(), filearg.URL(srv.URL), filearg.Options{
		Remote: storage.NewRemoteEngine(),
	})
	require.NoError(t, err)
	defer h.Close()
	assert.True(t, h.Materialized())
	assert.Equal(t, srv.URL, h.Origin())
	r, err := h.Open(context.Background())
	require.NoError(t, err)
	b, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "remote data", string(b))
}

func TestEmptyURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()
	_, err := filearg.Prepare(context.Background(), filearg.URL(srv.URL), filearg.Options{
		CheckEmpty: true,
		Remote:     storage.NewRemoteEngine(),
	})
	var empty *filearg.EmptyDataError
	require.ErrorAs(t, err, &empty)
	assert.Equal(t, srv.URL, empty.Context)
}

func TestURLWithoutRemoteResolver(t *testing.T) {
	_, err := filearg.Prepare(context.Background(), filearg.URL("https://example.com/data.csv"), filearg.Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no remote resolver")
}

func TestRemotePathRejected(t *testing.T) {
	_, err := filearg.Prepare(context.Background(), filearg.Path("s3://bucket/key"), filearg.Options{})
	require.Error(t, err)
}

func TestPathListRequiresPrepareList(t *testing.T) {
	_, err := filearg.Prepare(context.Background(), filearg.PathList([]string{"a"}), filearg.Options{})
	require.Error(t, err)
	_, err = filearg.PrepareList(context.Background(), filearg.Path("a"), filearg.Options{})
	require.Error(t, err)
}

func TestPrepareList(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for _, name := range []string{"one.csv", "two.csv"} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(name), 0o644))
		paths = append(paths, path)
	}
	handles, err := filearg.PrepareList(context.Background(), filearg.PathList(paths), filearg.Options{})
	require.NoError(t, err)
	require.Len(t, handles, 2)
	for i, h := range handles {
		assert.False(t, h.Materialized())
		assert.Equal(t, paths[i], h.Path())
		require.NoError(t, h.Close())
	}
}

func TestPrepareListMixedKinds(t *testing.T) {
	_, err := filearg.PrepareList(context.Background(), filearg.PathList([]string{
		"/tmp/local.csv",
		"https://example.com/remote.csv",
	}), filearg.Options{Remote: storage.NewRemoteEngine()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mixed")
}

func TestPrepareListEmpty(t *testing.T) {
	_, err := filearg.PrepareList(context.Background(), filearg.PathList(nil), filearg.Options{})
	require.Error(t, err)
}

func TestSourceKind(t *testing.T) {
	assert.Equal(t, filearg.KindBytes, filearg.Bytes(nil).Kind())
	assert.Equal(t, filearg.KindBuffer, filearg.Buffer(bytes.NewReader(nil)).Kind())
	assert.Equal(t, filearg.KindPath, filearg.Path("p").Kind())
	assert.Equal(t, filearg.KindURL, filearg.URL("u").Kind())
	assert.Equal(t, filearg.KindPathList, filearg.PathList(nil).Kind())
}
