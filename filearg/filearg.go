// Package filearg normalizes the heterogeneous source arguments accepted
// by readers.  Given raw bytes, an in-memory buffer, a local path, a URL,
// or a list of paths, Prepare produces a scoped handle yielding either a
// path string (when the source is safe to read lazily) or an in-memory
// byte reader (when the source must be materialized: remote fetch,
// encoding re-coding, or a pre-read buffer).
package filearg

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/brimdata/zarr/pkg/storage"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

type Kind int

const (
	KindBytes Kind = iota
	KindBuffer
	KindPath
	KindURL
	KindPathList
)

func (k Kind) String() string {
	switch k {
	case KindBytes:
		return "bytes"
	case KindBuffer:
		return "buffer"
	case KindPath:
		return "path"
	case KindURL:
		return "url"
	case KindPathList:
		return "path-list"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Source is a discriminated union over the representations a reader
// accepts.  Construct one with Bytes, Buffer, Path, URL, or PathList;
// mixed-kind lists are unrepresentable by construction.
type Source struct {
	kind   Kind
	bytes  []byte
	buffer io.Reader
	pos    int64
	path   string
	url    string
	paths  []string
}

func Bytes(b []byte) Source {
	return Source{kind: KindBytes, bytes: b, pos: -1}
}

// Buffer wraps an in-memory reader.  If r is seekable, its current read
// position is captured as a diagnostic hint for emptiness errors.
func Buffer(r io.Reader) Source {
	pos := int64(-1)
	if s, ok := r.(io.Seeker); ok {
		if p, err := s.Seek(0, io.SeekCurrent); err == nil {
			pos = p
		}
	}
	return Source{kind: KindBuffer, buffer: r, pos: pos}
}

func Path(path string) Source {
	return Source{kind: KindPath, path: path, pos: -1}
}

func URL(url string) Source {
	return Source{kind: KindURL, url: url, pos: -1}
}

func PathList(paths []string) Source {
	return Source{kind: KindPathList, paths: paths, pos: -1}
}

func (s Source) Kind() Kind {
	return s.kind
}

// Options configures preparation.  Remote access credentials and other
// engine-specific settings travel inside the injected Remote engine, not
// through this struct.
type Options struct {
	// Encoding names the character encoding of the source.  Empty or a
	// UTF-8 variant passes bytes through; any other supported encoding
	// forces a full read, decode, and re-encode to UTF-8.
	Encoding string
	// CheckEmpty makes an empty resulting byte buffer an EmptyDataError.
	CheckEmpty bool
	// Remote resolves URL sources.  When nil, URL sources fail rather
	// than falling back to some other resolution.
	Remote storage.Engine
	// Local reads path sources that must be materialized.  Defaults to
	// storage.NewLocalEngine().
	Local storage.Engine
	Logger *zap.Logger
}

func (o Options) withDefaults() Options {
	if o.Local == nil {
		o.Local = storage.NewLocalEngine()
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

// Handle is a scoped acquisition of a prepared source.  It carries either
// a path for lazy consumption or a materialized in-memory reader.  The
// caller must Close it on every exit path.
type Handle struct {
	origin string
	path   string
	reader storage.Reader
	local  storage.Engine
}

// Origin returns the human-readable label of the data's origin: "bytes",
// "buffer", or the path or URL it came from.
func (h *Handle) Origin() string {
	return h.origin
}

// Materialized returns true if the source was read into memory.
func (h *Handle) Materialized() bool {
	return h.reader != nil
}

// Path returns the local filesystem path for lazy consumption, or the
// empty string if the source was materialized.
func (h *Handle) Path() string {
	return h.path
}

// Open returns a byte reader on the handle's contents.  For a
// materialized handle it returns the in-memory reader; for a path handle
// it opens the file.  The returned reader is owned by the caller except
// for the materialized case, where Close on the handle releases it.
func (h *Handle) Open(ctx context.Context) (storage.Reader, error) {
	if h.reader != nil {
		return h.reader, nil
	}
	u, err := storage.ParseURI(h.path)
	if err != nil {
		return nil, err
	}
	return h.local.Get(ctx, u)
}

func (h *Handle) Close() error {
	if h.reader != nil {
		return h.reader.Close()
	}
	return nil
}

// Prepare normalizes a single-valued source.  Use PrepareList for a
// path-list source.
func Prepare(ctx context.Context, src Source, opts Options) (*Handle, error) {
	opts = opts.withDefaults()
	switch src.kind {
	case KindBytes:
		return materialize(src.bytes, "bytes", src.pos, opts)
	case KindBuffer:
		b, err := io.ReadAll(src.buffer)
		if err != nil {
			return nil, err
		}
		return materialize(b, "buffer", src.pos, opts)
	case KindPath:
		return preparePath(ctx, src.path, opts)
	case KindURL:
		return prepareURL(ctx, src.url, opts)
	case KindPathList:
		return nil, errors.New("path-list source requires PrepareList")
	}
	return nil, fmt.Errorf("unknown source kind %q", src.kind)
}

// PrepareList normalizes a path-list source to one handle per element.
// All elements must be of the same locality: all local paths or all
// remote URLs; mixed lists are not resolved.  On error, handles acquired
// so far are closed.
func PrepareList(ctx context.Context, src Source, opts Options) ([]*Handle, error) {
	if src.kind != KindPathList {
		return nil, fmt.Errorf("PrepareList requires a path-list source, got %q", src.kind)
	}
	if len(src.paths) == 0 {
		return nil, errors.New("empty path list")
	}
	opts = opts.withDefaults()
	uris := make([]*storage.URI, len(src.paths))
	remote := false
	for i, path := range src.paths {
		u, err := storage.ParseURI(path)
		if err != nil {
			return nil, err
		}
		if i == 0 {
			remote = u.IsRemote()
		} else if u.IsRemote() != remote {
			return nil, errors.New("mixed local and remote paths are not resolved")
		}
		uris[i] = u
	}
	var handles []*Handle
	for i, u := range uris {
		var h *Handle
		var err error
		if remote {
			h, err = fetch(ctx, u, src.paths[i], opts)
		} else if isPassthroughEncoding(opts.Encoding) {
			h = &Handle{origin: src.paths[i], path: u.Filepath(), local: opts.Local}
		} else {
			h, err = materializeURI(ctx, opts.Local, u, src.paths[i], opts)
		}
		if err != nil {
			return nil, closeAll(handles, err)
		}
		handles = append(handles, h)
	}
	return handles, nil
}

func preparePath(ctx context.Context, path string, opts Options) (*Handle, error) {
	u, err := storage.ParseURI(path)
	if err != nil {
		return nil, err
	}
	if u.IsRemote() {
		return nil, fmt.Errorf("path source cannot be remote (use a URL source): %s", path)
	}
	if isPassthroughEncoding(opts.Encoding) {
		return &Handle{origin: path, path: u.Filepath(), local: opts.Local}, nil
	}
	return materializeURI(ctx, opts.Local, u, path, opts)
}

func prepareURL(ctx context.Context, url string, opts Options) (*Handle, error) {
	u, err := storage.ParseURI(url)
	if err != nil {
		return nil, err
	}
	if !u.IsRemote() {
		return nil, fmt.Errorf("url source must have a remote scheme: %s", url)
	}
	return fetch(ctx, u, url, opts)
}

// fetch eagerly reads a remote source into memory through the injected
// remote engine.
func fetch(ctx context.Context, u *storage.URI, origin string, opts Options) (*Handle, error) {
	if opts.Remote == nil {
		return nil, fmt.Errorf("no remote resolver configured for %s", origin)
	}
	opts.Logger.Debug("fetching remote source", zap.String("uri", u.String()))
	b, err := storage.Get(ctx, opts.Remote, u)
	if err != nil {
		return nil, err
	}
	return materialize(b, origin, -1, opts)
}

func materializeURI(ctx context.Context, engine storage.Engine, u *storage.URI, origin string, opts Options) (*Handle, error) {
	b, err := storage.Get(ctx, engine, u)
	if err != nil {
		return nil, err
	}
	return materialize(b, origin, -1, opts)
}

func materialize(b []byte, origin string, pos int64, opts Options) (*Handle, error) {
	if !isPassthroughEncoding(opts.Encoding) {
		var err error
		if b, err = recode(b, opts.Encoding); err != nil {
			return nil, err
		}
		opts.Logger.Debug("re-encoded source to UTF-8",
			zap.String("origin", origin),
			zap.String("encoding", opts.Encoding))
	}
	if opts.CheckEmpty && len(b) == 0 {
		return nil, &EmptyDataError{Context: origin, ReadPosition: pos}
	}
	return &Handle{origin: origin, reader: storage.NewBytesReader(b)}, nil
}

func closeAll(handles []*Handle, err error) error {
	for _, h := range handles {
		err = multierr.Append(err, h.Close())
	}
	return err
}
