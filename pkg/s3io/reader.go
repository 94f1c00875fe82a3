package s3io

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

// Reader reads an S3 object.  Sequential reads stream the object from
// the current offset; ReadAt issues an independent ranged request so it
// does not disturb the stream.
type Reader struct {
	ctx    context.Context
	client s3iface.S3API
	bucket string
	key    string
	size   int64
	offset int64
	body   io.ReadCloser
}

func NewReader(ctx context.Context, path string, client s3iface.S3API) (*Reader, error) {
	info, err := Stat(ctx, path, client)
	if err != nil {
		return nil, err
	}
	bucket, key, err := parsePath(path)
	if err != nil {
		return nil, err
	}
	return &Reader{
		ctx:    ctx,
		client: client,
		bucket: bucket,
		key:    key,
		size:   info.Size,
	}, nil
}

func (r *Reader) Read(p []byte) (int, error) {
	if r.offset >= r.size {
		return 0, io.EOF
	}
	if r.body == nil {
		body, err := r.makeRequest(fmt.Sprintf("bytes=%d-", r.offset))
		if err != nil {
			return 0, err
		}
		r.body = body
	}
	n, err := r.body.Read(p)
	r.offset += int64(n)
	if err == io.EOF && r.offset < r.size {
		err = nil
	}
	return n, err
}

func (r *Reader) ReadAt(p []byte, off int64) (int, error) {
	if off >= r.size {
		return 0, io.EOF
	}
	body, err := r.makeRequest(fmt.Sprintf("bytes=%d-%d", off, off+int64(len(p))-1))
	if err != nil {
		return 0, err
	}
	defer body.Close()
	n, err := io.ReadFull(body, p)
	if err == io.ErrUnexpectedEOF {
		err = io.EOF
	}
	return n, err
}

func (r *Reader) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
	case io.SeekCurrent:
		offset += r.offset
	case io.SeekEnd:
		offset += r.size
	default:
		return 0, fmt.Errorf("s3io.Reader.Seek: invalid whence %d", whence)
	}
	if offset < 0 {
		return 0, fmt.Errorf("s3io.Reader.Seek: negative position")
	}
	if offset != r.offset && r.body != nil {
		r.body.Close()
		r.body = nil
	}
	r.offset = offset
	return offset, nil
}

func (r *Reader) Size() (int64, error) {
	return r.size, nil
}

func (r *Reader) Close() error {
	if r.body != nil {
		err := r.body.Close()
		r.body = nil
		return err
	}
	return nil
}

func (r *Reader) makeRequest(byteRange string) (io.ReadCloser, error) {
	out, err := r.client.GetObjectWithContext(r.ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(r.key),
		Range:  aws.String(byteRange),
	})
	if err != nil {
		return nil, err
	}
	return out.Body, nil
}
