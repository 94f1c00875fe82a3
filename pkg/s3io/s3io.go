// Package s3io provides read access to S3 objects for the storage
// engine's s3:// scheme.
package s3io

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

var ErrInvalidS3Path = errors.New("path is not a valid s3 location")

func NewClient(cfg *aws.Config) s3iface.S3API {
	sess := session.Must(session.NewSession(cfg))
	return s3.New(sess)
}

func IsS3Path(path string) bool {
	_, _, err := parsePath(path)
	return err == nil
}

func parsePath(path string) (bucket, key string, err error) {
	var u *url.URL
	u, err = url.Parse(path)
	if err != nil {
		return
	}
	if u.Scheme != "s3" {
		err = ErrInvalidS3Path
	}
	bucket = u.Host
	key = strings.TrimPrefix(u.Path, "/")
	return
}

type Info struct {
	Name string
	Size int64
}

func Stat(ctx context.Context, path string, client s3iface.S3API) (Info, error) {
	bucket, key, err := parsePath(path)
	if err != nil {
		return Info{}, err
	}
	out, err := client.HeadObjectWithContext(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return Info{}, err
	}
	return Info{
		Name: key,
		Size: aws.Int64Value(out.ContentLength),
	}, nil
}

func Exists(ctx context.Context, path string, client s3iface.S3API) (bool, error) {
	_, err := Stat(ctx, path, client)
	if err != nil {
		var reqerr interface{ StatusCode() int }
		if errors.As(err, &reqerr) && reqerr.StatusCode() == 404 {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func List(ctx context.Context, path string, client s3iface.S3API) ([]Info, error) {
	bucket, key, err := parsePath(path)
	if err != nil {
		return nil, err
	}
	if key != "" && !strings.HasSuffix(key, "/") {
		key += "/"
	}
	input := &s3.ListObjectsV2Input{
		Bucket:    aws.String(bucket),
		Prefix:    aws.String(key),
		Delimiter: aws.String("/"),
	}
	var infos []Info
	err = client.ListObjectsV2PagesWithContext(ctx, input, func(page *s3.ListObjectsV2Output, lastPage bool) bool {
		for _, obj := range page.Contents {
			infos = append(infos, Info{
				Name: strings.TrimPrefix(aws.StringValue(obj.Key), key),
				Size: aws.Int64Value(obj.Size),
			})
		}
		return true
	})
	return infos, err
}
