// Package labcsv reads lab exports: delimited columns of measurements, growth
// monitoring sheets and plate count sheets. Inputs may be local files or
// gs:// objects, and may be compressed.
package labcsv

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
)

// Open opens path for reading. A gs://bucket/object path is fetched from
// Google Storage with client, which may only be nil for local paths. The
// content is transparently decompressed if it is gzip, zip, xz, zlib or bzip2.
func Open(ctx context.Context, path string, client *storage.Client) (io.ReadCloser, error) {
	var raw io.ReadCloser

	if strings.HasPrefix(path, "gs://") {
		if client == nil {
			return nil, fmt.Errorf("%s: a storage client is required to read from Google Storage", path)
		}

		bucket, object, err := splitGSPath(path)
		if err != nil {
			return nil, err
		}

		r, err := client.Bucket(bucket).Object(object).NewReader(ctx)
		if err != nil {
			return nil, pfx.Err(fmt.Errorf("%s: %w", path, err))
		}
		raw = r
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, pfx.Err(err)
		}
		raw = f
	}

	rc, err := Decompress(raw)
	if err != nil {
		raw.Close()
		return nil, pfx.Err(fmt.Errorf("%s: %w", path, err))
	}

	return &stackedCloser{ReadCloser: rc, under: raw}, nil
}

// splitGSPath splits gs://bucket/path/to/object into its bucket and object.
func splitGSPath(path string) (bucket, object string, err error) {
	parts := strings.SplitN(strings.TrimPrefix(path, "gs://"), "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("tried to split your google storage path into a bucket and an object, but got %d parts: %v", len(parts), parts)
	}

	return parts[0], parts[1], nil
}

// stackedCloser closes the decompressor and then the underlying stream.
type stackedCloser struct {
	io.ReadCloser
	under io.Closer
}

func (s *stackedCloser) Close() error {
	err := s.ReadCloser.Close()
	if uerr := s.under.Close(); err == nil {
		err = uerr
	}
	return err
}

// ClientFor returns a Google Storage client if any of paths lives in a
// bucket, and nil otherwise. The caller closes a non-nil client.
func ClientFor(ctx context.Context, paths ...string) (*storage.Client, error) {
	for _, p := range paths {
		if strings.HasPrefix(p, "gs://") {
			client, err := storage.NewClient(ctx)
			if err != nil {
				return nil, pfx.Err(err)
			}
			return client, nil
		}
	}

	return nil, nil
}
