package reports

import (
	"io"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
	"github.com/ulikunitz/xz"
)

// Compression selects how an exported file is wrapped.
type Compression string

const (
	CompressionNone Compression = ""
	CompressionGzip Compression = "gzip"
	CompressionZstd Compression = "zstd"
	CompressionXZ   Compression = "xz"
)

// ErrUnsupportedCompression is returned for unknown compression names.
var ErrUnsupportedCompression = errors.New("reports: unsupported compression")

// ParseCompression accepts the names and file extensions of each codec.
func ParseCompression(value string) (Compression, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(value), ".")) {
	case "", "none":
		return CompressionNone, nil
	case "gzip", "gz":
		return CompressionGzip, nil
	case "zstd", "zst":
		return CompressionZstd, nil
	case "xz":
		return CompressionXZ, nil
	default:
		return CompressionNone, errors.Wrapf(ErrUnsupportedCompression, "%q", value)
	}
}

// Extension is the suffix appended to compressed file names.
func (c Compression) Extension() string {
	switch c {
	case CompressionGzip:
		return ".gz"
	case CompressionZstd:
		return ".zst"
	case CompressionXZ:
		return ".xz"
	default:
		return ""
	}
}

// ContentType is the media type of the compressed file.
func (c Compression) ContentType() string {
	switch c {
	case CompressionGzip:
		return "application/gzip"
	case CompressionZstd:
		return "application/zstd"
	case CompressionXZ:
		return "application/x-xz"
	default:
		return ""
	}
}

// NewWriter wraps w with the codec. The returned close func flushes the
// codec and must be called before reading w.
func (c Compression) NewWriter(w io.Writer) (io.Writer, func() error, error) {
	switch c {
	case CompressionNone:
		return w, func() error { return nil }, nil
	case CompressionGzip:
		gz := gzip.NewWriter(w)
		return gz, gz.Close, nil
	case CompressionZstd:
		enc, err := zstd.NewWriter(w)
		if err != nil {
			return nil, nil, errors.Wrap(err, "reports: zstd writer")
		}
		return enc, enc.Close, nil
	case CompressionXZ:
		xzw, err := xz.NewWriter(w)
		if err != nil {
			return nil, nil, errors.Wrap(err, "reports: xz writer")
		}
		return xzw, xzw.Close, nil
	default:
		return nil, nil, errors.Wrapf(ErrUnsupportedCompression, "%q", string(c))
	}
}

// NewReader undoes NewWriter.
func (c Compression) NewReader(r io.Reader) (io.Reader, func() error, error) {
	switch c {
	case CompressionNone:
		return r, func() error { return nil }, nil
	case CompressionGzip:
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, nil, errors.Wrap(err, "reports: gzip reader")
		}
		return gz, gz.Close, nil
	case CompressionZstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, nil, errors.Wrap(err, "reports: zstd reader")
		}
		return dec, func() error {
			dec.Close()
			return nil
		}, nil
	case CompressionXZ:
		xzr, err := xz.NewReader(r)
		if err != nil {
			return nil, nil, errors.Wrap(err, "reports: xz reader")
		}
		return xzr, func() error { return nil }, nil
	default:
		return nil, nil, errors.Wrapf(ErrUnsupportedCompression, "%q", string(c))
	}
}
