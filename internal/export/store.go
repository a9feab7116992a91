package export

import (
	"context"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/vango-dev/vbind/internal/config"
	"github.com/vango-dev/vbind/internal/errors"
)

// Store persists snapshot bytes under a name.
type Store interface {
	// Put stores data and returns where it was written.
	Put(ctx context.Context, name, contentType string, data []byte) (string, error)
}

// FileStore writes snapshots into a directory.
type FileStore struct {
	dir string
}

// NewFileStore creates dir if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.New("E130").WithValue(dir).Wrap(err)
	}
	return &FileStore{dir: dir}, nil
}

// Put writes data to a temporary file and renames it into place, so readers
// never see a partial snapshot.
func (s *FileStore) Put(ctx context.Context, name, _ string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errors.New("E130").WithValue(name).Wrap(err)
	}

	path := filepath.Join(s.dir, filepath.Base(name))
	f, err := os.CreateTemp(s.dir, ".vbind-*")
	if err != nil {
		return "", errors.New("E130").WithValue(path).Wrap(err)
	}
	tmp := f.Name()

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return "", errors.New("E130").WithValue(path).Wrap(err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return "", errors.New("E130").WithValue(path).Wrap(err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return "", errors.New("E130").WithValue(path).Wrap(err)
	}
	return path, nil
}

// Destination is a parsed export target.
type Destination struct {
	// Bucket is set for s3:// destinations.
	Bucket string

	// Key is the object key, or the file path for file destinations.
	Key string
}

// IsS3 reports whether d names an S3 object.
func (d Destination) IsS3() bool { return d.Bucket != "" }

// Parse parses "s3://bucket/key" or a file path.
func Parse(dest string) (Destination, error) {
	rest, ok := strings.CutPrefix(dest, "s3://")
	if !ok {
		if strings.TrimSpace(dest) == "" {
			return Destination{}, errors.New("E131").WithValue(dest)
		}
		return Destination{Key: dest}, nil
	}
	bucket, key, _ := strings.Cut(rest, "/")
	if bucket == "" || key == "" || strings.HasSuffix(key, "/") {
		return Destination{}, errors.New("E131").
			WithValue(dest).
			WithSuggestion("Use s3://bucket/path/to/object")
	}
	return Destination{Bucket: bucket, Key: key}, nil
}

// DefaultName returns a timestamped snapshot file name.
func DefaultName(now time.Time, ext string) string {
	return "snapshot-" + now.UTC().Format("20060102-150405") + ext
}

// ContentType guesses the content type from the name's extension.
func ContentType(name string) string {
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".msgpack":
		return "application/vnd.msgpack"
	case "":
		return "application/octet-stream"
	default:
		if t := mime.TypeByExtension(ext); t != "" {
			return t
		}
		return "application/octet-stream"
	}
}

// Resolve opens the store for dest and returns the name to Put under.
// An empty dest writes a timestamped file into cfg.Dir.
func Resolve(dest string, cfg config.ExportConfig) (Store, string, error) {
	if dest == "" {
		store, err := NewFileStore(cfg.Dir)
		if err != nil {
			return nil, "", err
		}
		return store, DefaultName(time.Now(), ".html"), nil
	}

	d, err := Parse(dest)
	if err != nil {
		return nil, "", err
	}
	if d.IsS3() {
		return NewS3Store(NewS3Client(cfg.S3), d.Bucket, ""), d.Key, nil
	}

	dir := filepath.Dir(d.Key)
	store, err := NewFileStore(dir)
	if err != nil {
		return nil, "", err
	}
	return store, filepath.Base(d.Key), nil
}
