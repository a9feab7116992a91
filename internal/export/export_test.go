package export

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/vango-dev/vbind/internal/config"
	verrors "github.com/vango-dev/vbind/internal/errors"
)

type fakeS3 struct {
	input *s3.PutObjectInput
	body  []byte
	err   error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = in
	f.body, _ = io.ReadAll(in.Body)
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func TestFileStorePut(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatal(err)
	}

	loc, err := store.Put(context.Background(), "page.html", "text/html", []byte("<p>hi</p>"))
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if loc != filepath.Join(dir, "page.html") {
		t.Errorf("location = %q", loc)
	}
	data, err := os.ReadFile(loc)
	if err != nil || string(data) != "<p>hi</p>" {
		t.Errorf("file = %q, %v", data, err)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("temporary files left behind: %d entries", len(entries))
	}
}

func TestFileStoreCancelled(t *testing.T) {
	store, _ := NewFileStore(t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := store.Put(ctx, "x.html", "", nil); !errors.Is(err, verrors.New("E130")) {
		t.Errorf("error = %v, want E130", err)
	}
}

func TestS3StorePut(t *testing.T) {
	fake := &fakeS3{}
	store := NewS3Store(fake, "snaps", "vbind")

	loc, err := store.Put(context.Background(), "demo.html", "text/html", []byte("body"))
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if loc != "s3://snaps/vbind/demo.html" {
		t.Errorf("location = %q", loc)
	}
	if *fake.input.Bucket != "snaps" || *fake.input.Key != "vbind/demo.html" || *fake.input.ContentType != "text/html" {
		t.Errorf("input = %+v", fake.input)
	}
	if string(fake.body) != "body" {
		t.Errorf("body = %q", fake.body)
	}
}

func TestS3StoreError(t *testing.T) {
	cause := errors.New("access denied")
	store := NewS3Store(&fakeS3{err: cause}, "snaps", "")

	_, err := store.Put(context.Background(), "a.html", "text/html", nil)
	if !errors.Is(err, verrors.New("E130")) || !errors.Is(err, cause) {
		t.Errorf("error = %v, want E130 wrapping the cause", err)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Destination
		wantErr bool
	}{
		{"out/page.html", Destination{Key: "out/page.html"}, false},
		{"s3://bucket/a/b.html", Destination{Bucket: "bucket", Key: "a/b.html"}, false},
		{"s3://bucket", Destination{}, true},
		{"s3://bucket/", Destination{}, true},
		{"s3:///key", Destination{}, true},
		{"s3://bucket/dir/", Destination{}, true},
		{" ", Destination{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				if !errors.Is(err, verrors.New("E131")) {
					t.Fatalf("Parse(%q) error = %v, want E131", tt.in, err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("Parse(%q) = %+v, %v", tt.in, got, err)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()

	store, name, err := Resolve(filepath.Join(dir, "out", "x.html"), config.ExportConfig{})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := store.(*FileStore); !ok || name != "x.html" {
		t.Errorf("Resolve(file) = %T, %q", store, name)
	}

	store, name, err = Resolve("", config.ExportConfig{Dir: dir})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := store.(*FileStore); !ok || filepath.Ext(name) != ".html" {
		t.Errorf("Resolve(empty) = %T, %q", store, name)
	}

	store, name, err = Resolve("s3://b/k.html", config.ExportConfig{S3: config.S3Config{Region: "us-east-1"}})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := store.(*S3Store); !ok || name != "k.html" {
		t.Errorf("Resolve(s3) = %T, %q", store, name)
	}
}

func TestNamesAndTypes(t *testing.T) {
	at := time.Date(2024, 3, 5, 14, 7, 9, 0, time.UTC)
	if got := DefaultName(at, ".html"); got != "snapshot-20240305-140709.html" {
		t.Errorf("DefaultName = %q", got)
	}
	if got := ContentType("a.msgpack"); got != "application/vnd.msgpack" {
		t.Errorf("ContentType(msgpack) = %q", got)
	}
	if got := ContentType("noext"); got != "application/octet-stream" {
		t.Errorf("ContentType(noext) = %q", got)
	}
}
