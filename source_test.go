package filemagic

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestBytesSource(t *testing.T) {
	src := BytesSource("abcdef")

	tests := []struct {
		n    int
		want string
	}{
		{n: 3, want: "abc"},
		{n: 6, want: "abcdef"},
		{n: 100, want: "abcdef"},
		{n: 0, want: ""},
		{n: -1, want: ""},
	}

	for _, tt := range tests {
		if got := string(src.ReadPrefix(tt.n)); got != tt.want {
			t.Errorf("ReadPrefix(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}

	// Reads always restart at offset 0.
	src.ReadPrefix(2)
	if got := string(src.ReadPrefix(4)); got != "abcd" {
		t.Errorf("second ReadPrefix(4) = %q, want %q", got, "abcd")
	}
}

func TestReaderAtSource(t *testing.T) {
	src := NewReaderAtSource(bytes.NewReader([]byte("GIF89a trailing")))

	if got := string(src.ReadPrefix(6)); got != "GIF89a" {
		t.Errorf("ReadPrefix(6) = %q, want %q", got, "GIF89a")
	}
	if got := string(src.ReadPrefix(PrefixSize)); got != "GIF89a trailing" {
		t.Errorf("ReadPrefix(%d) = %q", PrefixSize, got)
	}
	if err := src.Err(); err != nil {
		t.Errorf("Err() = %v, want nil for a short read", err)
	}
}

func TestReaderAtSourceFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "movie")
	if err := os.WriteFile(path, ebmlHeader("webm"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer f.Close()

	sig, ok := Identify(NewReaderAtSource(f))
	if !ok || sig.Extension != ExtWEBM {
		t.Errorf("Identify() = %s, %v, want webm", sig, ok)
	}
}

type brokenReaderAt struct {
	data []byte
	err  error
}

func (r brokenReaderAt) ReadAt(p []byte, off int64) (int, error) {
	n := copy(p, r.data[off:])
	return n, r.err
}

func TestReaderAtSourceError(t *testing.T) {
	boom := errors.New("bad sector")
	src := NewReaderAtSource(brokenReaderAt{data: []byte{0x89, 'P', 'N', 'G'}, err: boom})

	// The partial prefix is still used.
	if got := src.ReadPrefix(PrefixSize); len(got) != 4 {
		t.Errorf("ReadPrefix() returned %d bytes, want 4", len(got))
	}

	err := src.Err()
	if !errors.Is(err, boom) {
		t.Fatalf("Err() = %v, want wrapping %v", err, boom)
	}
	var se *SourceError
	if !errors.As(err, &se) || se.Op != "readat" {
		t.Errorf("Err() = %#v, want SourceError with Op readat", err)
	}

	// Only the first error is kept.
	src.r = brokenReaderAt{data: []byte{0}, err: errors.New("second")}
	src.ReadPrefix(1)
	if !errors.Is(src.Err(), boom) {
		t.Errorf("Err() = %v, want first error kept", src.Err())
	}
}

// fakeStorage serves objects from memory the way a storage driver would.
type fakeStorage struct {
	objects map[string][]byte
	opens   int
	openErr error
	readErr error
}

func (s *fakeStorage) Read(ctx context.Context, path string) (io.ReadCloser, error) {
	s.opens++
	if s.openErr != nil {
		return nil, s.openErr
	}
	data, ok := s.objects[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	var r io.Reader = bytes.NewReader(data)
	if s.readErr != nil {
		r = &failingReader{data: data, err: s.readErr}
	}
	return io.NopCloser(r), nil
}

func TestStorageSource(t *testing.T) {
	storage := &fakeStorage{objects: map[string][]byte{
		"docs/report":  build(300, ps(0, "%PDF-1.5")),
		"media/clip":   ebmlHeader("matroska"),
		"uploads/note": []byte("just some text"),
	}}
	ctx := context.Background()

	tests := []struct {
		path    string
		wantExt string
		wantOK  bool
	}{
		{path: "docs/report", wantExt: ExtPDF, wantOK: true},
		{path: "media/clip", wantExt: ExtMKV, wantOK: true},
		{path: "uploads/note"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			src := NewStorageSource(ctx, storage, tt.path)
			sig, ok := Identify(src)
			if ok != tt.wantOK {
				t.Fatalf("Identify() ok = %v (%s), want %v", ok, sig, tt.wantOK)
			}
			if ok && sig.Extension != tt.wantExt {
				t.Errorf("Identify() = %s, want %q", sig, tt.wantExt)
			}
			if err := src.Err(); err != nil {
				t.Errorf("Err() = %v, want nil", err)
			}
		})
	}
}

func TestStorageSourceReopensPerRead(t *testing.T) {
	storage := &fakeStorage{objects: map[string][]byte{"clip": ebmlHeader("webm")}}
	src := NewStorageSource(context.Background(), storage, "clip")

	if sig, ok := Identify(src); !ok || sig.Extension != ExtWEBM {
		t.Fatalf("Identify() = %s, %v, want webm", sig, ok)
	}
	// One open for the prefix, one each for the mkv and webm scans.
	if storage.opens != 3 {
		t.Errorf("object opened %d times, want 3", storage.opens)
	}
}

func TestStorageSourceErrors(t *testing.T) {
	boom := errors.New("access denied")

	t.Run("missing object", func(t *testing.T) {
		src := NewStorageSource(context.Background(), &fakeStorage{}, "nope")
		if _, ok := Identify(src); ok {
			t.Error("Identify() ok = true for a missing object")
		}
		var se *SourceError
		if !errors.As(src.Err(), &se) || se.Op != "open" || se.Path != "nope" {
			t.Errorf("Err() = %v, want open error for nope", src.Err())
		}
		if !errors.Is(src.Err(), os.ErrNotExist) {
			t.Errorf("Err() = %v, want wrapping os.ErrNotExist", src.Err())
		}
	})

	t.Run("open failure", func(t *testing.T) {
		src := NewStorageSource(context.Background(), &fakeStorage{openErr: boom}, "a")
		Identify(src)
		if !errors.Is(src.Err(), boom) {
			t.Errorf("Err() = %v, want wrapping %v", src.Err(), boom)
		}
	})

	t.Run("read failure keeps partial prefix", func(t *testing.T) {
		storage := &fakeStorage{
			objects: map[string][]byte{"a": {0xFF, 0xD8, 0xFF}},
			readErr: boom,
		}
		src := NewStorageSource(context.Background(), storage, "a")
		if sig, ok := Identify(src); !ok || sig.Extension != ExtJPG {
			t.Errorf("Identify() = %s, %v, want jpg", sig, ok)
		}
		var se *SourceError
		if !errors.As(src.Err(), &se) || se.Op != "read" {
			t.Errorf("Err() = %v, want read error", src.Err())
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		storage := &fakeStorage{objects: map[string][]byte{"a": {0xFF, 0xD8, 0xFF}}}
		src := NewStorageSource(ctx, storage, "a")
		if _, ok := Identify(src); ok {
			t.Error("Identify() ok = true with a cancelled context")
		}
		if storage.opens != 0 {
			t.Errorf("object opened %d times, want 0", storage.opens)
		}
		if !errors.Is(src.Err(), context.Canceled) {
			t.Errorf("Err() = %v, want context.Canceled", src.Err())
		}
	})
}

func TestSourceErrorMessage(t *testing.T) {
	err := &SourceError{Op: "open", Path: "a/b", Err: os.ErrNotExist}
	if got, want := err.Error(), "open a/b: file does not exist"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	err = &SourceError{Op: "read", Err: io.ErrClosedPipe}
	if got, want := err.Error(), "read: io: read/write on closed pipe"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	if IsSourceError(errors.New("plain")) {
		t.Error("IsSourceError(plain) = true, want false")
	}
}
