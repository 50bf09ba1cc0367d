package filemagic

import (
	"context"
	"errors"
	"io"
	"sync"
)

// ByteSource supplies the leading bytes of some content. Every call reads
// from offset 0; nothing is consumed, so the matcher may ask for a longer
// prefix after a shorter one. Short results are allowed when the content
// ends before n bytes.
type ByteSource interface {
	ReadPrefix(n int) []byte
}

// ============================================================================
// In-memory source
// ============================================================================

// BytesSource is a ByteSource over an in-memory buffer.
type BytesSource []byte

// ReadPrefix returns up to n leading bytes of the buffer.
func (s BytesSource) ReadPrefix(n int) []byte {
	if n <= 0 {
		return nil
	}
	if n > len(s) {
		n = len(s)
	}
	return s[:n]
}

// ============================================================================
// io.ReaderAt source
// ============================================================================

// ReaderAtSource is a ByteSource over an io.ReaderAt such as *os.File.
// Read failures other than io.EOF end the prefix early; the first one is
// kept and reported by Err.
type ReaderAtSource struct {
	r io.ReaderAt

	mu  sync.Mutex
	err error
}

// NewReaderAtSource creates a ByteSource that reads from r.
func NewReaderAtSource(r io.ReaderAt) *ReaderAtSource {
	return &ReaderAtSource{r: r}
}

// ReadPrefix reads up to n bytes starting at offset 0.
func (s *ReaderAtSource) ReadPrefix(n int) []byte {
	if n <= 0 {
		return nil
	}
	buf := make([]byte, n)
	read, err := s.r.ReadAt(buf, 0)
	if err != nil && !errors.Is(err, io.EOF) {
		s.setErr(&SourceError{Op: "readat", Err: err})
	}
	return buf[:read]
}

// Err returns the first read error encountered, if any.
func (s *ReaderAtSource) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *ReaderAtSource) setErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err == nil {
		s.err = err
	}
}

// ============================================================================
// Storage source
// ============================================================================

// ObjectReader opens a stored object for reading. filekit's FileReader and
// its drivers (local, memory, S3, GCS, Azure, SFTP, zip) satisfy it.
type ObjectReader interface {
	Read(ctx context.Context, path string) (io.ReadCloser, error)
}

// StorageSource is a ByteSource over an object in a storage backend. Each
// ReadPrefix call opens a fresh stream, so the object is re-read from the
// start rather than buffered.
type StorageSource struct {
	ctx     context.Context
	storage ObjectReader
	path    string

	mu  sync.Mutex
	err error
}

// NewStorageSource creates a ByteSource for path in storage. ctx bounds
// every read the matcher performs.
func NewStorageSource(ctx context.Context, storage ObjectReader, path string) *StorageSource {
	return &StorageSource{ctx: ctx, storage: storage, path: path}
}

// ReadPrefix reads up to n leading bytes of the object. Open or read
// failures yield a short (possibly empty) prefix and are reported by Err.
func (s *StorageSource) ReadPrefix(n int) []byte {
	if n <= 0 {
		return nil
	}
	if err := s.ctx.Err(); err != nil {
		s.setErr(&SourceError{Op: "read", Path: s.path, Err: err})
		return nil
	}

	rc, err := s.storage.Read(s.ctx, s.path)
	if err != nil {
		s.setErr(&SourceError{Op: "open", Path: s.path, Err: err})
		return nil
	}
	defer rc.Close()

	buf, err := readUpTo(rc, n)
	if err != nil {
		s.setErr(&SourceError{Op: "read", Path: s.path, Err: err})
	}
	return buf
}

// Err returns the first error encountered, if any.
func (s *StorageSource) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *StorageSource) setErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err == nil {
		s.err = err
	}
}

// readUpTo reads at most n bytes from r. Hitting EOF early is not an error.
func readUpTo(r io.Reader, n int) ([]byte, error) {
	buf := make([]byte, n)
	read, err := io.ReadFull(r, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return buf[:read], err
	}
	return buf[:read], nil
}
