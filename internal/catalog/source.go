package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// IndexFile is the name of the index document inside a pack directory.
const IndexFile = "index.json"

// Source supplies the pack index and raw pack documents.
type Source interface {
	Index(ctx context.Context) (*Index, error)
	Pack(ctx context.Context, file string) ([]byte, error)
}

// UnavailableError reports that the index or a pack could not be fetched
// or decoded. Ref names the document that failed.
type UnavailableError struct {
	Ref string
	Err error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("content unavailable (%s): %v", e.Ref, e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }

// DirSource reads packs from a directory laid out as index.json plus one
// JSON file per pack.
type DirSource struct {
	Dir string
}

var _ Source = (*DirSource)(nil)

// NewDirSource creates a DirSource rooted at dir.
func NewDirSource(dir string) *DirSource {
	return &DirSource{Dir: dir}
}

func (s *DirSource) Index(ctx context.Context) (*Index, error) {
	data, err := s.read(ctx, IndexFile)
	if err != nil {
		return nil, err
	}
	return DecodeIndex(data)
}

func (s *DirSource) Pack(ctx context.Context, file string) ([]byte, error) {
	return s.read(ctx, file)
}

func (s *DirSource) read(ctx context.Context, ref string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path, err := s.resolve(ref)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", ref, err)
	}
	return data, nil
}

// resolve maps a pack reference to a path inside Dir.
func (s *DirSource) resolve(ref string) (string, error) {
	if ref == "" {
		return "", errors.New("empty pack reference")
	}
	if filepath.IsAbs(ref) {
		return "", fmt.Errorf("pack reference %q must be relative", ref)
	}
	clean := filepath.Clean(filepath.FromSlash(ref))
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("pack reference %q escapes the pack directory", ref)
	}
	return filepath.Join(s.Dir, clean), nil
}

// DecodeIndex parses an index document.
func DecodeIndex(data []byte) (*Index, error) {
	var idx Index
	if err := json.Unmarshal(data, &idx); err != nil {
		return nil, fmt.Errorf("decode index: %w", err)
	}
	return &idx, nil
}

// Cached wraps a Source so the index and every pack are fetched at most
// once. Failed fetches are not cached. Nothing is ever invalidated.
type Cached struct {
	src Source

	mu    sync.Mutex
	index *Index
	packs map[string][]byte
}

var _ Source = (*Cached)(nil)

// NewCached wraps src with a load-once cache.
func NewCached(src Source) *Cached {
	return &Cached{src: src, packs: make(map[string][]byte)}
}

// Index returns the cached index, loading it on first use. Failures are
// reported as *UnavailableError.
func (c *Cached) Index(ctx context.Context) (*Index, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.index != nil {
		return c.index, nil
	}
	idx, err := c.src.Index(ctx)
	if err != nil {
		return nil, unavailable(IndexFile, err)
	}
	c.index = idx
	return idx, nil
}

// Pack returns the cached pack document, loading it on first use. Failures
// are reported as *UnavailableError.
func (c *Cached) Pack(ctx context.Context, file string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if data, ok := c.packs[file]; ok {
		return data, nil
	}
	data, err := c.src.Pack(ctx, file)
	if err != nil {
		return nil, unavailable(file, err)
	}
	c.packs[file] = data
	return data, nil
}

func unavailable(ref string, err error) error {
	var ue *UnavailableError
	if errors.As(err, &ue) {
		return err
	}
	return &UnavailableError{Ref: ref, Err: err}
}
