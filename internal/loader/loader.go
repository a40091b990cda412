// Package loader reads skin documents from disk and tokenizes them into
// node trees. Parsed trees are cached by content hash so reloading an
// unchanged file skips the tokenizer.
package loader

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/errgroup"

	"github.com/eqforge/sidl/internal/core/diag"
	"github.com/eqforge/sidl/internal/core/node"
	"github.com/eqforge/sidl/internal/core/observability/log"
)

const DefaultCacheSize = 64

type Loader struct {
	mu    sync.RWMutex
	cache map[uint64]*node.Node
	max   int
	log   log.Log
}

func New(l log.Log, cacheSize int) *Loader {
	if l == nil {
		l = log.Nop()
	}
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	return &Loader{
		cache: make(map[uint64]*node.Node),
		max:   cacheSize,
		log:   l,
	}
}

// Document reads and tokenizes one file. An unreadable file is a
// DocumentUnavailable error, an untokenizable one MalformedDocument; both
// are fatal for that document.
func (l *Loader) Document(path string) (*node.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, diag.NewDocumentError(diag.ErrDocumentUnavailable, path, err)
	}
	return l.Bytes(path, data)
}

// Bytes tokenizes an in-memory document, consulting the cache first. The
// path only labels errors.
func (l *Loader) Bytes(path string, data []byte) (*node.Node, error) {
	key := xxhash.Sum64(data)

	l.mu.RLock()
	cached, ok := l.cache[key]
	l.mu.RUnlock()
	if ok {
		l.log.Debug("document cache hit", log.String("path", path))
		return cached, nil
	}

	root, err := node.ParseBytes(data)
	if err != nil {
		return nil, diag.NewDocumentError(diag.ErrMalformedDocument, path, err)
	}

	l.mu.Lock()
	if len(l.cache) >= l.max {
		// skins hold a few dozen files at most, a full reset is fine
		l.cache = make(map[uint64]*node.Node)
	}
	l.cache[key] = root
	l.mu.Unlock()

	return root, nil
}

// Directory tokenizes every file in dir matching pattern, fanning the
// files out across goroutines. Each document's own pipeline stays
// synchronous.
func (l *Loader) Directory(ctx context.Context, dir, pattern string) (map[string]*node.Node, error) {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, diag.NewDocumentError(diag.ErrDocumentUnavailable, dir, err)
	}

	var mu sync.Mutex
	out := make(map[string]*node.Node, len(matches))

	g, ctx := errgroup.WithContext(ctx)
	for _, path := range matches {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			root, err := l.Document(path)
			if err != nil {
				return err
			}
			mu.Lock()
			out[path] = root
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
