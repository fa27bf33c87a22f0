package semantic

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"
)

// warmConcurrency bounds parallel embedding calls during cache warm-up.
const warmConcurrency = 8

// VectorStore persists embedding vectors between sessions. Nil disables
// persistence; the cache then operates in memory only.
type VectorStore interface {
	Get(ctx context.Context, model, text string) ([]float32, bool, error)
	Put(ctx context.Context, model, text string, vec []float32) error
}

// Cache memoizes embeddings per (model, text) so repeated validations of
// the same canonical answers skip inference. Safe for concurrent use.
type Cache struct {
	embedder Embedder
	store    VectorStore
	logger   *slog.Logger

	mu      sync.RWMutex
	vectors map[string][]float32
}

// NewCache wraps an embedder with memoization. store may be nil.
func NewCache(embedder Embedder, store VectorStore, logger *slog.Logger) *Cache {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cache{
		embedder: embedder,
		store:    store,
		logger:   logger,
		vectors:  make(map[string][]float32),
	}
}

func (c *Cache) ModelID() string { return c.embedder.ModelID() }

// Embed returns a cached vector or computes, caches, and persists one.
func (c *Cache) Embed(ctx context.Context, text string) ([]float32, error) {
	c.mu.RLock()
	vec, ok := c.vectors[text]
	c.mu.RUnlock()
	if ok {
		return vec, nil
	}

	if c.store != nil {
		stored, found, err := c.store.Get(ctx, c.embedder.ModelID(), text)
		if err != nil {
			c.logger.Warn("embedding store read failed", slog.String("error", err.Error()))
		} else if found {
			c.put(text, stored)
			return stored, nil
		}
	}

	vec, err := c.embedder.Embed(ctx, text)
	if err != nil {
		return nil, err
	}
	c.put(text, vec)

	if c.store != nil {
		if err := c.store.Put(ctx, c.embedder.ModelID(), text, vec); err != nil {
			// Persistence is best-effort; the in-memory entry stands.
			c.logger.Warn("embedding store write failed", slog.String("error", err.Error()))
		}
	}
	return vec, nil
}

// Warm pre-computes embeddings for a batch of texts (typically a session's
// canonical answers) with bounded parallelism. The first error aborts the
// remaining work and is returned; already-computed vectors stay cached.
func (c *Cache) Warm(ctx context.Context, texts []string) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(warmConcurrency)
	for _, text := range texts {
		g.Go(func() error {
			_, err := c.Embed(ctx, text)
			return err
		})
	}
	return g.Wait()
}

// Len reports the number of in-memory cached vectors.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.vectors)
}

func (c *Cache) put(text string, vec []float32) {
	c.mu.Lock()
	c.vectors[text] = vec
	c.mu.Unlock()
}
