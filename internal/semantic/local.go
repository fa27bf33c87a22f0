package semantic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"
)

// localEmbedReq is the local runtime's /api/embed request body.
type localEmbedReq struct {
	Model string `json:"model"`
	Input string `json:"input"`
	// KeepAlive controls how long the runtime keeps the model resident
	// after this call. "0" releases it immediately.
	KeepAlive string `json:"keep_alive,omitempty"`
}

// localEmbedResp is the local runtime's /api/embed response body.
type localEmbedResp struct {
	Embeddings [][]float32 `json:"embeddings"`
}

// LocalConfig configures the on-device embedding backend.
type LocalConfig struct {
	// URL is the runtime's embed endpoint.
	URL string

	// Model is the embedding model name.
	Model string

	// KeepAlive is how long the runtime keeps the model resident
	// between calls once loaded.
	KeepAlive time.Duration

	// Timeout bounds a single embedding call.
	Timeout time.Duration
}

// DefaultLocalConfig returns defaults for an Ollama-compatible runtime.
func DefaultLocalConfig() LocalConfig {
	return LocalConfig{
		URL:       "http://127.0.0.1:11434/api/embed",
		Model:     "nomic-embed-text",
		KeepAlive: 30 * time.Minute,
		Timeout:   3 * time.Second,
	}
}

// LocalEmbedder talks to an on-device model runtime over HTTP. The model
// occupies real memory (~200MB), so it must be explicitly loaded before
// use and can be unloaded when a practice session ends or memory pressure
// rises. Embed on an unloaded model returns ErrModelNotLoaded.
//
// Safe for concurrent use; the runtime serves embedding calls against a
// resident model concurrently.
type LocalEmbedder struct {
	cfg    LocalConfig
	client *http.Client
	logger *slog.Logger

	mu     sync.RWMutex
	loaded bool
}

// NewLocalEmbedder creates an unloaded embedder. Call Load before Embed.
func NewLocalEmbedder(cfg LocalConfig, logger *slog.Logger) *LocalEmbedder {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.URL == "" {
		cfg.URL = DefaultLocalConfig().URL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultLocalConfig().Timeout
	}
	return &LocalEmbedder{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout + time.Second},
		logger: logger,
	}
}

func (e *LocalEmbedder) ModelID() string { return e.cfg.Model }

// Loaded reports whether the model is currently resident.
func (e *LocalEmbedder) Loaded() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.loaded
}

// Load makes the model resident in the runtime by issuing a tiny warm-up
// embed. Loading an already-loaded model is a no-op.
func (e *LocalEmbedder) Load(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.loaded {
		return nil
	}
	if _, err := e.embed(ctx, "warmup", e.keepAlive()); err != nil {
		return fmt.Errorf("load embedding model %s: %w", e.cfg.Model, err)
	}
	e.loaded = true
	e.logger.Info("embedding model loaded", slog.String("model", e.cfg.Model))
	return nil
}

// Unload asks the runtime to release the model's memory. The embedder
// returns to the unloaded state even if the release request fails, so a
// dead runtime can't wedge the session in a "loaded" state.
func (e *LocalEmbedder) Unload(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.loaded {
		return nil
	}
	e.loaded = false
	if _, err := e.embed(ctx, "unload", "0"); err != nil {
		e.logger.Warn("embedding model release request failed",
			slog.String("model", e.cfg.Model), slog.String("error", err.Error()))
		return fmt.Errorf("unload embedding model %s: %w", e.cfg.Model, err)
	}
	e.logger.Info("embedding model unloaded", slog.String("model", e.cfg.Model))
	return nil
}

// Embed returns the unit-normalized embedding of text.
func (e *LocalEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	e.mu.RLock()
	loaded := e.loaded
	e.mu.RUnlock()
	if !loaded {
		return nil, ErrModelNotLoaded
	}

	vec, err := e.embed(ctx, text, e.keepAlive())
	if err != nil {
		return nil, err
	}
	normalizeVector(vec)
	return vec, nil
}

func (e *LocalEmbedder) keepAlive() string {
	if e.cfg.KeepAlive == 0 {
		return ""
	}
	return e.cfg.KeepAlive.String()
}

func (e *LocalEmbedder) embed(ctx context.Context, text, keepAlive string) ([]float32, error) {
	ctx, cancel := context.WithTimeout(ctx, e.cfg.Timeout)
	defer cancel()

	body, err := json.Marshal(localEmbedReq{Model: e.cfg.Model, Input: text, KeepAlive: keepAlive})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("embed call: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("embed call: status %d: %s", resp.StatusCode, b)
	}

	var parsed localEmbedResp
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode embed response: %w", err)
	}
	if len(parsed.Embeddings) == 0 || len(parsed.Embeddings[0]) == 0 {
		return nil, fmt.Errorf("embed response contained no vector")
	}
	return parsed.Embeddings[0], nil
}
