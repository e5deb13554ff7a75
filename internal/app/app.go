package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/abhishtagatya/zomathon/internal/config"
	"github.com/abhishtagatya/zomathon/internal/logger"
	"github.com/abhishtagatya/zomathon/internal/queries"
	"github.com/abhishtagatya/zomathon/internal/storage"
	"github.com/abhishtagatya/zomathon/pkg/zomato"
)

// App is the example command runtime. It owns the API client, the seen-record
// store and the output stream, and renders API payloads for humans.
type App struct {
	cfg    *config.Config
	client *zomato.Client
	store  storage.Store
	log    logger.Logger
	out    io.Writer
}

// New builds the runtime from config. Extra client options are appended after
// the ones derived from cfg.
func New(cfg *config.Config, log logger.Logger, out io.Writer, opts ...zomato.Option) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if log == nil {
		log = logger.NopLogger{}
	}
	if out == nil {
		out = os.Stdout
	}

	clientOpts := []zomato.Option{
		zomato.WithBaseURL(cfg.BaseURL),
		zomato.WithDebug(cfg.Debug),
		zomato.WithTimeout(cfg.HTTPTimeout),
		zomato.WithLogger(log),
	}
	client, err := zomato.New(cfg.APIKey, append(clientOpts, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("init zomato client: %w", err)
	}

	store, err := storage.NewStore(cfg.StorageType, cfg.BBoltPath, storage.Options{
		TTL:             cfg.StorageTTL,
		CleanupInterval: cfg.StorageCleanupInterval,
	})
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}
	log.DebugObj("storage initialized", "storage_config", map[string]any{
		"type":                     cfg.StorageType,
		"path":                     cfg.BBoltPath,
		"ttl_seconds":              int(cfg.StorageTTL.Seconds()),
		"cleanup_interval_seconds": int(cfg.StorageCleanupInterval.Seconds()),
	})

	return &App{
		cfg:    cfg,
		client: client,
		store:  store,
		log:    log,
		out:    out,
	}, nil
}

// Client exposes the underlying API client.
func (a *App) Client() *zomato.Client { return a.client }

// Close releases the store, logging any errors encountered.
func (a *App) Close() error {
	if a == nil || a.store == nil {
		return nil
	}
	if err := a.store.Close(); err != nil {
		a.log.ErrorObj("storage close failed", "error", err)
		return err
	}
	return nil
}

// RunQuery executes a saved query from the configured queries file and
// prints the raw payload.
func (a *App) RunQuery(ctx context.Context, id string) error {
	reg, err := queries.LoadRegistry(a.cfg.QueriesFile)
	if err != nil {
		return fmt.Errorf("load queries registry: %w", err)
	}

	q, ok := reg.ByID(id)
	if !ok {
		return fmt.Errorf("no saved query %q (known: %v)", id, reg.IDs())
	}
	a.log.InfoObj("running saved query", "query", map[string]any{
		"id":       q.ID,
		"endpoint": q.Endpoint,
	})
	return a.Raw(ctx, zomato.Endpoint(q.Endpoint), q.ZomatoParams())
}

// ListQueries prints the saved query ids and descriptions.
func (a *App) ListQueries() error {
	reg, err := queries.LoadRegistry(a.cfg.QueriesFile)
	if err != nil {
		return fmt.Errorf("load queries registry: %w", err)
	}
	for _, q := range reg.All() {
		fmt.Fprintf(a.out, "%s\t%s\t%s\n", q.ID, q.Endpoint, q.Description)
	}
	return nil
}
