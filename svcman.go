package svcman

import (
	"log/slog"

	"github.com/loykin/svcman/internal/history"
	"github.com/loykin/svcman/internal/history/factory"
	"github.com/loykin/svcman/internal/manager"
	"github.com/loykin/svcman/internal/registry"
)

// Re-export core types for external consumers.
// These are aliases so conversions are zero-cost.

type Record = registry.Record

type Registry = registry.Registry

type HistorySink = history.Sink

// Lifecycle errors, re-exported for errors.Is checks by embedders.
var (
	ErrAlreadyExists = manager.ErrAlreadyExists
	ErrNotFound      = manager.ErrNotFound
	ErrMissingPID    = manager.ErrMissingPID
	ErrFormat        = registry.ErrFormat
)

// Manager is a thin facade over internal/manager.Manager.
// It provides a stable public API for embedding.

type Manager struct{ inner *manager.Manager }

// Options configures an embedded Manager. The zero value uses the
// default registry location, no history sink, and the default slog logger.
type Options struct {
	RegistryPath string
	HistoryDSN   string
	Logger       *slog.Logger
}

// New constructs a Manager from opts.
func New(opts Options) (*Manager, error) {
	var store *registry.Store
	if opts.RegistryPath != "" {
		store = registry.NewStore(opts.RegistryPath)
	} else {
		s, err := registry.DefaultStore()
		if err != nil {
			return nil, err
		}
		store = s
	}
	var sink history.Sink
	if opts.HistoryDSN != "" {
		s, err := factory.NewSinkFromDSN(opts.HistoryDSN)
		if err != nil {
			return nil, err
		}
		sink = s
	}
	return &Manager{inner: manager.New(store, sink, opts.Logger)}, nil
}

func (m *Manager) Start(binaryPath string) (Record, error) { return m.inner.Start(binaryPath) }
func (m *Manager) Stop(binaryPath string) (Record, error)  { return m.inner.Stop(binaryPath) }
func (m *Manager) List() (Registry, error)                 { return m.inner.List() }

// NewSinkFromDSN exposes the history sink factory for embedders that
// want to stream lifecycle events elsewhere.
func NewSinkFromDSN(dsn string) (HistorySink, error) { return factory.NewSinkFromDSN(dsn) }
