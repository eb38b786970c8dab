package manager

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/loykin/svcman/internal/history"
	"github.com/loykin/svcman/internal/registry"
)

// Manager implements the start/stop transitions over the registry file.
// Every operation loads the registry fresh, brackets the OS action, and
// rewrites the file; nothing is cached between operations.
type Manager struct {
	store  *registry.Store
	sink   history.Sink
	logger *slog.Logger
}

// New returns a manager over the given store. sink may be nil (no audit
// trail); logger may be nil (slog default).
func New(store *registry.Store, sink history.Sink, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{store: store, sink: sink, logger: logger}
}

// Start spawns binaryPath as a detached background process and records it.
// Starting an already-registered path returns ErrAlreadyExists and leaves
// the registry untouched.
func (m *Manager) Start(binaryPath string) (registry.Record, error) {
	reg, err := m.store.Load()
	if err != nil {
		return registry.Record{}, err
	}
	if reg.Contains(binaryPath) {
		m.logger.Warn("service already exists", slog.String("binary_path", binaryPath))
		return registry.Record{}, fmt.Errorf("%w: %s", ErrAlreadyExists, binaryPath)
	}

	pid, err := spawn(binaryPath)
	if err != nil {
		return registry.Record{}, fmt.Errorf("start %s: %w", binaryPath, err)
	}

	rec := registry.Record{BinaryPath: binaryPath, PID: pid}
	if err := m.store.Save(reg.Append(rec)); err != nil {
		// The child is already running; the registry simply no longer knows it.
		return registry.Record{}, err
	}
	m.logger.Info("service started",
		slog.String("binary_path", binaryPath),
		slog.Int("pid", pid))
	m.record(history.EventStart, rec)
	return rec, nil
}

// Stop force-kills the recorded process and removes its record. Any
// failure before the registry rewrite leaves the file unchanged.
func (m *Manager) Stop(binaryPath string) (registry.Record, error) {
	reg, err := m.store.Load()
	if err != nil {
		return registry.Record{}, err
	}
	i := reg.Find(binaryPath)
	if i < 0 {
		return registry.Record{}, fmt.Errorf("%w: %s", ErrNotFound, binaryPath)
	}
	rec := reg[i]
	if rec.PID == 0 {
		return registry.Record{}, fmt.Errorf("%w: %s", ErrMissingPID, binaryPath)
	}

	if err := forceKill(rec.PID); err != nil {
		return registry.Record{}, fmt.Errorf("stop %s (pid %d): %w", binaryPath, rec.PID, err)
	}

	if err := m.store.Save(reg.Remove(i)); err != nil {
		// Process is already gone; the stale record survives in the file.
		return registry.Record{}, err
	}
	m.logger.Info("service stopped",
		slog.String("binary_path", binaryPath),
		slog.Int("pid", rec.PID))
	m.record(history.EventStop, rec)
	return rec, nil
}

// List returns the current registry contents.
func (m *Manager) List() (registry.Registry, error) {
	return m.store.Load()
}

// record sends a lifecycle event to the configured sink. Sink failures
// are logged and swallowed: the registry file, not the audit trail, is
// the source of truth.
func (m *Manager) record(t history.EventType, rec registry.Record) {
	if m.sink == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	e := history.Event{Type: t, OccurredAt: time.Now().UTC(), Record: rec}
	if err := m.sink.Send(ctx, e); err != nil {
		m.logger.Warn("history sink write failed",
			slog.String("binary_path", rec.BinaryPath),
			slog.String("event", string(t)),
			slog.String("error", err.Error()))
	}
}
