package input

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/lunar/internal/infrastructure/config"
	"github.com/bnema/lunar/internal/logging"
)

// Manager owns the callback registry, binding table and dispatcher for one
// window. Application code registers callbacks, binds from a document and
// attaches the manager to the windowing layer; all of it, including Poll,
// must run on the thread that polls the window.
type Manager struct {
	registry   *Registry
	table      *Table
	settings   *Settings
	resolver   *Resolver
	dispatcher *Dispatcher

	source  Source
	path    string
	watcher *config.Watcher

	ctx context.Context
}

// Option configures a Manager.
type Option func(*managerOptions)

type managerOptions struct {
	registry []RegistryOption
	resolver []ResolverOption
}

// WithRegistryOptions forwards options to the callback registry.
func WithRegistryOptions(opts ...RegistryOption) Option {
	return func(o *managerOptions) {
		o.registry = append(o.registry, opts...)
	}
}

// WithResolverOptions forwards options to the binding resolver.
func WithResolverOptions(opts ...ResolverOption) Option {
	return func(o *managerOptions) {
		o.resolver = append(o.resolver, opts...)
	}
}

// NewManager wires a registry, table, resolver and dispatcher around window.
func NewManager(ctx context.Context, window Window, opts ...Option) *Manager {
	var o managerOptions
	for _, opt := range opts {
		opt(&o)
	}

	ctx = logging.WithComponent(ctx, "input")
	registry := NewRegistry(ctx, o.registry...)
	table := NewTable()
	settings := &Settings{}

	return &Manager{
		registry:   registry,
		table:      table,
		settings:   settings,
		resolver:   NewResolver(ctx, registry, table, settings, o.resolver...),
		dispatcher: NewDispatcher(ctx, table, settings, window),
		ctx:        ctx,
	}
}

// RegisterCallback makes handler available to bindings under name.
func (m *Manager) RegisterCallback(name string, handler Handler) error {
	return m.registry.Register(name, handler)
}

// BindFromConfig replaces the bindings with those in the document at path.
// Load failures keep the current bindings and are also logged; callers that
// only want best-effort binding may ignore the error.
//
// When the window passed to NewManager is also a Source and nothing is
// attached yet, the dispatcher is attached to it afterwards, even if the
// document failed to load.
func (m *Manager) BindFromConfig(path string) (*Report, error) {
	m.path = path
	report, err := m.resolver.BindFromConfig(path)

	if m.source == nil {
		if src, ok := m.dispatcher.window.(Source); ok {
			m.AttachTo(src)
		}
	} else if err == nil {
		m.dispatcher.Reset()
	}
	return report, err
}

// AttachTo routes src's notifications to the dispatcher and samples the
// initial pointer baseline.
func (m *Manager) AttachTo(src Source) {
	m.source = src
	m.dispatcher.Reset()
	src.SetSink(m.dispatcher)
	logging.FromContext(m.ctx).Debug().Msg("input dispatcher attached")
}

// Watch starts watching the bound document. Changes are applied by Poll.
func (m *Manager) Watch(path string) error {
	if m.watcher != nil {
		return errors.New("already watching " + m.watcher.Path())
	}
	w, err := config.NewWatcher(m.ctx, path)
	if err != nil {
		return fmt.Errorf("watch bindings: %w", err)
	}
	m.watcher = w
	m.path = path
	return nil
}

// Poll applies a pending document change, if any. It never blocks and is
// meant to be called once per frame before the windowing layer is polled.
func (m *Manager) Poll() bool {
	if m.watcher == nil {
		return false
	}
	select {
	case <-m.watcher.Changes():
	default:
		return false
	}

	report, err := m.resolver.BindFromConfig(m.path)
	if err != nil {
		return false
	}
	logging.FromContext(m.ctx).Info().
		Int("bound", report.Bound).
		Int("skipped", len(report.Errors)).
		Msg("bindings reloaded")
	return true
}

// Registry exposes the callback registry.
func (m *Manager) Registry() *Registry { return m.registry }

// Table exposes the binding table.
func (m *Manager) Table() *Table { return m.table }

// Settings exposes the current global input settings.
func (m *Manager) Settings() Settings { return *m.settings }

// Dispatcher exposes the notification sink.
func (m *Manager) Dispatcher() *Dispatcher { return m.dispatcher }

// Close stops watching and drops every callback and binding.
func (m *Manager) Close() error {
	var err error
	if m.watcher != nil {
		err = m.watcher.Close()
		m.watcher = nil
	}
	m.table.Clear()
	m.registry.Clear()
	return err
}
