package input

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/lunar/internal/infrastructure/config"
	"github.com/bnema/lunar/internal/logging"
)

// Settings are the global input settings read alongside the bindings.
type Settings struct {
	// ResetPointerOnEnter re-samples the pointer baseline on window enter.
	ResetPointerOnEnter bool
}

// Report summarises one resolver run.
type Report struct {
	// Bound is the number of identifiers in the resulting table.
	Bound int
	// Unbound counts entries explicitly set to NoopCallback.
	Unbound   int
	Errors    []*EntryError
	Conflicts []Conflict
	// Applied is false when the table was left untouched.
	Applied bool
}

// Err joins every entry error and conflict, or returns nil.
func (r *Report) Err() error {
	if r == nil {
		return nil
	}
	errs := make([]error, 0, len(r.Errors)+len(r.Conflicts))
	for _, e := range r.Errors {
		errs = append(errs, e)
	}
	for _, c := range r.Conflicts {
		errs = append(errs, c)
	}
	return errors.Join(errs...)
}

// Resolver turns bindings documents into Table contents.
type Resolver struct {
	registry *Registry
	table    *Table
	settings *Settings
	strict   bool
	ctx      context.Context
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithStrictBindings keeps the previous table when a document has any entry
// error or conflict, and reports all of them at once.
func WithStrictBindings() ResolverOption {
	return func(r *Resolver) {
		r.strict = true
	}
}

// NewResolver creates a resolver writing into table and settings.
func NewResolver(ctx context.Context, registry *Registry, table *Table, settings *Settings, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		registry: registry,
		table:    table,
		settings: settings,
		ctx:      ctx,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// BindFromConfig loads the document at path and applies it. A document that
// cannot be loaded leaves the table and settings as they were; the returned
// error then matches config.ErrLoad.
func (r *Resolver) BindFromConfig(path string) (*Report, error) {
	log := logging.FromContext(r.ctx)

	doc, err := config.Load(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Int("kept", r.table.Len()).Msg("bindings not loaded, keeping current table")
		return &Report{Bound: r.table.Len()}, err
	}

	report, err := r.Apply(doc)
	if err == nil {
		log.Info().
			Str("path", path).
			Int("bound", report.Bound).
			Int("skipped", len(report.Errors)).
			Msg("bindings loaded")
	}
	return report, err
}

// Apply resolves every entry of doc and replaces the table with the result.
// Entry-level failures are logged and skipped; the rest are still bound.
func (r *Resolver) Apply(doc *config.Document) (*Report, error) {
	log := logging.FromContext(r.ctx)
	report := &Report{}
	entries := make(map[Identifier]Binding, len(doc.Bindings))

	for i, entry := range doc.Bindings {
		id, binding, skip, entryErr := r.resolveEntry(i, entry)
		if entryErr != nil {
			log.Warn().Err(entryErr).Msg("skipping binding")
			report.Errors = append(report.Errors, entryErr)
			continue
		}
		if skip {
			report.Unbound++
			continue
		}

		if prev, exists := entries[id]; exists {
			conflict := Conflict{ID: id, Previous: prev.Callback, Callback: binding.Callback, Index: i}
			log.Warn().Err(conflict).Msg("binding replaced")
			report.Conflicts = append(report.Conflicts, conflict)
		}
		entries[id] = binding

		log.Debug().
			Stringer("input", id).
			Str("callback", binding.Callback).
			Stringer("mods", binding.Mods).
			Msg("binding resolved")
	}

	if r.strict {
		if err := report.Err(); err != nil {
			report.Bound = r.table.Len()
			return report, fmt.Errorf("bindings rejected: %w", err)
		}
	}

	r.table.replace(entries)
	// An unset setting keeps its current value.
	if r.settings != nil && doc.Settings.ResetPointerOnEnter != nil {
		r.settings.ResetPointerOnEnter = *doc.Settings.ResetPointerOnEnter
	}
	report.Bound = len(entries)
	report.Applied = true
	return report, nil
}

// resolveEntry resolves one document entry. skip is true for entries
// explicitly left unbound.
func (r *Resolver) resolveEntry(index int, entry config.BindingEntry) (Identifier, Binding, bool, *EntryError) {
	fail := func(err error, suggestion string) (Identifier, Binding, bool, *EntryError) {
		return 0, Binding{}, false, &EntryError{
			Index:      index,
			Input:      entry.Input,
			Callback:   entry.Callback,
			Suggestion: suggestion,
			Err:        err,
		}
	}

	id, ok := LookupInput(entry.Input)
	if !ok {
		return fail(ErrUnknownInput, suggest(normalizeName(entry.Input), canonicalNames()))
	}

	if entry.Callback == NoopCallback {
		return id, Binding{}, true, nil
	}

	handler, err := r.registry.Resolve(entry.Callback)
	if err != nil {
		return fail(ErrUnknownCallback, suggest(entry.Callback, r.registry.Names()))
	}

	var mods Modifier
	for _, name := range entry.Modifiers {
		mod, ok := LookupModifier(name)
		if !ok {
			return fail(fmt.Errorf("%w: %q", ErrUnknownModifier, name), "")
		}
		mods |= mod
	}

	return id, Binding{Callback: entry.Callback, Handler: handler, Mods: mods}, false, nil
}
