package input

import (
	"context"
	"fmt"
	"sort"

	"github.com/bnema/lunar/internal/logging"
)

// Registry maps action names to handlers. It is filled by application code
// before bindings are resolved and is not safe for concurrent use.
type Registry struct {
	handlers map[string]Handler
	strict   bool
	ctx      context.Context
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithStrictRegistration makes Register reject names that are already taken
// instead of replacing the previous handler.
func WithStrictRegistration() RegistryOption {
	return func(r *Registry) {
		r.strict = true
	}
}

// NewRegistry creates an empty callback registry.
func NewRegistry(ctx context.Context, opts ...RegistryOption) *Registry {
	r := &Registry{
		handlers: make(map[string]Handler),
		ctx:      ctx,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register stores handler under name. By default a later registration under
// the same name replaces the earlier one.
func (r *Registry) Register(name string, handler Handler) error {
	if name == "" {
		return fmt.Errorf("register callback: empty name: %w", ErrInvalidCallback)
	}
	if handler == nil {
		return fmt.Errorf("register callback %q: nil handler: %w", name, ErrInvalidCallback)
	}

	if _, exists := r.handlers[name]; exists {
		if r.strict {
			return fmt.Errorf("register callback %q: %w", name, ErrDuplicateCallback)
		}
		logging.FromContext(r.ctx).Debug().Str("callback", name).Msg("replacing registered callback")
	}

	r.handlers[name] = handler
	return nil
}

// Resolve returns the handler registered under name.
func (r *Registry) Resolve(name string) (Handler, error) {
	h, ok := r.handlers[name]
	if !ok {
		return nil, fmt.Errorf("resolve callback %q: %w", name, ErrUnknownCallback)
	}
	return h, nil
}

// Clear removes every registered handler.
func (r *Registry) Clear() {
	clear(r.handlers)
}

// Len returns the number of registered handlers.
func (r *Registry) Len() int {
	return len(r.handlers)
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
