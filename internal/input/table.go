package input

import "sort"

// Binding is a handler bound to an identifier, gated by a modifier requirement.
type Binding struct {
	// Callback is the registry name the handler was resolved from.
	Callback string
	Handler  Handler
	// Mods must all be held for the handler to fire. Zero means unconditional.
	Mods Modifier
}

// Table maps identifiers to their single binding.
type Table struct {
	entries map[Identifier]Binding
}

// NewTable creates an empty binding table.
func NewTable() *Table {
	return &Table{entries: make(map[Identifier]Binding)}
}

// Bind inserts or replaces the binding for id.
func (t *Table) Bind(id Identifier, b Binding) {
	t.entries[id] = b
}

// Lookup returns the binding for id, if any.
func (t *Table) Lookup(id Identifier) (Binding, bool) {
	b, ok := t.entries[id]
	return b, ok
}

// Clear removes all bindings.
func (t *Table) Clear() {
	clear(t.entries)
}

// Len returns the number of bound identifiers.
func (t *Table) Len() int {
	return len(t.entries)
}

// TableEntry is one row of Entries.
type TableEntry struct {
	ID Identifier
	Binding
}

// Entries returns every binding ordered by identifier.
func (t *Table) Entries() []TableEntry {
	out := make([]TableEntry, 0, len(t.entries))
	for id, b := range t.entries {
		out = append(out, TableEntry{ID: id, Binding: b})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// replace swaps in a freshly built entry map, dropping everything bound before.
func (t *Table) replace(entries map[Identifier]Binding) {
	t.entries = entries
}
