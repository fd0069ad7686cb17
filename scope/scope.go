// Package scope holds request-scoped and process-scoped state containers.
//
// Storage is a heterogeneous map created empty for every request and shared
// mutably along the filter chain, so an early filter can stash data (a parsed
// auth token, a request id) for later filters or the handler. Keys follow the
// context-key convention: define an unexported struct type per package to
// avoid collisions.
package scope

type Storage struct {
	values map[any]any
}

func NewStorage() *Storage {
	return new(Storage)
}

func (s *Storage) Set(key, value any) *Storage {
	if s.values == nil {
		s.values = make(map[any]any)
	}

	s.values[key] = value
	return s
}

func (s *Storage) Get(key any) (any, bool) {
	value, found := s.values[key]
	return value, found
}

func (s *Storage) Delete(key any) {
	delete(s.values, key)
}

func (s *Storage) Len() int {
	return len(s.values)
}

// Load returns the value under the key if it is present and holds a T.
func Load[T any](s *Storage, key any) (value T, found bool) {
	raw, ok := s.Get(key)
	if !ok {
		return value, false
	}

	value, ok = raw.(T)
	return value, ok
}

// Global is process-wide application state, established once at server start and
// shared read-only across all connections. Nothing is mutated after construction,
// so no locking is involved.
type Global struct {
	values map[any]any
}

func NewGlobal(values map[any]any) *Global {
	copied := make(map[any]any, len(values))
	for k, v := range values {
		copied[k] = v
	}

	return &Global{values: copied}
}

func (g *Global) Get(key any) (any, bool) {
	if g == nil {
		return nil, false
	}

	value, found := g.values[key]
	return value, found
}

// LoadGlobal returns the value under the key if it is present and holds a T.
func LoadGlobal[T any](g *Global, key any) (value T, found bool) {
	raw, ok := g.Get(key)
	if !ok {
		return value, false
	}

	value, ok = raw.(T)
	return value, ok
}
