package domain

// Registry is an id-keyed collection that remembers insertion order.
// Callers only get copies of the index (Snapshot), never a live iterator,
// so removing entries while walking a snapshot is safe.
type Registry[T any] struct {
	items map[string]T
	order []string
}

func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{items: make(map[string]T)}
}

// Add inserts v under id. Duplicate ids are rejected.
func (r *Registry[T]) Add(id string, v T) bool {
	if _, exists := r.items[id]; exists {
		return false
	}
	r.items[id] = v
	r.order = append(r.order, id)
	return true
}

func (r *Registry[T]) Get(id string) (T, bool) {
	v, ok := r.items[id]
	return v, ok
}

func (r *Registry[T]) Has(id string) bool {
	_, ok := r.items[id]
	return ok
}

// Update patches the entry in place. Unknown ids return false.
func (r *Registry[T]) Update(id string, patch func(*T)) bool {
	v, ok := r.items[id]
	if !ok {
		return false
	}
	patch(&v)
	r.items[id] = v
	return true
}

// Remove deletes id, returning false when it was not there.
func (r *Registry[T]) Remove(id string) bool {
	if _, ok := r.items[id]; !ok {
		return false
	}
	delete(r.items, id)
	for i, key := range r.order {
		if key == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// Snapshot copies the current entries in insertion order.
func (r *Registry[T]) Snapshot() []T {
	out := make([]T, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id])
	}
	return out
}

func (r *Registry[T]) Len() int {
	return len(r.items)
}
