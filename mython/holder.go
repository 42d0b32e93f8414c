package mython

// ownership tags a Holder as empty, owning, or borrowing. The host
// runtime is garbage-collected, so the tag carries no actual
// memory-management consequence; the GC traces reachability from any
// Holder regardless of how it is tagged. It is retained purely to
// keep the holder's own/share/none contract checkable, independent of
// how memory happens to be managed underneath it.
type ownership int

const (
	ownershipEmpty ownership = iota
	ownershipOwning
	ownershipBorrowing
)

// cell is the heap box a Holder points at. Two Holders sharing a cell
// observe each other's writes through it, which is how Share exposes
// self into a method call without copying the receiver.
type cell struct {
	value Value
}

// Holder is the universal handle to a runtime value: empty (None),
// owning, or borrowing.
type Holder struct {
	own ownership
	c   *cell
}

// None returns the empty holder representing Mython's None.
func None() Holder { return Holder{own: ownershipEmpty} }

// Own heap-allocates v and returns a holder with sole initial
// ownership of it.
func Own(v Value) Holder {
	return Holder{own: ownershipOwning, c: &cell{value: v}}
}

// Share returns a non-owning holder aliasing h's underlying cell. It
// is used to pass self into a method invocation without creating a
// new owning reference through the instance's own fields.
func Share(h Holder) Holder {
	if h.c == nil {
		return None()
	}
	return Holder{own: ownershipBorrowing, c: h.c}
}

// IsEmpty reports whether the holder represents None.
func (h Holder) IsEmpty() bool { return h.c == nil }

// IsOwning reports whether this holder was constructed by Own.
func (h Holder) IsOwning() bool { return h.own == ownershipOwning }

// IsBorrowing reports whether this holder was constructed by Share.
func (h Holder) IsBorrowing() bool { return h.own == ownershipBorrowing }

// Value returns the held value. It panics if the holder is empty;
// callers must check IsEmpty first.
func (h Holder) Value() Value {
	if h.c == nil {
		panic("mython: Value called on an empty Holder")
	}
	return h.c.value
}

// TryAs returns the held value cast to T and true if the holder is
// non-empty and holds a value whose Go payload is of type T,
// otherwise the zero value and false.
func TryAs[T any](h Holder) (T, bool) {
	var zero T
	if h.c == nil {
		return zero, false
	}
	t, ok := h.c.value.data.(T)
	return t, ok
}

// Kind reports the kind of the held value, or a sentinel for an empty
// holder. Useful in contexts that want to branch without unwrapping.
func (h Holder) Kind() (ValueKind, bool) {
	if h.c == nil {
		return 0, false
	}
	return h.c.value.kind, true
}
