package domain

// Field is one entry of a partial update: either Unchanged (the zero value)
// or SetTo a value, which may itself be a zero value.
type Field[T any] struct {
	value T
	set   bool
}

// SetTo returns a Field that replaces the stored value with v.
func SetTo[T any](v T) Field[T] {
	return Field[T]{value: v, set: true}
}

// Unchanged returns a Field that leaves the stored value alone.
func Unchanged[T any]() Field[T] {
	return Field[T]{}
}

// Get returns the value and whether it was set.
func (f Field[T]) Get() (T, bool) { return f.value, f.set }

// IsSet reports whether the field carries a value.
func (f Field[T]) IsSet() bool { return f.set }

// Or returns the set value, or cur when the field is unchanged.
func (f Field[T]) Or(cur T) T {
	if f.set {
		return f.value
	}
	return cur
}
