package geom

// Option holds a value that may be absent, such as a cursor that left the
// window or a viewport that has not been laid out yet.
type Option[T any] struct {
	value T
	valid bool
}

// Some wraps a present value.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, valid: true}
}

// None returns an absent value.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.valid
}

// IsSome reports whether the value is present.
func (o Option[T]) IsSome() bool {
	return o.valid
}

// OrElse returns the value, or fallback when absent.
func (o Option[T]) OrElse(fallback T) T {
	if !o.valid {
		return fallback
	}
	return o.value
}
