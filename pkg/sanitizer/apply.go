package sanitizer

// Apply runs value through the given transformations in order.
func Apply[T any](value T, transforms ...func(T) T) T {
	result := value

	for _, transform := range transforms {
		result = transform(result)
	}

	return result
}

// Compose creates a reusable normalisation pipeline from the given
// transformations. Preferred over repeated Apply calls when the same chain is
// used multiple times.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, transforms...)
	}
}
