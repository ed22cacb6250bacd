package patch

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise fallback.
// Used by partial-update usecases where nil means "leave unchanged".
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}
