package compare

import "go.uber.org/atomic"

// Counting wraps f so every invocation increments the returned counter.
// The counter is safe to read while a sort is in progress.
func Counting[T any](f Func[T]) (Func[T], *atomic.Int64) {
	calls := atomic.NewInt64(0)

	return func(a, b T) int {
		calls.Inc()

		return f(a, b)
	}, calls
}
