package redux

// Compose chains fns right to left into a single function: Compose(f, g, h)
// returns a function computing f(g(h(v))). With no arguments it returns the
// identity function; with one it returns that function unchanged.
//
// Compose is the mechanism by which dispatch-wrapping layers are assembled
// into one composite dispatch function. Each layer maps the next-inner
// dispatch function to a replacement, and the leftmost layer becomes the
// outermost wrapper.
func Compose[T any](fns ...func(T) T) func(T) T {
	switch len(fns) {
	case 0:
		return func(v T) T { return v }
	case 1:
		return fns[0]
	}
	return func(v T) T {
		// Apply from the end backwards so fns[0] wraps outermost.
		for i := len(fns) - 1; i >= 0; i-- {
			v = fns[i](v)
		}
		return v
	}
}
