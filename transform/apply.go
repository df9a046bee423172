package transform

// Func is a single string reformatter.
type Func func(string) string

// Compose chains transforms left to right.
func Compose(fns ...Func) Func {
	return func(s string) string {
		for _, fn := range fns {
			if fn != nil {
				s = fn(s)
			}
		}
		return s
	}
}
