package runtime

// Must panics if err is non-nil. Used for startup-time operations that
// cannot reasonably fail at runtime (flag binding, index creation input).
func Must(err error) {
	if err != nil {
		panic(err)
	}
}
