package memo

// Version is the current release of the library. It is stamped into every
// artifact this process writes unless the engine overrides it.
func Version() string {
	return "0.4.1"
}
