package container

// Lifetime governs whether a token's resolution is cached per container or
// re-executed on every resolve.
type Lifetime int

const (
	// Singleton constructs at most once per container and caches the result.
	Singleton Lifetime = iota
	// Transient constructs a fresh instance on every resolution.
	Transient
)

func (l Lifetime) String() string {
	switch l {
	case Singleton:
		return "singleton"
	case Transient:
		return "transient"
	default:
		return "unknown"
	}
}
