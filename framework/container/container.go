package container

import (
	"sync"
)

// ── Registration types ────────────────────────────────────────────────────────

// Factory builds a concrete value. The Resolver it receives routes nested
// lookups through the resolution stack of the call that invoked it, so a
// dependency cycle spanning several factories is still detected.
type Factory func(r *Resolver) (any, error)

// registration associates a token with a factory and a lifetime.
type registration struct {
	factory  Factory
	lifetime Lifetime
}

// Option customises a registration made through Register.
type Option func(*registration)

// WithLifetime selects the lifetime for a Register call.
func WithLifetime(lt Lifetime) Option {
	return func(reg *registration) { reg.lifetime = lt }
}

// ── Container ─────────────────────────────────────────────────────────────────

// Container is the service container. It maps opaque string tokens to
// registrations, caches singleton instances per container, and optionally
// delegates unresolved tokens to a parent container.
//
// A token maps to exactly one registration; registering a token again
// replaces the previous registration and drops any cached instance for it.
// A child container created with CreateChild sees everything its ancestors
// register but never mutates them.
type Container struct {
	mu sync.RWMutex

	parent *Container

	// token → registration
	registrations map[string]*registration

	// token → resolved singleton instance
	instances map[string]any
}

// New creates an empty root container.
func New() *Container {
	return &Container{
		registrations: make(map[string]*registration),
		instances:     make(map[string]any),
	}
}

// CreateChild returns a new empty container whose resolution falls back to
// c for any token not locally registered. The child shares no mutable state
// with the parent; local registrations shadow the parent's for the same
// token, and later parent registrations stay visible through delegation.
func (c *Container) CreateChild() *Container {
	child := New()
	child.parent = c
	return child
}

// Parent returns the container c delegates to, or nil for a root container.
func (c *Container) Parent() *Container { return c.parent }

// ── Registration ──────────────────────────────────────────────────────────────

// Register is the general registration primitive. The lifetime defaults to
// Singleton; pass WithLifetime(Transient) for a fresh instance per resolve.
//
//	c.Register("recipes.repo", newMongoRecipes, container.WithLifetime(container.Transient))
func (c *Container) Register(token string, factory Factory, opts ...Option) {
	reg := &registration{factory: factory, lifetime: Singleton}
	for _, opt := range opts {
		opt(reg)
	}
	c.put(token, reg)
}

// Singleton registers a factory whose result is cached after the first
// resolution on this container.
//
//	c.Singleton("mailer", func(r *container.Resolver) (any, error) {
//	    cfg, err := container.Resolve[*config.Config](r, "config")
//	    if err != nil {
//	        return nil, err
//	    }
//	    return services.NewSMTPMailer(cfg.Mail), nil
//	})
func (c *Container) Singleton(token string, factory Factory) {
	c.put(token, &registration{factory: factory, lifetime: Singleton})
}

// Bind registers a transient factory: a new instance on every resolve.
func (c *Container) Bind(token string, factory Factory) {
	c.put(token, &registration{factory: factory, lifetime: Transient})
}

// Instance registers a pre-built value. Every resolution of token returns
// that exact value; nothing is ever constructed for it.
func (c *Container) Instance(token string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.registrations[token] = &registration{
		factory:  func(*Resolver) (any, error) { return value, nil },
		lifetime: Singleton,
	}
	c.instances[token] = value
}

// put replaces the registration for token and drops any stale cached
// instance so the next resolve goes through the new factory.
func (c *Container) put(token string, reg *registration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.instances, token)
	c.registrations[token] = reg
}

// Has reports whether token is resolvable from this container or any
// ancestor. It never constructs anything.
func (c *Container) Has(token string) bool {
	c.mu.RLock()
	_, ok := c.registrations[token]
	c.mu.RUnlock()
	if ok {
		return true
	}
	if c.parent != nil {
		return c.parent.Has(token)
	}
	return false
}

// Reset clears all local registrations and cached singletons, returning the
// container to its empty state. Parents and children are untouched; a child
// of a reset parent simply stops finding the parent's tokens.
func (c *Container) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.registrations = make(map[string]*registration)
	c.instances = make(map[string]any)
}

// Tokens returns the locally registered tokens (for diagnostics).
func (c *Container) Tokens() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, 0, len(c.registrations))
	for token := range c.registrations {
		out = append(out, token)
	}
	return out
}

// ── Resolution ────────────────────────────────────────────────────────────────

// Resolve returns a constructed instance for token.
//
// Lookup checks this container's registrations first and then walks the
// ancestor chain; exhaustion fails with *ServiceNotRegisteredError. A token
// found while already under construction in this call fails with
// *CircularDependencyError. Errors returned by a factory itself propagate
// unchanged.
func (c *Container) Resolve(token string) (any, error) {
	return c.resolve(token, newStack())
}

func (c *Container) resolve(token string, stack *resolutionStack) (any, error) {
	c.mu.RLock()
	if inst, ok := c.instances[token]; ok {
		c.mu.RUnlock()
		return inst, nil
	}
	reg, ok := c.registrations[token]
	c.mu.RUnlock()

	// A token already on the stack is under construction somewhere on the
	// chain that led here; this check must precede delegation, or a cycle
	// that re-enters through a parent would fall off the end of the
	// ancestor walk and misreport as unregistered.
	if stack.contains(token) {
		return nil, &CircularDependencyError{Token: token, Chain: stack.chain(token)}
	}

	if !ok {
		if c.parent != nil {
			// The factory of a delegated token runs against the container
			// that owns the registration, so parent singletons stay the
			// parent's own regardless of which child asked for them.
			return c.parent.resolve(token, stack)
		}
		return nil, &ServiceNotRegisteredError{Token: token}
	}

	stack.push(token)
	defer stack.pop()

	value, err := reg.factory(&Resolver{container: c, stack: stack})
	if err != nil {
		return nil, err
	}

	if reg.lifetime == Singleton {
		c.mu.Lock()
		// Two goroutines may race the same factory; the first stored value
		// wins so the token's identity stays stable.
		if cached, ok := c.instances[token]; ok {
			c.mu.Unlock()
			return cached, nil
		}
		c.instances[token] = value
		c.mu.Unlock()
	}
	return value, nil
}

// ── Resolver ──────────────────────────────────────────────────────────────────

// Resolver is the handle factories receive. Resolving through it keeps the
// nested lookup on the same resolution stack as the call that triggered the
// factory.
type Resolver struct {
	container *Container
	stack     *resolutionStack
}

// Resolve resolves token within the current resolution call.
func (r *Resolver) Resolve(token string) (any, error) {
	return r.container.resolve(token, r.stack)
}

// Has reports whether token is resolvable (container or ancestors).
func (r *Resolver) Has(token string) bool { return r.container.Has(token) }

// Container returns the container that owns the registration being built.
func (r *Resolver) Container() *Container { return r.container }

// resolutionStack is the ordered set of tokens under construction within a
// single top-level Resolve call. It lives on the call, not the container,
// so interleaved resolutions cannot see each other's entries.
type resolutionStack struct {
	tokens []string
	active map[string]struct{}
}

func newStack() *resolutionStack {
	return &resolutionStack{active: make(map[string]struct{})}
}

func (s *resolutionStack) contains(token string) bool {
	_, ok := s.active[token]
	return ok
}

func (s *resolutionStack) push(token string) {
	s.tokens = append(s.tokens, token)
	s.active[token] = struct{}{}
}

func (s *resolutionStack) pop() {
	last := s.tokens[len(s.tokens)-1]
	s.tokens = s.tokens[:len(s.tokens)-1]
	delete(s.active, last)
}

// chain copies the in-progress path and appends the repeating token, e.g.
// ["a", "b", "a"] for a ↔ b.
func (s *resolutionStack) chain(token string) []string {
	out := make([]string, 0, len(s.tokens)+1)
	out = append(out, s.tokens...)
	return append(out, token)
}

// ── Generics helpers ──────────────────────────────────────────────────────────

// Resolving is satisfied by *Container and *Resolver, letting the generic
// helpers work both at the top level and inside factories.
type Resolving interface {
	Resolve(token string) (any, error)
	Has(token string) bool
}

// Resolve resolves token and type-asserts the result.
//
//	repo, err := container.Resolve[repositories.RecipeRepository](c, "recipes.repo")
func Resolve[T any](r Resolving, token string) (T, error) {
	var zero T
	instance, err := r.Resolve(token)
	if err != nil {
		return zero, err
	}
	typed, ok := instance.(T)
	if !ok {
		return zero, &TypeMismatchError{Token: token, Instance: instance}
	}
	return typed, nil
}

// MustResolve is Resolve but panics on failure. Intended for wiring code
// that runs at boot, where a miss is a programming error.
func MustResolve[T any](r Resolving, token string) T {
	v, err := Resolve[T](r, token)
	if err != nil {
		panic(err)
	}
	return v
}
