// Package container provides the service container that wires the
// application together: repositories, services, the mailer, the router —
// everything the request-handling layer needs is registered here once at
// boot and resolved on demand.
//
// # Overview
//
// The container maps opaque string tokens to registrations. A registration
// pairs a factory with a lifetime: Singleton (constructed at most once per
// container, cached) or Transient (constructed fresh on every resolve).
// Pre-built values can be registered directly, and constructors can be
// registered with an explicit, positional list of dependency tokens.
// Dependencies are always declared by the registrant — nothing is inferred
// from type metadata.
//
// # Container Lifecycle
//
//  1. Create: c := container.New()
//  2. Register providers: registry.Register(&AppServiceProvider{})
//  3. Boot: registry.Boot()        — safe to resolve everything after this
//  4. Serve requests
//
// # Registration
//
//	// Singleton — created once per container, reused
//	c.Singleton("users.repo", func(r *container.Resolver) (any, error) {
//	    db, err := container.Resolve[*mongo.Database](r, "mongo")
//	    if err != nil {
//	        return nil, err
//	    }
//	    return repositories.NewMongoUsers(db), nil
//	})
//
//	// Transient — new instance every resolve
//	c.Bind("clock", func(*container.Resolver) (any, error) { return time.Now(), nil })
//
//	// Pre-built value
//	c.Instance("config", cfg)
//
//	// Constructor with declared dependencies (resolved positionally).
//	// The returned error reports a bad constructor shape at registration.
//	err := c.Constructor("recipes.service", services.NewRecipeService, "recipes.repo", "logger")
//
// # Resolving
//
//	raw, err := c.Resolve("users.repo")
//
//	// Generic (preferred — no type assertion required)
//	repo, err := container.Resolve[repositories.UserRepository](c, "users.repo")
//
// Resolution walks the dependency graph depth-first. Each top-level Resolve
// carries its own stack of in-progress tokens; resolving a token already on
// that stack fails with *CircularDependencyError instead of recursing
// forever, and a token missing from the container and all its ancestors
// fails with *ServiceNotRegisteredError. Errors returned by factories pass
// through unchanged, so application failures stay distinguishable from
// wiring failures.
//
// # Child containers
//
// CreateChild returns a container that falls back to its parent for tokens
// it does not register itself. A child's registration shadows the parent's
// for the same token; the parent is never mutated. The RequestScope
// middleware opens one child per HTTP request and stores it in the request
// context.
//
// # Service Providers
//
//	type AppServiceProvider struct{ container.BaseProvider }
//
//	func (p *AppServiceProvider) Register(app *container.Container) {
//	    app.Singleton("mailer", func(r *container.Resolver) (any, error) { ... })
//	}
//
//	registry := container.NewProviderRegistry(c)
//	registry.Register(&AppServiceProvider{})
//	registry.Boot()
//
// Deferred providers (IsDeferred() true) are registered lazily, on the
// first resolve of one of their Provides() tokens.
package container
