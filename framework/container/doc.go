// Package container is the service container the application kernel is
// built on.
//
// Services are registered under string abstracts by ServiceProviders and
// resolved lazily. Go has no constructor reflection, so every binding is an
// explicit factory.
//
// # Lifecycle
//
//  1. Create: c := container.New()
//  2. Register providers: registry.Register(&providers.ConfigServiceProvider{})
//  3. Boot: registry.Boot()
//  4. Serve requests, resolving shared services as needed
//
// # Bindings
//
//	// Singleton, built on first Make
//	c.Singleton("validator", func(c *container.Container) any {
//	    return validation.NewFactory()
//	})
//
//	// Pre-built value
//	c.Instance("config", cfg)
//
// # Resolving
//
//	raw := c.Make("validator")
//	v := container.Resolve[*validation.Factory](c, "validator")
//
// A singleton whose factory panics is not retried: later Make calls panic
// with an error wrapping ErrBuildFailed.
package container
