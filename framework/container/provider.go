package container

// ── ServiceProvider ───────────────────────────────────────────────────────────

// ServiceProvider groups the bindings for one concern of the application.
//
// Register only binds; it must not resolve anything, since later providers
// may not have registered yet. Boot runs after every provider has been
// registered and may resolve freely.
//
//	type ValidationServiceProvider struct{ container.BaseProvider }
//
//	func (p *ValidationServiceProvider) Register(app *container.Container) {
//	    app.Singleton("validator", func(c *container.Container) any {
//	        return validation.NewFactory()
//	    })
//	}
type ServiceProvider interface {
	Register(app *Container)
	Boot(app *Container)
}

// BaseProvider gives providers a no-op Boot. Embed it and implement Register.
type BaseProvider struct{}

func (p *BaseProvider) Boot(_ *Container) {}

// ── ProviderRegistry ──────────────────────────────────────────────────────────

// ProviderRegistry registers providers in order and boots them once.
type ProviderRegistry struct {
	app        *Container
	providers  []ServiceProvider
	registered map[ServiceProvider]bool
	booted     bool
}

// NewProviderRegistry creates a registry bound to app.
func NewProviderRegistry(app *Container) *ProviderRegistry {
	return &ProviderRegistry{
		app:        app,
		registered: make(map[ServiceProvider]bool),
	}
}

// Register calls provider.Register. Registering the same provider twice is
// a no-op. Providers added after Boot are booted immediately.
func (r *ProviderRegistry) Register(provider ServiceProvider) {
	if r.registered[provider] {
		return
	}
	r.registered[provider] = true

	provider.Register(r.app)
	r.providers = append(r.providers, provider)

	if r.booted {
		provider.Boot(r.app)
	}
}

// Boot calls Boot on every registered provider, in registration order.
// Subsequent calls do nothing.
func (r *ProviderRegistry) Boot() {
	if r.booted {
		return
	}
	r.booted = true
	for _, provider := range r.providers {
		provider.Boot(r.app)
	}
}

// Booted returns true if Boot has been called.
func (r *ProviderRegistry) Booted() bool { return r.booted }

// Providers returns the registered providers in order.
func (r *ProviderRegistry) Providers() []ServiceProvider { return r.providers }
