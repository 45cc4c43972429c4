package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/km-arc/go-chainvalidator/framework/config"
	"github.com/km-arc/go-chainvalidator/framework/container"
	gohttp "github.com/km-arc/go-chainvalidator/framework/http"
	"github.com/km-arc/go-chainvalidator/framework/http/validation"
	"github.com/km-arc/go-chainvalidator/framework/providers"
	"github.com/km-arc/go-chainvalidator/framework/routing"
)

// Option configures the Application before its providers register.
type Option func(*options)

type options struct {
	envFiles  []string
	cfg       *config.Config
	logOutput io.Writer
	views     fs.FS
}

// WithEnvFiles sets the .env files read by the config provider.
func WithEnvFiles(files ...string) Option {
	return func(o *options) { o.envFiles = files }
}

// WithConfig binds cfg instead of reading the environment.
func WithConfig(cfg *config.Config) Option {
	return func(o *options) { o.cfg = cfg }
}

// WithLogOutput redirects the application logger.
func WithLogOutput(w io.Writer) Option {
	return func(o *options) { o.logOutput = w }
}

// WithViews sets the template file system.
func WithViews(fsys fs.FS) Option {
	return func(o *options) { o.views = fsys }
}

// Application is the top-level application container.
// It embeds the Container and ProviderRegistry so user code can call
// app.Singleton() or app.Register() directly.
type Application struct {
	*container.Container
	Providers *container.ProviderRegistry
}

// New creates the application and registers the framework providers.
// Nothing is resolved until Boot.
func New(opts ...Option) *Application {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	c := container.New()
	registry := container.NewProviderRegistry(c)
	app := &Application{Container: c, Providers: registry}

	registry.Register(&providers.ConfigServiceProvider{EnvFiles: o.envFiles, Config: o.cfg})
	registry.Register(&providers.LogServiceProvider{Output: o.logOutput})
	registry.Register(&providers.RoutingServiceProvider{})
	registry.Register(&providers.ValidationServiceProvider{})
	registry.Register(&providers.ViewServiceProvider{FS: o.views})

	return app
}

// Register adds a ServiceProvider to the application.
func (a *Application) Register(provider container.ServiceProvider) {
	a.Providers.Register(provider)
}

// Boot runs the Boot phase on all providers.
func (a *Application) Boot() {
	a.Providers.Boot()
}

// ── Service accessors ─────────────────────────────────────────────────────────

func (a *Application) Config() *config.Config {
	return container.Resolve[*config.Config](a.Container, "config")
}

func (a *Application) Logger() *slog.Logger {
	return container.Resolve[*slog.Logger](a.Container, "log")
}

func (a *Application) Router() *routing.Router {
	return container.Resolve[*routing.Router](a.Container, "router")
}

func (a *Application) Validator() *validation.Factory {
	return container.Resolve[*validation.Factory](a.Container, "validator")
}

func (a *Application) Views() *gohttp.ViewEngine {
	return container.Resolve[*gohttp.ViewEngine](a.Container, "view")
}

// ── Serving ───────────────────────────────────────────────────────────────────

// Run boots the application if needed and serves HTTP on APP_PORT until ctx
// is cancelled, then drains in-flight requests for up to
// APP_SHUTDOWN_TIMEOUT.
func (a *Application) Run(ctx context.Context) error {
	if !a.Providers.Booted() {
		a.Boot()
	}
	cfg := a.Config()

	ln, err := net.Listen("tcp", ":"+cfg.App.Port)
	if err != nil {
		return fmt.Errorf("listen on port %s: %w", cfg.App.Port, err)
	}
	return a.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (a *Application) Serve(ctx context.Context, ln net.Listener) error {
	if !a.Providers.Booted() {
		a.Boot()
	}
	cfg := a.Config()
	log := a.Logger()

	srv := &http.Server{
		Handler:           a.Router(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server started",
			slog.String("addr", ln.Addr().String()),
			slog.String("env", cfg.App.Env),
		)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down", slog.Duration("timeout", cfg.App.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.App.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// ── Environment ───────────────────────────────────────────────────────────────

// Environment returns the APP_ENV value.
func (a *Application) Environment() string { return a.Config().App.Env }
func (a *Application) IsLocal() bool       { return a.Environment() == "local" }
func (a *Application) IsProduction() bool  { return a.Environment() == "production" }
func (a *Application) IsTesting() bool     { return a.Environment() == "testing" }
func (a *Application) IsDebug() bool       { return a.Config().App.Debug }

// ── Controller base ───────────────────────────────────────────────────────────

// Controller is an embeddable base for HTTP controllers.
type Controller struct{}

func (c *Controller) Request(r *http.Request) *gohttp.Request {
	return gohttp.NewRequest(r)
}

func (c *Controller) Response(w http.ResponseWriter) *gohttp.Response {
	return gohttp.NewResponse(w)
}
