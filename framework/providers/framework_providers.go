package providers

import (
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"os"

	"github.com/km-arc/go-chainvalidator/framework/config"
	"github.com/km-arc/go-chainvalidator/framework/container"
	gohttp "github.com/km-arc/go-chainvalidator/framework/http"
	"github.com/km-arc/go-chainvalidator/framework/http/validation"
	"github.com/km-arc/go-chainvalidator/framework/logger"
	"github.com/km-arc/go-chainvalidator/framework/routing"
)

// ── ConfigServiceProvider ─────────────────────────────────────────────────────

// ConfigServiceProvider loads configuration from .env files and the
// environment.
//
// Bound abstracts:
//   - "config" → *config.Config
//
// A Config set on the provider is bound as-is, which is how tests skip the
// environment entirely.
type ConfigServiceProvider struct {
	container.BaseProvider
	EnvFiles []string
	Config   *config.Config
}

func (p *ConfigServiceProvider) Register(app *container.Container) {
	if p.Config != nil {
		app.Instance("config", p.Config)
		return
	}
	envFiles := p.EnvFiles
	app.Singleton("config", func(c *container.Container) any {
		return config.MustLoad(envFiles...)
	})
}

// ── LogServiceProvider ────────────────────────────────────────────────────────

// LogServiceProvider builds the application logger from LOG_LEVEL and
// LOG_FORMAT.
//
// Bound abstracts:
//   - "log" → *slog.Logger
type LogServiceProvider struct {
	container.BaseProvider
	// Output defaults to os.Stdout.
	Output io.Writer
}

func (p *LogServiceProvider) Register(app *container.Container) {
	out := p.Output
	app.Singleton("log", func(c *container.Container) any {
		cfg := container.Resolve[*config.Config](c, "config")

		level, err := logger.ParseLevel(cfg.Log.Level)
		if err != nil {
			panic(err)
		}
		return logger.New(
			logger.WithLevel(level),
			logger.WithFormat(logger.Format(cfg.Log.Format)),
			logger.WithOutput(out),
			logger.WithAttr(slog.String("app", cfg.App.Name), slog.String("env", cfg.App.Env)),
		)
	})
}

// ── RoutingServiceProvider ────────────────────────────────────────────────────

// RoutingServiceProvider registers the HTTP router. Unknown paths get a
// JSON 404.
//
// Bound abstracts:
//   - "router" → *routing.Router
type RoutingServiceProvider struct {
	container.BaseProvider
}

func (p *RoutingServiceProvider) Register(app *container.Container) {
	app.Singleton("router", func(c *container.Container) any {
		r := routing.New(routing.WithLogger(container.Resolve[*slog.Logger](c, "log")))
		r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
			gohttp.NewResponse(w).NotFound()
		})
		return r
	})
}

// ── ValidationServiceProvider ─────────────────────────────────────────────────

// ValidationServiceProvider registers the session factory controllers use
// to validate request input.
//
// Bound abstracts:
//   - "validator" → *validation.Factory
type ValidationServiceProvider struct {
	container.BaseProvider
}

func (p *ValidationServiceProvider) Register(app *container.Container) {
	app.Singleton("validator", func(c *container.Container) any {
		cfg := container.Resolve[*config.Config](c, "config")
		log := container.Resolve[*slog.Logger](c, "log")
		return validation.NewFactory(
			validation.WithLogger(log.With(slog.String("component", "validation"))),
			validation.WithMissingMessage(cfg.Validation.MissingMessageFunc()),
		)
	})
}

// ── ViewServiceProvider ───────────────────────────────────────────────────────

// ViewServiceProvider registers the template engine.
//
// Bound abstracts:
//   - "view" → *gohttp.ViewEngine
type ViewServiceProvider struct {
	container.BaseProvider
	FS  fs.FS  // template files, default: os.DirFS("./views")
	Ext string // file extension, default: ".html"
}

func (p *ViewServiceProvider) Register(app *container.Container) {
	fsys := p.FS
	if fsys == nil {
		fsys = os.DirFS("./views")
	}
	ext := p.Ext
	if ext == "" {
		ext = ".html"
	}

	app.Singleton("view", func(c *container.Container) any {
		return gohttp.NewViewEngine(fsys, ext)
	})
}
