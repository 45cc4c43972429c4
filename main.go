package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/km-arc/go-chainvalidator/app/controllers"
	"github.com/km-arc/go-chainvalidator/framework/app"
	gohttp "github.com/km-arc/go-chainvalidator/framework/http"
	"github.com/km-arc/go-chainvalidator/resources"
)

func main() {
	application := app.New(app.WithViews(resources.Views())) // loads .env automatically
	application.Boot()

	r := application.Router()

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		gohttp.NewResponse(w).Success(map[string]any{
			"app":     application.Config().App.Name,
			"signup":  "/signup",
			"api":     "/api/v1/signup",
			"version": "0.1.0",
		})
	})

	controllers.NewSignupController(
		application.Validator(),
		application.Views(),
		application.Logger(),
	).Routes(r)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := application.Run(ctx); err != nil {
		application.Logger().Error("server error", slog.Any("error", err))
		os.Exit(1)
	}
}
