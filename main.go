package main

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/Owen-Rose/chefs-suite/app/handlers"
	appproviders "github.com/Owen-Rose/chefs-suite/app/providers"
	"github.com/Owen-Rose/chefs-suite/framework/app"
	"github.com/Owen-Rose/chefs-suite/framework/container"
	gohttp "github.com/Owen-Rose/chefs-suite/framework/http"
	"github.com/Owen-Rose/chefs-suite/framework/routing"
)

func main() {
	application := app.New() // loads .env automatically
	application.Register(&appproviders.AppServiceProvider{})
	application.Boot()

	r := application.Router()

	// Middleware first: per-request container scope, then request logging.
	r.Middleware(
		container.RequestScope(application.Container),
		routing.RequestLogger(application.Logger()),
	)

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		gohttp.NewResponse(w).Success(map[string]any{
			"name":    application.Config().App.Name,
			"version": application.Version(),
		})
	})

	r.Prefix("/api/v1", func(api *routing.Router) {
		api.Resource("/recipes", handlers.ScopedRecipeController{})

		inv := handlers.ScopedInvitationHandler{}
		api.Post("/invitations", inv.Store)
		api.Post("/invitations/accept", inv.Accept)
	})

	if err := application.Run(); err != nil {
		application.Logger().Fatal("server failed", zap.Error(err))
	}
}
