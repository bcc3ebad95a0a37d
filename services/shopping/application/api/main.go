package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/srbhuyan/shoppingList/pkg/app"
	"github.com/srbhuyan/shoppingList/services/shopping/application/handlers"
	appsvcs "github.com/srbhuyan/shoppingList/services/shopping/application/services"
)

// ItemRoutes registers item endpoints on the provided chi router.
func ItemRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Route("/items", func(r chi.Router) {
			r.Get("/", handlers.NewListItemsHandler(svcs).Execute)
			r.Post("/", handlers.NewPostItemHandler(svcs).Execute)
			r.Route("/{itemID}", func(r chi.Router) {
				r.Get("/", handlers.NewGetItemHandler(svcs).Execute)
				r.Put("/", handlers.NewPutItemHandler(svcs).Execute)
				r.Delete("/", handlers.NewDeleteItemHandler(svcs).Execute)
			})
		})
	})
}
