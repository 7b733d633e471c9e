package router

import "net/http"

type AccountRouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux, middleware func(http.Handler) http.Handler)
}

type TransferRouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux, middleware func(http.Handler) http.Handler)
}

func New(
	accountController AccountRouteRegistrar,
	transferController TransferRouteRegistrar,
	middleware func(http.Handler) http.Handler,
) *http.ServeMux {
	mux := http.NewServeMux()
	registerSwaggerRoutes(mux)

	if accountController != nil {
		accountController.RegisterRoutes(mux, middleware)
	}
	if transferController != nil {
		transferController.RegisterRoutes(mux, middleware)
	}

	return mux
}
