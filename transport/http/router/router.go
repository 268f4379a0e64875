package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"hotel/internal/handlers/room"
	"hotel/internal/handlers/system"
	"hotel/shared/failure"
	"hotel/transport/http/response"
)

type DomainHandlers struct {
	Room   room.Handler
	System system.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.NotFound(routeNotFound)
	router.MethodNotAllowed(routeNotFound)

	router.Route("/api", func(routerGroup chi.Router) {
		r.DomainHandlers.System.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
	})
}

// routeNotFound answers both unmatched paths and mismatched methods, echoing
// the method and path of the rejected request.
func routeNotFound(writer http.ResponseWriter, request *http.Request) {
	response.WithError(writer, failure.RouteNotFound(request.Method, request.URL.Path))
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
