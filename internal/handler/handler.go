package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"storefront/api/internal/model"
)

type Handler struct {
	router *chi.Mux

	items  *ResourceHandler[model.Item, model.ItemInput]
	orders *ResourceHandler[model.Order, model.OrderInput]
	users  *ResourceHandler[model.User, model.UserInput]
}

func NewHandler(
	items *ResourceHandler[model.Item, model.ItemInput],
	orders *ResourceHandler[model.Order, model.OrderInput],
	users *ResourceHandler[model.User, model.UserInput],
) *Handler {
	router := chi.NewRouter()

	// Middleware
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)
	router.Use(Compress)

	h := &Handler{
		router: router,
		items:  items,
		orders: orders,
		users:  users,
	}

	h.registerRoutes()
	return h
}

func (h *Handler) registerRoutes() {
	h.router.Route("/items", h.items.Mount)
	h.router.Route("/orders", h.orders.Mount)
	h.router.Route("/users", h.users.Mount)
	h.router.Route("/v1", func(r chi.Router) {
		r.Get("/health", h.HealthCheck)
	})
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
