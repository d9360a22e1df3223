package server

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/anton-94/mealweek/internal/config"
	"github.com/anton-94/mealweek/internal/handlers"
	"github.com/anton-94/mealweek/internal/services"
	"github.com/anton-94/mealweek/internal/store"
)

type Server struct {
	router *chi.Mux
	config config.Config
}

func New(database *sql.DB, cfg config.Config) *Server {
	collections := store.NewCollectionStore(database)
	plannerService := services.NewPlannerService(collections)
	dragSession := services.NewDragSession()

	mealHandler := handlers.NewMealHandler(plannerService)
	inventoryHandler := handlers.NewInventoryHandler(plannerService)
	catalogHandler := handlers.NewCatalogHandler(plannerService)
	dragHandler := handlers.NewDragHandler(dragSession, plannerService)
	calendarHandler := handlers.NewCalendarHandler(plannerService)

	router := chi.NewRouter()

	router.Use(chimiddleware.Logger)
	router.Use(chimiddleware.Recoverer)
	router.Use(chimiddleware.Compress(5))

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	router.Get("/calendar.ics", calendarHandler.Feed)

	router.Route("/api", func(r chi.Router) {
		r.Get("/week", mealHandler.Week)
		r.Post("/meals", mealHandler.Save)
		r.Post("/meals/clear", mealHandler.Clear)
		r.Post("/meals/{id}/move", mealHandler.Move)
		r.Delete("/meals/{id}", mealHandler.Delete)

		r.Get("/inventory", inventoryHandler.List)
		r.Post("/inventory", inventoryHandler.Add)
		r.Post("/inventory/{id}/bought", inventoryHandler.SetBought)
		r.Post("/inventory/{id}/quantity", inventoryHandler.AdjustQuantity)
		r.Delete("/inventory/{id}", inventoryHandler.Remove)

		r.Get("/suggest", catalogHandler.Suggest)

		r.Post("/drag/begin", dragHandler.Begin)
		r.Post("/drag/drop", dragHandler.Drop)
		r.Post("/drag/cancel", dragHandler.Cancel)
	})

	return &Server{
		router: router,
		config: cfg,
	}
}

// Router exposes the configured mux, mainly for tests.
func (server *Server) Router() http.Handler {
	return server.router
}

func (server *Server) Start() error {
	address := ":" + server.config.Port
	slog.Info("starting server", "address", address)
	return http.ListenAndServe(address, server.router)
}
