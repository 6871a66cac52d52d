package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"gorm.io/gorm"

	"github.com/youthblossom/canopy/internal/handlers"
	"github.com/youthblossom/canopy/internal/store"
)

func Router(db *gorm.DB) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	users := store.NewUserStore(db)
	youths := store.NewYouthStore(db)
	programs := store.NewProgramStore(db)
	attendance := store.NewAttendanceStore(db)

	r.Get("/healthz", handlers.Health)

	r.Route("/api", func(api chi.Router) {
		api.Post("/auth/login", handlers.Login(users))

		// Everything below requires a bearer token.
		api.Group(func(g chi.Router) {
			g.Use(handlers.RequireAuth)

			g.Route("/youths", func(yr chi.Router) {
				yr.Get("/", handlers.ListYouths(youths))
				yr.Get("/{id}/qr.png", handlers.YouthQR(youths))
				yr.With(handlers.RequireRole("admin", "leader")).Post("/", handlers.CreateYouth(youths))
				yr.With(handlers.RequireRole("admin", "leader")).Put("/{id}", handlers.UpdateYouth(youths))
				yr.With(handlers.RequireRole("admin")).Delete("/{id}", handlers.DeleteYouth(youths))
			})

			g.Get("/programs", handlers.ListPrograms(programs))

			g.Route("/attendance", func(ar chi.Router) {
				ar.Get("/", handlers.ListAttendance(attendance))
				ar.With(handlers.RequireRole("admin", "leader", "volunteer")).
					Post("/", handlers.CreateAttendance(db))
			})

			g.Get("/dashboard/metrics", handlers.DashboardMetrics(youths, programs, attendance))
		})
	})

	return r
}
