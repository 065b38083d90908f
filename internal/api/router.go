package api

import (
	"net/http"

	"github.com/avasse/roomly-be/internal/api/handlers"
	"github.com/avasse/roomly-be/internal/auth"
	"github.com/avasse/roomly-be/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(userService services.UserServiceProvider, roomService services.RoomServiceProvider, frontendURL string) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize handlers
	userHandler := handlers.NewUserHandler(userService)
	roomHandler := handlers.NewRoomHandler(roomService)

	// Public routes
	r.Post("/user/signup", userHandler.Signup)
	r.Post("/user/log_in", userHandler.Login)
	r.Get("/rooms", roomHandler.GetAll)
	r.Get("/rooms/{id}", roomHandler.Get)

	// Mutation routes sit behind the bearer-token guard; ownership is
	// checked per operation, not here.
	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware(userService))
		r.Post("/room/publish", roomHandler.Publish)
		r.Put("/room/update/{id}", roomHandler.Update)
		r.Delete("/room/delete/{id}", roomHandler.Delete)
	})

	r.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"message": "Welcome to the Roomly API!"})
	})
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Resource not found"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Resource not found"})
	})

	return r
}
