package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/faaaroooqi/Feedstagram-app/cmd/app"
	"github.com/faaaroooqi/Feedstagram-app/internal/config"
	handlers "github.com/faaaroooqi/Feedstagram-app/internal/handler"
	"github.com/faaaroooqi/Feedstagram-app/internal/middleware"
)

func main() {
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY is not set")
	}

	db, _, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(services, db, cfg)

	router := mux.NewRouter()

	router.HandleFunc("/health", handler.Health).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/auth/signup", handler.Signup).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", handler.Login).Methods(http.MethodPost)

	api.HandleFunc("/posts", handler.GetFeed).Methods(http.MethodGet)
	api.HandleFunc("/posts", handler.CreatePost).Methods(http.MethodPost)
	api.HandleFunc("/posts/my-posts", handler.GetMyPosts).Methods(http.MethodGet)
	api.HandleFunc("/posts/{id}", handler.UpdatePost).Methods(http.MethodPatch)
	api.HandleFunc("/posts/{id}", handler.DeletePost).Methods(http.MethodDelete)
	api.HandleFunc("/posts/{id}/like", handler.LikePost).Methods(http.MethodPost)
	api.HandleFunc("/posts/{id}/comment", handler.AddComment).Methods(http.MethodPost)

	api.HandleFunc("/comments/{id}/like", handler.LikeComment).Methods(http.MethodPost)
	api.HandleFunc("/comments/{id}", handler.UpdateComment).Methods(http.MethodPatch)
	api.HandleFunc("/comments/{id}", handler.DeleteComment).Methods(http.MethodDelete)

	api.HandleFunc("/notifications", handler.GetNotifications).Methods(http.MethodGet)
	api.HandleFunc("/notifications/{id}/read", handler.MarkNotificationRead).Methods(http.MethodPatch)

	api.HandleFunc("/users/{id}", handler.GetUserProfile).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}", handler.UpdateProfile).Methods(http.MethodPatch)

	handlerChain := middleware.Chain(
		router,
		middleware.AuthMiddleware(services.Auth),
		middleware.CORSMiddleware,
		middleware.LoggingMiddleware,
	)

	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	log.Printf("Server listening on %s", addr)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
