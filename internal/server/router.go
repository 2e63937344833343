package server

import (
	"context"
	"net/http"

	"saponify/internal/handlers"
	applog "saponify/internal/log"
)

func newRouter() http.Handler {
	mux := http.NewServeMux()
	applog.Debug(context.Background(), "registering http routes")

	mux.HandleFunc("/healthz", handlers.Health)
	mux.HandleFunc("/signup", handlers.Signup)
	mux.HandleFunc("/login", handlers.Login)
	mux.HandleFunc("/logout", handlers.Logout)

	mux.HandleFunc("/api/oils", handlers.Oils)
	mux.HandleFunc("/api/modifiers", handlers.Modifiers)
	mux.HandleFunc("/api/colorants", handlers.Colorants)

	mux.HandleFunc("/api/calculate", handlers.Calculate)
	mux.HandleFunc("/api/generate", handlers.Generate)
	mux.HandleFunc("/api/cost", handlers.Cost)

	mux.HandleFunc("/api/workspace", handlers.Workspace)
	mux.HandleFunc("/api/workspace/modifiers", handlers.WorkspaceModifier)

	mux.HandleFunc("/api/nutrition/foods", handlers.Foods)
	mux.HandleFunc("/api/nutrition/analyze", handlers.AnalyzeNutrition)
	mux.HandleFunc("/api/nutrition/suggest", handlers.SuggestFoods)

	recipesHandler := handlers.RequireAuthentication(http.HandlerFunc(handlers.RecipeResource))
	mux.Handle("/api/recipes", recipesHandler)
	mux.Handle("/api/recipes/", recipesHandler)

	applog.Debug(context.Background(), "http routes registered")
	return mux
}
