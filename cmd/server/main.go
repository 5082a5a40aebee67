package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/cefr-platform/backend/internal/auth"
	"github.com/cefr-platform/backend/internal/content"
	"github.com/cefr-platform/backend/internal/database"
	"github.com/cefr-platform/backend/internal/middleware"
	"github.com/cefr-platform/backend/internal/sessions"
	"github.com/cefr-platform/backend/internal/surveys"
	"github.com/cefr-platform/backend/internal/writing"
)

func main() {
	// Initialize database
	db, err := database.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	if err := auth.EnsureDefaultAdmin(db); err != nil {
		log.Fatalf("Failed to seed admin account: %v", err)
	}

	// Optional session cache
	cache := sessions.NewCache(os.Getenv("REDIS_ADDR"), os.Getenv("REDIS_PASSWORD"))

	// Stores and services
	contentStore := content.NewStore(db)
	evaluator := writing.NewEvaluator(writing.NewClientFromEnv())
	sessionStore := sessions.NewStore(db)
	sessionService := sessions.NewService(sessionStore, contentStore, cache, evaluator)

	// Handlers
	authHandler := auth.NewHandler(db)
	contentHandler := content.NewHandler(contentStore)
	sessionHandler := sessions.NewHandler(sessionService)
	surveyHandler := surveys.NewHandler(surveys.NewStore(db))

	// Setup router
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	api.HandleFunc("/tests/start", sessionHandler.StartTest).Methods("POST")
	api.HandleFunc("/tests/{session_id}/objective", sessionHandler.SubmitObjective).Methods("POST")
	api.HandleFunc("/tests/{session_id}/writing", sessionHandler.SubmitWriting).Methods("POST")
	api.HandleFunc("/tests/{session_id}/complete", sessionHandler.CompleteSession).Methods("POST")
	api.HandleFunc("/tests/{session_id}/result", sessionHandler.GetResult).Methods("GET")
	api.HandleFunc("/surveys", surveyHandler.SubmitSurvey).Methods("POST")

	// Admin routes
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AuthMiddleware)
	admin.HandleFunc("/me", authHandler.GetCurrentAdmin).Methods("GET")
	admin.HandleFunc("/reading", contentHandler.AddReadingQuestion).Methods("POST")
	admin.HandleFunc("/reading", contentHandler.ListReadingQuestions).Methods("GET")
	admin.HandleFunc("/reading/{id}", contentHandler.DeleteReadingQuestion).Methods("DELETE")
	admin.HandleFunc("/listening", contentHandler.AddListeningQuestion).Methods("POST")
	admin.HandleFunc("/listening", contentHandler.ListListeningQuestions).Methods("GET")
	admin.HandleFunc("/listening/{id}", contentHandler.DeleteListeningQuestion).Methods("DELETE")
	admin.HandleFunc("/prompts", contentHandler.AddWritingPrompt).Methods("POST")
	admin.HandleFunc("/prompts", contentHandler.ListWritingPrompts).Methods("GET")
	admin.HandleFunc("/prompts/{id}", contentHandler.DeleteWritingPrompt).Methods("DELETE")
	admin.HandleFunc("/surveys", surveyHandler.ListSurveys).Methods("GET")
	admin.HandleFunc("/statistics", surveyHandler.GetStatistics).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	handler := c.Handler(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on :%s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
