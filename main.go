// api/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"shoppersignal/api/classifier"
	"shoppersignal/api/features"
	"shoppersignal/api/handlers"
)

func main() {
	// Load .env file at the very start
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found or error loading .env: %v", err)
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// --- Initialize the classifier loader ---
	// Warm it up front so the artifact download happens at startup rather
	// than on the first prediction. A failed load is not fatal here: the
	// error is surfaced per request instead.
	loader := classifier.NewLoader()
	if _, err := loader.Get(); err != nil {
		log.Printf("WARNING: classifier not ready at startup: %v", err)
	}

	// --- Initialize Handlers ---
	predictHandlers := handlers.NewPredictHandlers(loader, features.DefaultOptions())
	chartHandlers := handlers.NewChartHandlers()

	r := handlers.NewRouter(predictHandlers, chartHandlers)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		log.Printf("Purchase predictor serving on http://localhost:%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
