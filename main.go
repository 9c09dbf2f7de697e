package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"backend/internal/config"
	router "backend/internal/http"
	"backend/internal/http/handlers"
	"backend/internal/repositories"
	"backend/internal/services"

	"github.com/gin-gonic/gin"
)

func main() {
	env := config.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	db := config.ConnectDB(env.DBDSN)
	defer config.CloseDB()

	// Composition root: repositories -> services -> handlers -> router.
	userRepo := repositories.UserRepository{DB: db}
	companyRepo := repositories.CompanyRepository{DB: db}
	taskRepo := repositories.TaskRepository{DB: db}

	userService := services.UserService{Store: userRepo}
	companyService := services.CompanyService{Store: companyRepo, Users: userRepo}
	taskService := services.TaskService{Store: taskRepo}
	reportsService := services.ReportsService{Store: userRepo}

	r := router.NewRouter(env, router.Deps{
		System:    handlers.SystemHandler{DB: db},
		Auth:      handlers.AuthHandler{Env: env},
		Users:     handlers.UserHandler{Service: userService},
		Companies: handlers.CompanyHandler{Service: companyService},
		Tasks:     handlers.TaskHandler{Service: taskService},
		Reports:   handlers.ReportsHandler{Service: reportsService},
	})

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("server listening on %s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server shutdown failed: %v", err)
	}

	log.Println("server stopped cleanly")
}
