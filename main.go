package main

import (
	"log"

	api "konexio-backend/cmd/api"
	authdomain "konexio-backend/internal/auth/domain"
	authRepo "konexio-backend/internal/auth/repository"
	"konexio-backend/internal/auth/token"
	authUsecase "konexio-backend/internal/auth/usecase"
	contactdomain "konexio-backend/internal/contact/domain"
	contactRepo "konexio-backend/internal/contact/repository"
	contactUsecase "konexio-backend/internal/contact/usecase"
	"konexio-backend/pkg/config"
	"konexio-backend/pkg/database"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &contactdomain.Contact{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	contactRepository := contactRepo.NewContactRepository(db)

	// Signing secret is read once here and injected, never read again
	tokens := token.NewService(cfg.JWTSecret, cfg.JWTExpiry)

	// Initialize use cases
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepository, tokens)
	contactUsecaseInstance := contactUsecase.NewContactUsecase(contactRepository, userRepository)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, contactUsecaseInstance, tokens, cfg)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
