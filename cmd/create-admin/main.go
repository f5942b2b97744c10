package main

import (
	"context"
	"log"

	"poi-be-svc/internal/auth"
	"poi-be-svc/internal/config"
	"poi-be-svc/internal/database"
	"poi-be-svc/internal/models"
	"poi-be-svc/internal/repository"
	"poi-be-svc/internal/service"
	"poi-be-svc/pkg/logger"
)

// Seeds the first admin account from ADMIN_EMAIL, ADMIN_PASSWORD and ADMIN_NAME.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger := logger.NewLogger(cfg.Logger.Level, cfg.Logger.Format)

	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to database")
	}
	defer db.Close()

	if err := db.AutoMigrate(); err != nil {
		appLogger.WithError(err).Fatal("Failed to run database migrations")
	}

	ctx := context.Background()
	userRepo := repository.NewUserRepository(db.DB)

	exists, err := userRepo.ExistsWithRole(ctx, auth.RoleAdmin)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to look up admin users")
	}
	if exists {
		appLogger.Info("Admin user already exists")
		return
	}

	hash, err := service.HashPassword(cfg.Admin.Password)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to hash admin password")
	}

	admin := &models.User{
		Email:    service.NormalizeEmail(cfg.Admin.Email),
		Password: hash,
		Name:     cfg.Admin.Name,
		Role:     auth.RoleAdmin,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		appLogger.WithError(err).Fatal("Failed to create admin user")
	}

	appLogger.WithFields(map[string]interface{}{
		"user_id": admin.ID,
		"email":   admin.Email,
	}).Info("Admin user created successfully")
}
