package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"realestate_backend/internal/auth"
	"realestate_backend/internal/config"
	"realestate_backend/internal/database"
	"realestate_backend/internal/email"
	"realestate_backend/internal/handlers"
	"realestate_backend/internal/logger"
	"realestate_backend/internal/middleware"
	"realestate_backend/internal/models"
	"realestate_backend/internal/repositories"
	"realestate_backend/internal/routes"
	"realestate_backend/internal/services"
	"realestate_backend/internal/validator"
	"realestate_backend/pkg/apperrors"
	"realestate_backend/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

// Run serves HTTP until SIGINT or SIGTERM.
func Run(cfg *config.Config) error {
	logger.Info("Connecting to database...")
	gormDB, err := database.Open(cfg.Database.DSN)
	if err != nil {
		return err
	}
	defer database.Close(gormDB)
	logger.Info("Database connected")

	credentials := NewCredentials(cfg)

	if err := seedFirstAdmin(gormDB, cfg, credentials); err != nil {
		return fmt.Errorf("failed to seed first admin user: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	wsManager := ws.NewManager()
	go wsManager.Run(ctx)

	ginRouter := SetupRouter(cfg, gormDB, credentials, wsManager)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:              address,
		Handler:           ginRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Server starting", "address", address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server startup error: %w", err)
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// NewCredentials builds the credential service from cfg.
func NewCredentials(cfg *config.Config) *auth.Credentials {
	return auth.NewCredentials(cfg.JWT.Secret, cfg.ProductKey.Secret, cfg.TokenTTL())
}

// SetupRouter wires repositories, services and handlers onto a gin engine.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB, credentials *auth.Credentials, wsManager *ws.Manager) *gin.Engine {
	apperrors.SetDebug(cfg.IsDevelopment())
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	notifiers := []services.InquiryNotifier{wsManager}
	smtpConfig := email.SMTPConfig{
		Host:      cfg.Email.SMTPHost,
		Port:      cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
	}
	if smtpConfig.Enabled() {
		mailer := email.NewInquiryMailer(email.NewSMTPProvider(smtpConfig), email.NewDefaultTemplateManager())
		notifiers = append(notifiers, mailer)
		logger.Info("Inquiry e-mail notifications enabled", "smtp_host", smtpConfig.Host)
	} else {
		logger.Warn("SMTP is not configured. Inquiry e-mail notifications are disabled.")
	}

	userRepo := repositories.NewUserRepository()
	serviceContainer := initializeServices(credentials, userRepo, notifiers)
	guard := middleware.NewGuard(credentials, userRepo)
	appHandlers := initializeHandlers(serviceContainer, guard, wsManager)

	ginRouter := initializeGinRouter(gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(credentials services.CredentialService, userRepo repositories.UserRepository, notifiers []services.InquiryNotifier) *services.ServiceContainer {
	homeRepo := repositories.NewHomeRepository()
	imageRepo := repositories.NewImageRepository()
	messageRepo := repositories.NewMessageRepository()

	return &services.ServiceContainer{
		AuthService: services.NewAuthService(userRepo, credentials),
		HomeService: services.NewHomeService(homeRepo, imageRepo, messageRepo, userRepo, notifiers...),
	}
}

func initializeHandlers(services *services.ServiceContainer, guard *middleware.Guard, wsManager *ws.Manager) *handlers.AppHandlers {
	baseHandler := handlers.NewBaseHandler(validator.New())

	return &handlers.AppHandlers{
		AuthHandler:         handlers.NewAuthHandler(baseHandler, services.AuthService, guard),
		HomeHandler:         handlers.NewHomeHandler(baseHandler, services.HomeService, guard),
		NotificationHandler: handlers.NewNotificationHandler(baseHandler, wsManager, guard),
	}
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}

// seedFirstAdmin creates the configured ADMIN account once.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config, credentials services.CredentialService) error {
	adminEmail := cfg.Admin.Email
	adminPassword := cfg.Admin.Password

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	userRepo := repositories.NewUserRepository()

	return db.Transaction(func(tx *gorm.DB) error {
		_, err := userRepo.FindByEmail(tx, adminEmail)
		if err == nil {
			logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
			return nil
		}
		if !errors.Is(err, repositories.ErrUserNotFound) {
			return fmt.Errorf("failed to check for admin user: %w", err)
		}

		logger.Warn("No admin user found with specified email. Creating first admin...", "email", adminEmail)

		hashedPassword, err := credentials.HashPassword(adminPassword)
		if err != nil {
			return fmt.Errorf("failed to hash admin password: %w", err)
		}

		admin := &models.User{
			Name:     "Administrator",
			Email:    adminEmail,
			Password: hashedPassword,
			UserType: models.UserTypeAdmin,
		}
		if err := userRepo.Create(tx, admin); err != nil {
			return fmt.Errorf("failed to create admin user in database: %w", err)
		}

		logger.Info("Successfully created first admin user", "email", adminEmail)
		return nil
	})
}
