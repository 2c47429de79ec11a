package config

import (
	"file-converter/internal/domain"
	"file-converter/internal/repository"
	"file-converter/internal/service"
	"file-converter/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config            domain.Config
	Logger            domain.Logger
	UserRepository    domain.UserRepository
	HistoryRepository domain.HistoryRepository
	AuthService       domain.AuthService
	HistoryService    domain.HistoryService
	Storage           *service.StorageService
	ConvertService    domain.ConvertService
}

// NewContainer creates a new dependency injection container
func NewContainer() (*Container, error) {
	config := NewConfig()
	appLogger := logger.NewLogger(config.GetLogLevel())

	if config.SessionSecretGenerated() {
		appLogger.Warn("SESSION_SECRET is not set, using a generated key; sessions will not survive a restart")
	}

	// Relational store: schema is created idempotently on open.
	db, err := repository.OpenDatabase(config.GetDatabasePath())
	if err != nil {
		return nil, err
	}
	userRepo := repository.NewUserRepository(db)
	historyRepo := repository.NewHistoryRepository(db)

	storage, err := service.NewStorageService(config.GetUploadPath(), config.GetResultPath(), appLogger)
	if err != nil {
		return nil, err
	}

	authService := service.NewAuthService(userRepo, config.GetSessionSecret(), config.GetSessionTTL(), appLogger)
	historyService := service.NewHistoryService(historyRepo, appLogger)

	convertService := service.NewConvertService(
		storage,
		service.NewPDFToDocxConverter(appLogger),
		service.NewDocxTextExtractor(),
		service.NewImageTranscoder(),
		service.NewPDFMerger(appLogger),
		historyService,
		appLogger,
	)

	return &Container{
		Config:            config,
		Logger:            appLogger,
		UserRepository:    userRepo,
		HistoryRepository: historyRepo,
		AuthService:       authService,
		HistoryService:    historyService,
		Storage:           storage,
		ConvertService:    convertService,
	}, nil
}
