package bootstrap

import (
	"time"

	"notes-be/internal/config"
	"notes-be/internal/controller"
	"notes-be/internal/pkg/logger"
	"notes-be/internal/pkg/security"
	"notes-be/internal/repository/unitofwork"
	"notes-be/internal/service"

	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	PingController controller.IPingController
	UserController controller.IUserController
	NoteController controller.INoteController
	TagController  controller.ITagController

	// Shared facades
	Tokens *security.TokenManager
	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	tokens := security.NewTokenManager(cfg.Jwt.Secret, time.Duration(cfg.Jwt.TTLHours)*time.Hour)

	// 2. Services
	userService := service.NewUserService(uowFactory, tokens, sysLogger)
	noteService := service.NewNoteService(uowFactory, sysLogger)
	tagService := service.NewTagService(uowFactory, sysLogger)

	// 3. Controllers
	return &Container{
		PingController: controller.NewPingController(),
		UserController: controller.NewUserController(userService),
		NoteController: controller.NewNoteController(noteService),
		TagController:  controller.NewTagController(tagService),
		Tokens:         tokens,
		Logger:         sysLogger,
	}
}
