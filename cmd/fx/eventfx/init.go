package eventfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Viveknaik1/CFMS/internal/repositories"
	"github.com/Viveknaik1/CFMS/internal/services"
)

var Module = fx.Provide(
	provideEventRepo, provideEventService)

func provideEventRepo(db *gorm.DB) repositories.EventRepository {
	return repositories.NewEventRepository(db)
}

func provideEventService(eventRepo repositories.EventRepository, userRepo repositories.UserRepository, mailService services.MailService, logger *zap.Logger) services.EventServiceInterface {
	return services.NewEventService(eventRepo, userRepo, mailService, logger)
}
