package bookingfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Viveknaik1/CFMS/internal/repositories"
	"github.com/Viveknaik1/CFMS/internal/services"
)

var Module = fx.Provide(
	provideHallRepo, provideBookingService)

func provideHallRepo(db *gorm.DB) repositories.HallRepository {
	return repositories.NewHallRepository(db)
}

func provideBookingService(hallRepo repositories.HallRepository, userRepo repositories.UserRepository, mailService services.MailService, logger *zap.Logger) services.BookingServiceInterface {
	return services.NewBookingService(hallRepo, userRepo, mailService, logger)
}
