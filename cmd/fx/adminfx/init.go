package adminfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Viveknaik1/CFMS/internal/repositories"
	"github.com/Viveknaik1/CFMS/internal/services"
)

var Module = fx.Provide(
	provideWinnerRepo, provideAdminService, provideDashboardService)

func provideWinnerRepo(db *gorm.DB) repositories.WinnerRepository {
	return repositories.NewWinnerRepository(db)
}

func provideAdminService(
	userRepo repositories.UserRepository,
	eventRepo repositories.EventRepository,
	hallRepo repositories.HallRepository,
	winnerRepo repositories.WinnerRepository,
	logger *zap.Logger,
) services.AdminServiceInterface {
	return services.NewAdminService(userRepo, eventRepo, hallRepo, winnerRepo, logger)
}

func provideDashboardService(
	userRepo repositories.UserRepository,
	eventRepo repositories.EventRepository,
	hallRepo repositories.HallRepository,
) services.DashboardService {
	return services.NewDashboardService(userRepo, eventRepo, hallRepo)
}
