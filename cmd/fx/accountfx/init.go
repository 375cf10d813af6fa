package accountfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Viveknaik1/CFMS/internal/repositories"
	"github.com/Viveknaik1/CFMS/internal/services"
)

var Module = fx.Provide(
	provideUserRepo, provideAccountService)

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideAccountService(userRepo repositories.UserRepository, mailService services.MailService, logger *zap.Logger) services.AccountServiceInterface {
	return services.NewAccountService(userRepo, mailService, logger)
}
