package dbfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/Viveknaik1/CFMS/internal/infra"
)

var Module = fx.Provide(provideDB)

func provideDB() *gorm.DB {
	return infra.InitPostgresql()
}
