package controllersfx

import (
	"go.uber.org/fx"

	"github.com/Viveknaik1/CFMS/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewEventController),
	fx.Provide(controllers.NewBookingController),
	fx.Provide(controllers.NewAdminController),
	fx.Provide(controllers.NewDashboardController))
