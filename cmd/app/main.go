package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Viveknaik1/CFMS/cmd/fx/accountfx"
	"github.com/Viveknaik1/CFMS/cmd/fx/adminfx"
	"github.com/Viveknaik1/CFMS/cmd/fx/bookingfx"
	"github.com/Viveknaik1/CFMS/cmd/fx/controllersfx"
	"github.com/Viveknaik1/CFMS/cmd/fx/dbfx"
	"github.com/Viveknaik1/CFMS/cmd/fx/eventfx"
	"github.com/Viveknaik1/CFMS/cmd/fx/loggerfx"
	"github.com/Viveknaik1/CFMS/cmd/fx/mailfx"
	"github.com/Viveknaik1/CFMS/internal/api/controllers"
	"github.com/Viveknaik1/CFMS/internal/infra"
	"github.com/Viveknaik1/CFMS/internal/models/db_models"
	"github.com/Viveknaik1/CFMS/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		loggerfx.Module,
		dbfx.Module,
		mailfx.Module,
		accountfx.Module,
		eventfx.Module,
		bookingfx.Module,
		adminfx.Module,
		controllersfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(SeedDatabase),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func SeedDatabase(db *gorm.DB, logger *zap.Logger) error {
	return infra.Seed(db, logger)
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, db *gorm.DB, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8000"
				}
				logger.Info("Starting HTTP server", zap.String("port", port))
				if err := engine.Run(":" + port); err != nil {
					logger.Fatal("Failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping HTTP server")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	eventController *controllers.EventController,
	bookingController *controllers.BookingController,
	adminController *controllers.AdminController,
	dashboardController *controllers.DashboardController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, accountController, eventController, bookingController, adminController, dashboardController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	eventController *controllers.EventController,
	bookingController *controllers.BookingController,
	adminController *controllers.AdminController,
	dashboardController *controllers.DashboardController) {

	r.GET("/", eventController.ListEvents)
	r.GET("/halls/", bookingController.ListHalls)
	r.POST("/login/", accountController.Login)
	r.GET("/logout/", accountController.Logout)
	r.POST("/student_registration/", accountController.RegisterStudent)
	r.POST("/external_registration/", accountController.RegisterExternal)
	r.POST("/organiser_registration/", accountController.RegisterOrganiser)

	auth := r.Group("", middleware.SessionMiddleware())
	auth.GET("/dashboard/", dashboardController.GetDashboard)

	participant := auth.Group("", middleware.RequireRole(db_models.RoleStudent, db_models.RoleExternal))
	participant.POST("/event/register/", eventController.RegisterForEvent)

	student := auth.Group("", middleware.RequireRole(db_models.RoleStudent))
	student.POST("/volunteer_registration/", eventController.VolunteerForEvent)

	external := auth.Group("", middleware.RequireRole(db_models.RoleExternal))
	external.POST("/accommodation/book/", bookingController.BookAccommodation)
	external.GET("/accommodation/", bookingController.MyBooking)

	admin := auth.Group("", middleware.RequireRole(db_models.RoleAdmin))
	admin.POST("/delete/", adminController.DeleteUser)
	admin.POST("/winner/", adminController.ComputeWinners)
	admin.GET("/winner/", adminController.ListWinners)
	admin.POST("/event_details/", adminController.EventDetails)
	admin.GET("/hall_admin/", adminController.HallAdmin)
	admin.POST("/hall_details/", adminController.HallDetails)
	admin.POST("/assign_organiser/", adminController.AssignOrganiser)
}
