package routes

import (
	"os"
	"strings"

	"salonbooker-backend/config"
	"salonbooker-backend/controllers"
	"salonbooker-backend/models"
	"salonbooker-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	origins := []string{"http://localhost:3000"}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		origins = strings.Split(env, ",")
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/verify-reset-token", controllers.VerifyResetToken)
		auth.POST("/reset-password", controllers.ResetPassword)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	// Public browsing of approved salons and their services
	r.GET("/salons/approved", controllers.GetApprovedSalons)
	r.GET("/salons/:id/services", controllers.GetSalonServices)

	api := r.Group("/")
	api.Use(utils.AuthMiddleware())
	{
		appointments := api.Group("/appointments")
		{
			appointments.POST("", controllers.CreateAppointment)
			appointments.GET("", controllers.GetAppointments)
			appointments.PATCH("/:id/cancel", controllers.CancelAppointment)
		}

		salons := api.Group("/salons")
		{
			salons.POST("/:id/services", controllers.CreateSalonService)
			salons.GET("/:id/clients", controllers.GetSalonClients)
			salons.GET("/:id/stats", controllers.GetSalonStats)
		}

		admin := api.Group("/admin")
		admin.Use(utils.RequireRole(models.RolePlatformAdmin))
		{
			admin.GET("/salons", controllers.GetSalons)
			admin.PATCH("/salons/:id/approve", controllers.ApproveSalon)
			admin.GET("/users", controllers.GetUsers)
			admin.GET("/stats", controllers.GetPlatformStats)
		}
	}

	return r
}
