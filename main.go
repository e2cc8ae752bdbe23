package main

import (
	"fmt"
	"log"
	"os"

	"salonbooker-backend/config"
	"salonbooker-backend/models"
	"salonbooker-backend/routes"
	"salonbooker-backend/seed"
	"salonbooker-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.Salon{},
		&models.User{},
		&models.ServiceCategory{},
		&models.ServiceSubcategory{},
		&models.Service{},
		&models.Appointment{},
		&models.Payment{},
	)

	// The slot index is what holds the no-double-booking guarantee under
	// concurrent requests; refuse to start without it.
	if err := config.EnsureSlotIndex(config.DB); err != nil {
		log.Fatalf("Failed to create appointment slot index: %v", err)
	}

	if os.Getenv("SEED_DB") == "true" {
		if err := seed.Run(config.DB); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}
}

func main() {
	services.NewReminderService(config.DB).StartScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
