package main

import (
	"fmt"
	"os"

	"rejuvenate-backend/cli"
	"rejuvenate-backend/config"
	"rejuvenate-backend/models"
	"rejuvenate-backend/routes"
	"rejuvenate-backend/seed"
	"rejuvenate-backend/services"
	"rejuvenate-backend/store"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		config.Logger().Info("No .env file found")
	}

	db, err := config.ConnectDB()
	if err != nil {
		config.Logger().Fatalw("failed to connect database", "error", err)
	}

	if err := db.AutoMigrate(
		&models.Customer{},
		&models.Staff{},
		&models.Service{},
		&models.Inventory{},
		&models.Appointment{},
		&models.Payment{},
		&models.ServiceInventory{},
		&models.AppointmentInventory{},
		&models.ReminderLog{},
	); err != nil {
		config.Logger().Fatalw("failed to run migrations", "error", err)
	}

	st := store.New(db)

	mode := "serve"
	if len(os.Args) > 1 {
		mode = os.Args[1]
	}

	switch mode {
	case "serve":
		services.NewReminderService(db).StartScheduler()

		port := os.Getenv("PORT")
		if port == "" {
			port = "8080"
		}
		r := routes.SetupRouter(st)
		printRoutes(r)
		if err := r.Run(":" + port); err != nil {
			config.Logger().Fatalw("server stopped", "error", err)
		}
	case "menu":
		cli.New(st, os.Stdin, os.Stdout).Run()
	case "seed":
		if err := seed.Run(db); err != nil {
			config.Logger().Fatalw("seeding failed", "error", err)
		}
		config.Logger().Info("Database seeded")
	default:
		fmt.Fprintf(os.Stderr, "unknown mode %q (expected serve, menu or seed)\n", mode)
		os.Exit(2)
	}
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
