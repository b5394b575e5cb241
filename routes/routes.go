package routes

import (
	"net/http"

	"rejuvenate-backend/config"
	"rejuvenate-backend/controllers"
	"rejuvenate-backend/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(st *store.Store) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to Rejuvenate Spa!"})
	})

	customerController := controllers.CustomerController{Store: st}
	staffController := controllers.StaffController{Store: st}
	serviceController := controllers.ServiceController{Store: st}
	inventoryController := controllers.InventoryController{Store: st}
	appointmentController := controllers.AppointmentController{Store: st}
	paymentController := controllers.PaymentController{Store: st}
	linkController := controllers.InventoryLinkController{Store: st}

	api := r.Group("/api")
	{
		// Customer routes
		customers := api.Group("/customers")
		{
			customers.POST("", customerController.CreateCustomer)
			customers.GET("", customerController.GetCustomers)
			customers.GET("/email/:email", customerController.GetCustomerByEmail)
			customers.GET("/:id", customerController.GetCustomer)
			customers.PUT("/:id", customerController.UpdateCustomer)
			customers.DELETE("/:id", customerController.DeleteCustomer)
		}

		// Staff routes
		staff := api.Group("/staff")
		{
			staff.POST("", staffController.CreateStaff)
			staff.GET("", staffController.GetStaff)
			staff.GET("/:id", staffController.GetStaffMember)
			staff.PUT("/:id/role", staffController.UpdateStaffRole)
			staff.DELETE("/:id", staffController.DeleteStaff)
		}

		// Service routes
		services := api.Group("/services")
		{
			services.POST("", serviceController.CreateService)
			services.GET("", serviceController.GetServices)
			services.GET("/:id", serviceController.GetService)
			services.PUT("/:id", serviceController.UpdateService)
			services.DELETE("/:id", serviceController.DeleteService)
		}

		// Inventory routes
		inventory := api.Group("/inventory")
		{
			inventory.POST("", inventoryController.AddInventoryItem)
			inventory.GET("", inventoryController.GetInventory)
			inventory.GET("/low-stock", inventoryController.GetLowStock)
			inventory.GET("/:id", inventoryController.GetInventoryItem)
			inventory.PUT("/:id", inventoryController.UpdateInventoryStock)
			inventory.DELETE("/:id", inventoryController.DeleteInventoryItem)
		}

		// Appointment routes
		appointments := api.Group("/appointments")
		{
			appointments.POST("", appointmentController.BookAppointment)
			appointments.GET("", appointmentController.GetAppointments)
			appointments.GET("/upcoming/:customerId", appointmentController.GetUpcomingAppointments)
			appointments.GET("/:id", appointmentController.GetAppointment)
			appointments.DELETE("/:id", appointmentController.CancelAppointment)
		}

		// Payment routes
		payments := api.Group("/payments")
		{
			payments.POST("", paymentController.ProcessPayment)
			payments.GET("", paymentController.GetPayments)
			payments.GET("/history/:customerId", paymentController.GetPaymentHistory)
			payments.DELETE("/:id", paymentController.RefundPayment)
		}

		// Link table routes
		serviceInventory := api.Group("/service-inventory")
		{
			serviceInventory.POST("", linkController.LinkServiceInventory)
			serviceInventory.GET("/service/:serviceId", linkController.GetInventoryForService)
		}

		appointmentInventory := api.Group("/appointment-inventory")
		{
			appointmentInventory.POST("", linkController.RecordInventoryUsage)
			appointmentInventory.POST("/deduct", linkController.DeductInventoryUsage)
			appointmentInventory.GET("/appointment/:appointmentId", linkController.GetUsageForAppointment)
		}
	}

	return r
}
