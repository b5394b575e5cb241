// controllers/service.go
package controllers

import (
	"net/http"

	"rejuvenate-backend/store"
	"rejuvenate-backend/utils"

	"github.com/gin-gonic/gin"
)

type ServiceController struct {
	Store *store.Store
}

// CreateServiceInput defines the expected JSON structure for creating a service
type CreateServiceInput struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required"`
}

// UpdateServiceInput defines the expected JSON structure for updating a service
type UpdateServiceInput struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
}

// CreateService creates a new spa service
func (ctrl *ServiceController) CreateService(c *gin.Context) {
	var input CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	service, err := ctrl.Store.CreateService(input.Name, input.Description, input.Price)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, service)
}

// GetServices retrieves all services; an empty catalogue yields 200 and [].
func (ctrl *ServiceController) GetServices(c *gin.Context) {
	services, err := ctrl.Store.ListServices()
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, services)
}

// GetService retrieves a specific service by ID
func (ctrl *ServiceController) GetService(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	service, err := ctrl.Store.GetServiceByID(id)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, service)
}

// UpdateService updates an existing service
func (ctrl *ServiceController) UpdateService(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input UpdateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	service, err := ctrl.Store.UpdateService(id, input.Name, input.Description, input.Price)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, service)
}

// DeleteService deletes a service
func (ctrl *ServiceController) DeleteService(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := ctrl.Store.DeleteService(id); err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully"})
}
