package controllers

import (
	"net/http"

	"rejuvenate-backend/store"
	"rejuvenate-backend/utils"

	"github.com/gin-gonic/gin"
)

// InventoryLinkController serves both link tables: service-to-inventory
// consumption and appointment-level usage/deduction.
type InventoryLinkController struct {
	Store *store.Store
}

// LinkServiceInventoryInput defines the JSON structure for linking a service
type LinkServiceInventoryInput struct {
	ServiceID    uint `json:"service_id" binding:"required"`
	InventoryID  uint `json:"inventory_id" binding:"required"`
	QuantityUsed int  `json:"quantity_used" binding:"required"`
}

// AppointmentUsageInput defines the JSON structure for appointment usage
type AppointmentUsageInput struct {
	AppointmentID uint `json:"appointment_id" binding:"required"`
	InventoryID   uint `json:"inventory_id" binding:"required"`
	QuantityUsed  int  `json:"quantity_used" binding:"required"`
}

// LinkServiceInventory links a service to an inventory item, deducting stock
func (ctrl *InventoryLinkController) LinkServiceInventory(c *gin.Context) {
	var input LinkServiceInventoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	link, err := ctrl.Store.LinkServiceInventory(input.ServiceID, input.InventoryID, input.QuantityUsed)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, link)
}

// GetInventoryForService lists the inventory links of a service
func (ctrl *InventoryLinkController) GetInventoryForService(c *gin.Context) {
	serviceID, ok := parseID(c, "serviceId")
	if !ok {
		return
	}

	links, err := ctrl.Store.InventoryForService(serviceID)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, links)
}

// RecordInventoryUsage records appointment usage without moving stock
func (ctrl *InventoryLinkController) RecordInventoryUsage(c *gin.Context) {
	var input AppointmentUsageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	usage, err := ctrl.Store.RecordInventoryUsage(input.AppointmentID, input.InventoryID, input.QuantityUsed)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, usage)
}

// DeductInventoryUsage records appointment usage and deducts stock in one
// transaction
func (ctrl *InventoryLinkController) DeductInventoryUsage(c *gin.Context) {
	var input AppointmentUsageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	usage, err := ctrl.Store.DeductInventoryUsage(input.AppointmentID, input.InventoryID, input.QuantityUsed)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, usage)
}

// GetUsageForAppointment lists the inventory consumed by an appointment
func (ctrl *InventoryLinkController) GetUsageForAppointment(c *gin.Context) {
	appointmentID, ok := parseID(c, "appointmentId")
	if !ok {
		return
	}

	usages, err := ctrl.Store.UsageForAppointment(appointmentID)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, usages)
}
