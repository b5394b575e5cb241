package controllers

import (
	"net/http"
	"time"

	"rejuvenate-backend/store"
	"rejuvenate-backend/utils"

	"github.com/gin-gonic/gin"
)

type AppointmentController struct {
	Store *store.Store
}

// BookAppointmentInput defines the expected JSON structure for booking
type BookAppointmentInput struct {
	CustomerID    uint      `json:"customer_id" binding:"required"`
	ServiceID     uint      `json:"service_id" binding:"required"`
	StaffID       uint      `json:"staff_id" binding:"required"`
	ScheduledTime time.Time `json:"scheduled_time" binding:"required"`
}

// BookAppointment books a new appointment
func (ctrl *AppointmentController) BookAppointment(c *gin.Context) {
	var input BookAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	appointment, err := ctrl.Store.BookAppointment(input.CustomerID, input.ServiceID, input.StaffID, input.ScheduledTime)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, appointment)
}

// GetAppointments retrieves all appointments
func (ctrl *AppointmentController) GetAppointments(c *gin.Context) {
	appointments, err := ctrl.Store.ListAppointments()
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, appointments)
}

// GetAppointment retrieves a specific appointment by ID
func (ctrl *AppointmentController) GetAppointment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	appointment, err := ctrl.Store.GetAppointmentByID(id)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, appointment)
}

// GetUpcomingAppointments lists a customer's appointments still ahead of now
func (ctrl *AppointmentController) GetUpcomingAppointments(c *gin.Context) {
	customerID, ok := parseID(c, "customerId")
	if !ok {
		return
	}

	appointments, err := ctrl.Store.UpcomingAppointments(customerID)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, appointments)
}

// CancelAppointment cancels (hard deletes) an appointment
func (ctrl *AppointmentController) CancelAppointment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := ctrl.Store.CancelAppointment(id); err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Appointment canceled successfully"})
}
