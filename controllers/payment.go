package controllers

import (
	"net/http"

	"rejuvenate-backend/store"
	"rejuvenate-backend/utils"

	"github.com/gin-gonic/gin"
)

type PaymentController struct {
	Store *store.Store
}

// ProcessPaymentInput defines the expected JSON structure for a payment
type ProcessPaymentInput struct {
	CustomerID    uint    `json:"customer_id" binding:"required"`
	AppointmentID uint    `json:"appointment_id" binding:"required"`
	Amount        float64 `json:"amount" binding:"required"`
}

// ProcessPayment records a payment for an appointment
func (ctrl *PaymentController) ProcessPayment(c *gin.Context) {
	var input ProcessPaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	payment, err := ctrl.Store.ProcessPayment(input.CustomerID, input.AppointmentID, input.Amount)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, payment)
}

// GetPayments retrieves all payments
func (ctrl *PaymentController) GetPayments(c *gin.Context) {
	payments, err := ctrl.Store.ListPayments()
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, payments)
}

// GetPaymentHistory lists a customer's payments, oldest first
func (ctrl *PaymentController) GetPaymentHistory(c *gin.Context) {
	customerID, ok := parseID(c, "customerId")
	if !ok {
		return
	}

	payments, err := ctrl.Store.PaymentHistory(customerID)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, payments)
}

// RefundPayment removes a payment record
func (ctrl *PaymentController) RefundPayment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := ctrl.Store.RefundPayment(id); err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Payment refunded successfully"})
}
