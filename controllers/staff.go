package controllers

import (
	"net/http"

	"rejuvenate-backend/store"
	"rejuvenate-backend/utils"

	"github.com/gin-gonic/gin"
)

type StaffController struct {
	Store *store.Store
}

// CreateStaffInput defines the expected JSON structure for registering staff
type CreateStaffInput struct {
	Name string `json:"name" binding:"required"`
	Role string `json:"role" binding:"required"`
}

// UpdateStaffRoleInput defines the expected JSON structure for a role change
type UpdateStaffRoleInput struct {
	Role string `json:"role" binding:"required"`
}

// CreateStaff registers a new staff member
func (ctrl *StaffController) CreateStaff(c *gin.Context) {
	var input CreateStaffInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	staff, err := ctrl.Store.CreateStaff(input.Name, input.Role)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, staff)
}

// GetStaff retrieves all staff, optionally filtered by ?role=
func (ctrl *StaffController) GetStaff(c *gin.Context) {
	role := c.Query("role")

	var err error
	var staff interface{}
	if role != "" {
		staff, err = ctrl.Store.ListStaffByRole(role)
	} else {
		staff, err = ctrl.Store.ListStaff()
	}
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, staff)
}

// GetStaffMember retrieves a specific staff member by ID
func (ctrl *StaffController) GetStaffMember(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	staff, err := ctrl.Store.GetStaffByID(id)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, staff)
}

// UpdateStaffRole changes a staff member's role
func (ctrl *StaffController) UpdateStaffRole(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input UpdateStaffRoleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	staff, err := ctrl.Store.UpdateStaffRole(id, input.Role)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, staff)
}

// DeleteStaff removes a staff member
func (ctrl *StaffController) DeleteStaff(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := ctrl.Store.DeleteStaff(id); err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Staff member deleted successfully"})
}
