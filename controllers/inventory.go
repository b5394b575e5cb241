package controllers

import (
	"net/http"

	"rejuvenate-backend/store"
	"rejuvenate-backend/utils"

	"github.com/gin-gonic/gin"
)

type InventoryController struct {
	Store *store.Store
}

// AddInventoryInput defines the expected JSON structure for adding stock
type AddInventoryInput struct {
	ProductName string `json:"product_name" binding:"required"`
	Quantity    *int   `json:"quantity" binding:"required"`
}

// UpdateInventoryInput carries the absolute quantity to set
type UpdateInventoryInput struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// AddInventoryItem adds a new inventory item
func (ctrl *InventoryController) AddInventoryItem(c *gin.Context) {
	var input AddInventoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	item, err := ctrl.Store.AddInventoryItem(input.ProductName, *input.Quantity)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

// GetInventory retrieves all inventory items
func (ctrl *InventoryController) GetInventory(c *gin.Context) {
	items, err := ctrl.Store.ListInventory()
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// GetInventoryItem retrieves a specific inventory item by ID
func (ctrl *InventoryController) GetInventoryItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	item, err := ctrl.Store.GetInventoryItemByID(id)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// UpdateInventoryStock sets the stock level to an absolute quantity
func (ctrl *InventoryController) UpdateInventoryStock(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input UpdateInventoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	item, err := ctrl.Store.SetStock(id, *input.Quantity)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// GetLowStock lists items under the replenishment threshold
func (ctrl *InventoryController) GetLowStock(c *gin.Context) {
	items, err := ctrl.Store.LowStockItems()
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// DeleteInventoryItem removes an inventory item
func (ctrl *InventoryController) DeleteInventoryItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := ctrl.Store.DeleteInventoryItem(id); err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Inventory item deleted successfully"})
}
