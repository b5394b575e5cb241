// Package controllers holds the gin handlers. Each controller is a thin
// call-through to the store; domain errors are translated here and nowhere
// else.
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"rejuvenate-backend/store"
	"rejuvenate-backend/utils"

	"github.com/gin-gonic/gin"
)

func parseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid "+param+" format")
		return 0, false
	}
	return uint(id), true
}

// respondStoreError maps the domain error taxonomy onto HTTP statuses:
// not-found 404, validation 400, insufficient stock 409, anything else 500.
func respondStoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		utils.RespondWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, store.ErrValidation):
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrInsufficientStock):
		utils.RespondWithError(c, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
	}
}
