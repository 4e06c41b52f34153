package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bookstore/pkg/utils"
)

// idParam reads the numeric :id path parameter. On failure it has already
// written the 400 response.
func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return uint(id), true
}
