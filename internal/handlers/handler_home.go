package handlers

import (
	"net/http"

	"github.com/SscSPs/campus_connect/internal/dto"
	"github.com/gin-gonic/gin"
)

// getHome godoc
// @Summary Show the status of server.
// @Description Liveness check.
// @Tags root
// @Produce json
// @Success 200 {object} dto.Response
// @Router / [get]
func getHome(c *gin.Context) {
	c.JSON(http.StatusOK, dto.OK("College Student Connect API is running", nil))
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, dto.Fail("Route not found"))
}
