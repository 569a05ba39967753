package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Root reports that the API is running
func Root(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, InfoResponse{Message: "Ren'Py Visual Editor API", Status: "running"})
}

// Health is the liveness probe
func Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, HealthResponse{Status: "healthy"})
}
