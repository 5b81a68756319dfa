package handlers

import (
	"net/http"

	"hdmonks/utils"

	"github.com/gin-gonic/gin"
)

func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "HD Monks API"})
}

// Health reports the last health monitor snapshot.
func Health(c *gin.Context) {
	h := utils.GetHealthStatus()
	status := "ok"
	if !h.Mongo {
		status = "degraded"
	}
	c.JSON(http.StatusOK, gin.H{"status": status, "health": h})
}
