package handlers

import (
	"net/http"

	"github.com/rishabhinai-netizen/tradeaudit-pro/internal/broker"

	"github.com/gin-gonic/gin"
)

// ListBrokers handles GET /api/v1/brokers: the selectable formats for manual
// broker selection.
func ListBrokers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"brokers": broker.SupportedBrokers()})
}
