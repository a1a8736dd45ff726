package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetAdminStats handles GET /api/admin/stats - returns the dashboard
// aggregates
func GetAdminStats(c *gin.Context) {
	stats, err := adminService.GetStats()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    stats,
	})
}

// GetRecentOrders handles GET /api/admin/orders/recent - returns the 10 most
// recent orders
func GetRecentOrders(c *gin.Context) {
	orders, err := adminService.GetRecentOrders()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    toOrderResponses(orders),
	})
}

// GetAllOrders handles GET /api/admin/orders/all - returns every order for
// report generation
func GetAllOrders(c *gin.Context) {
	orders, err := adminService.GetAllOrders()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    toOrderResponses(orders),
	})
}
