package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/freshfold/freshfold-api/middleware"
	"github.com/freshfold/freshfold-api/models"
)

// RejectOrderRequest represents the request body for rejecting an order
type RejectOrderRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// UpdateStatusRequest represents the request body for advancing an order
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// GetPendingOrders handles GET /api/personnel/orders/pending
func GetPendingOrders(c *gin.Context) {
	orders, err := orderService.GetPendingOrders()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    toOrderResponses(orders),
	})
}

// GetInProgressOrders handles GET /api/personnel/orders/inprogress - lists
// the calling personnel member's active orders
func GetInProgressOrders(c *gin.Context) {
	personnelID, err := middleware.GetUserID(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Could not extract user information")
		return
	}

	orders, err := orderService.GetInProgressOrders(personnelID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    toOrderResponses(orders),
	})
}

// GetCompletedOrders handles GET /api/personnel/orders/completed
func GetCompletedOrders(c *gin.Context) {
	personnelID, err := middleware.GetUserID(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Could not extract user information")
		return
	}

	orders, err := orderService.GetCompletedOrders(personnelID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    toOrderResponses(orders),
	})
}

// AcceptOrder handles POST /api/personnel/orders/:orderId/accept - assigns
// the pending order to the calling personnel member
func AcceptOrder(c *gin.Context) {
	personnelID, err := middleware.GetUserID(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Could not extract user information")
		return
	}

	orderID, err := parseIDParam(c, "orderId")
	if err != nil {
		return
	}

	if err := lifecycleService.Accept(orderID, personnelID); err != nil {
		middleware.RecordOrderOperation("accept", false)
		respondServiceError(c, err)
		return
	}

	middleware.RecordOrderOperation("accept", true)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Order accepted successfully",
	})
}

// RejectOrder handles POST /api/personnel/orders/:orderId/reject
func RejectOrder(c *gin.Context) {
	orderID, err := parseIDParam(c, "orderId")
	if err != nil {
		return
	}

	var req RejectOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "A rejection reason is required")
		return
	}

	if err := lifecycleService.Reject(orderID, req.Reason); err != nil {
		middleware.RecordOrderOperation("reject", false)
		respondServiceError(c, err)
		return
	}

	middleware.RecordOrderOperation("reject", true)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Order rejected",
	})
}

// UpdateOrderStatus handles PUT /api/personnel/orders/:orderId/status -
// advances an order one step along the workflow
func UpdateOrderStatus(c *gin.Context) {
	orderID, err := parseIDParam(c, "orderId")
	if err != nil {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "A target status is required")
		return
	}

	target, err := models.ParseOrderStatus(req.Status)
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_STATUS", "Unknown order status")
		return
	}

	if err := lifecycleService.Advance(orderID, target); err != nil {
		middleware.RecordOrderOperation("advance", false)
		respondServiceError(c, err)
		return
	}

	middleware.RecordOrderOperation("advance", true)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Order status updated to " + string(target),
	})
}

// GetPersonnelStats handles GET /api/personnel/stats - returns the calling
// personnel member's completed-order count and earnings
func GetPersonnelStats(c *gin.Context) {
	personnelID, err := middleware.GetUserID(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Could not extract user information")
		return
	}

	stats, err := orderService.GetPersonnelStats(personnelID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    stats,
	})
}
