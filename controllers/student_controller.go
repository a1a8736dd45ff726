package controllers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/freshfold/freshfold-api/middleware"
	"github.com/freshfold/freshfold-api/models"
	"github.com/freshfold/freshfold-api/services"
)

// CreateOrderRequest represents the request body for placing an order
type CreateOrderRequest struct {
	ServiceType    string                       `json:"service_type" binding:"required"`
	UrgencyDays    int                          `json:"urgency_days" binding:"required,gt=0"`
	PhotoURL       string                       `json:"photo_url"`
	PickupLocation string                       `json:"pickup_location" binding:"required"`
	Items          []services.OrderItemRequest  `json:"items" binding:"required,min=1,dive"`
}

// SubmitRatingRequest represents the request body for rating a completed order
type SubmitRatingRequest struct {
	Rating int `json:"rating" binding:"required"`
}

// orderResponse decorates an order with its reconstructed status timeline
type orderResponse struct {
	models.LaundryOrder
	StatusHistory []models.StatusHistoryEntry `json:"status_history"`
}

func toOrderResponse(order models.LaundryOrder) orderResponse {
	return orderResponse{
		LaundryOrder:  order,
		StatusHistory: order.StatusHistory(),
	}
}

func toOrderResponses(orders []models.LaundryOrder) []orderResponse {
	responses := make([]orderResponse, 0, len(orders))
	for _, order := range orders {
		responses = append(responses, toOrderResponse(order))
	}
	return responses
}

// CreateOrder handles POST /api/student/orders - places a new laundry order
func CreateOrder(c *gin.Context) {
	studentID, err := middleware.GetUserID(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Could not extract user information")
		return
	}

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data")
		return
	}

	order, err := orderService.CreateOrder(services.CreateOrderInput{
		StudentID:      studentID,
		ServiceType:    req.ServiceType,
		UrgencyDays:    req.UrgencyDays,
		PhotoURL:       req.PhotoURL,
		PickupLocation: req.PickupLocation,
		Items:          req.Items,
	})
	if err != nil {
		middleware.RecordOrderOperation("create", false)
		respondServiceError(c, err)
		return
	}

	middleware.RecordOrderOperation("create", true)
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    toOrderResponse(*order),
	})
}

// GetStudentOrders handles GET /api/student/orders - lists the calling
// student's orders, newest first
func GetStudentOrders(c *gin.Context) {
	studentID, err := middleware.GetUserID(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Could not extract user information")
		return
	}

	orders, err := orderService.GetStudentOrders(studentID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    toOrderResponses(orders),
	})
}

// GetOrderDetail handles GET /api/student/orders/:orderId - returns one order
// with its status timeline
func GetOrderDetail(c *gin.Context) {
	orderID, err := parseIDParam(c, "orderId")
	if err != nil {
		return
	}

	order, err := orderService.GetOrder(orderID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    toOrderResponse(*order),
	})
}

// ListPersonnel handles GET /api/student/personnel - lists laundry personnel
// sorted by rating
func ListPersonnel(c *gin.Context) {
	personnel, err := orderService.ListPersonnelByRating()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    personnel,
	})
}

// SubmitRating handles POST /api/student/orders/:orderId/rating
func SubmitRating(c *gin.Context) {
	orderID, err := parseIDParam(c, "orderId")
	if err != nil {
		return
	}

	var req SubmitRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data")
		return
	}

	if err := lifecycleService.SubmitRating(orderID, req.Rating); err != nil {
		middleware.RecordOrderOperation("rate", false)
		respondServiceError(c, err)
		return
	}

	middleware.RecordOrderOperation("rate", true)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Rating submitted successfully",
	})
}

// UploadOrderPhoto handles POST /api/student/orders/:orderId/photos - stores
// an uploaded image under the order's next convention name
func UploadOrderPhoto(c *gin.Context) {
	orderID, err := parseIDParam(c, "orderId")
	if err != nil {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "MISSING_FILE", "A file upload is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "UPLOAD_ERROR", "Failed to read uploaded file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "UPLOAD_ERROR", "Failed to read uploaded file")
		return
	}

	storedName, err := photoService.StoreForOrder(orderID, data, fileHeader.Filename)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data": gin.H{
			"filename": storedName,
			"url":      photoService.URLFor(storedName),
		},
	})
}

// ListOrderPhotos handles GET /api/student/orders/:orderId/photos - returns
// the order's photo URLs in upload order
func ListOrderPhotos(c *gin.Context) {
	orderID, err := parseIDParam(c, "orderId")
	if err != nil {
		return
	}

	names, err := photoService.ListForOrder(orderID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	urls := make([]string, 0, len(names))
	for _, name := range names {
		urls = append(urls, photoService.URLFor(name))
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    urls,
	})
}

// parseIDParam reads a numeric path parameter, responding with 400 on failure
func parseIDParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "Invalid "+name)
		return 0, err
	}
	return uint(id), nil
}
