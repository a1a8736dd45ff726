package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/freshfold/freshfold-api/services"
)

var (
	lifecycleService *services.LifecycleService
	orderService     *services.OrderService
	adminService     *services.AdminService
	photoService     *services.PhotoService
)

// InitServices wires the service instances the handlers delegate to. Called
// once from main and from test setup.
func InitServices(
	lifecycle *services.LifecycleService,
	orders *services.OrderService,
	admin *services.AdminService,
	photos *services.PhotoService,
) {
	lifecycleService = lifecycle
	orderService = orders
	adminService = admin
	photoService = photos
}

// respondServiceError maps the service error taxonomy onto HTTP statuses and
// the standard error envelope
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrOrderNotFound):
		respondError(c, http.StatusNotFound, "ORDER_NOT_FOUND", err.Error())
	case errors.Is(err, services.ErrStudentNotFound):
		respondError(c, http.StatusNotFound, "STUDENT_NOT_FOUND", err.Error())
	case errors.Is(err, services.ErrPersonnelNotFound):
		respondError(c, http.StatusNotFound, "PERSONNEL_NOT_FOUND", err.Error())
	case errors.Is(err, services.ErrObjectNotFound):
		respondError(c, http.StatusNotFound, "FILE_NOT_FOUND", err.Error())
	case errors.Is(err, services.ErrOrderNotPending):
		respondError(c, http.StatusConflict, "ORDER_NOT_PENDING", err.Error())
	case errors.Is(err, services.ErrInvalidTransition):
		respondError(c, http.StatusConflict, "INVALID_TRANSITION", err.Error())
	case errors.Is(err, services.ErrOrderNotCompleted):
		respondError(c, http.StatusConflict, "ORDER_NOT_COMPLETED", err.Error())
	case errors.Is(err, services.ErrOrderAlreadyRated):
		respondError(c, http.StatusConflict, "ORDER_ALREADY_RATED", err.Error())
	case errors.Is(err, services.ErrRatingOutOfRange):
		respondError(c, http.StatusBadRequest, "INVALID_RATING", err.Error())
	case errors.Is(err, services.ErrInvalidFilename):
		respondError(c, http.StatusBadRequest, "INVALID_FILENAME", err.Error())
	default:
		respondError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "An unexpected error occurred")
	}
}

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}
