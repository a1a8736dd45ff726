package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshfold/freshfold-api/models"
)

func newImageRouter() *gin.Engine {
	router := gin.New()
	router.GET("/api/uploads/:filename", GetUploadedImage)
	return router
}

func TestGetUploadedImage(t *testing.T) {
	db := setupTestDB(t)
	student := createTestStudent(t, db)
	createTestOrder(t, db, student.ID, models.StatusPending)

	studentRouter := newStudentRouter(student.ID)
	upload := uploadPhoto(t, studentRouter, "/api/student/orders/1/photos", "front.jpg", []byte("jpeg bytes"))
	require.Equal(t, http.StatusCreated, upload.Code)

	router := newImageRouter()
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/uploads/1.jpg", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/jpeg", w.Header().Get("Content-Type"))
	assert.Equal(t, "public, max-age=86400", w.Header().Get("Cache-Control"))
	assert.Equal(t, []byte("jpeg bytes"), w.Body.Bytes())
}

func TestGetUploadedImageNotFound(t *testing.T) {
	setupTestDB(t)
	router := newImageRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/uploads/99.jpg", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "FILE_NOT_FOUND")
}

func TestGetUploadedImageTraversal(t *testing.T) {
	setupTestDB(t)
	router := newImageRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/uploads/..evil.jpg", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_FILENAME")
}
