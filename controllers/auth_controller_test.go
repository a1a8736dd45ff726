package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter() *gin.Engine {
	router := gin.New()
	router.POST("/api/auth/login", Login)
	router.POST("/api/auth/signup/student", SignupStudent)
	router.POST("/api/auth/signup/personnel", SignupPersonnel)
	return router
}

func postJSON(router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", path, bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestStudentLogin(t *testing.T) {
	db := setupTestDB(t)
	router := newAuthRouter()
	student := createTestStudent(t, db)

	w := postJSON(router, "/api/auth/login", gin.H{
		"email":    student.Email,
		"password": "password",
		"role":     "STUDENT",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])

	data := body["data"].(map[string]interface{})
	assert.Equal(t, "STUDENT", data["role"])
	assert.Equal(t, student.FullName, data["full_name"])
	assert.NotEmpty(t, data["token"])

	userData := data["user_data"].(map[string]interface{})
	assert.Equal(t, student.StudentID, userData["student_id"])
	assert.Equal(t, student.Hostel, userData["hostel"])
}

func TestStudentLoginWrongPassword(t *testing.T) {
	db := setupTestDB(t)
	router := newAuthRouter()
	student := createTestStudent(t, db)

	w := postJSON(router, "/api/auth/login", gin.H{
		"email":    student.Email,
		"password": "wrong",
		"role":     "STUDENT",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_CREDENTIALS")
}

func TestPersonnelLogin(t *testing.T) {
	db := setupTestDB(t)
	router := newAuthRouter()
	personnel := createTestPersonnel(t, db)

	w := postJSON(router, "/api/auth/login", gin.H{
		"email":    personnel.Email,
		"password": "password",
		"role":     "PERSONNEL",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "PERSONNEL", data["role"])

	userData := data["user_data"].(map[string]interface{})
	assert.Equal(t, "EMP001", userData["employee_id"])
}

func TestAdminLoginByEmail(t *testing.T) {
	db := setupTestDB(t)
	router := newAuthRouter()
	admin := createTestAdmin(t, db)

	w := postJSON(router, "/api/auth/login", gin.H{
		"email":    admin.Email,
		"password": "admin123",
		"role":     "ADMIN",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "ADMIN", data["role"])
}

func TestAdminLoginByAdminID(t *testing.T) {
	db := setupTestDB(t)
	router := newAuthRouter()
	createTestAdmin(t, db)

	// Admins can use their admin id in place of the email
	w := postJSON(router, "/api/auth/login", gin.H{
		"email":    "admin",
		"password": "admin123",
		"role":     "ADMIN",
	})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLoginInvalidRole(t *testing.T) {
	setupTestDB(t)
	router := newAuthRouter()

	w := postJSON(router, "/api/auth/login", gin.H{
		"email":    "someone@example.com",
		"password": "password",
		"role":     "SUPERUSER",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_ROLE")
}

func TestLoginMissingFields(t *testing.T) {
	setupTestDB(t)
	router := newAuthRouter()

	w := postJSON(router, "/api/auth/login", gin.H{"email": "someone@example.com"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
}

func TestStudentSignup(t *testing.T) {
	setupTestDB(t)
	router := newAuthRouter()

	w := postJSON(router, "/api/auth/signup/student", gin.H{
		"full_name":    "Priya Sharma",
		"student_id":   "2021A7PS0002P",
		"email":        "priya@pilani.bits-pilani.ac.in",
		"hostel":       "Meera Bhawan",
		"room_number":  "202",
		"phone_number": "9876543211",
		"password":     "secret",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])

	data := body["data"].(map[string]interface{})
	assert.Equal(t, "STUDENT", data["role"])
	// Password must never appear in responses
	assert.NotContains(t, w.Body.String(), "secret")
}

func TestStudentSignupNonCampusEmail(t *testing.T) {
	setupTestDB(t)
	router := newAuthRouter()

	w := postJSON(router, "/api/auth/signup/student", gin.H{
		"full_name":    "Priya Sharma",
		"student_id":   "2021A7PS0002P",
		"email":        "priya@gmail.com",
		"hostel":       "Meera Bhawan",
		"room_number":  "202",
		"phone_number": "9876543211",
		"password":     "secret",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_EMAIL")
}

func TestStudentSignupDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	router := newAuthRouter()
	student := createTestStudent(t, db)

	w := postJSON(router, "/api/auth/signup/student", gin.H{
		"full_name":    "Someone Else",
		"student_id":   "2021A7PS0099P",
		"email":        student.Email,
		"hostel":       "Meera Bhawan",
		"room_number":  "202",
		"phone_number": "9876543211",
		"password":     "secret",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "EMAIL_EXISTS")
}

func TestStudentSignupDuplicateStudentID(t *testing.T) {
	db := setupTestDB(t)
	router := newAuthRouter()
	student := createTestStudent(t, db)

	w := postJSON(router, "/api/auth/signup/student", gin.H{
		"full_name":    "Someone Else",
		"student_id":   student.StudentID,
		"email":        "else@pilani.bits-pilani.ac.in",
		"hostel":       "Meera Bhawan",
		"room_number":  "202",
		"phone_number": "9876543211",
		"password":     "secret",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "STUDENT_ID_EXISTS")
}

func TestPersonnelSignup(t *testing.T) {
	setupTestDB(t)
	router := newAuthRouter()

	w := postJSON(router, "/api/auth/signup/personnel", gin.H{
		"full_name":        "Sunita Devi",
		"employee_id":      "EMP010",
		"email":            "sunita@freshfold.com",
		"phone_number":     "9876500010",
		"years_experience": 8,
		"password":         "secret",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	data := body["data"].(map[string]interface{})
	// Unspecified rating defaults to the neutral starting value
	assert.Equal(t, 3.0, data["rating"])
}

func TestPersonnelSignupDuplicateEmployeeID(t *testing.T) {
	db := setupTestDB(t)
	router := newAuthRouter()
	personnel := createTestPersonnel(t, db)

	w := postJSON(router, "/api/auth/signup/personnel", gin.H{
		"full_name":    "Someone Else",
		"employee_id":  personnel.EmployeeID,
		"email":        "else@freshfold.com",
		"phone_number": "9876500011",
		"password":     "secret",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "EMPLOYEE_ID_EXISTS")
}
