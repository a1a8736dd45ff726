package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/freshfold/freshfold-api/config"
	"github.com/freshfold/freshfold-api/middleware"
	"github.com/freshfold/freshfold-api/models"
)

// campusEmailDomain is the only email domain accepted for student signups
const campusEmailDomain = "@pilani.bits-pilani.ac.in"

// LoginRequest represents the request body for logging in
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

// StudentSignupRequest represents the request body for registering a student
type StudentSignupRequest struct {
	FullName    string `json:"full_name" binding:"required"`
	StudentID   string `json:"student_id" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Hostel      string `json:"hostel" binding:"required"`
	RoomNumber  string `json:"room_number" binding:"required"`
	PhoneNumber string `json:"phone_number" binding:"required"`
	Password    string `json:"password" binding:"required"`
}

// PersonnelSignupRequest represents the request body for registering personnel
type PersonnelSignupRequest struct {
	FullName        string   `json:"full_name" binding:"required"`
	EmployeeID      string   `json:"employee_id" binding:"required"`
	Email           string   `json:"email" binding:"required,email"`
	PhoneNumber     string   `json:"phone_number" binding:"required"`
	YearsExperience int      `json:"years_experience"`
	Rating          *float64 `json:"rating"`
	Password        string   `json:"password" binding:"required"`
}

// Login handles POST /api/auth/login - authenticates a student, personnel or
// admin account and issues a bearer token.
//
// Passwords are compared in plaintext, matching the prototype the system
// replaces; hashing is deliberately out of scope.
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data")
		return
	}

	db := config.GetDB()
	cfg := config.GetConfig()

	var (
		userID   uint
		fullName string
		email    string
		userData gin.H
	)

	role := strings.ToUpper(req.Role)
	switch role {
	case "STUDENT":
		var student models.Student
		if err := db.Where("email = ?", req.Email).First(&student).Error; err != nil || student.Password != req.Password {
			respondError(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
			return
		}
		userID = student.ID
		fullName = student.FullName
		email = student.Email
		userData = gin.H{
			"student_id":   student.StudentID,
			"hostel":       student.Hostel,
			"room_number":  student.RoomNumber,
			"phone_number": student.PhoneNumber,
		}

	case "PERSONNEL":
		var personnel models.Personnel
		if err := db.Where("email = ?", req.Email).First(&personnel).Error; err != nil || personnel.Password != req.Password {
			respondError(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
			return
		}
		userID = personnel.ID
		fullName = personnel.FullName
		email = personnel.Email
		userData = gin.H{
			"employee_id":      personnel.EmployeeID,
			"phone_number":     personnel.PhoneNumber,
			"years_experience": personnel.YearsExperience,
			"rating":           personnel.Rating,
		}

	case "ADMIN":
		// Admins can log in with either their email or their admin id
		var admin models.Admin
		err := db.Where("email = ? OR admin_id = ?", req.Email, req.Email).First(&admin).Error
		if err != nil || admin.Password != req.Password {
			respondError(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
			return
		}
		userID = admin.ID
		fullName = admin.FullName
		email = admin.Email
		userData = gin.H{"admin_id": admin.AdminID}

	default:
		respondError(c, http.StatusBadRequest, "INVALID_ROLE", "Role must be STUDENT, PERSONNEL or ADMIN")
		return
	}

	token, err := middleware.IssueToken(cfg.JWTSecret, userID, role)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "TOKEN_ERROR", "Failed to issue token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"id":        userID,
			"full_name": fullName,
			"email":     email,
			"role":      role,
			"token":     token,
			"user_data": userData,
		},
	})
}

// SignupStudent handles POST /api/auth/signup/student
func SignupStudent(c *gin.Context) {
	var req StudentSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data")
		return
	}

	if !strings.HasSuffix(req.Email, campusEmailDomain) {
		respondError(c, http.StatusBadRequest, "INVALID_EMAIL", "Please use your campus email address")
		return
	}

	db := config.GetDB()

	var count int64
	db.Model(&models.Student{}).Where("email = ?", req.Email).Count(&count)
	if count > 0 {
		respondError(c, http.StatusConflict, "EMAIL_EXISTS", "Email already registered")
		return
	}

	db.Model(&models.Student{}).Where("student_id = ?", req.StudentID).Count(&count)
	if count > 0 {
		respondError(c, http.StatusConflict, "STUDENT_ID_EXISTS", "Student ID already registered")
		return
	}

	student := models.Student{
		FullName:    req.FullName,
		StudentID:   req.StudentID,
		Email:       req.Email,
		Hostel:      req.Hostel,
		RoomNumber:  req.RoomNumber,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
		Role:        "STUDENT",
	}

	if err := db.Create(&student).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create student")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    student,
	})
}

// SignupPersonnel handles POST /api/auth/signup/personnel
func SignupPersonnel(c *gin.Context) {
	var req PersonnelSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data")
		return
	}

	db := config.GetDB()

	var count int64
	db.Model(&models.Personnel{}).Where("email = ?", req.Email).Count(&count)
	if count > 0 {
		respondError(c, http.StatusConflict, "EMAIL_EXISTS", "Email already registered")
		return
	}

	db.Model(&models.Personnel{}).Where("employee_id = ?", req.EmployeeID).Count(&count)
	if count > 0 {
		respondError(c, http.StatusConflict, "EMPLOYEE_ID_EXISTS", "Employee ID already registered")
		return
	}

	rating := 3.0
	if req.Rating != nil {
		rating = *req.Rating
	}

	personnel := models.Personnel{
		FullName:        req.FullName,
		EmployeeID:      req.EmployeeID,
		Email:           req.Email,
		PhoneNumber:     req.PhoneNumber,
		YearsExperience: req.YearsExperience,
		Rating:          rating,
		Password:        req.Password,
		Role:            "PERSONNEL",
	}

	if err := db.Create(&personnel).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create personnel")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    personnel,
	})
}
