package handlers

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"careeragent/models"
)

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	User    *models.User `json:"user,omitempty"`
	Token   string       `json:"token,omitempty"`
}

func (a *API) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, AuthResponse{
			Success: false,
			Message: "Invalid request data: " + err.Error(),
		})
		return
	}

	if _, err := a.Store.Users.GetByEmail(req.Email); err == nil {
		c.JSON(http.StatusConflict, AuthResponse{
			Success: false,
			Message: "User with this email already exists",
		})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, AuthResponse{
			Success: false,
			Message: "Failed to hash password",
		})
		return
	}

	user, err := a.Store.Users.Create(req.Email, req.Name, string(hashed))
	if err != nil {
		a.Logger.Error("user creation failed", err)
		c.JSON(http.StatusInternalServerError, AuthResponse{
			Success: false,
			Message: "Failed to create user account",
		})
		return
	}

	token, err := a.JWT.GenerateToken(user.ID, user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, AuthResponse{
			Success: false,
			Message: "Failed to generate authentication token",
		})
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		Success: true,
		Message: "User registered successfully",
		User:    user,
		Token:   token,
	})
}

func (a *API) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, AuthResponse{
			Success: false,
			Message: "Invalid request data: " + err.Error(),
		})
		return
	}

	user, err := a.Store.Users.GetByEmail(req.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, AuthResponse{
			Success: false,
			Message: "Invalid email or password",
		})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, AuthResponse{
			Success: false,
			Message: "Invalid email or password",
		})
		return
	}

	token, err := a.JWT.GenerateToken(user.ID, user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, AuthResponse{
			Success: false,
			Message: "Failed to generate authentication token",
		})
		return
	}

	user.Password = ""
	c.JSON(http.StatusOK, AuthResponse{
		Success: true,
		Message: "Login successful",
		User:    user,
		Token:   token,
	})
}

func (a *API) GetProfile(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	user, err := a.Store.Users.GetByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, AuthResponse{
			Success: false,
			Message: "User not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "profile": user})
}

type UpdateProfileRequest struct {
	Name            string `json:"name"`
	CurrentRole     string `json:"current_role"`
	CurrentLevel    string `json:"current_level"`
	ExperienceYears int    `json:"experience_years"`
}

// UpdateProfile saves profile fields and runs the profile_update event
// so downstream analysis stays current.
func (a *API) UpdateProfile(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, AuthResponse{
			Success: false,
			Message: "Invalid request data: " + err.Error(),
		})
		return
	}

	existing, err := a.Store.Users.GetByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, AuthResponse{Success: false, Message: "User not found"})
		return
	}
	if req.Name == "" {
		req.Name = existing.Name
	}
	if req.CurrentRole == "" {
		req.CurrentRole = existing.CurrentRole
	}
	if req.CurrentLevel == "" {
		req.CurrentLevel = existing.CurrentLevel
	}
	if req.ExperienceYears == 0 {
		req.ExperienceYears = existing.ExperienceYears
	}

	if err := a.Store.Users.UpdateProfile(userID, req.Name, req.CurrentRole, req.CurrentLevel, req.ExperienceYears); err != nil {
		c.JSON(http.StatusInternalServerError, AuthResponse{
			Success: false,
			Message: "Failed to update profile",
		})
		return
	}

	result := a.Orchestrator.RunAgent(c.Request.Context(), "profile_update", userID, map[string]interface{}{
		"skills_changed": false,
		"goal_changed":   false,
	})

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Profile updated successfully",
		"analysis": result,
	})
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
}

func (a *API) ChangePassword(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, AuthResponse{
			Success: false,
			Message: "Invalid request data: " + err.Error(),
		})
		return
	}

	user, err := a.Store.Users.GetByEmail(c.GetString("user_email"))
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, AuthResponse{Success: false, Message: "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, AuthResponse{Success: false, Message: "Failed to load user"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
		c.JSON(http.StatusUnauthorized, AuthResponse{
			Success: false,
			Message: "Current password is incorrect",
		})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, AuthResponse{
			Success: false,
			Message: "Failed to hash password",
		})
		return
	}

	if err := a.Store.Users.UpdatePassword(userID, string(hashed)); err != nil {
		c.JSON(http.StatusInternalServerError, AuthResponse{
			Success: false,
			Message: "Failed to update password",
		})
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		Success: true,
		Message: "Password changed successfully",
	})
}

// Logout is client-side token removal; the endpoint exists so clients
// have a consistent call to make.
func (a *API) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, AuthResponse{
		Success: true,
		Message: "Logged out successfully",
	})
}
