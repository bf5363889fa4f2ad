package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"busline/internal/domain"
	"busline/internal/domain/models"
	"busline/internal/http/middleware"
	"busline/internal/utils"
)

const tokenTTL = 24 * time.Hour

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/register
func (a *API) Register(c *gin.Context) {
	var req registerRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	switch {
	case req.Name == "":
		RespondError(c, domain.Invalid("name", "is required"))
		return
	case req.Email == "":
		RespondError(c, domain.Invalid("email", "is required"))
		return
	case len(req.Password) < 8:
		RespondError(c, domain.Invalid("password", "must be at least 8 characters"))
		return
	}

	if _, exists := a.Ledger.UserByEmail(req.Email); exists {
		RespondError(c, domain.Conflict("user", "email already registered"))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		RespondError(c, domain.Internal("failed to hash password", err))
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        strings.TrimSpace(req.Phone),
		Role:         models.RoleUser,
		PasswordHash: string(hash),
	}
	if err := a.Ledger.CreateUser(&user); err != nil {
		RespondError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "auth", "register", "user_id="+user.ID)
	RespondSuccess(c, http.StatusCreated, "signup successful", user)
}

// POST /api/auth/login
func (a *API) Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		RespondError(c, domain.Invalid("credentials", "email and password are required"))
		return
	}

	user, ok := a.Ledger.UserByEmail(strings.TrimSpace(req.Email))
	if !ok || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success":    false,
			"message":    "invalid email or password",
			"error":      gin.H{"code": "UNAUTHORIZED"},
			"request_id": middleware.GetRequestID(c),
		})
		return
	}

	now := time.Now()
	claims := middleware.Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.JWTSecret)
	if err != nil {
		RespondError(c, domain.Internal("failed to sign token", err))
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "auth", "login", "user_id="+user.ID)
	RespondSuccess(c, http.StatusOK, "login successful", gin.H{
		"token": token,
		"user":  user,
	})
}
